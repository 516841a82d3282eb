package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/mlevkov/contentproc/internal/entity"
)

func TestStorePutGet(t *testing.T) {
	s := NewStore()

	sess := &entity.Session{ID: "s1", Title: "Page", CreatedAt: time.Now()}
	s.Put(sess)

	got := s.Get("s1")
	require.NotNil(t, got)
	require.Equal(t, "Page", got.Title)

	require.Nil(t, s.Get("unknown"))
}

func TestStorePutReplaces(t *testing.T) {
	s := NewStore()

	s.Put(&entity.Session{ID: "s1", Title: "old"})
	s.Put(&entity.Session{ID: "s1", Title: "new"})

	require.Equal(t, 1, s.Len())
	require.Equal(t, "new", s.Get("s1").Title)
}

func TestStoreListOrderedByCreation(t *testing.T) {
	s := NewStore()
	base := time.Now()

	s.Put(&entity.Session{ID: "later", CreatedAt: base.Add(time.Minute)})
	s.Put(&entity.Session{ID: "earlier", CreatedAt: base})
	s.Put(&entity.Session{ID: "middle", CreatedAt: base.Add(time.Second)})

	list := s.List()
	require.Len(t, list, 3)
	require.Equal(t, "earlier", list[0].ID)
	require.Equal(t, "middle", list[1].ID)
	require.Equal(t, "later", list[2].ID)
}

func TestStoreDelete(t *testing.T) {
	s := NewStore()
	s.Put(&entity.Session{ID: "s1"})

	require.True(t, s.Delete("s1"))
	require.Nil(t, s.Get("s1"))
	require.False(t, s.Delete("s1"))
	require.False(t, s.Delete("never-existed"))
}
