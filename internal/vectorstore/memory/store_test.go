package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mlevkov/contentproc/internal/entity"
)

func entry(id, doc, sessionID string, embedding []float64) entity.IndexEntry {
	return entity.IndexEntry{
		ID:        id,
		Document:  doc,
		Embedding: embedding,
		Metadata:  map[string]any{"session_id": sessionID},
	}
}

func TestUpsertAndQuery(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	err := s.Upsert(ctx, []entity.IndexEntry{
		entry("a_0", "cats are mammals", "a", []float64{1, 0, 0}),
		entry("a_1", "dogs are mammals", "a", []float64{0.9, 0.1, 0}),
		entry("a_2", "planes are machines", "a", []float64{0, 0, 1}),
	})
	require.NoError(t, err)
	require.Equal(t, 3, s.Len())

	matches, err := s.Query(ctx, []float64{1, 0, 0}, 2, map[string]any{"session_id": "a"})
	require.NoError(t, err)
	require.Len(t, matches, 2)
	require.Equal(t, "cats are mammals", matches[0].Document)
	require.Equal(t, "dogs are mammals", matches[1].Document)
	require.Greater(t, matches[0].Score, matches[1].Score)
}

func TestUpsertOverwritesByID(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	require.NoError(t, s.Upsert(ctx, []entity.IndexEntry{entry("x_0", "first", "x", []float64{1})}))
	require.NoError(t, s.Upsert(ctx, []entity.IndexEntry{entry("x_0", "second", "x", []float64{1})}))

	require.Equal(t, 1, s.Len())
	matches, err := s.Query(ctx, []float64{1}, 1, nil)
	require.NoError(t, err)
	require.Equal(t, "second", matches[0].Document)
}

func TestUpsertRejectsEmptyID(t *testing.T) {
	s := NewStore()
	err := s.Upsert(context.Background(), []entity.IndexEntry{{Document: "no id"}})
	require.Error(t, err)
}

func TestQueryFilterIsolatesSessions(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	require.NoError(t, s.Upsert(ctx, []entity.IndexEntry{
		entry("a_0", "session a doc", "a", []float64{1, 0}),
		entry("b_0", "session b doc", "b", []float64{1, 0}),
	}))

	matches, err := s.Query(ctx, []float64{1, 0}, 10, map[string]any{"session_id": "a"})
	require.NoError(t, err)
	require.Len(t, matches, 1)
	require.Equal(t, "session a doc", matches[0].Document)
}

func TestQueryNoMatches(t *testing.T) {
	s := NewStore()
	matches, err := s.Query(context.Background(), []float64{1}, 3, map[string]any{"session_id": "missing"})
	require.NoError(t, err)
	require.Empty(t, matches)
}

func TestDeleteWhere(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	require.NoError(t, s.Upsert(ctx, []entity.IndexEntry{
		entry("a_0", "a0", "a", []float64{1}),
		entry("a_1", "a1", "a", []float64{1}),
		entry("b_0", "b0", "b", []float64{1}),
	}))

	require.NoError(t, s.DeleteWhere(ctx, map[string]any{"session_id": "a"}))
	require.Equal(t, 1, s.Len())

	matches, err := s.Query(ctx, []float64{1}, 10, map[string]any{"session_id": "b"})
	require.NoError(t, err)
	require.Len(t, matches, 1)
}
