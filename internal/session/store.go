// Package session keeps the in-process table of ingested webpage sessions.
// The table lives for the lifetime of the process; the vector index is the
// durable side of a session.
package session

import (
	"sort"

	gocache "github.com/patrickmn/go-cache"

	"github.com/mlevkov/contentproc/internal/entity"
)

// Store is a lock-guarded session table. Entries never expire; they are
// removed only by an explicit Delete.
type Store struct {
	sessions *gocache.Cache
}

func NewStore() *Store {
	return &Store{
		sessions: gocache.New(gocache.NoExpiration, 0),
	}
}

// Put records a session under its id, replacing any previous record.
func (s *Store) Put(sess *entity.Session) {
	s.sessions.Set(sess.ID, sess, gocache.NoExpiration)
}

// Get returns the session for id, or nil when it is unknown.
func (s *Store) Get(id string) *entity.Session {
	v, ok := s.sessions.Get(id)
	if !ok {
		return nil
	}
	return v.(*entity.Session)
}

// List returns all sessions ordered by creation time.
func (s *Store) List() []*entity.Session {
	items := s.sessions.Items()

	sessions := make([]*entity.Session, 0, len(items))
	for _, item := range items {
		sessions = append(sessions, item.Object.(*entity.Session))
	}

	sort.Slice(sessions, func(i, j int) bool {
		if sessions[i].CreatedAt.Equal(sessions[j].CreatedAt) {
			return sessions[i].ID < sessions[j].ID
		}
		return sessions[i].CreatedAt.Before(sessions[j].CreatedAt)
	})

	return sessions
}

// Delete removes the session for id and reports whether it existed.
func (s *Store) Delete(id string) bool {
	if _, ok := s.sessions.Get(id); !ok {
		return false
	}
	s.sessions.Delete(id)
	return true
}

// Len returns the number of live sessions.
func (s *Store) Len() int {
	return s.sessions.ItemCount()
}
