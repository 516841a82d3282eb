// Package memory provides an in-process vector index using brute-force
// cosine similarity. It backs tests and mock mode; production deployments
// use the postgres adapter.
package memory

import (
	"context"
	"fmt"
	"math"
	"sort"
	"sync"

	"github.com/mlevkov/contentproc/internal/entity"
)

type Store struct {
	mu      sync.RWMutex
	entries map[string]entity.IndexEntry
}

func NewStore() *Store {
	return &Store{
		entries: make(map[string]entity.IndexEntry),
	}
}

// Upsert inserts entries keyed by id; an existing id is overwritten.
func (s *Store) Upsert(ctx context.Context, entries []entity.IndexEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, e := range entries {
		if e.ID == "" {
			return fmt.Errorf("index entry without id")
		}
		s.entries[e.ID] = e
	}
	return nil
}

// Query returns up to topK entries nearest to vector by cosine similarity,
// restricted to entries whose metadata contains every filter pair.
func (s *Store) Query(ctx context.Context, vector []float64, topK int, filter map[string]any) ([]entity.IndexMatch, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if topK <= 0 {
		topK = 3
	}

	matches := make([]entity.IndexMatch, 0)
	for _, e := range s.entries {
		if !metadataMatches(e.Metadata, filter) {
			continue
		}
		matches = append(matches, entity.IndexMatch{
			Document: e.Document,
			Metadata: e.Metadata,
			Score:    cosine(vector, e.Embedding),
		})
	}

	sort.Slice(matches, func(i, j int) bool { return matches[i].Score > matches[j].Score })
	if len(matches) > topK {
		matches = matches[:topK]
	}
	return matches, nil
}

// DeleteWhere removes every entry whose metadata contains all filter pairs.
func (s *Store) DeleteWhere(ctx context.Context, filter map[string]any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, e := range s.entries {
		if metadataMatches(e.Metadata, filter) {
			delete(s.entries, id)
		}
	}
	return nil
}

// Len returns the number of stored entries.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

func metadataMatches(metadata, filter map[string]any) bool {
	for k, want := range filter {
		got, ok := metadata[k]
		if !ok || fmt.Sprint(got) != fmt.Sprint(want) {
			return false
		}
	}
	return true
}

func cosine(a, b []float64) float64 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	var dot, na, nb float64
	for i := 0; i < n; i++ {
		dot += a[i] * b[i]
		na += a[i] * a[i]
		nb += b[i] * b[i]
	}
	if na == 0 || nb == 0 {
		return 0
	}
	return dot / (math.Sqrt(na) * math.Sqrt(nb))
}
