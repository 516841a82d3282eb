// Package postgres implements the vector index on PostgreSQL with the
// pgvector extension. Entries are keyed by id; similarity uses cosine
// distance, matching the distance the query side assumes.
package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mlevkov/contentproc/internal/entity"
)

type Store struct {
	db *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

// Upsert inserts all entries in one batch; a colliding id is overwritten.
func (s *Store) Upsert(ctx context.Context, entries []entity.IndexEntry) error {
	batch := &pgx.Batch{}

	for _, e := range entries {
		metadata, err := json.Marshal(e.Metadata)
		if err != nil {
			return fmt.Errorf("marshal metadata for %s: %w", e.ID, err)
		}

		batch.Queue(`
			INSERT INTO webpage_chunks (id, document, metadata, embedding)
			VALUES ($1, $2, $3, $4::vector)
			ON CONFLICT (id) DO UPDATE SET
				document = EXCLUDED.document,
				metadata = EXCLUDED.metadata,
				embedding = EXCLUDED.embedding`,
			e.ID, e.Document, metadata, vectorLiteral(e.Embedding),
		)
	}

	results := s.db.SendBatch(ctx, batch)
	defer results.Close()

	for range entries {
		if _, err := results.Exec(); err != nil {
			return fmt.Errorf("upsert batch: %w", err)
		}
	}
	return nil
}

// Query returns the topK nearest entries by cosine similarity, restricted
// to entries whose metadata contains every filter pair.
func (s *Store) Query(ctx context.Context, vector []float64, topK int, filter map[string]any) ([]entity.IndexMatch, error) {
	if topK <= 0 {
		topK = 3
	}

	filterJSON, err := json.Marshal(filter)
	if err != nil {
		return nil, fmt.Errorf("marshal filter: %w", err)
	}

	rows, err := s.db.Query(ctx, `
		SELECT document, metadata, 1 - (embedding <=> $1::vector) AS score
		FROM webpage_chunks
		WHERE metadata @> $2::jsonb
		ORDER BY embedding <=> $1::vector
		LIMIT $3`,
		vectorLiteral(vector), filterJSON, topK,
	)
	if err != nil {
		return nil, fmt.Errorf("query chunks: %w", err)
	}
	defer rows.Close()

	var matches []entity.IndexMatch
	for rows.Next() {
		var (
			match       entity.IndexMatch
			rawMetadata []byte
		)
		if err := rows.Scan(&match.Document, &rawMetadata, &match.Score); err != nil {
			return nil, fmt.Errorf("scan chunk row: %w", err)
		}
		if err := json.Unmarshal(rawMetadata, &match.Metadata); err != nil {
			return nil, fmt.Errorf("decode chunk metadata: %w", err)
		}
		matches = append(matches, match)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate chunk rows: %w", err)
	}

	return matches, nil
}

// DeleteWhere removes every entry whose metadata contains all filter pairs.
func (s *Store) DeleteWhere(ctx context.Context, filter map[string]any) error {
	filterJSON, err := json.Marshal(filter)
	if err != nil {
		return fmt.Errorf("marshal filter: %w", err)
	}

	if _, err := s.db.Exec(ctx,
		`DELETE FROM webpage_chunks WHERE metadata @> $1::jsonb`, filterJSON,
	); err != nil {
		return fmt.Errorf("delete chunks: %w", err)
	}
	return nil
}

// vectorLiteral renders a float slice in pgvector input syntax: [1,2,3].
func vectorLiteral(v []float64) string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, f := range v {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.FormatFloat(f, 'g', -1, 64))
	}
	sb.WriteByte(']')
	return sb.String()
}
