// Package chunker splits documents into overlapping fixed-size segments
// for retrieval indexing.
package chunker

import (
	"fmt"
	"strings"

	"github.com/mlevkov/contentproc/internal/entity"
)

// DefaultChunkSize is the default number of characters per chunk.
const DefaultChunkSize = 1000

// DefaultChunkOverlap is the default number of overlapping characters.
const DefaultChunkOverlap = 200

// Chunk splits text into ordered segments of at most size characters,
// consecutive segments sharing overlap characters. Sizes are measured in
// runes so multi-byte text never splits inside a code point.
//
// Boundary policy: the window advances by (size - overlap) and the last
// chunk ends exactly at the end of the text, so for texts longer than size
// the chunk count is ceil((n-overlap)/(size-overlap)); shorter texts yield
// a single chunk. The function is pure and deterministic.
func Chunk(text string, size, overlap int) ([]string, error) {
	if size <= 0 || overlap < 0 || overlap >= size {
		return nil, fmt.Errorf("%w: size=%d overlap=%d", entity.ErrInvalidChunking, size, overlap)
	}

	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil, entity.ErrEmptyContent
	}

	runes := []rune(trimmed)
	n := len(runes)
	step := size - overlap

	var chunks []string
	for start := 0; ; start += step {
		end := start + size
		if end > n {
			end = n
		}
		chunks = append(chunks, string(runes[start:end]))
		if end == n {
			break
		}
	}

	return chunks, nil
}
