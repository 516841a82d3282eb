package validator

import (
	"fmt"
	"strings"

	"github.com/mlevkov/contentproc/internal/entity"
)

// ValidateStoreWebpage validates StoreWebpageRequest. Title may be omitted
// only with fetch, where the extracted page title is used instead.
func (v *Validator) ValidateStoreWebpage(req *entity.StoreWebpageRequest) error {
	if strings.TrimSpace(req.URL) == "" {
		return fmt.Errorf("%w: url", entity.ErrMissingField)
	}
	if strings.TrimSpace(req.Content) == "" && !req.Fetch {
		return fmt.Errorf("%w: content", entity.ErrMissingField)
	}
	if strings.TrimSpace(req.Title) == "" && !req.Fetch {
		return fmt.Errorf("%w: title", entity.ErrMissingField)
	}

	if req.ChunkSize < 0 || req.ChunkOverlap < 0 {
		return fmt.Errorf("%w: chunk_size and chunk_overlap must be non-negative", entity.ErrInvalidParameter)
	}
	if req.ChunkSize > 0 && req.ChunkOverlap >= req.ChunkSize {
		return fmt.Errorf("%w: chunk_overlap must be smaller than chunk_size", entity.ErrInvalidParameter)
	}

	return nil
}

// ValidateAsk validates AskRequest.
func (v *Validator) ValidateAsk(req *entity.AskRequest) error {
	if req.SessionID == "" {
		return fmt.Errorf("%w: session_id", entity.ErrMissingField)
	}
	if strings.TrimSpace(req.Question) == "" {
		return fmt.Errorf("%w: question", entity.ErrMissingField)
	}
	if req.TopK < 0 {
		return fmt.Errorf("%w: top_k must be non-negative", entity.ErrInvalidParameter)
	}
	return nil
}
