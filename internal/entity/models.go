package entity

import "time"

// Session describes one ingested webpage. Sessions live in process memory
// for the lifetime of the service; the vector index is the durable part.
type Session struct {
	ID            string         `json:"session_id"`
	Title         string         `json:"title"`
	URL           string         `json:"url"`
	ChunkCount    int            `json:"chunks"`
	ContentLength int            `json:"content_length"`
	ChunkSize     int            `json:"chunk_size"`
	ChunkOverlap  int            `json:"chunk_overlap"`
	CreatedAt     time.Time      `json:"created_at"`
	Metadata      map[string]any `json:"metadata,omitempty"`
}

// IndexEntry is the persisted unit inside the vector index: one chunk of a
// session together with its embedding and metadata. ID is "{sessionID}_{i}".
type IndexEntry struct {
	ID        string
	Embedding []float64
	Document  string
	Metadata  map[string]any
}

// IndexMatch is a retrieved entry with its similarity rank preserved.
type IndexMatch struct {
	Document string
	Metadata map[string]any
	Score    float64
}

// DeleteResult reports the outcome of a session deletion. Index deletion and
// session-table removal are two separate steps, so a partial outcome is
// possible and must be surfaced rather than collapsed into a boolean.
type DeleteResult string

const (
	DeleteCompleted DeleteResult = "DELETED"
	DeletePartial   DeleteResult = "PARTIAL"
	DeleteNotFound  DeleteResult = "NOT_FOUND"
)

// Transcription is the result of a speech-recognition call.
type Transcription struct {
	Text                string  `json:"text"`
	Language            string  `json:"language"`
	LanguageProbability float64 `json:"language_probability"`
}

// WebpageContent is readable text extracted from a fetched URL.
type WebpageContent struct {
	Title   string
	Content string
}

// ExportFormat selects the output format for processed meeting documents.
type ExportFormat string

const (
	FormatMarkdown ExportFormat = "markdown"
	FormatPDF      ExportFormat = "pdf"
	FormatDOCX     ExportFormat = "docx"
)

func (f ExportFormat) Validate() error {
	switch f {
	case FormatMarkdown, FormatPDF, FormatDOCX:
		return nil
	default:
		return ErrUnsupportedFormat
	}
}

// ExportedDocument is a rendered document ready to be sent to the caller.
type ExportedDocument struct {
	Content     []byte
	ContentType string
	Extension   string
}
