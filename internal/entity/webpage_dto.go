package entity

// StoreWebpageRequest is the body of POST /api/webpage/store.
// When Fetch is set and Content is empty, the server downloads the page
// at URL and extracts its readable text before ingestion.
type StoreWebpageRequest struct {
	Title        string         `json:"title"`
	URL          string         `json:"url"`
	Content      string         `json:"content"`
	Fetch        bool           `json:"fetch,omitempty"`
	Metadata     map[string]any `json:"metadata,omitempty"`
	ChunkSize    int            `json:"chunk_size,omitempty"`
	ChunkOverlap int            `json:"chunk_overlap,omitempty"`
}

type StoreWebpageResponse struct {
	SessionID string `json:"session_id"`
	Title     string `json:"title"`
	URL       string `json:"url"`
	Chunks    int    `json:"chunks"`
	StoredAt  string `json:"stored_at"`
}

// AskRequest is the body of POST /api/webpage/ask.
type AskRequest struct {
	SessionID string `json:"session_id"`
	Question  string `json:"question"`
	TopK      int    `json:"top_k,omitempty"`
}

type AskResponse struct {
	Answer   string     `json:"answer"`
	Question string     `json:"question"`
	Session  SessionRef `json:"session"`
}

type SessionRef struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

type SessionListResponse struct {
	Sessions []*Session `json:"sessions"`
	Count    int        `json:"count"`
}

type DeleteSessionResponse struct {
	Result DeleteResult `json:"result"`
}
