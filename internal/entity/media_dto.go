package entity

// TranscribeResponse is returned by POST /api/media/transcribe.
type TranscribeResponse struct {
	Text                string  `json:"text"`
	Language            string  `json:"language"`
	LanguageProbability float64 `json:"language_probability"`
}

// AnalysisResponse is the generic result of an LLM analysis endpoint.
type AnalysisResponse struct {
	Result string `json:"result"`
}

// MeetingMinutesRequest is the body of POST /api/documents/meeting-minutes.
type MeetingMinutesRequest struct {
	Transcript string `json:"transcript"`
}

// FinancialFormatRequest is the body of POST /api/documents/financial-format.
type FinancialFormatRequest struct {
	Transcript string `json:"transcript"`
}

// SummarizeRequest is the body of POST /api/documents/summarize.
type SummarizeRequest struct {
	Text     string `json:"text"`
	MaxWords int    `json:"max_words,omitempty"`
}
