package entity

// Anthropic messages API wire format.

type LLMContentBlock struct {
	Type   string          `json:"type"`
	Text   string          `json:"text,omitempty"`
	Source *LLMImageSource `json:"source,omitempty"`
}

type LLMImageSource struct {
	Type      string `json:"type"`
	MediaType string `json:"media_type"`
	Data      string `json:"data"`
}

type LLMMessage struct {
	Role    string            `json:"role"`
	Content []LLMContentBlock `json:"content"`
}

type LLMGenerateRequest struct {
	Model       string       `json:"model"`
	MaxTokens   int          `json:"max_tokens"`
	Temperature float64      `json:"temperature,omitempty"`
	Messages    []LLMMessage `json:"messages"`
}

type LLMGenerateResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
	StopReason string `json:"stop_reason"`
	Usage      struct {
		InputTokens  int `json:"input_tokens"`
		OutputTokens int `json:"output_tokens"`
	} `json:"usage"`
}
