package ai

import "errors"

// ChatRequest is the inbound proxy payload, OpenAI chat-completions shaped.
type ChatRequest struct {
	Messages    []Message        `json:"messages"`
	Tools       []map[string]any `json:"tools,omitempty"`
	Model       string           `json:"model,omitempty"`
	Temperature *float64         `json:"temperature,omitempty"`
	MaxTokens   *int             `json:"max_tokens,omitempty"`
}

// ErrInvalidRequest reports a structurally invalid chat request. Validation
// happens before any provider call and before the provider credential is
// touched.
var ErrInvalidRequest = errors.New("invalid chat request")

// ValidateChatRequest enforces the request contract: a non-empty message
// list where every message carries a string role, and a content that is a
// string, an ordered sequence, or explicitly null (assistant messages that
// carry only tool calls).
func ValidateChatRequest(req ChatRequest) error {
	if len(req.Messages) == 0 {
		return ErrInvalidRequest
	}
	for _, msg := range req.Messages {
		role, ok := msg["role"].(string)
		if !ok || role == "" {
			return ErrInvalidRequest
		}
		content, present := msg["content"]
		if !present || content == nil {
			continue
		}
		switch content.(type) {
		case string, []any:
		default:
			return ErrInvalidRequest
		}
	}
	return nil
}
