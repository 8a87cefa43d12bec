package model

import (
	"bytes"
	"encoding/json"
)

// ChatResponse is the subset of a chat completion response the council reads.
// Only the first choice is consulted.
type ChatResponse struct {
	Choices []ChatChoice `json:"choices"`
	Usage   *Usage       `json:"usage,omitempty"`
}

type ChatChoice struct {
	// Message is a pointer so a choice without a message object can be told apart from an empty one.
	Message *ChoiceMessage `json:"message"`
}

type ChoiceMessage struct {
	Content          *string         `json:"content"`
	ReasoningDetails json.RawMessage `json:"reasoning_details,omitempty"`
}

// Usage is the token usage information returned by OpenAI compatible APIs.
type Usage struct {
	PromptTokens     int `json:"prompt_tokens,omitempty"`
	CompletionTokens int `json:"completion_tokens,omitempty"`
	TotalTokens      int `json:"total_tokens,omitempty"`
}

// QueryResult is what one council member answered. Either field is absent when the provider omitted it.
type QueryResult struct {
	Content          *string         `json:"content"`
	ReasoningDetails json.RawMessage `json:"reasoning_details"`
}

// NewQueryResult copies the fields of a choice message. A JSON null reasoning_details is treated as absent.
func NewQueryResult(msg *ChoiceMessage) *QueryResult {
	result := &QueryResult{Content: msg.Content}
	if raw := bytes.TrimSpace(msg.ReasoningDetails); len(raw) > 0 && !bytes.Equal(raw, []byte("null")) {
		result.ReasoningDetails = append(json.RawMessage(nil), raw...)
	}
	return result
}

// ContentString returns the content or "" when absent.
func (r *QueryResult) ContentString() string {
	if r == nil || r.Content == nil {
		return ""
	}
	return *r.Content
}

// HasReasoningDetails reports whether the provider returned reasoning details.
func (r *QueryResult) HasReasoningDetails() bool {
	return r != nil && len(r.ReasoningDetails) > 0
}
