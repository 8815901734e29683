// Package llm holds the wire types exchanged with an OpenAI-compatible
// chat-completion and image-generation API.
package llm

// ChatRequest is the request body for the upstream chat-completion endpoint.
type ChatRequest struct {
	Model       string    `json:"model"`
	Messages    []Message `json:"messages"`
	MaxTokens   int       `json:"max_tokens,omitempty"`
	Temperature float64   `json:"temperature,omitempty"`

	// Whether to stream the response. The judge always sets this to true.
	Stream bool `json:"stream,omitempty"`
}

// Message is a single message in a chat-completion conversation.
type Message struct {
	Role    string `json:"role"` // "system", "user", "assistant"
	Content string `json:"content"`
}

// NewUserMessage builds a single-element message list carrying one user prompt.
func NewUserMessage(prompt string) []Message {
	return []Message{{Role: "user", Content: prompt}}
}
