package llm

// DoneSentinel is the literal data payload the upstream API sends as the
// final event of a completed stream.
const DoneSentinel = "[DONE]"

// StreamChunk is a single streamed chat-completion event payload.
type StreamChunk struct {
	ID      string         `json:"id,omitempty"`
	Object  string         `json:"object,omitempty"`
	Model   string         `json:"model,omitempty"`
	Choices []StreamChoice `json:"choices"`
}

// StreamChoice carries the incremental delta for one completion choice.
type StreamChoice struct {
	Index        int    `json:"index"`
	Delta        Delta  `json:"delta"`
	FinishReason string `json:"finish_reason,omitempty"`
}

// Delta is the incremental message fragment within a stream chunk.
// A chunk with no content field (e.g. the initial role-only chunk)
// decodes to an empty Content string.
type Delta struct {
	Role    string `json:"role,omitempty"`
	Content string `json:"content,omitempty"`
}

// DeltaText returns the text delta of the first choice, or the empty
// string when the chunk carries no choices or no content.
func (c *StreamChunk) DeltaText() string {
	if len(c.Choices) == 0 {
		return ""
	}
	return c.Choices[0].Delta.Content
}
