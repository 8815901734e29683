// Package arena implements the two stream processors at the heart of versus:
// the Decoder, which de-envelopes an upstream chat-completion SSE stream into
// plain text deltas, and the Accumulator, which gathers those deltas back into
// a transcript and derives the winner once the stream ends.
package arena

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/timscodebase/versus/pkg/llm"
	"github.com/timscodebase/versus/pkg/sse"
)

// Decoder converts an upstream streaming chat-completion response into a
// sequence of plain text deltas. It stops at the [DONE] sentinel or at
// transport end, whichever comes first; once stopped it never reads again,
// so events enveloped after the sentinel are ignored.
type Decoder struct {
	events *sse.Reader
	done   bool
}

// NewDecoder returns a Decoder reading SSE events from src, typically the
// body of the upstream streaming HTTP response.
func NewDecoder(src io.Reader) *Decoder {
	return &Decoder{events: sse.NewReader(src)}
}

// Next returns the next text delta. ok is false once the stream has
// terminated, via either the sentinel or transport end-of-stream.
//
// A well-formed event whose delta carries no content field yields an empty
// string with ok=true: emitted chunks correspond one-to-one with upstream
// events. A malformed JSON payload is fatal; the decoder stays terminated
// after returning the error.
func (d *Decoder) Next() (string, bool, error) {
	if d.done {
		return "", false, nil
	}

	ev, err := d.events.Next()
	if err != nil {
		d.done = true
		return "", false, err
	}
	if ev == nil || ev.Data == llm.DoneSentinel {
		d.done = true
		return "", false, nil
	}

	var chunk llm.StreamChunk
	if err := json.Unmarshal([]byte(ev.Data), &chunk); err != nil {
		d.done = true
		return "", false, fmt.Errorf("decoding stream chunk: %w", err)
	}

	return chunk.DeltaText(), true, nil
}

// Drain copies every remaining delta to dst in arrival order and returns the
// concatenated transcript. The first write or decode failure aborts the
// drain; the transcript accumulated so far is returned alongside the error.
func (d *Decoder) Drain(dst io.Writer) (string, error) {
	var transcript strings.Builder

	for {
		delta, ok, err := d.Next()
		if err != nil {
			return transcript.String(), err
		}
		if !ok {
			return transcript.String(), nil
		}
		if delta == "" {
			continue
		}

		if _, err := io.WriteString(dst, delta); err != nil {
			return transcript.String(), fmt.Errorf("writing delta: %w", err)
		}
		transcript.WriteString(delta)
	}
}
