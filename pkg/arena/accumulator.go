package arena

import (
	"io"
	"strings"
)

// Accumulator consumes a plain-text delta stream (the server side of the
// network boundary is a Decoder) and builds the running transcript. It relies
// purely on transport end-of-stream for termination; unlike the Decoder it
// never inspects payload content.
//
// An Accumulator is request-scoped: create a fresh one per submission.
type Accumulator struct {
	src        io.Reader
	buf        []byte
	transcript strings.Builder
}

// NewAccumulator returns an Accumulator reading plain-text chunks from src,
// typically the body of the judge's streaming HTTP response.
func NewAccumulator(src io.Reader) *Accumulator {
	return &Accumulator{
		src: src,
		buf: make([]byte, 4096),
	}
}

// Next returns the next chunk of transcript text as it arrived from the
// transport. ok is false at end-of-stream. Reads are strictly sequential.
func (a *Accumulator) Next() (string, bool, error) {
	for {
		n, err := a.src.Read(a.buf)
		if n > 0 {
			chunk := string(a.buf[:n])
			a.transcript.WriteString(chunk)
			// An EOF delivered alongside data surfaces on the next call.
			return chunk, true, nil
		}
		if err == io.EOF {
			return "", false, nil
		}
		if err != nil {
			return "", false, err
		}
	}
}

// Transcript returns the concatenation of all chunks received so far.
func (a *Accumulator) Transcript() string {
	return a.transcript.String()
}

// Winner pattern-matches the accumulated transcript for the winner label.
// Meaningful once Next has reported end-of-stream; calling it earlier is
// allowed and yields a best-effort result over the partial transcript.
func (a *Accumulator) Winner() Winner {
	return ExtractWinner(a.transcript.String())
}
