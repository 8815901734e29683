package server

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/timscodebase/versus/pkg/arena"
	"github.com/timscodebase/versus/pkg/history"
	"github.com/timscodebase/versus/pkg/llm"
	"github.com/timscodebase/versus/pkg/utils"
	"github.com/timscodebase/versus/server/worker"
)

// handleFight validates the submitted opponents, asks the upstream model for
// a streamed judgment, and re-emits the de-enveloped text deltas to the
// client as one continuous plain-text body.
func (s *Server) handleFight(c *fiber.Ctx) error {
	opponent1, opponent2, issues := validateOpponents(
		c.FormValue("opponent1"),
		c.FormValue("opponent2"),
	)
	if len(issues) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(ValidationErrors{Errors: issues})
	}

	reqBody, err := json.Marshal(llm.ChatRequest{
		Model:       s.config.Model,
		Messages:    llm.NewUserMessage(arena.Prompt(opponent1, opponent2)),
		MaxTokens:   s.config.MaxTokens,
		Temperature: s.config.Temperature,
		Stream:      true,
	})
	if err != nil {
		s.logger.Error("failed to marshal upstream request", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(llm.ErrorResponse{Error: "internal error"})
	}

	// Use context.Background() instead of c.Context() because fasthttp
	// recycles its RequestCtx after the handler returns, but the streaming
	// goroutine runs on after that and needs the upstream connection to
	// remain open.
	httpReq, err := http.NewRequestWithContext(context.Background(), http.MethodPost,
		s.config.UpstreamURL+"/chat/completions", bytes.NewReader(reqBody))
	if err != nil {
		s.logger.Error("failed to create upstream request", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(llm.ErrorResponse{Error: "internal error"})
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+s.config.APIKey)

	s.logger.Debug("requesting judgment",
		zap.String("opponent1", opponent1),
		zap.String("opponent2", opponent2),
		zap.String("model", s.config.Model),
	)

	httpResp, err := s.httpClient.Do(httpReq)
	if err != nil {
		s.logger.Error("upstream request failed", zap.Error(err))
		return c.Status(fiber.StatusBadGateway).JSON(llm.ErrorResponse{Error: "upstream request failed"})
	}

	if httpResp.StatusCode != http.StatusOK {
		// Surface the upstream status to the caller without a body and
		// without ever entering the decode loop. SendStatus would fill an
		// empty body with the status message, so set the status bare.
		io.Copy(io.Discard, httpResp.Body)
		httpResp.Body.Close()
		s.logger.Error("upstream returned error",
			zap.Int("status", httpResp.StatusCode),
			zap.String("reason", httpResp.Status),
		)
		c.Status(httpResp.StatusCode)
		return nil
	}

	// An empty upstream body needs no special case: the decode loop sees
	// immediate end-of-stream and the client gets 200 with an empty body.

	// With io.Pipe, pw.Write blocks until the reader consumes the data, and
	// the reader is fasthttp's writeBodyChunked which flushes to TCP after
	// every chunk. This gives direct backpressure and true per-delta
	// streaming to the client.
	pr, pw := io.Pipe()
	go s.streamJudgment(httpResp, pw, opponent1, opponent2)

	c.Set(fiber.HeaderContentType, "text/plain; charset=utf-8")

	// Unknown size (-1) triggers chunked transfer encoding in fasthttp.
	c.Context().Response.SetBodyStream(pr, -1)

	return nil
}

// streamJudgment drains the upstream envelope through the Decoder into the
// pipe feeding the client, then records the completed fight asynchronously.
func (s *Server) streamJudgment(httpResp *http.Response, pw *io.PipeWriter, opponent1, opponent2 string) {
	defer httpResp.Body.Close()

	decoder := arena.NewDecoder(httpResp.Body)

	transcript, err := decoder.Drain(pw)
	if err != nil {
		// Malformed payloads are fatal to the stream; no partial recovery.
		s.logger.Error("error decoding upstream stream", zap.Error(err))
		pw.CloseWithError(err)
		return
	}
	winner := arena.ExtractWinner(transcript)
	s.logger.Debug("judgment complete",
		zap.String("winner", string(winner)),
		zap.Int("transcript_len", len(transcript)),
		zap.String("transcript_preview", utils.Truncate(transcript, 120)),
	)

	// Enqueue before closing the pipe so the fight is already queued by the
	// time the client observes end-of-stream.
	s.workerPool.Enqueue(worker.Job{
		Fight: &history.Fight{
			ID:         uuid.NewString(),
			Opponent1:  opponent1,
			Opponent2:  opponent2,
			Winner:     winner,
			Transcript: transcript,
			CreatedAt:  time.Now().UTC(),
		},
	})

	pw.Close()
}
