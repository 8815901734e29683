package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/timscodebase/versus/pkg/llm"
)

// handleImage generates an illustration of the fight's outcome and returns
// its URL as JSON. The winner field must name one of the two opponents.
func (s *Server) handleImage(c *fiber.Ctx) error {
	opponent1, opponent2, issues := validateOpponents(
		c.FormValue("opponent1"),
		c.FormValue("opponent2"),
	)

	winner := c.FormValue("winner")
	var winnerName string
	switch winner {
	case "opponent1":
		winnerName = opponent1
	case "opponent2":
		winnerName = opponent2
	default:
		issues = append(issues, "winner must be opponent1 or opponent2")
	}

	if len(issues) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(ValidationErrors{Errors: issues})
	}

	prompt := fmt.Sprintf(
		"A dramatic illustration of %s standing victorious over %s after an epic battle.",
		winnerName, loserName(winner, opponent1, opponent2),
	)

	reqBody, err := json.Marshal(llm.ImageRequest{
		Model:  s.config.ImageModel,
		Prompt: prompt,
		N:      1,
		Size:   s.config.ImageSize,
	})
	if err != nil {
		s.logger.Error("failed to marshal image request", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(llm.ErrorResponse{Error: "internal error"})
	}

	httpReq, err := http.NewRequestWithContext(c.Context(), http.MethodPost,
		s.config.UpstreamURL+"/images/generations", bytes.NewReader(reqBody))
	if err != nil {
		s.logger.Error("failed to create image request", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(llm.ErrorResponse{Error: "internal error"})
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+s.config.APIKey)

	httpResp, err := s.httpClient.Do(httpReq)
	if err != nil {
		s.logger.Error("image request failed", zap.Error(err))
		return c.Status(fiber.StatusBadGateway).JSON(llm.ErrorResponse{Error: "upstream request failed"})
	}
	defer httpResp.Body.Close()

	if httpResp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, httpResp.Body)
		s.logger.Error("image upstream returned error", zap.Int("status", httpResp.StatusCode))
		c.Status(httpResp.StatusCode)
		return nil
	}

	var imageResp llm.ImageResponse
	if err := json.NewDecoder(httpResp.Body).Decode(&imageResp); err != nil {
		s.logger.Error("failed to decode image response", zap.Error(err))
		return c.Status(fiber.StatusBadGateway).JSON(llm.ErrorResponse{Error: "invalid upstream response"})
	}
	if len(imageResp.Data) == 0 {
		return c.Status(fiber.StatusBadGateway).JSON(llm.ErrorResponse{Error: "upstream returned no images"})
	}

	return c.JSON(fiber.Map{"url": imageResp.Data[0].URL})
}

func loserName(winner, opponent1, opponent2 string) string {
	if winner == "opponent1" {
		return opponent2
	}
	return opponent1
}
