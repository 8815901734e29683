package server

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/timscodebase/versus/pkg/fighters"
	"github.com/timscodebase/versus/pkg/llm"
)

// handleIndex renders the fight form pre-filled with a random matchup.
func (s *Server) handleIndex(c *fiber.Ctx) error {
	opponent1, opponent2 := fighters.RandomPair()
	return c.Render("index", fiber.Map{
		"Opponent1": opponent1,
		"Opponent2": opponent2,
	})
}

func (s *Server) handlePing(c *fiber.Ctx) error {
	return c.SendString("pong")
}

// handleRandomFighters returns a random pair of distinct roster fighters.
func (s *Server) handleRandomFighters(c *fiber.Ctx) error {
	opponent1, opponent2 := fighters.RandomPair()
	return c.JSON(fiber.Map{
		"opponent1": opponent1,
		"opponent2": opponent2,
	})
}

// handleRecentFights returns the most recent recorded fights, newest first.
// An optional ?limit= query parameter caps the count (default 20, max 100).
func (s *Server) handleRecentFights(c *fiber.Ctx) error {
	limit := 20
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			return c.Status(fiber.StatusBadRequest).JSON(ValidationErrors{
				Errors: []string{"limit must be a positive integer"},
			})
		}
		limit = parsed
	}
	if limit > 100 {
		limit = 100
	}

	fights, err := s.driver.Recent(c.Context(), limit)
	if err != nil {
		s.logger.Error("failed to list fights", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(llm.ErrorResponse{Error: "internal error"})
	}

	return c.JSON(fights)
}
