package server

import (
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/timscodebase/versus/pkg/history"
	"github.com/timscodebase/versus/server/worker"
	"github.com/timscodebase/versus/web"
)

// Server is the versus HTTP server. It owns the upstream HTTP client and the
// async worker pool that records completed fights.
type Server struct {
	config     Config
	driver     history.Driver
	workerPool *worker.Pool
	logger     *zap.Logger
	httpClient *http.Client
	app        *fiber.App
}

// New creates a new Server.
// The driver is injected to handle persistence of completed fights.
func New(config Config, driver history.Driver, logger *zap.Logger) (*Server, error) {
	if config.UpstreamURL == "" {
		return nil, errors.New("upstream URL is required")
	}

	app := fiber.New(fiber.Config{
		// Disable startup message for cleaner logs
		DisableStartupMessage: true,
		Views:                 web.Engine(),
	})

	wp, err := worker.NewPool(&worker.Config{
		Driver: driver,
		Logger: logger,
	})
	if err != nil {
		return nil, err
	}

	s := &Server{
		config:     config,
		driver:     driver,
		workerPool: wp,
		logger:     logger,
		app:        app,
		httpClient: &http.Client{
			// LLM responses can be slow
			Timeout: 5 * time.Minute,
		},
	}

	app.Get("/", s.handleIndex)
	app.Get("/ping", s.handlePing)
	app.Post("/api/fight", s.handleFight)
	app.Post("/api/image", s.handleImage)
	app.Get("/api/fighters/random", s.handleRandomFighters)
	app.Get("/api/fights", s.handleRecentFights)

	return s, nil
}

// Run starts the server on the configured address.
func (s *Server) Run() error {
	s.logger.Info("starting versus server",
		zap.String("listen", s.config.ListenAddr),
		zap.String("upstream", s.config.UpstreamURL),
		zap.String("model", s.config.Model),
	)

	return s.app.Listen(s.config.ListenAddr)
}

// RunWithListener starts the server using the provided listener.
func (s *Server) RunWithListener(listener net.Listener) error {
	s.logger.Info("starting versus server",
		zap.String("listen", listener.Addr().String()),
		zap.String("upstream", s.config.UpstreamURL),
	)

	return s.app.Listener(listener)
}

// Close gracefully shuts down the server and waits for the worker pool to drain.
func (s *Server) Close() error {
	err := s.app.Shutdown()
	s.workerPool.Close()
	return err
}
