// Package servecmder provides the versus server command.
package servecmder

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/timscodebase/versus/pkg/config"
	"github.com/timscodebase/versus/pkg/history"
	"github.com/timscodebase/versus/pkg/history/inmemory"
	"github.com/timscodebase/versus/pkg/history/sqlite"
	"github.com/timscodebase/versus/pkg/logger"
	"github.com/timscodebase/versus/server"
)

type serveCommander struct {
	listen      string
	upstream    string
	model       string
	maxTokens   int
	temperature float64
	imageModel  string
	imageSize   string
	sqlitePath  string
	debug       bool

	logger *zap.Logger
}

const serveLongDesc string = `Run the versus HTTP server.

The server serves the fight form, streams judgments from the configured
OpenAI-compatible upstream, and records completed fights.

The upstream API key is read from the OPENAI_API_KEY environment variable.`

const serveShortDesc string = "Run the versus server"

func NewServeCmd() *cobra.Command {
	cmder := &serveCommander{}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: serveShortDesc,
		Long:  serveLongDesc,
		PreRunE: func(cmd *cobra.Command, _ []string) error {
			configPath, _ := cmd.Flags().GetString("config")
			cfg, err := config.Load(configPath)
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}

			if !cmd.Flags().Changed("listen") {
				cmder.listen = cfg.Server.Listen
			}
			if !cmd.Flags().Changed("upstream") {
				cmder.upstream = cfg.Upstream.URL
			}
			if !cmd.Flags().Changed("model") {
				cmder.model = cfg.Upstream.Model
			}
			if !cmd.Flags().Changed("max-tokens") {
				cmder.maxTokens = cfg.Upstream.MaxTokens
			}
			if !cmd.Flags().Changed("temperature") {
				cmder.temperature = cfg.Upstream.Temperature
			}
			if !cmd.Flags().Changed("image-model") {
				cmder.imageModel = cfg.Image.Model
			}
			if !cmd.Flags().Changed("image-size") {
				cmder.imageSize = cfg.Image.Size
			}
			if !cmd.Flags().Changed("sqlite") {
				cmder.sqlitePath = cfg.Storage.SQLitePath
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			var err error
			cmder.debug, err = cmd.Flags().GetBool("debug")
			if err != nil {
				return fmt.Errorf("could not get debug flag: %w", err)
			}

			return cmder.run()
		},
	}

	defaults := config.NewDefaultConfig()
	cmd.Flags().StringVarP(&cmder.listen, "listen", "l", defaults.Server.Listen, "Address for the server to listen on")
	cmd.Flags().StringVarP(&cmder.upstream, "upstream", "u", defaults.Upstream.URL, "OpenAI-compatible upstream base URL")
	cmd.Flags().StringVarP(&cmder.model, "model", "m", defaults.Upstream.Model, "Chat-completion model for judgments")
	cmd.Flags().IntVar(&cmder.maxTokens, "max-tokens", defaults.Upstream.MaxTokens, "Maximum judgment length in tokens")
	cmd.Flags().Float64Var(&cmder.temperature, "temperature", defaults.Upstream.Temperature, "Judgment sampling temperature")
	cmd.Flags().StringVar(&cmder.imageModel, "image-model", defaults.Image.Model, "Image-generation model")
	cmd.Flags().StringVar(&cmder.imageSize, "image-size", defaults.Image.Size, "Generated image dimensions")
	cmd.Flags().StringVarP(&cmder.sqlitePath, "sqlite", "s", "", "Path to SQLite fight history database (default: in-memory)")

	return cmd
}

func (c *serveCommander) run() error {
	c.logger = logger.NewLogger(c.debug)
	defer func() { _ = c.logger.Sync() }()

	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		c.logger.Warn("OPENAI_API_KEY is not set; upstream requests will be unauthenticated")
	}

	driver, err := c.newHistoryDriver()
	if err != nil {
		return err
	}
	defer driver.Close()

	s, err := server.New(
		server.Config{
			ListenAddr:  c.listen,
			UpstreamURL: c.upstream,
			APIKey:      apiKey,
			Model:       c.model,
			MaxTokens:   c.maxTokens,
			Temperature: c.temperature,
			ImageModel:  c.imageModel,
			ImageSize:   c.imageSize,
		},
		driver,
		c.logger,
	)
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- s.Run()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-sigCh:
		c.logger.Info("shutting down", zap.String("signal", sig.String()))
		return s.Close()
	}
}

func (c *serveCommander) newHistoryDriver() (history.Driver, error) {
	if c.sqlitePath != "" {
		driver, err := sqlite.NewDriver(c.sqlitePath)
		if err != nil {
			return nil, fmt.Errorf("creating sqlite history driver: %w", err)
		}
		c.logger.Info("using sqlite fight history", zap.String("path", c.sqlitePath))
		return driver, nil
	}

	c.logger.Info("using in-memory fight history")
	return inmemory.NewDriver(), nil
}
