// Package config loads the persistent versus configuration from a TOML file.
// Every field has a default; a missing file or missing fields fall back to
// NewDefaultConfig values. The upstream API key is deliberately NOT part of
// the file — it is read from the environment only.
package config

// Config is the versus configuration stored as config.toml.
// The TOML layout uses sections for logical grouping.
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Upstream UpstreamConfig `toml:"upstream"`
	Image    ImageConfig    `toml:"image"`
	Storage  StorageConfig  `toml:"storage"`
	Client   ClientConfig   `toml:"client"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Listen string `toml:"listen,omitempty"`
}

// UpstreamConfig holds chat-completion provider settings.
type UpstreamConfig struct {
	URL         string  `toml:"url,omitempty"`
	Model       string  `toml:"model,omitempty"`
	MaxTokens   int     `toml:"max_tokens,omitempty"`
	Temperature float64 `toml:"temperature,omitempty"`
}

// ImageConfig holds image-generation settings.
type ImageConfig struct {
	Model string `toml:"model,omitempty"`
	Size  string `toml:"size,omitempty"`
}

// StorageConfig holds fight-history storage settings.
type StorageConfig struct {
	// SQLitePath is the path to the history database.
	// Empty means in-memory history.
	SQLitePath string `toml:"sqlite_path,omitempty"`
}

// ClientConfig holds settings for CLI commands that connect to a running
// versus server (e.g. versus fight). Target is a full URL (scheme + host + port).
type ClientConfig struct {
	Target string `toml:"target,omitempty"`
}
