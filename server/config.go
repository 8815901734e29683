// Package server provides the versus HTTP server: the fight form, the
// streaming judgment endpoint, image generation, and fight history.
package server

// Config is the server configuration.
type Config struct {
	// ListenAddr is the address to listen on (e.g., ":8080")
	ListenAddr string

	// UpstreamURL is the base URL of the OpenAI-compatible API
	// (e.g., "https://api.openai.com/v1")
	UpstreamURL string

	// APIKey is the bearer credential for the upstream API.
	APIKey string

	// Model is the chat-completion model used for judgments.
	Model string

	// MaxTokens caps the judgment length.
	MaxTokens int

	// Temperature controls judgment variety.
	Temperature float64

	// ImageModel is the image-generation model.
	ImageModel string

	// ImageSize is the requested image dimensions (e.g., "1024x1024").
	ImageSize string
}
