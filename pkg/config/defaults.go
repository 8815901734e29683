package config

const (
	defaultListen      = ":8080"
	defaultUpstream    = "https://api.openai.com/v1"
	defaultModel       = "gpt-4o-mini"
	defaultMaxTokens   = 512
	defaultTemperature = 0.9

	defaultImageModel = "dall-e-3"
	defaultImageSize  = "1024x1024"

	defaultClientTarget = "http://localhost:8080"
)

// NewDefaultConfig returns a Config with sane defaults for all fields.
// This is the single source of truth for default values.
func NewDefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Listen: defaultListen,
		},
		Upstream: UpstreamConfig{
			URL:         defaultUpstream,
			Model:       defaultModel,
			MaxTokens:   defaultMaxTokens,
			Temperature: defaultTemperature,
		},
		Image: ImageConfig{
			Model: defaultImageModel,
			Size:  defaultImageSize,
		},
		Client: ClientConfig{
			Target: defaultClientTarget,
		},
	}
}
