package llm

// ImageRequest is the request body for the upstream image-generation endpoint.
type ImageRequest struct {
	Model  string `json:"model,omitempty"`
	Prompt string `json:"prompt"`
	N      int    `json:"n,omitempty"`
	Size   string `json:"size,omitempty"`
}

// ImageResponse is the upstream image-generation response.
type ImageResponse struct {
	Created int64   `json:"created,omitempty"`
	Data    []Image `json:"data"`
}

// Image is a single generated image entry.
type Image struct {
	URL string `json:"url"`
}
