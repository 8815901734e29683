package llm

// ErrorResponse is the generic JSON error envelope returned by the server.
type ErrorResponse struct {
	Error string `json:"error"`
}
