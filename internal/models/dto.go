package models

// ErrorResponse is the JSON error body returned by the analysis API.
type ErrorResponse struct {
	Error string `json:"error"`
}
