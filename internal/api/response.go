// Package api defines the response envelope shared by every operation.
package api

// Response is the uniform operation envelope. Every operation completes with
// one of these; failures are reported through Success/Message rather than
// transport-level errors. Token carries a refreshed session token on success.
type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
	Token   string `json:"token,omitempty"`
}
