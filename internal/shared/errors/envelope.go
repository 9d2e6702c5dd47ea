// Package errors provides the JSON envelopes shared by HTTP handlers:
// failures as {error, timestamp} and confirmations as {message, timestamp},
// with timestamps in epoch milliseconds.
package errors

import "time"

// ErrorResponse is the client-visible failure payload.
type ErrorResponse struct {
	Error     string `json:"error"`
	Timestamp int64  `json:"timestamp"`
}

// MessageResponse confirms a successful mutation that returns no entity.
type MessageResponse struct {
	Message   string `json:"message"`
	Timestamp int64  `json:"timestamp"`
}

// NewError builds a failure envelope stamped with the current time.
func NewError(msg string) ErrorResponse {
	return ErrorResponse{Error: msg, Timestamp: time.Now().UnixMilli()}
}

// NewMessage builds a confirmation envelope stamped with the current time.
func NewMessage(msg string) MessageResponse {
	return MessageResponse{Message: msg, Timestamp: time.Now().UnixMilli()}
}
