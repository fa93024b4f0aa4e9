package dto

import "time"

// ErrorResponse is the JSON error envelope returned by every failing
// endpoint. Handlers build it through NewErrorResponse so the timestamp
// and detail formatting stay consistent.
type ErrorResponse struct {
	Message      string    `json:"message" example:"invalid command"`
	ErrorDetails string    `json:"error,omitempty" example:"cannot find an instrument symbol in the command"`
	Timestamp    time.Time `json:"timestamp"`
}

// Error implements the error interface so an ErrorResponse can travel
// through error-typed plumbing when needed.
func (e ErrorResponse) Error() string {
	if e.ErrorDetails != "" {
		return e.Message + ": " + e.ErrorDetails
	}
	return e.Message
}

// NewErrorResponse builds an ErrorResponse from a public message and an
// optional underlying error.
func NewErrorResponse(message string, err error) ErrorResponse {
	resp := ErrorResponse{
		Message:   message,
		Timestamp: time.Now(),
	}
	if err != nil {
		resp.ErrorDetails = err.Error()
	}
	return resp
}
