// Package dto provides Data Transfer Objects for API requests and responses.
package dto

import "github.com/quotedesk/quotedesk/internal/model"

// SubmitQuoteRequest represents the request body for submitting a quote.
type SubmitQuoteRequest struct {
	Plate string `json:"plate"`
}

// SubmitQuoteResponse represents the submission result. AssignedAgent is
// omitted when the active pool was empty at submission time.
type SubmitQuoteResponse struct {
	Status        string `json:"status"`
	AssignedAgent string `json:"assignedAgent,omitempty"`
}

// RespondRequest represents the request body for pricing a plate.
type RespondRequest struct {
	Plate   string  `json:"plate"`
	Amount  float64 `json:"amount"`
	Summary string  `json:"summary"`
}

// QuoteResponseBody represents a stored response in API responses.
type QuoteResponseBody struct {
	Plate   string  `json:"plate"`
	Amount  float64 `json:"amount"`
	Summary string  `json:"summary"`
}

// StatusResponse is the generic success envelope.
type StatusResponse struct {
	Status string `json:"status"`
}

// ErrorResponse represents an API error.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// ToQuoteResponseBody converts a stored response to its API shape.
func ToQuoteResponseBody(resp model.QuoteResponse) QuoteResponseBody {
	return QuoteResponseBody{
		Plate:   resp.Plate,
		Amount:  resp.Amount,
		Summary: resp.Summary,
	}
}
