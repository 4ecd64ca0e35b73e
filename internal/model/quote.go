// Package model defines domain entities for the application.
package model

import "time"

// QuoteRequest is a submitted valuation request awaiting an agent response.
// Plates are not unique: several pending requests may carry the same plate,
// and all of them are resolved together when a response for that plate is
// recorded.
type QuoteRequest struct {
	ID            string    `json:"id"`
	Plate         string    `json:"plate"`
	AssignedAgent string    `json:"assignedAgent,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
}

// Assigned reports whether an agent was available at submission time.
func (q *QuoteRequest) Assigned() bool {
	return q.AssignedAgent != ""
}

// QuoteResponse is the priced result stored for a plate. One response per
// plate, last write wins. Summary is opaque rich content, stored and
// returned verbatim.
type QuoteResponse struct {
	Plate   string  `json:"plate"`
	Amount  float64 `json:"amount"`
	Summary string  `json:"summary"`
}
