// Package service provides business logic for the application.
package service

import (
	"context"
	"errors"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/quotedesk/quotedesk/internal/metrics"
	"github.com/quotedesk/quotedesk/internal/model"
	"github.com/quotedesk/quotedesk/internal/store"
)

// Service errors.
var (
	ErrMissingPlate       = errors.New("plate is required")
	ErrMissingRequester   = errors.New("requesting user is required")
	ErrIncompleteResponse = errors.New("plate, amount and summary are required")
)

// QuoteService handles the pending/resolved lifecycle of quote requests.
type QuoteService struct {
	store   *store.Store
	metrics metrics.Recorder
}

// NewQuoteService creates a new QuoteService.
func NewQuoteService(st *store.Store, recorder metrics.Recorder) *QuoteService {
	if recorder == nil {
		recorder = metrics.NewNoop()
	}
	return &QuoteService{
		store:   st,
		metrics: recorder,
	}
}

// Submit records a new quote request and assigns it to the next agent in
// the rotation. An empty active pool is a normal case: the request is
// recorded unassigned and no error is returned.
func (s *QuoteService) Submit(ctx context.Context, plate string) (*model.QuoteRequest, error) {
	if plate == "" {
		return nil, ErrMissingPlate
	}

	q := &model.QuoteRequest{
		ID:        ulid.Make().String(),
		Plate:     plate,
		CreatedAt: time.Now().UTC(),
	}
	s.store.Submit(q)

	if q.Assigned() {
		s.metrics.IncQuoteSubmitted("assigned")
	} else {
		s.metrics.IncQuoteSubmitted("unassigned")
	}

	return q, nil
}

// ListPending returns the pending records visible to requestingUser. The
// admin sees everything; other callers see only their own assignments.
func (s *QuoteService) ListPending(ctx context.Context, requestingUser string) ([]*model.QuoteRequest, error) {
	if requestingUser == "" {
		return nil, ErrMissingRequester
	}
	return s.store.Pending(requestingUser), nil
}

// Respond stores the priced result for a plate and resolves every pending
// record carrying that plate. A zero amount is rejected along with missing
// fields: the service treats any empty value as incomplete data, so a
// valuation of literally zero cannot be recorded.
func (s *QuoteService) Respond(ctx context.Context, plate string, amount float64, summary string) error {
	if plate == "" || amount == 0 || summary == "" {
		return ErrIncompleteResponse
	}

	s.store.Respond(model.QuoteResponse{
		Plate:   plate,
		Amount:  amount,
		Summary: summary,
	})
	s.metrics.IncQuoteResponded()
	return nil
}

// LookupResponse returns the stored response for a plate. The second return
// is false when no response exists, which is a normal outcome.
func (s *QuoteService) LookupResponse(ctx context.Context, plate string) (model.QuoteResponse, bool) {
	return s.store.Response(plate)
}

// ClearPending empties the pending set. Stored responses are untouched.
func (s *QuoteService) ClearPending(ctx context.Context) {
	s.store.ClearPending()
	s.metrics.IncPendingCleared()
}
