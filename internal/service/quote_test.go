package service

import (
	"context"
	"errors"
	"testing"

	"github.com/quotedesk/quotedesk/internal/metrics"
	"github.com/quotedesk/quotedesk/internal/store"
)

func newQuoteService(t *testing.T) (*QuoteService, *store.Store) {
	t.Helper()
	st := store.New("Admin2025.")
	return NewQuoteService(st, metrics.NewNoop()), st
}

func TestSubmit_MissingPlate(t *testing.T) {
	svc, _ := newQuoteService(t)

	_, err := svc.Submit(context.Background(), "")
	if !errors.Is(err, ErrMissingPlate) {
		t.Fatalf("expected ErrMissingPlate, got %v", err)
	}
}

func TestSubmit_RecordShape(t *testing.T) {
	svc, _ := newQuoteService(t)

	q, err := svc.Submit(context.Background(), "ABC123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.ID == "" {
		t.Error("expected generated record ID")
	}
	if q.Plate != "ABC123" {
		t.Errorf("expected plate ABC123, got %q", q.Plate)
	}
	if q.CreatedAt.IsZero() {
		t.Error("expected createdAt to be set")
	}
	if q.Assigned() {
		t.Errorf("expected no assignee with empty pool, got %q", q.AssignedAgent)
	}
}

func TestSubmit_EmptyPoolIsNotAnError(t *testing.T) {
	svc, _ := newQuoteService(t)

	for i := 0; i < 3; i++ {
		if _, err := svc.Submit(context.Background(), "ABC123"); err != nil {
			t.Fatalf("submission %d: unexpected error %v", i, err)
		}
	}
}

func TestListPending_MissingRequester(t *testing.T) {
	svc, _ := newQuoteService(t)

	_, err := svc.ListPending(context.Background(), "")
	if !errors.Is(err, ErrMissingRequester) {
		t.Fatalf("expected ErrMissingRequester, got %v", err)
	}
}

func TestRespond_ValidationErrors(t *testing.T) {
	svc, _ := newQuoteService(t)

	tests := []struct {
		name    string
		plate   string
		amount  float64
		summary string
		wantErr error
	}{
		{"missing plate", "", 100, "summary", ErrIncompleteResponse},
		{"missing summary", "ABC123", 100, "", ErrIncompleteResponse},
		{"missing amount", "ABC123", 0, "summary", ErrIncompleteResponse},
		// A valuation of literally zero is rejected as incomplete data,
		// the same as a missing amount.
		{"zero amount", "ABC123", 0.0, "summary", ErrIncompleteResponse},
		{"valid", "ABC123", 100, "summary", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := svc.Respond(context.Background(), tt.plate, tt.amount, tt.summary)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestRespond_ResolvesPendingAndStores(t *testing.T) {
	svc, st := newQuoteService(t)

	if _, err := svc.Submit(context.Background(), "ABC123"); err != nil {
		t.Fatal(err)
	}
	if err := svc.Respond(context.Background(), "ABC123", 100, "<p>ok</p>"); err != nil {
		t.Fatal(err)
	}

	resp, ok := svc.LookupResponse(context.Background(), "ABC123")
	if !ok {
		t.Fatal("expected stored response")
	}
	if resp.Amount != 100 || resp.Summary != "<p>ok</p>" {
		t.Fatalf("unexpected response: %+v", resp)
	}

	if pending := st.Pending("admin"); len(pending) != 0 {
		t.Fatalf("expected no pending records for ABC123, got %d", len(pending))
	}
}

func TestLookupResponse_Absent(t *testing.T) {
	svc, _ := newQuoteService(t)

	if _, ok := svc.LookupResponse(context.Background(), "NEVER1"); ok {
		t.Fatal("expected absent response")
	}
}

func TestClearPending(t *testing.T) {
	svc, st := newQuoteService(t)

	if _, err := svc.Submit(context.Background(), "ABC123"); err != nil {
		t.Fatal(err)
	}
	if err := svc.Respond(context.Background(), "XYZ999", 50, "s"); err != nil {
		t.Fatal(err)
	}

	svc.ClearPending(context.Background())
	svc.ClearPending(context.Background())

	if pending := st.Pending("admin"); len(pending) != 0 {
		t.Fatalf("expected empty pending set, got %d", len(pending))
	}
	if _, ok := svc.LookupResponse(context.Background(), "XYZ999"); !ok {
		t.Fatal("clear must not remove stored responses")
	}
}

func TestSubmit_MetricsByAssignment(t *testing.T) {
	st := store.New("Admin2025.")
	rec := metrics.NewInMemory()
	svc := NewQuoteService(st, rec)

	if _, err := svc.Submit(context.Background(), "AAA111"); err != nil {
		t.Fatal(err)
	}

	if err := st.CreateUser("agent1", "pw"); err != nil {
		t.Fatal(err)
	}
	if err := st.SetActivePool([]string{"agent1"}); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.Submit(context.Background(), "BBB222"); err != nil {
		t.Fatal(err)
	}

	snap := rec.Snapshot()
	if snap.QuotesSubmittedUnassigned != 1 || snap.QuotesSubmittedAssigned != 1 {
		t.Fatalf("unexpected counters: %+v", snap)
	}
}
