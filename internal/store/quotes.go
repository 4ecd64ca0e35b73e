package store

import "github.com/quotedesk/quotedesk/internal/model"

// Submit assigns an agent to the request and appends it to the pending set,
// atomically. Round robin is positional: the cursor picks
// pool[cursor mod len(pool)] and then advances, regardless of which member
// that is. An empty pool leaves the request unassigned and does not advance
// the cursor. Pool mutations never reset the cursor, so a replacement
// mid-stream shifts which member the next submission lands on.
func (s *Store) Submit(q *model.QuoteRequest) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.pool) > 0 {
		q.AssignedAgent = s.pool[s.cursor%uint64(len(s.pool))]
		s.cursor++
	}
	s.pending = append(s.pending, q)
}

// Pending returns the pending records visible to requestingUser: the admin
// sees every record in insertion order, anyone else only the records
// assigned to them.
func (s *Store) Pending(requestingUser string) []*model.QuoteRequest {
	s.mu.Lock()
	defer s.mu.Unlock()

	records := make([]*model.QuoteRequest, 0, len(s.pending))
	for _, q := range s.pending {
		if requestingUser == model.AdminUsername || q.AssignedAgent == requestingUser {
			records = append(records, q)
		}
	}
	return records
}

// Respond stores the response for its plate, overwriting any prior response,
// and removes every pending record carrying that plate. Resolution is by
// plate, not by record: duplicate submissions for one plate all disappear at
// once. A response with no matching pending record is still stored.
func (s *Store) Respond(resp model.QuoteResponse) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.responses[resp.Plate] = resp

	kept := s.pending[:0]
	for _, q := range s.pending {
		if q.Plate != resp.Plate {
			kept = append(kept, q)
		}
	}
	s.pending = kept
}

// Response returns the stored response for a plate. Absence is a normal
// outcome, not an error: a plate that was never submitted, or not yet
// responded to, simply has no entry.
func (s *Store) Response(plate string) (model.QuoteResponse, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	resp, ok := s.responses[plate]
	return resp, ok
}

// ClearPending unconditionally empties the pending set. Stored responses are
// untouched. Idempotent.
func (s *Store) ClearPending() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending = nil
}
