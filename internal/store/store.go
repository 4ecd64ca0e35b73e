// Package store holds all broker state in a single in-memory aggregate:
// the user directory, the active agent pool, the round-robin cursor, the
// pending quote requests, and the stored responses.
//
// Every exported method is one critical section on the aggregate mutex, so
// compound mutations (assign-then-append on submit, upsert-then-filter on
// respond, directory-delete-then-pool-removal) are atomic with respect to
// concurrent callers. Nothing is persisted; state dies with the process.
package store

import (
	"errors"
	"sync"

	"github.com/quotedesk/quotedesk/internal/model"
)

// Store errors.
var (
	ErrUserExists     = errors.New("user already exists")
	ErrUserNotFound   = errors.New("user not found")
	ErrAdminProtected = errors.New("admin user cannot be deleted")
	ErrUnknownAgent   = errors.New("agent not found in user directory")
)

// Store is the shared state aggregate. Construct with New; the zero value
// is not usable.
type Store struct {
	mu sync.Mutex

	users     map[string]string
	pool      []string
	cursor    uint64
	pending   []*model.QuoteRequest
	responses map[string]model.QuoteResponse
}

// New creates a Store seeded with the admin directory entry.
func New(adminCredential string) *Store {
	return &Store{
		users: map[string]string{
			model.AdminUsername: adminCredential,
		},
		responses: make(map[string]model.QuoteResponse),
	}
}

// Counts returns the current sizes of the directory, the active pool, the
// pending set, and the response store. Used by the readiness probe.
func (s *Store) Counts() (users, pool, pending, responses int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.users), len(s.pool), len(s.pending), len(s.responses)
}
