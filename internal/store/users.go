package store

import (
	"sort"

	"github.com/quotedesk/quotedesk/internal/model"
)

// CreateUser adds a directory entry. Usernames are unique; credentials are
// stored as opaque strings exactly as supplied.
func (s *Store) CreateUser(username, credential string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.users[username]; exists {
		return ErrUserExists
	}
	s.users[username] = credential
	return nil
}

// Authenticate reports whether the username exists and its stored credential
// equals the supplied one exactly. Case-sensitive plain comparison.
func (s *Store) Authenticate(username, credential string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, exists := s.users[username]
	return exists && stored == credential
}

// Usernames returns every directory entry. Order is not significant; sorted
// here so callers get a stable view.
func (s *Store) Usernames() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	names := make([]string, 0, len(s.users))
	for name := range s.users {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// DeleteUser removes a directory entry and every occurrence of the username
// in the active pool, in one critical section. The admin entry is protected.
// Pending requests already assigned to the user are left untouched.
func (s *Store) DeleteUser(username string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if username == model.AdminUsername {
		return ErrAdminProtected
	}
	if _, exists := s.users[username]; !exists {
		return ErrUserNotFound
	}
	delete(s.users, username)

	kept := s.pool[:0]
	for _, member := range s.pool {
		if member != username {
			kept = append(kept, member)
		}
	}
	s.pool = kept
	return nil
}
