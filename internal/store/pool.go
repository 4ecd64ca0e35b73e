package store

import "fmt"

// SetActivePool replaces the active agent pool wholesale. Every member must
// exist in the directory at call time; on failure the previous pool is left
// unchanged. Order and duplicates are preserved — a repeated member receives
// proportionally more assignments.
//
// Membership is not re-validated afterwards, and the rotation cursor is
// deliberately not reset: it counts positions across pool generations.
func (s *Store) SetActivePool(usernames []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, member := range usernames {
		if _, exists := s.users[member]; !exists {
			return fmt.Errorf("%w: %q", ErrUnknownAgent, member)
		}
	}
	s.pool = append([]string(nil), usernames...)
	return nil
}

// ActivePool returns a snapshot of the pool in the order it was last set.
func (s *Store) ActivePool() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append(make([]string, 0, len(s.pool)), s.pool...)
}
