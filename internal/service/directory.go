package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/quotedesk/quotedesk/internal/metrics"
	"github.com/quotedesk/quotedesk/internal/store"
)

// Directory errors.
var (
	ErrMissingCredentials = errors.New("username and credential are required")
	ErrUserExists         = errors.New("user already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrAdminProtected     = errors.New("admin user cannot be deleted")
	ErrUnknownAgent       = errors.New("agent not found in user directory")
)

// DirectoryService manages the user directory and the active agent pool.
//
// Authentication is a plain case-sensitive string comparison against the
// stored credential. That is the inherited contract of this service: login
// is a boolean check, not an access-control gate, and credentials are not
// hashed. Changing either would change observable behavior for existing
// clients, so both are preserved and documented rather than fixed here.
type DirectoryService struct {
	store   *store.Store
	metrics metrics.Recorder
}

// NewDirectoryService creates a new DirectoryService.
func NewDirectoryService(st *store.Store, recorder metrics.Recorder) *DirectoryService {
	if recorder == nil {
		recorder = metrics.NewNoop()
	}
	return &DirectoryService{
		store:   st,
		metrics: recorder,
	}
}

// CreateUser adds a directory entry. Usernames are unique and immutable;
// there is no credential update path.
func (s *DirectoryService) CreateUser(ctx context.Context, username, credential string) error {
	if username == "" || credential == "" {
		return ErrMissingCredentials
	}

	if err := s.store.CreateUser(username, credential); err != nil {
		if errors.Is(err, store.ErrUserExists) {
			return ErrUserExists
		}
		return fmt.Errorf("create user: %w", err)
	}

	s.metrics.IncUserCreated()
	return nil
}

// Authenticate reports whether the supplied credential matches the stored
// one exactly.
func (s *DirectoryService) Authenticate(ctx context.Context, username, credential string) bool {
	granted := s.store.Authenticate(username, credential)
	if granted {
		s.metrics.IncLoginAttempt("granted")
	} else {
		s.metrics.IncLoginAttempt("denied")
	}
	return granted
}

// Usernames returns every directory entry.
func (s *DirectoryService) Usernames(ctx context.Context) []string {
	return s.store.Usernames()
}

// DeleteUser removes a directory entry. The admin entry is protected. As a
// side effect of the same atomic operation, every occurrence of the
// username is removed from the active pool; requests already assigned to
// the user stay pending with a dangling assignee.
func (s *DirectoryService) DeleteUser(ctx context.Context, username string) error {
	if err := s.store.DeleteUser(username); err != nil {
		switch {
		case errors.Is(err, store.ErrAdminProtected):
			return ErrAdminProtected
		case errors.Is(err, store.ErrUserNotFound):
			return ErrUserNotFound
		}
		return fmt.Errorf("delete user: %w", err)
	}

	s.metrics.IncUserDeleted()
	s.metrics.SetActivePoolSize(int64(len(s.store.ActivePool())))
	return nil
}

// SetActiveAgents replaces the active pool wholesale. Every member must
// exist in the directory; on failure the pool is left unchanged.
func (s *DirectoryService) SetActiveAgents(ctx context.Context, usernames []string) error {
	if err := s.store.SetActivePool(usernames); err != nil {
		if errors.Is(err, store.ErrUnknownAgent) {
			return ErrUnknownAgent
		}
		return fmt.Errorf("set active agents: %w", err)
	}

	s.metrics.IncPoolReplaced()
	s.metrics.SetActivePoolSize(int64(len(usernames)))
	return nil
}

// ActiveAgents returns the current pool snapshot in the order last set.
func (s *DirectoryService) ActiveAgents(ctx context.Context) []string {
	return s.store.ActivePool()
}
