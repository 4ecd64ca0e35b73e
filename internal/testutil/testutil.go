// Package testutil provides shared helpers for tests.
package testutil

import (
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/quotedesk/quotedesk/internal/store"
)

// AdminCredential is the seed credential used across tests.
const AdminCredential = "Admin2025."

// RequireEnv returns an environment variable or skips the test if missing.
func RequireEnv(t testing.TB, key string) string {
	t.Helper()
	value := os.Getenv(key)
	if value == "" {
		t.Skipf("%s not set", key)
	}
	return value
}

// NewStore creates a Store seeded with the admin entry.
func NewStore(t testing.TB) *store.Store {
	t.Helper()
	return store.New(AdminCredential)
}

// SeedAgents creates the given users in the directory and installs them as
// the active pool, in order.
func SeedAgents(t testing.TB, st *store.Store, usernames ...string) {
	t.Helper()
	for _, username := range usernames {
		if err := st.CreateUser(username, "secret-"+username); err != nil {
			t.Fatalf("seed user %q: %v", username, err)
		}
	}
	if err := st.SetActivePool(usernames); err != nil {
		t.Fatalf("seed pool: %v", err)
	}
}

// UniquePlate generates a unique plate identifier for tests.
func UniquePlate(prefix string) string {
	return fmt.Sprintf("%s-%d", prefix, time.Now().UnixNano())
}
