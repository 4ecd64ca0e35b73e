package metrics

import "sync/atomic"

// Snapshot captures current in-memory counters.
type Snapshot struct {
	QuotesSubmittedAssigned   uint64
	QuotesSubmittedUnassigned uint64
	QuotesResponded           uint64
	PendingCleared            uint64
	LoginsGranted             uint64
	LoginsDenied              uint64
	UsersCreated              uint64
	UsersDeleted              uint64
	PoolReplacements          uint64
	ActivePoolSize            int64
}

// InMemoryRecorder stores metrics in memory.
type InMemoryRecorder struct {
	quotesSubmittedAssigned   uint64
	quotesSubmittedUnassigned uint64
	quotesResponded           uint64
	pendingCleared            uint64
	loginsGranted             uint64
	loginsDenied              uint64
	usersCreated              uint64
	usersDeleted              uint64
	poolReplacements          uint64
	activePoolSize            int64
}

// NewInMemory returns a Recorder that stores counters in memory.
func NewInMemory() *InMemoryRecorder {
	return &InMemoryRecorder{}
}

// Snapshot returns a copy of the counters.
func (m *InMemoryRecorder) Snapshot() Snapshot {
	return Snapshot{
		QuotesSubmittedAssigned:   atomic.LoadUint64(&m.quotesSubmittedAssigned),
		QuotesSubmittedUnassigned: atomic.LoadUint64(&m.quotesSubmittedUnassigned),
		QuotesResponded:           atomic.LoadUint64(&m.quotesResponded),
		PendingCleared:            atomic.LoadUint64(&m.pendingCleared),
		LoginsGranted:             atomic.LoadUint64(&m.loginsGranted),
		LoginsDenied:              atomic.LoadUint64(&m.loginsDenied),
		UsersCreated:              atomic.LoadUint64(&m.usersCreated),
		UsersDeleted:              atomic.LoadUint64(&m.usersDeleted),
		PoolReplacements:          atomic.LoadUint64(&m.poolReplacements),
		ActivePoolSize:            atomic.LoadInt64(&m.activePoolSize),
	}
}

// IncQuoteSubmitted increments the submission counter for the given status.
func (m *InMemoryRecorder) IncQuoteSubmitted(status string) {
	if status == "assigned" {
		atomic.AddUint64(&m.quotesSubmittedAssigned, 1)
	} else {
		atomic.AddUint64(&m.quotesSubmittedUnassigned, 1)
	}
}

// IncQuoteResponded increments the response counter.
func (m *InMemoryRecorder) IncQuoteResponded() {
	atomic.AddUint64(&m.quotesResponded, 1)
}

// IncPendingCleared increments the clear-pending counter.
func (m *InMemoryRecorder) IncPendingCleared() {
	atomic.AddUint64(&m.pendingCleared, 1)
}

// IncLoginAttempt increments the login counter for the given status.
func (m *InMemoryRecorder) IncLoginAttempt(status string) {
	if status == "granted" {
		atomic.AddUint64(&m.loginsGranted, 1)
	} else {
		atomic.AddUint64(&m.loginsDenied, 1)
	}
}

// IncUserCreated increments the user created counter.
func (m *InMemoryRecorder) IncUserCreated() {
	atomic.AddUint64(&m.usersCreated, 1)
}

// IncUserDeleted increments the user deleted counter.
func (m *InMemoryRecorder) IncUserDeleted() {
	atomic.AddUint64(&m.usersDeleted, 1)
}

// IncPoolReplaced increments the pool replacement counter.
func (m *InMemoryRecorder) IncPoolReplaced() {
	atomic.AddUint64(&m.poolReplacements, 1)
}

// SetActivePoolSize records the current pool size.
func (m *InMemoryRecorder) SetActivePoolSize(size int64) {
	atomic.StoreInt64(&m.activePoolSize, size)
}
