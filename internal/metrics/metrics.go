// Package metrics provides lightweight hooks for instrumentation.
package metrics

// Recorder captures metric events for the application.
// Implementations can expose these to Prometheus, StatsD, etc.
type Recorder interface {
	// Quote lifecycle metrics
	IncQuoteSubmitted(status string) // status: "assigned" or "unassigned"
	IncQuoteResponded()
	IncPendingCleared()

	// Directory metrics
	IncLoginAttempt(status string) // status: "granted" or "denied"
	IncUserCreated()
	IncUserDeleted()

	// Active pool metrics
	IncPoolReplaced()
	SetActivePoolSize(size int64)
}

// Snapshotter exposes a snapshot of current metrics.
type Snapshotter interface {
	Snapshot() Snapshot
}
