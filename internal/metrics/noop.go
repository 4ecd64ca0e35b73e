package metrics

// NoopRecorder implements Recorder with no-op methods.
type NoopRecorder struct{}

// NewNoop returns a Recorder that discards all metrics.
func NewNoop() Recorder {
	return &NoopRecorder{}
}

// IncQuoteSubmitted is a no-op.
func (n *NoopRecorder) IncQuoteSubmitted(status string) {}

// IncQuoteResponded is a no-op.
func (n *NoopRecorder) IncQuoteResponded() {}

// IncPendingCleared is a no-op.
func (n *NoopRecorder) IncPendingCleared() {}

// IncLoginAttempt is a no-op.
func (n *NoopRecorder) IncLoginAttempt(status string) {}

// IncUserCreated is a no-op.
func (n *NoopRecorder) IncUserCreated() {}

// IncUserDeleted is a no-op.
func (n *NoopRecorder) IncUserDeleted() {}

// IncPoolReplaced is a no-op.
func (n *NoopRecorder) IncPoolReplaced() {}

// SetActivePoolSize is a no-op.
func (n *NoopRecorder) SetActivePoolSize(size int64) {}
