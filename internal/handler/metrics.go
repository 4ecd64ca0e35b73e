package handler

import (
	"fmt"
	"net/http"

	"github.com/quotedesk/quotedesk/internal/metrics"
)

// MetricsHandler exposes in-memory metrics.
type MetricsHandler struct {
	snapshotter metrics.Snapshotter
}

// NewMetricsHandler creates a new MetricsHandler.
func NewMetricsHandler(snapshotter metrics.Snapshotter) *MetricsHandler {
	return &MetricsHandler{snapshotter: snapshotter}
}

// Metrics returns metrics in Prometheus exposition format.
func (h *MetricsHandler) Metrics(w http.ResponseWriter, r *http.Request) {
	if h.snapshotter == nil {
		w.WriteHeader(http.StatusServiceUnavailable)
		return
	}

	snap := h.snapshotter.Snapshot()

	w.Header().Set("Content-Type", "text/plain; version=0.0.4")

	writeMetric(w, "quotedesk_quotes_submitted_total{status=\"assigned\"} %d\n", snap.QuotesSubmittedAssigned)
	writeMetric(w, "quotedesk_quotes_submitted_total{status=\"unassigned\"} %d\n", snap.QuotesSubmittedUnassigned)
	writeMetric(w, "quotedesk_quotes_responded_total %d\n", snap.QuotesResponded)
	writeMetric(w, "quotedesk_pending_cleared_total %d\n", snap.PendingCleared)

	writeMetric(w, "quotedesk_logins_total{status=\"granted\"} %d\n", snap.LoginsGranted)
	writeMetric(w, "quotedesk_logins_total{status=\"denied\"} %d\n", snap.LoginsDenied)
	writeMetric(w, "quotedesk_users_created_total %d\n", snap.UsersCreated)
	writeMetric(w, "quotedesk_users_deleted_total %d\n", snap.UsersDeleted)

	writeMetric(w, "quotedesk_pool_replacements_total %d\n", snap.PoolReplacements)
	writeMetric(w, "quotedesk_active_pool_size %d\n", snap.ActivePoolSize)
}

func writeMetric(w http.ResponseWriter, format string, args ...any) {
	_, _ = fmt.Fprintf(w, format, args...)
}
