package handler

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/quotedesk/quotedesk/internal/metrics"
	"github.com/quotedesk/quotedesk/internal/service"
	"github.com/quotedesk/quotedesk/internal/store"
)

// testAPI wires the full handler surface onto a chi router, mirroring the
// route layout of cmd/api.
type testAPI struct {
	mux   *chi.Mux
	store *store.Store
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()

	st := store.New("Admin2025.")
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	recorder := metrics.NewInMemory()

	quoteHandler := NewQuoteHandler(service.NewQuoteService(st, recorder), logger)
	userHandler := NewUserHandler(service.NewDirectoryService(st, recorder), logger)
	agentHandler := NewAgentHandler(service.NewDirectoryService(st, recorder), logger)
	healthHandler := NewHealthHandler(st)
	metricsHandler := NewMetricsHandler(recorder)
	h := New()

	r := chi.NewRouter()
	r.Get("/healthz", healthHandler.Healthz)
	r.Get("/readyz", healthHandler.Readyz)
	r.Get("/metrics", metricsHandler.Metrics)
	r.Get("/", h.Hello)

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/quotes", func(r chi.Router) {
			r.Post("/", quoteHandler.Submit)
			r.Get("/pending", quoteHandler.ListPending)
			r.Post("/respond", quoteHandler.Respond)
			r.Get("/response/{plate}", quoteHandler.PollResponse)
			r.Post("/clear", quoteHandler.Clear)
		})

		r.Post("/login", userHandler.Login)

		r.Route("/users", func(r chi.Router) {
			r.Post("/", userHandler.Create)
			r.Get("/", userHandler.List)
			r.Delete("/{username}", userHandler.Delete)
		})

		r.Route("/agents", func(r chi.Router) {
			r.Put("/active", agentHandler.SetActive)
			r.Get("/active", agentHandler.GetActive)
		})
	})

	r.NotFound(h.NotFound)
	r.MethodNotAllowed(h.MethodNotAllowed)

	return &testAPI{mux: r, store: st}
}

// do executes a request against the test router. A non-nil body is encoded
// as JSON; a raw string body is sent verbatim.
func (api *testAPI) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		buf := &bytes.Buffer{}
		if err := json.NewEncoder(buf).Encode(b); err != nil {
			t.Fatalf("encode request body: %v", err)
		}
		reader = buf
	}

	req := httptest.NewRequest(method, path, reader)
	if reader != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	rec := httptest.NewRecorder()
	api.mux.ServeHTTP(rec, req)
	return rec
}

// decode unmarshals a JSON response body into out.
func decode(t *testing.T, rec *httptest.ResponseRecorder, out any) {
	t.Helper()
	if err := json.NewDecoder(rec.Body).Decode(out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
}

// seedAgents creates users and installs them as the active pool.
func (api *testAPI) seedAgents(t *testing.T, usernames ...string) {
	t.Helper()
	for _, username := range usernames {
		rec := api.do(t, http.MethodPost, "/api/v1/users", map[string]string{
			"username":   username,
			"credential": "secret-" + username,
		})
		if rec.Code != http.StatusOK {
			t.Fatalf("seed user %q: status %d", username, rec.Code)
		}
	}
	rec := api.do(t, http.MethodPut, "/api/v1/agents/active", map[string][]string{
		"agents": usernames,
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("seed pool: status %d", rec.Code)
	}
}
