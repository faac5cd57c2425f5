package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestBeginRecordsRequest(t *testing.T) {
	m := New(nil)

	done := m.Begin(http.MethodGet)
	if got := testutil.ToFloat64(m.inFlight); got != 1 {
		t.Errorf("in flight = %v, want 1", got)
	}
	done("/usuarios/:id", http.StatusNotFound)

	if got := testutil.ToFloat64(m.inFlight); got != 0 {
		t.Errorf("in flight = %v, want 0", got)
	}
	if got := testutil.ToFloat64(m.requests.WithLabelValues("GET", "/usuarios/:id", "404")); got != 1 {
		t.Errorf("requests = %v, want 1", got)
	}
}

func TestUnmatchedRoute(t *testing.T) {
	m := New(nil)
	m.Begin(http.MethodPost)("", http.StatusNotFound)

	if got := testutil.ToFloat64(m.requests.WithLabelValues("POST", "unmatched", "404")); got != 1 {
		t.Errorf("requests = %v, want 1", got)
	}
}

func TestHandlerExposesMetrics(t *testing.T) {
	m := New(nil)
	m.Begin(http.MethodGet)("/health", http.StatusOK)

	w := httptest.NewRecorder()
	m.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	body, _ := io.ReadAll(w.Body)
	for _, want := range []string{"microservicio_http_requests_total", "go_goroutines"} {
		if !strings.Contains(string(body), want) {
			t.Errorf("metrics output missing %s", want)
		}
	}
}
