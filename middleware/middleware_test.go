package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/ncobase/microservicio/ctxutil"
	"github.com/ncobase/microservicio/logging/logger"
	"github.com/ncobase/microservicio/metrics"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newEngine(l *logger.Logger, origins []string) *gin.Engine {
	r := gin.New()
	r.Use(Recovery(l), Trace(), Logger(l), CORS(origins))
	r.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, ctxutil.GetTraceID(c.Request.Context()))
	})
	r.GET("/panic", func(c *gin.Context) {
		panic("boom")
	})
	return r
}

func TestTraceGeneratesAndPropagates(t *testing.T) {
	r := newEngine(logger.New(), nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	id := w.Header().Get(ctxutil.TraceIDHeader)
	if id == "" || w.Body.String() != id {
		t.Errorf("generated id %q, body %q", id, w.Body.String())
	}

	w = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(ctxutil.TraceIDHeader, "abc-123")
	r.ServeHTTP(w, req)
	if w.Header().Get(ctxutil.TraceIDHeader) != "abc-123" || w.Body.String() != "abc-123" {
		t.Errorf("incoming id not kept: %q", w.Header().Get(ctxutil.TraceIDHeader))
	}
}

func TestLoggerWritesRequestLine(t *testing.T) {
	l := logger.New()
	var buf bytes.Buffer
	l.SetOutput(&buf)
	r := newEngine(l, nil)

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/ping", nil))

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("log line %q: %v", buf.String(), err)
	}
	if entry["path"] != "/ping" || entry["method"] != "GET" || entry["status"] != float64(200) {
		t.Errorf("entry = %v", entry)
	}
	if entry["trace_id"] == nil {
		t.Error("trace_id missing from access log")
	}
}

func TestRecoveryReturns500(t *testing.T) {
	l := logger.New()
	l.SetOutput(&bytes.Buffer{})
	r := newEngine(l, nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d", w.Code)
	}
	if strings.Contains(w.Body.String(), "boom") {
		t.Error("panic value leaked to client")
	}
}

func TestCORS(t *testing.T) {
	l := logger.New()
	l.SetOutput(&bytes.Buffer{})

	tests := []struct {
		name    string
		origins []string
		origin  string
		method  string
		status  int
		allowed bool
	}{
		{name: "wildcard echoes origin", origins: []string{"*"}, origin: "http://a.test", method: http.MethodGet, status: 200, allowed: true},
		{name: "listed origin", origins: []string{"http://a.test"}, origin: "http://a.test", method: http.MethodGet, status: 200, allowed: true},
		{name: "unlisted origin", origins: []string{"http://a.test"}, origin: "http://b.test", method: http.MethodGet, status: 200},
		{name: "preflight", origins: []string{"*"}, origin: "http://a.test", method: http.MethodOptions, status: 204, allowed: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newEngine(l, tt.origins)
			req := httptest.NewRequest(tt.method, "/ping", nil)
			req.Header.Set("Origin", tt.origin)
			if tt.method == http.MethodOptions {
				req.Header.Set("Access-Control-Request-Method", "PUT")
				req.Header.Set("Access-Control-Request-Headers", "Content-Type")
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != tt.status {
				t.Errorf("status = %d, want %d", w.Code, tt.status)
			}
			got := w.Header().Get("Access-Control-Allow-Origin")
			if tt.allowed && got != tt.origin {
				t.Errorf("allow-origin = %q", got)
			}
			if !tt.allowed && got != "" {
				t.Errorf("unexpected allow-origin %q", got)
			}
			if tt.allowed && w.Header().Get("Access-Control-Allow-Credentials") != "true" {
				t.Error("credentials not allowed")
			}
		})
	}
}

func TestMetricsUsesRoutePattern(t *testing.T) {
	m := metrics.New(nil)
	r := gin.New()
	r.Use(Metrics(m))
	r.GET("/usuarios/:id", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/usuarios/42", nil))

	w := httptest.NewRecorder()
	m.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	want := `microservicio_http_requests_total{method="GET",route="/usuarios/:id",status="204"} 1`
	if !strings.Contains(w.Body.String(), want) {
		t.Errorf("missing %s in\n%s", want, w.Body.String())
	}
}
