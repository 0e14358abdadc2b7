package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestObserveCallExposesSeries(t *testing.T) {
	t.Parallel()

	m := New()
	m.ObserveCall("baidu", "ok", 3, 20*time.Millisecond)
	m.ObserveCall("baidu", "provider_rejected", 1, 5*time.Millisecond)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	body := rec.Body.String()
	for _, want := range []string{
		`fusiontranslate_provider_requests_total{outcome="ok",provider="baidu"} 1`,
		`fusiontranslate_provider_requests_total{outcome="provider_rejected",provider="baidu"} 1`,
		`fusiontranslate_provider_segments_total{provider="baidu"} 4`,
		`fusiontranslate_provider_request_duration_seconds_count{provider="baidu"} 2`,
	} {
		if !strings.Contains(body, want) {
			t.Fatalf("metrics output missing %q:\n%s", want, body)
		}
	}
}

func TestNilMetricsIsNoop(t *testing.T) {
	t.Parallel()

	var m *Metrics
	m.ObserveCall("youdao", "ok", 1, time.Millisecond)
	if m.Registry() != nil {
		t.Fatalf("expected nil registry")
	}

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 from nil metrics handler, got %d", rec.Code)
	}
}
