package translation

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

var fixedNow = time.Date(2024, time.March, 9, 12, 30, 0, 0, time.UTC)

func fixedClock() time.Time {
	return fixedNow
}

// fillReader yields the same byte forever. It keeps salts and nonces
// deterministic in tests.
type fillReader byte

func (r fillReader) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = byte(r)
	}
	return len(p), nil
}

// stubProvider is an httptest server that records every request it serves.
type stubProvider struct {
	server *httptest.Server
	hits   atomic.Int32

	mu       sync.Mutex
	requests []recordedRequest
}

type recordedRequest struct {
	Method string
	Header http.Header
	Query  url.Values
	Form   url.Values
	Body   string
}

func newStubProvider(t *testing.T, status int, body string) *stubProvider {
	t.Helper()

	stub := &stubProvider{}
	stub.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		stub.hits.Add(1)

		raw, _ := io.ReadAll(r.Body)
		rec := recordedRequest{
			Method: r.Method,
			Header: r.Header.Clone(),
			Query:  r.URL.Query(),
			Body:   string(raw),
		}
		if r.Header.Get("Content-Type") == "application/x-www-form-urlencoded" {
			rec.Form, _ = url.ParseQuery(string(raw))
		}
		stub.mu.Lock()
		stub.requests = append(stub.requests, rec)
		stub.mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(stub.server.Close)
	return stub
}

func (s *stubProvider) last(t *testing.T) recordedRequest {
	t.Helper()
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.requests) == 0 {
		t.Fatalf("expected at least one request")
	}
	return s.requests[len(s.requests)-1]
}

func newStubbedTranslator(t *testing.T, kind Kind, creds Credentials, stub *stubProvider) Translator {
	t.Helper()

	translator, err := New(kind, creds,
		WithEndpoint(stub.server.URL),
		WithHTTPClient(stub.server.Client()),
		WithRandom(fillReader(0x5a)),
		WithClock(fixedClock),
	)
	if err != nil {
		t.Fatalf("new %s translator: %v", kind, err)
	}
	return translator
}

func credentialsFor(kind Kind) Credentials {
	switch kind {
	case KindBaidu:
		return Credentials{ID: "20240309000000001", Secret: "baidu-secret-key"}
	case KindYoudao:
		return Credentials{ID: "youdao-app-key", Secret: "youdao-app-secret"}
	case KindCaiyun:
		return Credentials{Secret: "caiyun-token"}
	default:
		return Credentials{}
	}
}
