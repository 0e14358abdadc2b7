package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"horse.fit/fusiontranslate/internal/language"
	"horse.fit/fusiontranslate/internal/metrics"
	"horse.fit/fusiontranslate/internal/translation"
)

type stubTranslator struct {
	kind      translation.Kind
	err       error
	lastReq   translation.Request
	lastBatch translation.BatchRequest
}

func (s *stubTranslator) Kind() translation.Kind { return s.kind }

func (s *stubTranslator) Local() bool { return false }

func (s *stubTranslator) Translate(_ context.Context, req translation.Request) (*translation.Response, error) {
	s.lastReq = req
	if s.err != nil {
		return nil, s.err
	}
	return &translation.Response{
		Text:           "[" + req.Target.String() + "] " + req.Text,
		Lang:           req.Target,
		DetectedSource: language.English,
		Provider:       s.kind,
		LatencyMs:      3,
	}, nil
}

func (s *stubTranslator) TranslateBatch(_ context.Context, req translation.BatchRequest) (*translation.BatchResponse, error) {
	s.lastBatch = req
	if s.err != nil {
		return nil, s.err
	}
	texts := make([]string, 0, len(req.Texts))
	for _, text := range req.Texts {
		texts = append(texts, strings.ToUpper(text))
	}
	return &translation.BatchResponse{
		Texts:    texts,
		Lang:     req.Target,
		Provider: s.kind,
	}, nil
}

type decodedResponse struct {
	Status  string         `json:"status"`
	Data    map[string]any `json:"data"`
	Message string         `json:"message"`
	Code    int            `json:"code"`
}

func newTestServer(t *testing.T, translators ...translation.Translator) *echo.Echo {
	t.Helper()

	registry := translation.NewRegistry("mymemory")
	for _, tr := range translators {
		if err := registry.Register(tr); err != nil {
			t.Fatalf("register: %v", err)
		}
	}
	detect := func(text string) (language.Code, bool) {
		if strings.Contains(text, "Guten") {
			return language.German, true
		}
		return language.Undetermined, false
	}
	srv := NewServer(registry, metrics.New(), detect, zerolog.Nop(), Options{})
	e, err := srv.Handler()
	if err != nil {
		t.Fatalf("handler: %v", err)
	}
	return e
}

func doRequest(t *testing.T, e *echo.Echo, method, target, body string) (int, decodedResponse) {
	t.Helper()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	var decoded decodedResponse
	if rec.Body.Len() > 0 && strings.HasPrefix(rec.Header().Get(echo.HeaderContentType), echo.MIMEApplicationJSON) {
		if err := json.Unmarshal(rec.Body.Bytes(), &decoded); err != nil {
			t.Fatalf("decode response %q: %v", rec.Body.String(), err)
		}
	}
	return rec.Code, decoded
}

func TestHandleHealth(t *testing.T) {
	t.Parallel()

	e := newTestServer(t)
	status, resp := doRequest(t, e, http.MethodGet, "/healthz", "")
	if status != http.StatusOK || resp.Status != "success" {
		t.Fatalf("expected healthy response, got %d %+v", status, resp)
	}
	if resp.Data["default_provider"] != "mymemory" {
		t.Fatalf("expected default provider, got %v", resp.Data["default_provider"])
	}
}

func TestHandleProviders_ListsAllKinds(t *testing.T) {
	t.Parallel()

	e := newTestServer(t, &stubTranslator{kind: translation.KindBaidu})
	status, resp := doRequest(t, e, http.MethodGet, "/v1/providers", "")
	if status != http.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}
	items, ok := resp.Data["items"].([]any)
	if !ok || len(items) != len(translation.Kinds()) {
		t.Fatalf("expected %d providers, got %v", len(translation.Kinds()), resp.Data["items"])
	}
	first := items[0].(map[string]any)
	if first["name"] != "baidu" || first["configured"] != true {
		t.Fatalf("expected configured baidu first, got %v", first)
	}
}

func TestHandleLanguages(t *testing.T) {
	t.Parallel()

	e := newTestServer(t)
	status, resp := doRequest(t, e, http.MethodGet, "/v1/languages?provider=ali", "")
	if status != http.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}
	if resp.Data["provider"] != "alibaba" {
		t.Fatalf("expected alibaba, got %v", resp.Data["provider"])
	}

	status, resp = doRequest(t, e, http.MethodGet, "/v1/languages?provider=deepl", "")
	if status != http.StatusNotFound || resp.Status != "fail" {
		t.Fatalf("expected 404 fail, got %d %+v", status, resp)
	}
}

func TestHandleTranslate_Single(t *testing.T) {
	t.Parallel()

	stub := &stubTranslator{kind: translation.KindMyMemory}
	e := newTestServer(t, stub)

	status, resp := doRequest(t, e, http.MethodPost, "/v1/translate", `{"text":"hello","target":"fr"}`)
	if status != http.StatusOK {
		t.Fatalf("expected 200, got %d %+v", status, resp)
	}
	if resp.Data["text"] != "[fr] hello" || resp.Data["lang"] != "fr" {
		t.Fatalf("unexpected data: %v", resp.Data)
	}
	if resp.Data["detected_source"] != "en" {
		t.Fatalf("expected provider-reported source, got %v", resp.Data["detected_source"])
	}
	if stub.lastReq.Source != language.Undetermined {
		t.Fatalf("expected auto-detect source, got %s", stub.lastReq.Source)
	}
}

func TestHandleTranslate_BatchWithLocalDetection(t *testing.T) {
	t.Parallel()

	stub := &stubTranslator{kind: translation.KindCaiyun}
	e := newTestServer(t, stub)

	status, resp := doRequest(t, e, http.MethodPost, "/v1/translate",
		`{"provider":"caiyun","texts":["Guten Morgen","Guten Abend"],"target":"en","detect":true}`)
	if status != http.StatusOK {
		t.Fatalf("expected 200, got %d %+v", status, resp)
	}
	texts, ok := resp.Data["texts"].([]any)
	if !ok || len(texts) != 2 || texts[0] != "GUTEN MORGEN" || texts[1] != "GUTEN ABEND" {
		t.Fatalf("unexpected texts: %v", resp.Data["texts"])
	}
	if stub.lastBatch.Source != language.German {
		t.Fatalf("expected locally detected source de, got %s", stub.lastBatch.Source)
	}
	if resp.Data["detected_source"] != "de" {
		t.Fatalf("expected detected_source de, got %v", resp.Data["detected_source"])
	}
}

func TestHandleTranslate_ValidationFailure(t *testing.T) {
	t.Parallel()

	e := newTestServer(t, &stubTranslator{kind: translation.KindMyMemory})
	status, resp := doRequest(t, e, http.MethodPost, "/v1/translate", `{"text":"hello","target":"klingon-xx"}`)
	if status != http.StatusBadRequest || resp.Status != "fail" {
		t.Fatalf("expected 400 fail, got %d %+v", status, resp)
	}
	if _, ok := resp.Data["validation_errors"]; !ok {
		t.Fatalf("expected validation errors, got %v", resp.Data)
	}
}

func TestHandleTranslate_ErrorStatuses(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		err    error
		status int
		jsend  string
	}{
		{
			name:   "unmappable",
			err:    &translation.Error{Class: translation.ErrUnmappableLanguage, Provider: translation.KindMyMemory},
			status: http.StatusBadRequest,
			jsend:  "fail",
		},
		{
			name:   "too large",
			err:    &translation.Error{Class: translation.ErrInputTooLarge, Provider: translation.KindMyMemory, Size: 600, Limit: 500},
			status: http.StatusRequestEntityTooLarge,
			jsend:  "fail",
		},
		{
			name:   "rejected",
			err:    &translation.Error{Class: translation.ErrProviderRejected, Provider: translation.KindMyMemory, Code: "403"},
			status: http.StatusBadGateway,
			jsend:  "error",
		},
		{
			name:   "transport",
			err:    &translation.Error{Class: translation.ErrTransport, Provider: translation.KindMyMemory, Status: 503},
			status: http.StatusBadGateway,
			jsend:  "error",
		},
		{
			name:   "unclassified",
			err:    errors.New("boom"),
			status: http.StatusInternalServerError,
			jsend:  "error",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			e := newTestServer(t, &stubTranslator{kind: translation.KindMyMemory, err: tc.err})
			status, resp := doRequest(t, e, http.MethodPost, "/v1/translate", `{"text":"hello","target":"fr"}`)
			if status != tc.status || resp.Status != tc.jsend {
				t.Fatalf("expected %d %s, got %d %+v", tc.status, tc.jsend, status, resp)
			}
		})
	}
}

func TestHandleTranslate_UnconfiguredProvider(t *testing.T) {
	t.Parallel()

	e := newTestServer(t, &stubTranslator{kind: translation.KindMyMemory})

	status, resp := doRequest(t, e, http.MethodPost, "/v1/translate", `{"provider":"baidu","text":"hello","target":"fr"}`)
	if status != http.StatusServiceUnavailable || resp.Status != "error" {
		t.Fatalf("expected 503 error, got %d %+v", status, resp)
	}

	status, resp = doRequest(t, e, http.MethodPost, "/v1/translate", `{"provider":"deepl","text":"hello","target":"fr"}`)
	if status != http.StatusNotFound || resp.Status != "fail" {
		t.Fatalf("expected 404 fail, got %d %+v", status, resp)
	}
}

func TestMetricsEndpoint(t *testing.T) {
	t.Parallel()

	e := newTestServer(t)
	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 from /metrics, got %d", rec.Code)
	}
}

func TestUnknownRouteIsJSendFail(t *testing.T) {
	t.Parallel()

	e := newTestServer(t)
	status, resp := doRequest(t, e, http.MethodGet, "/v1/nope", "")
	if status != http.StatusNotFound || resp.Status != "fail" {
		t.Fatalf("expected 404 fail, got %d %+v", status, resp)
	}
}
