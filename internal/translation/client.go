package translation

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/rs/zerolog"

	"horse.fit/fusiontranslate/internal/metrics"
)

const (
	maxResponseBytes = 4 << 20
	maxErrorSnippet  = 256
)

// base holds the read-only state every adapter shares.
type base struct {
	kind     Kind
	endpoint string
	client   *http.Client
	logger   zerolog.Logger
	metrics  *metrics.Metrics
	clock    func() time.Time
}

func (b *base) Kind() Kind {
	return b.kind
}

func (b *base) Local() bool {
	return false
}

// send performs one HTTP exchange. Dial errors, cancellation, body read
// errors and non-2xx statuses all surface as ErrTransport.
func (b *base) send(req *http.Request) ([]byte, error) {
	resp, err := b.client.Do(req)
	if err != nil {
		return nil, transportError(b.kind, fmt.Errorf("send request: %w", err))
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, transportError(b.kind, fmt.Errorf("read response: %w", err))
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &Error{
			Class:    ErrTransport,
			Provider: b.kind,
			Status:   resp.StatusCode,
			Message:  errorSnippet(body),
		}
	}
	return body, nil
}

// observe records the outcome of one public call.
func (b *base) observe(started time.Time, segments int, err error) {
	elapsed := time.Since(started)
	outcome := outcomeLabel(err)
	b.metrics.ObserveCall(b.kind.String(), outcome, segments, elapsed)

	event := b.logger.Debug()
	if err != nil {
		event = b.logger.Warn().Err(err)
	}
	event.
		Str("outcome", outcome).
		Int("segments", segments).
		Dur("latency", elapsed).
		Msg("translation call finished")
}

func decodeError(kind Kind, err error) *Error {
	return transportError(kind, fmt.Errorf("decode response: %w", err))
}

func outcomeLabel(err error) string {
	if err == nil {
		return "ok"
	}
	switch ClassOf(err) {
	case ErrTransport:
		return "transport_failure"
	case ErrProviderRejected:
		return "provider_rejected"
	case ErrUnmappableLanguage:
		return "unmappable_language"
	case ErrUndecodableLanguage:
		return "undecodable_language"
	case ErrInputTooLarge:
		return "input_too_large"
	case ErrEmptyResult:
		return "empty_result"
	case ErrSegmentMismatch:
		return "segment_mismatch"
	default:
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return "cancelled"
		}
		return "error"
	}
}

// wireCode decodes provider status codes that arrive either as JSON strings
// or as JSON numbers.
type wireCode string

func (c *wireCode) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		*c = ""
		return nil
	}
	if trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return err
		}
		*c = wireCode(strings.TrimSpace(s))
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(trimmed, &n); err != nil {
		return fmt.Errorf("status code must be a string or number: %w", err)
	}
	*c = wireCode(n.String())
	return nil
}

func errorSnippet(body []byte) string {
	text := strings.TrimSpace(string(body))
	if len(text) <= maxErrorSnippet {
		return text
	}
	cut := maxErrorSnippet
	for cut > 0 && !utf8.RuneStart(text[cut]) {
		cut--
	}
	return text[:cut] + "..."
}
