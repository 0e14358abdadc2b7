package translation

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"horse.fit/fusiontranslate/internal/language"
)

const caiyunEndpoint = "https://api.interpreter.caiyunai.com/v1/translator"

// CaiyunTranslator calls the Caiyun interpreter API. It batches natively:
// every text is one element of the source array.
type CaiyunTranslator struct {
	base
	token     string
	requestID string
}

func newCaiyunTranslator(b base, creds Credentials) *CaiyunTranslator {
	requestID := strings.TrimSpace(creds.ID)
	if requestID == "" {
		requestID = DefaultCaiyunRequestID
	}
	return &CaiyunTranslator{
		base:      b,
		token:     strings.TrimSpace(creds.Secret),
		requestID: requestID,
	}
}

func (t *CaiyunTranslator) Translate(ctx context.Context, req Request) (resp *Response, err error) {
	started := time.Now()
	defer func() { t.observe(started, 1, err) }()

	batch, err := t.translateBatch(ctx, BatchRequest{
		Texts:  []string{req.Text},
		Source: req.Source,
		Target: req.Target,
	})
	if err != nil {
		return nil, err
	}
	return singleFromBatch(t.kind, batch)
}

func (t *CaiyunTranslator) TranslateBatch(ctx context.Context, req BatchRequest) (resp *BatchResponse, err error) {
	if len(req.Texts) == 0 {
		return emptyBatch(t.kind, req), nil
	}
	started := time.Now()
	defer func() { t.observe(started, len(req.Texts), err) }()

	return t.translateBatch(ctx, req)
}

func (t *CaiyunTranslator) translateBatch(ctx context.Context, req BatchRequest) (*BatchResponse, error) {
	from, err := sourceWireCode(t.kind, req.Source)
	if err != nil {
		return nil, err
	}
	to, err := targetWireCode(t.kind, req.Target)
	if err != nil {
		return nil, err
	}

	payload := caiyunRequest{
		Source:    req.Texts,
		TransType: from + "2" + to,
		RequestID: t.requestID,
	}
	if req.Source == language.Undetermined {
		detect := true
		payload.Detect = &detect
	}
	encoded, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encode caiyun request: %w", err)
	}

	started := time.Now()
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, t.endpoint, bytes.NewReader(encoded))
	if err != nil {
		return nil, transportError(t.kind, fmt.Errorf("build request: %w", err))
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("X-Authorization", "token "+t.token)

	body, err := t.send(httpReq)
	if err != nil {
		return nil, err
	}

	var parsed caiyunResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, decodeError(t.kind, err)
	}
	if parsed.RC != "" && parsed.RC != "0" {
		return nil, rejectedError(t.kind, string(parsed.RC), strings.TrimSpace(parsed.Message))
	}
	if parsed.Target == nil {
		return nil, emptyResultError(t.kind, "target is null")
	}
	if len(parsed.Target) != len(req.Texts) {
		return nil, segmentMismatchError(t.kind, len(req.Texts), len(parsed.Target))
	}

	return &BatchResponse{
		Texts:     parsed.Target,
		Lang:      req.Target,
		Provider:  t.kind,
		LatencyMs: time.Since(started).Milliseconds(),
	}, nil
}

type caiyunRequest struct {
	Source    []string `json:"source"`
	TransType string   `json:"trans_type"`
	RequestID string   `json:"request_id"`
	Detect    *bool    `json:"detect,omitempty"`
}

type caiyunResponse struct {
	Target  []string `json:"target"`
	RC      wireCode `json:"rc"`
	Message string   `json:"message"`
}
