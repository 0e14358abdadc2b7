package translation

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"horse.fit/fusiontranslate/internal/language"
)

const (
	myMemoryEndpoint = "https://api.mymemory.translated.net/get"
	myMemoryReferer  = "https://mymemory.translated.net"
	// MyMemoryInputLimit is the largest accepted query, in bytes.
	MyMemoryInputLimit = 500
)

// MyMemoryTranslator calls the anonymous MyMemory API.
type MyMemoryTranslator struct {
	base
}

func newMyMemoryTranslator(b base) *MyMemoryTranslator {
	return &MyMemoryTranslator{base: b}
}

func (t *MyMemoryTranslator) Translate(ctx context.Context, req Request) (resp *Response, err error) {
	started := time.Now()
	defer func() { t.observe(started, 1, err) }()

	return t.translate(ctx, req.Text, req.Source, req.Target)
}

func (t *MyMemoryTranslator) TranslateBatch(ctx context.Context, req BatchRequest) (resp *BatchResponse, err error) {
	if len(req.Texts) == 0 {
		return emptyBatch(t.kind, req), nil
	}
	started := time.Now()
	defer func() { t.observe(started, len(req.Texts), err) }()

	return emulateBatch(ctx, t.kind, req, t.translate)
}

func (t *MyMemoryTranslator) translate(ctx context.Context, text string, source, target language.Code) (*Response, error) {
	if err := checkInputLimit(t.kind, text, MyMemoryInputLimit); err != nil {
		return nil, err
	}
	from, err := sourceWireCode(t.kind, source)
	if err != nil {
		return nil, err
	}
	to, err := targetWireCode(t.kind, target)
	if err != nil {
		return nil, err
	}

	query := url.Values{}
	query.Set("q", text)
	query.Set("langpair", from+"|"+to)

	started := time.Now()
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, t.endpoint+"?"+query.Encode(), nil)
	if err != nil {
		return nil, transportError(t.kind, fmt.Errorf("build request: %w", err))
	}
	httpReq.Header.Set("Referer", myMemoryReferer)
	httpReq.Header.Set("Accept", "application/json")

	body, err := t.send(httpReq)
	if err != nil {
		return nil, err
	}

	var parsed myMemoryResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, decodeError(t.kind, err)
	}
	if parsed.QuotaFinished {
		return nil, rejectedError(t.kind, "quota", "daily free quota finished")
	}
	if parsed.ResponseStatus != "" && parsed.ResponseStatus != "200" {
		return nil, rejectedError(t.kind, string(parsed.ResponseStatus), parsed.ResponseDetails)
	}
	if parsed.ResponseData.TranslatedText == nil {
		return nil, emptyResultError(t.kind, "translatedText is null")
	}
	detected, err := decodeWireCode(t.kind, parsed.ResponseData.DetectedLanguage)
	if err != nil {
		return nil, err
	}

	return &Response{
		Text:           *parsed.ResponseData.TranslatedText,
		Lang:           target,
		DetectedSource: detected,
		Provider:       t.kind,
		LatencyMs:      time.Since(started).Milliseconds(),
	}, nil
}

type myMemoryResponse struct {
	ResponseData struct {
		TranslatedText   *string `json:"translatedText"`
		DetectedLanguage string  `json:"detectedLanguage"`
	} `json:"responseData"`
	ResponseStatus  wireCode `json:"responseStatus"`
	ResponseDetails string   `json:"responseDetails"`
	QuotaFinished   bool     `json:"quotaFinished"`
}
