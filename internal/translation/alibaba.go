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
	alibabaEndpoint = "https://translate.alibaba.com/api/translate/text"
	// AlibabaInputLimit is the largest accepted query, in bytes.
	AlibabaInputLimit = 500
)

// AlibabaTranslator calls the public Alibaba web translation endpoint with a
// query-string GET. No credentials are needed.
type AlibabaTranslator struct {
	base
}

func newAlibabaTranslator(b base) *AlibabaTranslator {
	return &AlibabaTranslator{base: b}
}

func (t *AlibabaTranslator) Translate(ctx context.Context, req Request) (resp *Response, err error) {
	started := time.Now()
	defer func() { t.observe(started, 1, err) }()

	return t.translate(ctx, req.Text, req.Source, req.Target)
}

// TranslateBatch joins texts with a delimiter, so the input limit applies to
// the joined text.
func (t *AlibabaTranslator) TranslateBatch(ctx context.Context, req BatchRequest) (resp *BatchResponse, err error) {
	if len(req.Texts) == 0 {
		return emptyBatch(t.kind, req), nil
	}
	started := time.Now()
	defer func() { t.observe(started, len(req.Texts), err) }()

	return emulateBatch(ctx, t.kind, req, t.translate)
}

func (t *AlibabaTranslator) translate(ctx context.Context, text string, source, target language.Code) (*Response, error) {
	if err := checkInputLimit(t.kind, text, AlibabaInputLimit); err != nil {
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
	query.Set("domain", "general")
	query.Set("query", text)
	query.Set("srcLang", from)
	query.Set("tgtLang", to)

	started := time.Now()
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, t.endpoint+"?"+query.Encode(), nil)
	if err != nil {
		return nil, transportError(t.kind, fmt.Errorf("build request: %w", err))
	}
	httpReq.Header.Set("Accept", "application/json")

	body, err := t.send(httpReq)
	if err != nil {
		return nil, err
	}

	var parsed alibabaResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, decodeError(t.kind, err)
	}
	if parsed.Data.TranslateText == nil {
		return nil, emptyResultError(t.kind, "translateText is null")
	}
	detected, err := decodeWireCode(t.kind, parsed.Data.DetectLanguage)
	if err != nil {
		return nil, err
	}

	return &Response{
		Text:           *parsed.Data.TranslateText,
		Lang:           target,
		DetectedSource: detected,
		Provider:       t.kind,
		LatencyMs:      time.Since(started).Milliseconds(),
	}, nil
}

type alibabaResponse struct {
	Data struct {
		TranslateText  *string `json:"translateText"`
		DetectLanguage string  `json:"detectLanguage"`
	} `json:"data"`
}
