package translation

import (
	"context"
	"strings"

	"horse.fit/fusiontranslate/internal/language"
)

// segmentDelimiter joins batch inputs for providers without native batch
// support. A translation that rewrites or repeats it breaks the split; that
// case surfaces as ErrSegmentMismatch instead of a misaligned result.
const segmentDelimiter = "_._._"

func joinSegments(texts []string) string {
	return strings.Join(texts, segmentDelimiter)
}

func splitSegments(kind Kind, translated string, want int) ([]string, error) {
	parts := strings.Split(translated, segmentDelimiter)
	if len(parts) != want {
		return nil, segmentMismatchError(kind, want, len(parts))
	}
	return parts, nil
}

type singleFunc func(ctx context.Context, text string, source, target language.Code) (*Response, error)

// emulateBatch sends the joined batch as one request and splits the result.
func emulateBatch(ctx context.Context, kind Kind, req BatchRequest, translate singleFunc) (*BatchResponse, error) {
	resp, err := translate(ctx, joinSegments(req.Texts), req.Source, req.Target)
	if err != nil {
		return nil, err
	}
	texts, err := splitSegments(kind, resp.Text, len(req.Texts))
	if err != nil {
		return nil, err
	}
	return &BatchResponse{
		Texts:          texts,
		Lang:           resp.Lang,
		DetectedSource: resp.DetectedSource,
		Provider:       resp.Provider,
		LatencyMs:      resp.LatencyMs,
	}, nil
}

func emptyBatch(kind Kind, req BatchRequest) *BatchResponse {
	return &BatchResponse{Texts: []string{}, Lang: req.Target, Provider: kind}
}

// checkInputLimit enforces a provider's byte limit before any request is built.
func checkInputLimit(kind Kind, text string, limit int) error {
	if limit <= 0 || len(text) <= limit {
		return nil
	}
	return &Error{Class: ErrInputTooLarge, Provider: kind, Size: len(text), Limit: limit}
}

// singleFromBatch adapts a batch response carrying exactly one segment.
func singleFromBatch(kind Kind, resp *BatchResponse) (*Response, error) {
	if len(resp.Texts) != 1 {
		return nil, segmentMismatchError(kind, 1, len(resp.Texts))
	}
	return &Response{
		Text:           resp.Texts[0],
		Lang:           resp.Lang,
		DetectedSource: resp.DetectedSource,
		Provider:       resp.Provider,
		LatencyMs:      resp.LatencyMs,
	}, nil
}
