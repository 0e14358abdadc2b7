package translation

import (
	"context"

	"horse.fit/fusiontranslate/internal/language"
)

// Translator translates text through exactly one provider.
// Implementations are safe for concurrent use.
type Translator interface {
	Kind() Kind
	// Local reports whether the translator works without network access.
	Local() bool
	Translate(ctx context.Context, req Request) (*Response, error)
	TranslateBatch(ctx context.Context, req BatchRequest) (*BatchResponse, error)
}

// Request describes one translation request. A Source of
// language.Undetermined asks the provider to detect the source language.
type Request struct {
	Text   string
	Source language.Code
	Target language.Code
}

// BatchRequest describes an ordered batch of texts sharing one language pair.
type BatchRequest struct {
	Texts  []string
	Source language.Code
	Target language.Code
}

// Response contains translated text and provider metadata.
type Response struct {
	Text string
	// Lang is the language of Text as confirmed by the provider, or the
	// requested target when the provider does not echo it.
	Lang language.Code
	// DetectedSource is Undetermined unless the provider reported it.
	DetectedSource language.Code
	Provider       Kind
	LatencyMs      int64
}

// BatchResponse holds one translated text per input text, in input order.
type BatchResponse struct {
	Texts          []string
	Lang           language.Code
	DetectedSource language.Code
	Provider       Kind
	LatencyMs      int64
}
