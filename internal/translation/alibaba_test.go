package translation

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"

	"horse.fit/fusiontranslate/internal/language"
)

func TestAlibabaTranslate_BuildsQueryString(t *testing.T) {
	t.Parallel()

	stub := newStubProvider(t, http.StatusOK,
		`{"data":{"translateText":"Hola","detectLanguage":"en"}}`)
	translator := newStubbedTranslator(t, KindAlibaba, Credentials{}, stub)

	resp, err := translator.Translate(context.Background(), Request{Text: "Hello", Target: language.Spanish})
	if err != nil {
		t.Fatalf("translate: %v", err)
	}
	if resp.Text != "Hola" {
		t.Fatalf("expected Hola, got %q", resp.Text)
	}
	if resp.Lang != language.Spanish {
		t.Fatalf("expected lang es, got %s", resp.Lang)
	}
	if resp.DetectedSource != language.English {
		t.Fatalf("expected detected en, got %s", resp.DetectedSource)
	}

	req := stub.last(t)
	if req.Method != http.MethodGet {
		t.Fatalf("expected GET, got %s", req.Method)
	}
	query := req.Query
	if query.Get("domain") != "general" || query.Get("query") != "Hello" {
		t.Fatalf("unexpected query: %v", query)
	}
	if query.Get("srcLang") != "auto" || query.Get("tgtLang") != "es" {
		t.Fatalf("unexpected language pair: %v", query)
	}
}

func TestAlibabaTranslate_InputLimitCountsBytes(t *testing.T) {
	t.Parallel()

	stub := newStubProvider(t, http.StatusOK, `{"data":{"translateText":"x"}}`)
	translator := newStubbedTranslator(t, KindAlibaba, Credentials{}, stub)

	// 200 CJK characters are 600 bytes.
	text := strings.Repeat("汉", 200)
	_, err := translator.Translate(context.Background(), Request{Text: text, Target: language.English})
	if !errors.Is(err, ErrInputTooLarge) {
		t.Fatalf("expected ErrInputTooLarge, got %v", err)
	}
	var te *Error
	if !errors.As(err, &te) || te.Size != 600 || te.Limit != AlibabaInputLimit {
		t.Fatalf("expected size 600 and limit %d, got %+v", AlibabaInputLimit, te)
	}
	if stub.hits.Load() != 0 {
		t.Fatalf("expected no request for oversized input, got %d", stub.hits.Load())
	}

	if _, err := translator.Translate(context.Background(), Request{
		Text:   strings.Repeat("a", AlibabaInputLimit),
		Target: language.English,
	}); err != nil {
		t.Fatalf("expected input at the limit to pass, got %v", err)
	}
}

func TestAlibabaTranslate_NullTextIsEmptyResult(t *testing.T) {
	t.Parallel()

	for _, body := range []string{
		`{"data":{"translateText":null}}`,
		`{"data":{}}`,
		`{}`,
	} {
		stub := newStubProvider(t, http.StatusOK, body)
		translator := newStubbedTranslator(t, KindAlibaba, Credentials{}, stub)

		_, err := translator.Translate(context.Background(), Request{Text: "hi", Target: language.Chinese})
		if !errors.Is(err, ErrEmptyResult) {
			t.Fatalf("body %s: expected ErrEmptyResult, got %v", body, err)
		}
	}
}

func TestAlibabaTranslateBatch_DelimiterEmulation(t *testing.T) {
	t.Parallel()

	stub := newStubProvider(t, http.StatusOK,
		`{"data":{"translateText":"一_._._二_._._三"}}`)
	translator := newStubbedTranslator(t, KindAlibaba, Credentials{}, stub)

	resp, err := translator.TranslateBatch(context.Background(), BatchRequest{
		Texts:  []string{"one", "two", "three"},
		Source: language.English,
		Target: language.Chinese,
	})
	if err != nil {
		t.Fatalf("translate batch: %v", err)
	}
	want := []string{"一", "二", "三"}
	for i := range want {
		if resp.Texts[i] != want[i] {
			t.Fatalf("text %d: expected %q, got %q", i, want[i], resp.Texts[i])
		}
	}
	if got := stub.last(t).Query.Get("query"); got != "one_._._two_._._three" {
		t.Fatalf("expected delimiter-joined query, got %q", got)
	}
	if stub.hits.Load() != 1 {
		t.Fatalf("expected one request, got %d", stub.hits.Load())
	}
}

func TestAlibabaTranslateBatch_CorruptedDelimiter(t *testing.T) {
	t.Parallel()

	// The provider translated the delimiter punctuation away.
	stub := newStubProvider(t, http.StatusOK,
		`{"data":{"translateText":"一。二_._._三"}}`)
	translator := newStubbedTranslator(t, KindAlibaba, Credentials{}, stub)

	_, err := translator.TranslateBatch(context.Background(), BatchRequest{
		Texts:  []string{"one", "two", "three"},
		Source: language.English,
		Target: language.Chinese,
	})
	if !errors.Is(err, ErrSegmentMismatch) {
		t.Fatalf("expected ErrSegmentMismatch, got %v", err)
	}
}

func TestAlibabaTranslate_UnmappableLanguage(t *testing.T) {
	t.Parallel()

	stub := newStubProvider(t, http.StatusOK, `{"data":{"translateText":"x"}}`)
	translator := newStubbedTranslator(t, KindAlibaba, Credentials{}, stub)

	_, err := translator.Translate(context.Background(), Request{
		Text:   "hi",
		Source: language.ClassicalChinese,
		Target: language.English,
	})
	if !errors.Is(err, ErrUnmappableLanguage) {
		t.Fatalf("expected ErrUnmappableLanguage, got %v", err)
	}
	if stub.hits.Load() != 0 {
		t.Fatalf("expected no request, got %d", stub.hits.Load())
	}
}

func TestAlibabaTranslate_DetectedLanguage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		detected string
		want     language.Code
		class    error
	}{
		{name: "catalan", detected: "ca", want: language.Catalan},
		{name: "traditional", detected: "zh-tw", want: language.ChineseTraditional},
		{name: "regional tag", detected: "zh-CN", want: language.Chinese},
		{name: "blank", detected: "", want: language.Undetermined},
		{name: "unsupported language", detected: "lzh", class: ErrUndecodableLanguage},
		{name: "unknown", detected: "xx", class: ErrUndecodableLanguage},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			stub := newStubProvider(t, http.StatusOK,
				`{"data":{"translateText":"hello","detectLanguage":"`+tc.detected+`"}}`)
			translator := newStubbedTranslator(t, KindAlibaba, Credentials{}, stub)

			resp, err := translator.Translate(context.Background(), Request{Text: "hola", Target: language.English})
			if tc.class != nil {
				if !errors.Is(err, tc.class) {
					t.Fatalf("expected %v, got %v", tc.class, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("translate: %v", err)
			}
			if resp.DetectedSource != tc.want {
				t.Fatalf("expected detected %s, got %s", tc.want, resp.DetectedSource)
			}
		})
	}
}
