package langdetect

import (
	"testing"

	"horse.fit/fusiontranslate/internal/language"
)

func TestDetect(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string
		want language.Code
		ok   bool
	}{
		{name: "english", text: "The weather is lovely today and the park is full of people.", want: language.English, ok: true},
		{name: "german", text: "Das Wetter ist heute wunderschön und der Park ist voller Menschen.", want: language.German, ok: true},
		{name: "chinese", text: "今天天气很好，公园里到处都是人。", want: language.Chinese, ok: true},
		{name: "too short", text: "hi", want: language.Undetermined, ok: false},
		{name: "digits only", text: "12345 67890", want: language.Undetermined, ok: false},
		{name: "blank", text: "   ", want: language.Undetermined, ok: false},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, ok := Detect(tc.text)
			if ok != tc.ok || got != tc.want {
				t.Fatalf("Detect(%q) = %s, %v; want %s, %v", tc.text, got, ok, tc.want, tc.ok)
			}
		})
	}
}

func TestDetectISO6391(t *testing.T) {
	t.Parallel()

	if got := DetectISO6391("Bonjour tout le monde, comment allez-vous aujourd'hui?"); got != "fr" {
		t.Fatalf("expected fr, got %q", got)
	}
	if got := DetectISO6391("ok"); got != "" {
		t.Fatalf("expected empty code for short text, got %q", got)
	}
}

func TestDetectableLanguagesMapToCanonicalCodes(t *testing.T) {
	t.Parallel()

	langs := detectable()
	if len(langs) < 2 {
		t.Fatalf("expected several detectable languages, got %d", len(langs))
	}
	for _, l := range langs {
		if _, ok := fromLingua(l); !ok {
			t.Fatalf("%s should map to a canonical code", l)
		}
	}
}
