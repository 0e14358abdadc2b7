package langdetect

import (
	"strings"
	"sync"
	"unicode"

	lingua "github.com/pemistahl/lingua-go"

	"horse.fit/fusiontranslate/internal/language"
)

const minLetters = 6

var (
	detectorOnce sync.Once
	detector     lingua.LanguageDetector
)

// Detect guesses the language of text. It reports false for short samples
// and for languages outside the canonical set.
func Detect(text string) (language.Code, bool) {
	sample := strings.TrimSpace(text)
	if sample == "" {
		return language.Undetermined, false
	}

	letterCount := 0
	for _, r := range sample {
		if unicode.IsLetter(r) {
			letterCount++
		}
	}
	if letterCount < minLetters {
		return language.Undetermined, false
	}

	detected, exists := getDetector().DetectLanguageOf(sample)
	if !exists {
		return language.Undetermined, false
	}
	return fromLingua(detected)
}

// DetectISO6391 returns the two-letter code of the detected language, or "".
func DetectISO6391(text string) string {
	code, ok := Detect(text)
	if !ok {
		return ""
	}
	return language.NormalizeCode(code.String())
}

func fromLingua(l lingua.Language) (language.Code, bool) {
	iso := strings.ToLower(l.IsoCode639_1().String())
	if len(iso) != 2 {
		return language.Undetermined, false
	}
	return language.Parse(iso)
}

// detectable lists the lingua languages that map onto a canonical code.
func detectable() []lingua.Language {
	var langs []lingua.Language
	for _, l := range lingua.AllLanguages() {
		if _, ok := fromLingua(l); ok {
			langs = append(langs, l)
		}
	}
	return langs
}

func getDetector() lingua.LanguageDetector {
	detectorOnce.Do(func() {
		detector = lingua.NewLanguageDetectorBuilder().
			FromLanguages(detectable()...).
			WithPreloadedLanguageModels().
			Build()
	})
	return detector
}
