package scrape

import (
	"strings"

	"github.com/pemistahl/lingua-go"
)

// LanguageGuard sanity-checks a scraped word list: when the page layout
// shifts, the list tends to fill with English UI strings instead of
// dictionary entries. Lingua has no Galician model, so Spanish and
// Portuguese stand in for the expected language.
type LanguageGuard struct {
	detector lingua.LanguageDetector
	expected map[lingua.Language]struct{}
}

func NewLanguageGuard() *LanguageGuard {
	langs := []lingua.Language{lingua.Spanish, lingua.Portuguese, lingua.English}
	return &LanguageGuard{
		detector: lingua.NewLanguageDetectorBuilder().
			FromLanguages(langs...).
			Build(),
		expected: map[lingua.Language]struct{}{
			lingua.Spanish:    {},
			lingua.Portuguese: {},
		},
	}
}

// Check classifies the joined word list and reports whether the detected
// language is one we expect from the source. The second return is false
// when no language could be detected at all.
func (g *LanguageGuard) Check(words []string) (lingua.Language, bool) {
	lang, ok := g.detector.DetectLanguageOf(strings.Join(words, " "))
	if !ok {
		return lang, false
	}
	_, expected := g.expected[lang]
	return lang, expected
}
