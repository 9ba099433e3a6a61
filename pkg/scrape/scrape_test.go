package scrape

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
)

var testSelectors = Selectors{
	ContainerID:   "top-searches",
	WeekListClass: "topsearch__list--week",
	ItemClass:     "topsearch__item",
}

// buildPage wraps list items into the expected page structure.
func buildPage(t *testing.T, items string) *goquery.Document {
	t.Helper()

	html := fmt.Sprintf(`<html><body>
		<div id="top-searches">
			<ul class="topsearch__list--week">%s</ul>
		</div>
	</body></html>`, items)

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		t.Fatalf("failed to parse fixture HTML: %v", err)
	}
	return doc
}

func parseDoc(t *testing.T, html string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		t.Fatalf("failed to parse fixture HTML: %v", err)
	}
	return doc
}

func TestTopSearches(t *testing.T) {
	tests := []struct {
		name  string
		items string
		want  []string
	}{
		{
			name: "extracts words in page order",
			items: `<li class="topsearch__item"><a href="/w/sol">sol</a></li>
				<li class="topsearch__item"><a href="/w/mar">mar</a></li>
				<li class="topsearch__item"><a href="/w/vento">vento</a></li>`,
			want: []string{"sol", "mar", "vento"},
		},
		{
			name: "normalizes whitespace inside anchors",
			items: `<li class="topsearch__item"><a>
				sol
				</a></li>
				<li class="topsearch__item"><a>mar   aberto</a></li>`,
			want: []string{"sol", "mar aberto"},
		},
		{
			name: "skips items without anchor text",
			items: `<li class="topsearch__item"><a></a></li>
				<li class="topsearch__item"><a>lúa</a></li>`,
			want: []string{"lúa"},
		},
		{
			name: "ignores items outside the item class",
			items: `<li class="topsearch__item"><a>sol</a></li>
				<li class="other"><a>ads</a></li>`,
			want: []string{"sol"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := buildPage(t, tt.items)
			got, err := TopSearches(doc, testSelectors)
			if err != nil {
				t.Fatalf("TopSearches() error = %v", err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("TopSearches() = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("TopSearches()[%d] = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestTopSearchesMissingMarkup(t *testing.T) {
	tests := []struct {
		name string
		html string
	}{
		{
			name: "container div missing",
			html: `<html><body><div id="other"></div></body></html>`,
		},
		{
			name: "week list missing",
			html: `<html><body><div id="top-searches"><ul class="monthly"></ul></div></body></html>`,
		},
		{
			name: "week list empty",
			html: `<html><body><div id="top-searches">
				<ul class="topsearch__list--week"></ul></div></body></html>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := parseDoc(t, tt.html)
			_, err := TopSearches(doc, testSelectors)
			if !errors.Is(err, ErrMarkupNotFound) {
				t.Errorf("TopSearches() error = %v, want ErrMarkupNotFound", err)
			}
		})
	}
}

func TestLanguageGuard(t *testing.T) {
	guard := NewLanguageGuard()

	tests := []struct {
		name     string
		words    []string
		expected bool
	}{
		{
			name:     "spanish-looking dictionary words",
			words:    []string{"palabra", "diccionario", "casa", "tiempo", "corazón"},
			expected: true,
		},
		{
			name:     "english UI chrome",
			words:    []string{"search", "the", "dictionary", "click", "here", "loading", "please", "wait"},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lang, expected := guard.Check(tt.words)
			if expected != tt.expected {
				t.Errorf("Check(%v) = (%v, %v), want expected=%v", tt.words, lang, expected, tt.expected)
			}
		})
	}
}
