// Package scrape extracts the "most searched this week" word list from the
// dictionary landing page.
package scrape

import (
	"errors"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// ErrMarkupNotFound is returned when the page no longer carries the
// top-searches widget in the expected place.
var ErrMarkupNotFound = errors.New("top searches markup not found")

// Selectors pins down where the weekly list lives in the page.
type Selectors struct {
	ContainerID   string
	WeekListClass string
	ItemClass     string
}

// TopSearches returns the weekly top-searched words in page order.
// Words keep their accents and casing; surrounding whitespace is collapsed.
func TopSearches(doc *goquery.Document, sel Selectors) ([]string, error) {
	container := doc.Find(fmt.Sprintf("div[id=%q]", sel.ContainerID))
	if container.Length() == 0 {
		return nil, fmt.Errorf("%w: div#%s", ErrMarkupNotFound, sel.ContainerID)
	}

	weekList := container.Find("ul." + sel.WeekListClass)
	if weekList.Length() == 0 {
		return nil, fmt.Errorf("%w: ul.%s", ErrMarkupNotFound, sel.WeekListClass)
	}

	var words []string
	weekList.Find("li." + sel.ItemClass).Each(func(_ int, item *goquery.Selection) {
		word := normalizeText(item.Find("a").First().Text())
		if word != "" {
			words = append(words, word)
		}
	})

	if len(words) == 0 {
		return nil, fmt.Errorf("%w: list has no entries", ErrMarkupNotFound)
	}
	return words, nil
}

// normalizeText collapses internal whitespace runs and trims the result.
func normalizeText(input string) string {
	return strings.Join(strings.Fields(input), " ")
}
