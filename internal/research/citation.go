package research

import (
	"fmt"
	"strings"
	"time"
)

// shortFormMaxLen bounds the truncated title used as a short-form citation.
const shortFormMaxLen = 40

// GenerateCitations renders one Citation per document in the requested
// format. The format changes only the rendering template, never the
// underlying document reference. Citations are marked valid at
// generation time; no external verification happens here.
func GenerateCitations(docs []LegalDocument, format CitationFormat, now time.Time) []Citation {
	citations := make([]Citation, len(docs))
	for i, d := range docs {
		citations[i] = Citation{
			DocumentID: d.ID,
			Format:     format,
			LongForm:   longForm(d, format),
			ShortForm:  shortForm(d.Title),
			AccessedAt: now,
			Valid:      true,
		}
	}
	return citations
}

// longForm embeds at minimum the title, jurisdiction, and publication year.
func longForm(d LegalDocument, format CitationFormat) string {
	year := "n.d."
	if !d.PublicationDate.IsZero() {
		year = fmt.Sprintf("%d", d.PublicationDate.Year())
	}
	jurisdiction := titleCase(string(d.Jurisdiction))

	switch format {
	case FormatOSCOLA:
		// Title (Jurisdiction Year) Source
		return fmt.Sprintf("%s (%s %s) %s", d.Title, jurisdiction, year, d.Source.Name)
	case FormatAPA:
		// Source. (Year). Title. Jurisdiction.
		return fmt.Sprintf("%s. (%s). %s. %s.", d.Source.Name, year, d.Title, jurisdiction)
	case FormatNeutral:
		// [Year] Jurisdiction - Title
		return fmt.Sprintf("[%s] %s - %s", year, jurisdiction, d.Title)
	default:
		// Bluebook-style fallback: Title, Source (Jurisdiction Year)
		return fmt.Sprintf("%s, %s (%s %s)", d.Title, d.Source.Name, jurisdiction, year)
	}
}

// shortForm truncates the title on a rune boundary.
func shortForm(title string) string {
	runes := []rune(strings.TrimSpace(title))
	if len(runes) <= shortFormMaxLen {
		return string(runes)
	}
	return string(runes[:shortFormMaxLen-3]) + "..."
}

// titleCase renders an enum identifier like SOUTH_AFRICA as "South Africa".
func titleCase(id string) string {
	words := strings.Split(strings.ToLower(id), "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
