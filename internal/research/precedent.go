package research

import (
	"fmt"
	"strings"
)

// ExtractPrecedents derives precedent records from case-law and
// court-decision documents. The minimal document model carries no
// explicit overruled or persuasive marker, so every extracted precedent
// is binding within its own jurisdiction and non-binding elsewhere,
// recorded via ApplicableJurisdictions = [doc.Jurisdiction].
func ExtractPrecedents(docs []LegalDocument) []Precedent {
	precedents := make([]Precedent, 0)
	for _, d := range docs {
		if d.DocumentType != DocCaseLaw && d.DocumentType != DocCourtDecision {
			continue
		}
		precedents = append(precedents, Precedent{
			DocumentID:              d.ID,
			CaseName:                d.Title,
			Principle:               derivePrinciple(d),
			BindingLevel:            BindingBinding,
			ApplicableJurisdictions: []Jurisdiction{d.Jurisdiction},
			KeyFacts:                d.KeyTerms,
			Reasoning:               deriveReasoning(d),
			RelevanceScore:          d.RelevanceScore,
		})
	}
	return precedents
}

// derivePrinciple produces the extracted legal principle. Without deeper
// document structure the leading sentence of the excerpt stands in for
// the holding.
func derivePrinciple(d LegalDocument) string {
	excerpt := strings.TrimSpace(d.Excerpt)
	if excerpt == "" {
		return fmt.Sprintf("Principle established in %s", d.Title)
	}
	if idx := strings.IndexAny(excerpt, ".;"); idx > 0 {
		return excerpt[:idx+1]
	}
	return excerpt
}

func deriveReasoning(d LegalDocument) string {
	areas := make([]string, len(d.LegalAreas))
	for i, a := range d.LegalAreas {
		areas[i] = titleCase(string(a))
	}
	return fmt.Sprintf("%s authority addressing %s in %s.",
		titleCase(string(d.AuthorityLevel)),
		strings.Join(areas, ", "),
		titleCase(string(d.Jurisdiction)))
}
