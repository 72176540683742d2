package research

import (
	"strings"
)

// Dedupe collapses candidates that represent the same underlying
// document. Two documents are duplicates iff their (title, jurisdiction)
// pair is identical after case-insensitive, whitespace-normalized
// comparison. The first occurrence in input order wins; metadata from
// dropped duplicates is not merged.
func Dedupe(docs []LegalDocument) []LegalDocument {
	if len(docs) <= 1 {
		return docs
	}

	seen := make(map[string]struct{}, len(docs))
	out := make([]LegalDocument, 0, len(docs))
	for _, d := range docs {
		key := dedupeKey(d.Title, d.Jurisdiction)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, d)
	}
	return out
}

// dedupeKey normalizes a (title, jurisdiction) pair: lowercased, interior
// whitespace runs collapsed to single spaces.
func dedupeKey(title string, jurisdiction Jurisdiction) string {
	normalized := strings.Join(strings.Fields(strings.ToLower(title)), " ")
	return normalized + "\x00" + string(jurisdiction)
}
