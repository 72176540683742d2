package research

import (
	"crypto/sha256"
	"encoding/hex"
	"sort"
	"strconv"
	"strings"
)

// Fingerprint computes the deterministic cache key for a request.
// Enum sets are sorted lexicographically before hashing so that two
// requests differing only in input ordering collide to the same key.
// The citation format and complexity participate because they change
// the rendered result.
func Fingerprint(req *ResearchRequest) string {
	var b strings.Builder

	b.WriteString("q=")
	b.WriteString(strings.ToLower(strings.TrimSpace(req.Query)))

	writeSorted(&b, "j", asStrings(req.Jurisdictions))
	writeSorted(&b, "a", asStrings(req.LegalAreas))
	writeSorted(&b, "d", asStrings(req.DocumentTypes))
	writeSorted(&b, "l", asStrings(req.Languages))

	b.WriteString("|f=")
	b.WriteString(string(req.CitationFormat))
	b.WriteString("|c=")
	b.WriteString(string(req.Complexity))
	b.WriteString("|n=")
	b.WriteString(strconv.Itoa(req.MaxResults))

	// Flags alter citation/precedent/analysis content, so they are part
	// of the canonical form.
	b.WriteString("|o=")
	b.WriteString(boolBit(req.IncludeAnalysis))
	b.WriteString(boolBit(req.IncludeCitations))
	b.WriteString(boolBit(req.SemanticSearch))
	b.WriteString(boolBit(req.IncludeRelatedCases))

	if req.DateRange != nil {
		b.WriteString("|r=")
		b.WriteString(req.DateRange.From.UTC().Format("2006-01-02"))
		b.WriteString("..")
		b.WriteString(req.DateRange.To.UTC().Format("2006-01-02"))
	}

	sum := sha256.Sum256([]byte(b.String()))
	return hex.EncodeToString(sum[:])
}

func writeSorted(b *strings.Builder, tag string, values []string) {
	sorted := make([]string, len(values))
	copy(sorted, values)
	sort.Strings(sorted)
	b.WriteString("|")
	b.WriteString(tag)
	b.WriteString("=")
	b.WriteString(strings.Join(sorted, ","))
}

func asStrings[T ~string](values []T) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = string(v)
	}
	return out
}

func boolBit(v bool) string {
	if v {
		return "1"
	}
	return "0"
}
