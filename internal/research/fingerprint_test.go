package research

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFingerprint_Deterministic(t *testing.T) {
	req := validRequest()

	first := Fingerprint(req)
	second := Fingerprint(req)

	require.NotEmpty(t, first)
	assert.Equal(t, first, second)
	assert.Len(t, first, 64) // sha256 hex
}

func TestFingerprint_OrderInsensitive(t *testing.T) {
	// Two requests differing only in set ordering must collide.
	a := validRequest()
	a.Jurisdictions = []Jurisdiction{JurisdictionNigeria, JurisdictionKenya, JurisdictionGhana}
	a.LegalAreas = []LegalArea{AreaCorporate, AreaTax}
	a.DocumentTypes = []DocumentType{DocCaseLaw, DocStatute}

	b := validRequest()
	b.Jurisdictions = []Jurisdiction{JurisdictionGhana, JurisdictionNigeria, JurisdictionKenya}
	b.LegalAreas = []LegalArea{AreaTax, AreaCorporate}
	b.DocumentTypes = []DocumentType{DocStatute, DocCaseLaw}

	assert.Equal(t, Fingerprint(a), Fingerprint(b))
}

func TestFingerprint_QueryNormalization(t *testing.T) {
	a := validRequest()
	a.Query = "  Director Fiduciary Duties  "

	b := validRequest()
	b.Query = "director fiduciary duties"

	assert.Equal(t, Fingerprint(a), Fingerprint(b))
}

func TestFingerprint_SensitiveToContentBearingFields(t *testing.T) {
	base := Fingerprint(validRequest())

	tests := []struct {
		name   string
		mutate func(*ResearchRequest)
	}{
		{"query", func(r *ResearchRequest) { r.Query = "land registration procedure" }},
		{"jurisdictions", func(r *ResearchRequest) { r.Jurisdictions = []Jurisdiction{JurisdictionGhana} }},
		{"legal areas", func(r *ResearchRequest) { r.LegalAreas = []LegalArea{AreaTax} }},
		{"document types", func(r *ResearchRequest) { r.DocumentTypes = []DocumentType{DocTreaty} }},
		{"max results", func(r *ResearchRequest) { r.MaxResults = 25 }},
		{"citation format", func(r *ResearchRequest) { r.CitationFormat = FormatOSCOLA }},
		{"complexity", func(r *ResearchRequest) { r.Complexity = ComplexityExpert }},
		{"include analysis", func(r *ResearchRequest) { r.IncludeAnalysis = true }},
		{"include citations", func(r *ResearchRequest) { r.IncludeCitations = true }},
		{"semantic search", func(r *ResearchRequest) { r.SemanticSearch = true }},
		{"date range", func(r *ResearchRequest) {
			r.DateRange = &DateRange{From: mustDate(t, "2020-01-01"), To: mustDate(t, "2024-12-31")}
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(req)
			assert.NotEqual(t, base, Fingerprint(req), "fingerprint must change when %s changes", tt.name)
		})
	}
}
