package research

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lexafrica/lexsearch/internal/errors"
)

func TestValidate_AcceptsWellFormedRequest(t *testing.T) {
	req := validRequest()

	require.NoError(t, Validate(req))
}

func TestValidate_QueryBoundsCountRunesNotBytes(t *testing.T) {
	// 1000 two-byte runes: 2000 bytes but exactly at the character cap.
	req := validRequest()
	req.Query = strings.Repeat("é", MaxQueryLength)
	assert.NoError(t, Validate(req))

	// 2 multi-byte runes: enough bytes for the minimum, too few characters.
	req = validRequest()
	req.Query = "حق"
	err := Validate(req)
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeInvalidQuery, errors.GetCode(err))
}

func TestValidate_RejectsBadRequests(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*ResearchRequest)
		wantCode  string
		wantField string
	}{
		{
			name:      "query too short",
			mutate:    func(r *ResearchRequest) { r.Query = "ab" },
			wantCode:  errors.ErrCodeInvalidQuery,
			wantField: "query",
		},
		{
			name:      "query only whitespace",
			mutate:    func(r *ResearchRequest) { r.Query = "   \t  " },
			wantCode:  errors.ErrCodeInvalidQuery,
			wantField: "query",
		},
		{
			name:      "query too long",
			mutate:    func(r *ResearchRequest) { r.Query = strings.Repeat("x", MaxQueryLength+1) },
			wantCode:  errors.ErrCodeInvalidQuery,
			wantField: "query",
		},
		{
			name:      "no jurisdictions",
			mutate:    func(r *ResearchRequest) { r.Jurisdictions = nil },
			wantCode:  errors.ErrCodeInvalidJurisdiction,
			wantField: "jurisdictions",
		},
		{
			name: "too many jurisdictions",
			mutate: func(r *ResearchRequest) {
				r.Jurisdictions = make([]Jurisdiction, MaxJurisdictions+1)
				for i := range r.Jurisdictions {
					r.Jurisdictions[i] = JurisdictionKenya
				}
			},
			wantCode:  errors.ErrCodeInvalidJurisdiction,
			wantField: "jurisdictions",
		},
		{
			name:      "unknown jurisdiction",
			mutate:    func(r *ResearchRequest) { r.Jurisdictions = []Jurisdiction{"ATLANTIS"} },
			wantCode:  errors.ErrCodeInvalidJurisdiction,
			wantField: "jurisdictions",
		},
		{
			name:      "lowercase jurisdiction rejected",
			mutate:    func(r *ResearchRequest) { r.Jurisdictions = []Jurisdiction{"nigeria"} },
			wantCode:  errors.ErrCodeInvalidJurisdiction,
			wantField: "jurisdictions",
		},
		{
			name:      "no legal areas",
			mutate:    func(r *ResearchRequest) { r.LegalAreas = nil },
			wantCode:  errors.ErrCodeInvalidLegalArea,
			wantField: "legal_areas",
		},
		{
			name:      "unknown legal area",
			mutate:    func(r *ResearchRequest) { r.LegalAreas = []LegalArea{"ASTROLOGY"} },
			wantCode:  errors.ErrCodeInvalidLegalArea,
			wantField: "legal_areas",
		},
		{
			name:      "no document types",
			mutate:    func(r *ResearchRequest) { r.DocumentTypes = nil },
			wantCode:  errors.ErrCodeInvalidDocumentType,
			wantField: "document_types",
		},
		{
			name:      "unknown document type",
			mutate:    func(r *ResearchRequest) { r.DocumentTypes = []DocumentType{"BLOG_POST"} },
			wantCode:  errors.ErrCodeInvalidDocumentType,
			wantField: "document_types",
		},
		{
			name:      "unknown language",
			mutate:    func(r *ResearchRequest) { r.Languages = []Language{"KLINGON"} },
			wantCode:  errors.ErrCodeInvalidField,
			wantField: "languages",
		},
		{
			name:      "max results zero",
			mutate:    func(r *ResearchRequest) { r.MaxResults = 0 },
			wantCode:  errors.ErrCodeInvalidMaxResults,
			wantField: "max_results",
		},
		{
			name:      "max results over limit",
			mutate:    func(r *ResearchRequest) { r.MaxResults = MaxResults + 1 },
			wantCode:  errors.ErrCodeInvalidMaxResults,
			wantField: "max_results",
		},
		{
			name:      "unknown citation format",
			mutate:    func(r *ResearchRequest) { r.CitationFormat = "CHICAGO" },
			wantCode:  errors.ErrCodeInvalidField,
			wantField: "citation_format",
		},
		{
			name:      "unknown complexity",
			mutate:    func(r *ResearchRequest) { r.Complexity = "IMPOSSIBLE" },
			wantCode:  errors.ErrCodeInvalidField,
			wantField: "complexity",
		},
		{
			name:      "confidence threshold out of range",
			mutate:    func(r *ResearchRequest) { r.ConfidenceThreshold = 1.5 },
			wantCode:  errors.ErrCodeInvalidField,
			wantField: "confidence_threshold",
		},
		{
			name: "inverted date range",
			mutate: func(r *ResearchRequest) {
				r.DateRange = &DateRange{
					From: mustDate(t, "2025-01-01"),
					To:   mustDate(t, "2020-01-01"),
				}
			},
			wantCode:  errors.ErrCodeInvalidField,
			wantField: "date_range",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(req)

			err := Validate(req)

			require.Error(t, err)
			assert.True(t, errors.IsValidation(err), "expected a validation error, got %v", err)
			assert.True(t, errors.IsFatal(err), "validation errors must be fatal")
			assert.Equal(t, tt.wantCode, errors.GetCode(err))
			assert.Equal(t, tt.wantField, errors.GetField(err))
		})
	}
}

func TestValidate_QueryLengthBounds(t *testing.T) {
	// Exactly at the bounds passes.
	req := validRequest()
	req.Query = strings.Repeat("a", MinQueryLength)
	assert.NoError(t, Validate(req))

	req.Query = strings.Repeat("a", MaxQueryLength)
	assert.NoError(t, Validate(req))
}

func TestNormalize_FillsDefaults(t *testing.T) {
	req := validRequest()
	req.Query = "  tax residency rules  "

	Normalize(req)

	assert.Equal(t, "tax residency rules", req.Query)
	assert.Equal(t, []Language{LangEnglish}, req.Languages)
	assert.Equal(t, FormatBluebook, req.CitationFormat)
	assert.Equal(t, ComplexityStandard, req.Complexity)
}

func TestNormalize_PreservesExplicitValues(t *testing.T) {
	req := validRequest()
	req.Languages = []Language{LangFrench}
	req.CitationFormat = FormatOSCOLA
	req.Complexity = ComplexityExpert

	Normalize(req)

	assert.Equal(t, []Language{LangFrench}, req.Languages)
	assert.Equal(t, FormatOSCOLA, req.CitationFormat)
	assert.Equal(t, ComplexityExpert, req.Complexity)
}
