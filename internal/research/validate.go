package research

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/lexafrica/lexsearch/internal/errors"
)

// closed vocabularies for membership checks, built once at init.
var (
	validJurisdictions = toSet(AllJurisdictions())
	validLegalAreas    = toSet([]LegalArea{
		AreaCorporate, AreaRegulatory, AreaLitigation, AreaEmployment,
		AreaIP, AreaTax, AreaConstitutional, AreaCriminal,
		AreaProperty, AreaFamily,
	})
	validDocumentTypes = toSet([]DocumentType{
		DocCaseLaw, DocCourtDecision, DocStatute, DocRegulation,
		DocConstitution, DocTreaty, DocLegalOpinion, DocJournal,
		DocPracticeNote,
	})
	validLanguages = toSet([]Language{
		LangEnglish, LangFrench, LangArabic, LangSwahili, LangPortuguese,
	})
	validFormats = toSet([]CitationFormat{
		FormatBluebook, FormatOSCOLA, FormatAPA, FormatNeutral,
	})
	validComplexities = toSet([]Complexity{
		ComplexityBasic, ComplexityStandard, ComplexityComprehensive, ComplexityExpert,
	})
)

func toSet[T comparable](values []T) map[T]struct{} {
	s := make(map[T]struct{}, len(values))
	for _, v := range values {
		s[v] = struct{}{}
	}
	return s
}

// Validate checks a ResearchRequest against the closed vocabularies and
// size limits. It returns a validation LexError carrying the offending
// field, or nil. Validation is the only fail-fast stage of the pipeline;
// no work is dispatched for an invalid request.
func Validate(req *ResearchRequest) error {
	q := strings.TrimSpace(req.Query)
	// Bounds are in characters, not bytes; accented and Arabic queries
	// must not lose headroom to multi-byte encodings.
	if n := utf8.RuneCountInString(q); n < MinQueryLength || n > MaxQueryLength {
		return errors.Validation(errors.ErrCodeInvalidQuery, "query",
			fmt.Sprintf("query length must be between %d and %d characters, got %d",
				MinQueryLength, MaxQueryLength, n))
	}

	if len(req.Jurisdictions) == 0 || len(req.Jurisdictions) > MaxJurisdictions {
		return errors.Validation(errors.ErrCodeInvalidJurisdiction, "jurisdictions",
			fmt.Sprintf("between 1 and %d jurisdictions required, got %d",
				MaxJurisdictions, len(req.Jurisdictions)))
	}
	for _, j := range req.Jurisdictions {
		if _, ok := validJurisdictions[j]; !ok {
			return errors.Validation(errors.ErrCodeInvalidJurisdiction, "jurisdictions",
				fmt.Sprintf("unknown jurisdiction %q", j))
		}
	}

	if len(req.LegalAreas) == 0 || len(req.LegalAreas) > MaxLegalAreas {
		return errors.Validation(errors.ErrCodeInvalidLegalArea, "legal_areas",
			fmt.Sprintf("between 1 and %d legal areas required, got %d",
				MaxLegalAreas, len(req.LegalAreas)))
	}
	for _, a := range req.LegalAreas {
		if _, ok := validLegalAreas[a]; !ok {
			return errors.Validation(errors.ErrCodeInvalidLegalArea, "legal_areas",
				fmt.Sprintf("unknown legal area %q", a))
		}
	}

	if len(req.DocumentTypes) == 0 {
		return errors.Validation(errors.ErrCodeInvalidDocumentType, "document_types",
			"at least one document type is required")
	}
	for _, d := range req.DocumentTypes {
		if _, ok := validDocumentTypes[d]; !ok {
			return errors.Validation(errors.ErrCodeInvalidDocumentType, "document_types",
				fmt.Sprintf("unknown document type %q", d))
		}
	}

	for _, l := range req.Languages {
		if _, ok := validLanguages[l]; !ok {
			return errors.Validation(errors.ErrCodeInvalidField, "languages",
				fmt.Sprintf("unknown language %q", l))
		}
	}

	if req.MaxResults < MinResults || req.MaxResults > MaxResults {
		return errors.Validation(errors.ErrCodeInvalidMaxResults, "max_results",
			fmt.Sprintf("max_results must be between %d and %d, got %d",
				MinResults, MaxResults, req.MaxResults))
	}

	if req.CitationFormat != "" {
		if _, ok := validFormats[req.CitationFormat]; !ok {
			return errors.Validation(errors.ErrCodeInvalidField, "citation_format",
				fmt.Sprintf("unknown citation format %q", req.CitationFormat))
		}
	}
	if req.Complexity != "" {
		if _, ok := validComplexities[req.Complexity]; !ok {
			return errors.Validation(errors.ErrCodeInvalidField, "complexity",
				fmt.Sprintf("unknown complexity %q", req.Complexity))
		}
	}

	if req.ConfidenceThreshold < 0 || req.ConfidenceThreshold > 1 {
		return errors.Validation(errors.ErrCodeInvalidField, "confidence_threshold",
			fmt.Sprintf("confidence_threshold must be in [0,1], got %g", req.ConfidenceThreshold))
	}

	if req.DateRange != nil && !req.DateRange.From.IsZero() && !req.DateRange.To.IsZero() {
		if req.DateRange.From.After(req.DateRange.To) {
			return errors.Validation(errors.ErrCodeInvalidField, "date_range",
				"date range from must not be after to")
		}
	}

	return nil
}

// Normalize fills request defaults in place: English when no languages
// are given, Bluebook citations, standard complexity.
func Normalize(req *ResearchRequest) {
	req.Query = strings.TrimSpace(req.Query)
	if len(req.Languages) == 0 {
		req.Languages = []Language{LangEnglish}
	}
	if req.CitationFormat == "" {
		req.CitationFormat = FormatBluebook
	}
	if req.Complexity == "" {
		req.Complexity = ComplexityStandard
	}
}
