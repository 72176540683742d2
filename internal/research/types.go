// Package research implements the legal-research aggregation and ranking
// engine: a multi-stage pipeline that fans out across per-jurisdiction
// sources, deduplicates and ranks candidates, derives citations and
// precedents, and optionally synthesizes a narrative analysis.
package research

import (
	"time"
)

// Jurisdiction identifies a supported legal jurisdiction.
type Jurisdiction string

// Supported jurisdictions. The vocabulary is closed: requests carrying
// values outside this set fail validation.
const (
	JurisdictionNigeria     Jurisdiction = "NIGERIA"
	JurisdictionKenya       Jurisdiction = "KENYA"
	JurisdictionGhana       Jurisdiction = "GHANA"
	JurisdictionSouthAfrica Jurisdiction = "SOUTH_AFRICA"
	JurisdictionUganda      Jurisdiction = "UGANDA"
	JurisdictionTanzania    Jurisdiction = "TANZANIA"
	JurisdictionRwanda      Jurisdiction = "RWANDA"
	JurisdictionEthiopia    Jurisdiction = "ETHIOPIA"
	JurisdictionEgypt       Jurisdiction = "EGYPT"
	JurisdictionMorocco     Jurisdiction = "MOROCCO"
	JurisdictionSenegal     Jurisdiction = "SENEGAL"
	JurisdictionZambia      Jurisdiction = "ZAMBIA"
)

// AllJurisdictions returns the closed jurisdiction vocabulary.
func AllJurisdictions() []Jurisdiction {
	return []Jurisdiction{
		JurisdictionNigeria, JurisdictionKenya, JurisdictionGhana,
		JurisdictionSouthAfrica, JurisdictionUganda, JurisdictionTanzania,
		JurisdictionRwanda, JurisdictionEthiopia, JurisdictionEgypt,
		JurisdictionMorocco, JurisdictionSenegal, JurisdictionZambia,
	}
}

// LegalArea identifies a practice area used to scope research.
type LegalArea string

// Supported legal areas (closed vocabulary).
const (
	AreaCorporate      LegalArea = "CORPORATE"
	AreaRegulatory     LegalArea = "REGULATORY"
	AreaLitigation     LegalArea = "LITIGATION"
	AreaEmployment     LegalArea = "EMPLOYMENT"
	AreaIP             LegalArea = "INTELLECTUAL_PROPERTY"
	AreaTax            LegalArea = "TAX"
	AreaConstitutional LegalArea = "CONSTITUTIONAL"
	AreaCriminal       LegalArea = "CRIMINAL"
	AreaProperty       LegalArea = "PROPERTY"
	AreaFamily         LegalArea = "FAMILY"
)

// DocumentType classifies a legal document candidate.
type DocumentType string

// Supported document types (closed vocabulary).
const (
	DocCaseLaw       DocumentType = "CASE_LAW"
	DocCourtDecision DocumentType = "COURT_DECISION"
	DocStatute       DocumentType = "STATUTE"
	DocRegulation    DocumentType = "REGULATION"
	DocConstitution  DocumentType = "CONSTITUTION"
	DocTreaty        DocumentType = "TREATY"
	DocLegalOpinion  DocumentType = "LEGAL_OPINION"
	DocJournal       DocumentType = "JOURNAL_ARTICLE"
	DocPracticeNote  DocumentType = "PRACTICE_NOTE"
)

// Language identifies a document or research language.
type Language string

// Supported languages.
const (
	LangEnglish    Language = "ENGLISH"
	LangFrench     Language = "FRENCH"
	LangArabic     Language = "ARABIC"
	LangSwahili    Language = "SWAHILI"
	LangPortuguese Language = "PORTUGUESE"
)

// AuthorityLevel ranks the issuing body of a legal document.
type AuthorityLevel string

// Authority levels, highest first.
const (
	AuthoritySupreme        AuthorityLevel = "SUPREME"
	AuthorityAppellate      AuthorityLevel = "APPELLATE"
	AuthorityTrial          AuthorityLevel = "TRIAL"
	AuthorityAdministrative AuthorityLevel = "ADMINISTRATIVE"
	AuthorityAcademic       AuthorityLevel = "ACADEMIC"
	AuthorityPractitioner   AuthorityLevel = "PRACTITIONER"
	AuthorityUnknown        AuthorityLevel = "UNKNOWN"
)

// CitationFormat selects the rendering style for generated citations.
type CitationFormat string

// Supported citation formats.
const (
	FormatBluebook CitationFormat = "BLUEBOOK"
	FormatOSCOLA   CitationFormat = "OSCOLA"
	FormatAPA      CitationFormat = "APA"
	FormatNeutral  CitationFormat = "NEUTRAL"
)

// Complexity hints at expected research depth.
type Complexity string

// Supported complexity levels.
const (
	ComplexityBasic         Complexity = "BASIC"
	ComplexityStandard      Complexity = "STANDARD"
	ComplexityComprehensive Complexity = "COMPREHENSIVE"
	ComplexityExpert        Complexity = "EXPERT"
)

// BindingLevel states whether a precedent must be followed.
type BindingLevel string

// Binding levels for extracted precedents.
const (
	BindingBinding    BindingLevel = "BINDING"
	BindingPersuasive BindingLevel = "PERSUASIVE"
	BindingOverruled  BindingLevel = "OVERRULED"
)

// Request size limits.
const (
	MinQueryLength   = 3
	MaxQueryLength   = 1000
	MaxJurisdictions = 10
	MaxLegalAreas    = 5
	MinResults       = 1
	MaxResults       = 100
)

// DateRange bounds document publication dates. From must not be after To.
type DateRange struct {
	From time.Time `json:"from" yaml:"from"`
	To   time.Time `json:"to" yaml:"to"`
}

// ResearchRequest is the inbound contract for one research invocation.
// Collections holding enum values must be non-empty and drawn from the
// closed vocabularies; Validate enforces this before any work is
// dispatched.
type ResearchRequest struct {
	Query               string         `json:"query"`
	Jurisdictions       []Jurisdiction `json:"jurisdictions"`
	LegalAreas          []LegalArea    `json:"legal_areas"`
	DocumentTypes       []DocumentType `json:"document_types"`
	Languages           []Language     `json:"languages,omitempty"`
	MaxResults          int            `json:"max_results"`
	IncludeAnalysis     bool           `json:"include_analysis"`
	IncludeCitations    bool           `json:"include_citations"`
	SemanticSearch      bool           `json:"semantic_search"`
	IncludeRelatedCases bool           `json:"include_related_cases"`
	CitationFormat      CitationFormat `json:"citation_format"`
	Complexity          Complexity     `json:"complexity"`
	ConfidenceThreshold float64        `json:"confidence_threshold"`
	DateRange           *DateRange     `json:"date_range,omitempty"`
}

// SourceDescriptor describes one upstream source for a jurisdiction.
type SourceDescriptor struct {
	Name            string   `json:"name" yaml:"name"`
	Jurisdiction    string   `json:"jurisdiction" yaml:"jurisdiction"`
	CredibilityTier int      `json:"credibility_tier" yaml:"credibility_tier"`
	Capabilities    []string `json:"capabilities" yaml:"capabilities"`
}

// LegalDocument is one candidate returned by a jurisdiction search task.
// Instances live only for the duration of a request unless captured
// inside a cached ResearchResult.
type LegalDocument struct {
	ID              string           `json:"id"`
	Title           string           `json:"title"`
	Excerpt         string           `json:"excerpt"`
	DocumentType    DocumentType     `json:"document_type"`
	Jurisdiction    Jurisdiction     `json:"jurisdiction"`
	Language        Language         `json:"language"`
	LegalAreas      []LegalArea      `json:"legal_areas"`
	PublicationDate time.Time        `json:"publication_date"`
	LastUpdated     time.Time        `json:"last_updated"`
	AuthorityLevel  AuthorityLevel   `json:"authority_level"`
	Source          SourceDescriptor `json:"source"`
	WordCount       int              `json:"word_count"`
	PageCount       int              `json:"page_count"`
	KeyTerms        []string         `json:"key_terms,omitempty"`
	RelevanceScore  float64          `json:"relevance_score"`
	ConfidenceScore float64          `json:"confidence_score"`
}

// Citation is a rendered reference for one LegalDocument.
type Citation struct {
	DocumentID string         `json:"document_id"`
	Format     CitationFormat `json:"format"`
	LongForm   string         `json:"long_form"`
	ShortForm  string         `json:"short_form"`
	AccessedAt time.Time      `json:"accessed_at"`
	Valid      bool           `json:"valid"`
}

// Precedent is derived from a case-law or court-decision document.
type Precedent struct {
	DocumentID              string         `json:"document_id"`
	CaseName                string         `json:"case_name"`
	Principle               string         `json:"principle"`
	BindingLevel            BindingLevel   `json:"binding_level"`
	ApplicableJurisdictions []Jurisdiction `json:"applicable_jurisdictions"`
	KeyFacts                []string       `json:"key_facts,omitempty"`
	Reasoning               string         `json:"reasoning,omitempty"`
	RelevanceScore          float64        `json:"relevance_score"`
}

// ResearchAnalysis is the optional narrative synthesis. A nil analysis
// means it was not requested; a degraded one carries ConfidenceLevel 0.5
// and a non-empty Limitations list.
type ResearchAnalysis struct {
	Summary             string   `json:"summary"`
	KeyFindings         []string `json:"key_findings,omitempty"`
	JurisdictionalNotes []string `json:"jurisdictional_notes,omitempty"`
	RecommendedActions  []string `json:"recommended_actions,omitempty"`
	ResearchGaps        []string `json:"research_gaps,omitempty"`
	ConfidenceLevel     float64  `json:"confidence_level"`
	Methodology         []string `json:"methodology,omitempty"`
	Limitations         []string `json:"limitations,omitempty"`
}

// ResultMetadata captures how a result was produced.
type ResultMetadata struct {
	SearchStrategy    string   `json:"search_strategy"`
	ProvidersUsed     []string `json:"providers_used"`
	QualityScore      float64  `json:"quality_score"`
	CompletenessScore float64  `json:"completeness_score"`
	FreshnessScore    float64  `json:"freshness_score"`
	DiversityScore    float64  `json:"diversity_score"`
}

// ResearchResult is the assembled output of one research invocation.
// It is owned by the invoking call until placed in the cache, after
// which it is shared read-only for the cache TTL.
type ResearchResult struct {
	RequestID         string            `json:"request_id"`
	Request           ResearchRequest   `json:"request"`
	ExecutionTime     time.Duration     `json:"execution_time"`
	Documents         []LegalDocument   `json:"documents"`
	Citations         []Citation        `json:"citations,omitempty"`
	Precedents        []Precedent       `json:"precedents,omitempty"`
	Analysis          *ResearchAnalysis `json:"analysis,omitempty"`
	OverallConfidence float64           `json:"overall_confidence"`
	Sources           []string          `json:"sources"`
	Suggestions       []string          `json:"suggestions,omitempty"`
	RelatedQueries    []string          `json:"related_queries,omitempty"`
	Metadata          ResultMetadata    `json:"metadata"`
	CacheHit          bool              `json:"cache_hit"`
}

// SemanticSearchOptions carries the weight factors used by the ranker and
// the per-source search hints. Weights are arbitrary positive scalars;
// they are not normalized at use time. The defaults sum to 1.0 so
// composite scores remain comparable across runs.
type SemanticSearchOptions struct {
	RecencyWeight       float64 `yaml:"recency_weight" json:"recency_weight"`
	RelevanceWeight     float64 `yaml:"relevance_weight" json:"relevance_weight"`
	AuthorityWeight     float64 `yaml:"authority_weight" json:"authority_weight"`
	JurisdictionWeight  float64 `yaml:"jurisdiction_weight" json:"jurisdiction_weight"`
	SimilarityThreshold float64 `yaml:"similarity_threshold" json:"similarity_threshold"`
	MaxCandidates       int     `yaml:"max_candidates" json:"max_candidates"`
	ConceptualMatch     bool    `yaml:"conceptual_match" json:"conceptual_match"`
}

// DefaultSearchOptions returns the reference weighting model.
func DefaultSearchOptions() SemanticSearchOptions {
	return SemanticSearchOptions{
		RecencyWeight:       0.3,
		RelevanceWeight:     0.4,
		AuthorityWeight:     0.2,
		JurisdictionWeight:  0.1,
		SimilarityThreshold: 0.6,
		MaxCandidates:       200,
		ConceptualMatch:     true,
	}
}

// UsageEvent is the per-request accounting record handed to the usage
// recorder after a completed (non-cache-hit) request.
type UsageEvent struct {
	RequestID        string        `json:"request_id"`
	Fingerprint      string        `json:"fingerprint"`
	Duration         time.Duration `json:"duration"`
	DocumentCount    int           `json:"document_count"`
	PromptTokens     int           `json:"prompt_tokens"`
	CompletionTokens int           `json:"completion_tokens"`
	CacheHit         bool          `json:"cache_hit"`
	OccurredAt       time.Time     `json:"occurred_at"`
}
