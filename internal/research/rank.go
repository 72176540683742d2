package research

import (
	"sort"
	"time"
)

// Recency decay horizon: a document this old scores zero recency.
const recencyHorizonYears = 10.0

// authorityScores is the fixed authority lookup used by the ranker.
var authorityScores = map[AuthorityLevel]float64{
	AuthoritySupreme:        1.0,
	AuthorityAppellate:      0.8,
	AuthorityTrial:          0.6,
	AuthorityAdministrative: 0.5,
	AuthorityAcademic:       0.4,
	AuthorityPractitioner:   0.3,
	AuthorityUnknown:        0.2,
}

// Ranker scores and orders deduplicated candidates with the weighted
// multi-factor model. Weights are taken as-is (positive scalars, not
// normalized); the defaults sum to 1.0.
type Ranker struct {
	opts SemanticSearchOptions
	now  func() time.Time
}

// NewRanker creates a ranker with the given weight model.
func NewRanker(opts SemanticSearchOptions) *Ranker {
	return &Ranker{opts: opts, now: time.Now}
}

// WithClock overrides the ranker's time source. Used by tests to pin
// recency scoring.
func (r *Ranker) WithClock(now func() time.Time) *Ranker {
	r.now = now
	return r
}

// Rank sorts documents descending by composite score and truncates to
// maxResults. The sort is stable: ties retain their input order, which
// is task-completion order from the orchestrator. That ordering is
// nondeterministic across runs and deliberately not hidden.
func (r *Ranker) Rank(docs []LegalDocument, req *ResearchRequest) []LegalDocument {
	requested := make(map[Jurisdiction]struct{}, len(req.Jurisdictions))
	for _, j := range req.Jurisdictions {
		requested[j] = struct{}{}
	}

	type scored struct {
		doc   LegalDocument
		score float64
	}
	now := r.now()
	items := make([]scored, len(docs))
	for i, d := range docs {
		items[i] = scored{doc: d, score: r.composite(d, requested, now)}
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].score > items[j].score
	})

	limit := req.MaxResults
	if limit <= 0 || limit > len(items) {
		limit = len(items)
	}
	out := make([]LegalDocument, limit)
	for i := range out {
		out[i] = items[i].doc
	}
	return out
}

// composite computes the weighted score for one document.
func (r *Ranker) composite(d LegalDocument, requested map[Jurisdiction]struct{}, now time.Time) float64 {
	jurisdictionBonus := 0.5
	if _, ok := requested[d.Jurisdiction]; ok {
		jurisdictionBonus = 1.0
	}

	return d.RelevanceScore*r.opts.RelevanceWeight +
		RecencyScore(d.PublicationDate, now)*r.opts.RecencyWeight +
		AuthorityScore(d.AuthorityLevel)*r.opts.AuthorityWeight +
		jurisdictionBonus*r.opts.JurisdictionWeight
}

// RecencyScore decays linearly from 1 (published now) to 0 at ten years
// old, clamped at zero beyond that.
func RecencyScore(published time.Time, now time.Time) float64 {
	if published.IsZero() {
		return 0
	}
	ageYears := now.Sub(published).Hours() / (24 * 365.25)
	score := 1 - ageYears/recencyHorizonYears
	if score < 0 {
		return 0
	}
	if score > 1 {
		return 1
	}
	return score
}

// AuthorityScore returns the fixed score for an authority level.
// Unlisted levels score as unknown.
func AuthorityScore(level AuthorityLevel) float64 {
	if s, ok := authorityScores[level]; ok {
		return s
	}
	return authorityScores[AuthorityUnknown]
}
