package research

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/lexafrica/lexsearch/internal/errors"
	"github.com/lexafrica/lexsearch/internal/llm"
)

// UsageRecorder receives per-request accounting. Failures must not
// affect the returned result; the engine logs and moves on.
type UsageRecorder interface {
	Record(ctx context.Context, event UsageEvent) error
}

// Engine is the legal-research pipeline: validate → cache lookup →
// enhance → fan-out search → dedupe → rank → derive citations,
// precedents and analysis → aggregate confidence → cache → record usage.
type Engine struct {
	orchestrator *Orchestrator
	enhancer     *QueryEnhancer
	analyzer     *AnalysisGenerator
	cache        ResultCache
	recorder     UsageRecorder
	options      SemanticSearchOptions
	logger       *slog.Logger
	now          func() time.Time
}

// EngineOption configures the engine.
type EngineOption func(*Engine)

// WithCompleter wires the text-completion collaborator used by query
// enhancement and analysis generation. A nil completer leaves both
// stages in permanent fallback mode.
func WithCompleter(c llm.Completer) EngineOption {
	return func(e *Engine) {
		e.enhancer = NewQueryEnhancer(c, e.logger)
		e.analyzer = NewAnalysisGenerator(c, e.logger)
	}
}

// WithCache replaces the default in-memory result cache.
func WithCache(c ResultCache) EngineOption {
	return func(e *Engine) {
		e.cache = c
	}
}

// WithUsageRecorder wires the usage accounting collaborator.
func WithUsageRecorder(r UsageRecorder) EngineOption {
	return func(e *Engine) {
		e.recorder = r
	}
}

// WithSearchOptions replaces the default ranking weight model.
func WithSearchOptions(opts SemanticSearchOptions) EngineOption {
	return func(e *Engine) {
		e.options = opts
	}
}

// WithClock overrides the engine time source. Used by tests to pin
// recency scoring and citation timestamps.
func WithClock(now func() time.Time) EngineOption {
	return func(e *Engine) {
		e.now = now
	}
}

// NewEngine creates a research engine around a search orchestrator.
func NewEngine(orchestrator *Orchestrator, logger *slog.Logger, opts ...EngineOption) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	e := &Engine{
		orchestrator: orchestrator,
		cache:        NewLRUCache(DefaultCacheSize, DefaultCacheTTL),
		options:      DefaultSearchOptions(),
		logger:       logger,
		now:          time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.enhancer == nil {
		e.enhancer = NewQueryEnhancer(nil, logger)
	}
	if e.analyzer == nil {
		e.analyzer = NewAnalysisGenerator(nil, logger)
	}
	return e
}

// Research runs the full pipeline for one request. Validation errors are
// fatal and carry the offending field; every later stage degrades
// instead of aborting, so a partially failed fan-out still yields a
// complete successful result with fewer documents. A cancelled request
// never writes to the cache.
func (e *Engine) Research(ctx context.Context, req *ResearchRequest) (result *ResearchResult, err error) {
	// Defects in the pure stages surface as internal errors, never as
	// validation errors, so callers can tell bad input from bugs.
	defer func() {
		if r := recover(); r != nil {
			result = nil
			err = errors.Internal(fmt.Sprintf("research pipeline panic: %v", r), nil)
		}
	}()

	Normalize(req)
	if err := Validate(req); err != nil {
		return nil, err
	}

	start := e.now()
	fingerprint := Fingerprint(req)

	if cached, ok := e.cacheGet(fingerprint); ok {
		e.logger.Debug("research_cache_hit", slog.String("fingerprint", fingerprint))
		hit := *cached
		hit.CacheHit = true
		return &hit, nil
	}

	enhanced := e.enhancer.Enhance(ctx, req.Query, req.LegalAreas)

	report, err := e.orchestrator.Search(ctx, enhanced, req, e.options)
	if err != nil {
		// Only caller cancellation reaches here.
		return nil, err
	}

	documents := e.rank(Dedupe(report.Documents), req)

	var (
		citations  []Citation
		precedents []Precedent
		analysis   *ResearchAnalysis
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if req.IncludeCitations {
			citations = GenerateCitations(documents, req.CitationFormat, e.now())
		}
		return nil
	})
	g.Go(func() error {
		precedents = ExtractPrecedents(documents)
		return nil
	})
	if req.IncludeAnalysis {
		g.Go(func() error {
			// Analysis needs precedent counts; it derives its own from
			// the ranked documents so the two tasks stay independent.
			analysis = e.analyzer.Generate(gctx, documents, ExtractPrecedents(documents), req)
			return nil
		})
	}
	// The derivation goroutines never return errors; Wait only observes
	// context cancellation propagated through gctx.
	_ = g.Wait()

	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	result = &ResearchResult{
		RequestID:         uuid.NewString(),
		Request:           *req,
		ExecutionTime:     e.now().Sub(start),
		Documents:         documents,
		Citations:         citations,
		Precedents:        precedents,
		Analysis:          analysis,
		OverallConfidence: Confidence(documents, precedents),
		Sources:           report.SourcesUsed,
		Suggestions:       suggestions(documents, req),
		RelatedQueries:    relatedQueries(req),
		Metadata:          e.metadata(documents, report, req),
	}

	e.cachePut(fingerprint, result)
	e.recordUsage(ctx, fingerprint, result, enhanced)

	e.logger.Info("research_complete",
		slog.String("request_id", result.RequestID),
		slog.Int("documents", len(documents)),
		slog.Int("failed_tasks", len(report.FailedTasks)),
		slog.Duration("duration", result.ExecutionTime))
	return result, nil
}

// rank applies the weighted model with the engine clock.
func (e *Engine) rank(docs []LegalDocument, req *ResearchRequest) []LegalDocument {
	return NewRanker(e.options).WithClock(e.now).Rank(docs, req)
}

// cacheGet treats any cache failure as a miss.
func (e *Engine) cacheGet(fingerprint string) (*ResearchResult, bool) {
	if e.cache == nil {
		return nil, false
	}
	return e.cache.Get(fingerprint)
}

func (e *Engine) cachePut(fingerprint string, result *ResearchResult) {
	if e.cache == nil {
		return
	}
	e.cache.Put(fingerprint, result)
}

// recordUsage is fire-and-forget: failures are logged at warning level
// and never surface to the caller.
func (e *Engine) recordUsage(ctx context.Context, fingerprint string, result *ResearchResult, enhanced string) {
	if e.recorder == nil {
		return
	}
	event := UsageEvent{
		RequestID:        result.RequestID,
		Fingerprint:      fingerprint,
		Duration:         result.ExecutionTime,
		DocumentCount:    len(result.Documents),
		PromptTokens:     llm.EstimateTokens(result.Request.Query) + llm.EstimateTokens(enhanced),
		CompletionTokens: analysisTokens(result.Analysis),
		CacheHit:         false,
		OccurredAt:       e.now(),
	}
	if err := e.recorder.Record(context.WithoutCancel(ctx), event); err != nil {
		e.logger.Warn("usage_record_failed",
			slog.String("request_id", result.RequestID),
			slog.String("error", err.Error()))
	}
}

func analysisTokens(a *ResearchAnalysis) int {
	if a == nil {
		return 0
	}
	return llm.EstimateTokens(a.Summary)
}

// metadata derives the result quality block.
func (e *Engine) metadata(docs []LegalDocument, report *SearchReport, req *ResearchRequest) ResultMetadata {
	strategy := "keyword"
	if req.SemanticSearch {
		strategy = "semantic"
	}
	if report.ComparativeRan {
		strategy += "+comparative"
	}

	now := e.now()
	var authority, freshness float64
	jurisdictions := make(map[Jurisdiction]struct{})
	for _, d := range docs {
		authority += AuthorityScore(d.AuthorityLevel)
		freshness += RecencyScore(d.PublicationDate, now)
		jurisdictions[d.Jurisdiction] = struct{}{}
	}

	meta := ResultMetadata{
		SearchStrategy: strategy,
		ProvidersUsed:  report.SourcesUsed,
	}
	if len(docs) > 0 {
		meta.QualityScore = authority / float64(len(docs))
		meta.FreshnessScore = freshness / float64(len(docs))
		meta.CompletenessScore = clamp01(float64(len(docs)) / float64(req.MaxResults))
		meta.DiversityScore = clamp01(float64(len(jurisdictions)) / float64(len(req.Jurisdictions)))
	}
	return meta
}

func clamp01(v float64) float64 {
	if v > 1 {
		return 1
	}
	if v < 0 {
		return 0
	}
	return v
}

// suggestions proposes follow-up research avenues from what the result
// set lacks.
func suggestions(docs []LegalDocument, req *ResearchRequest) []string {
	var out []string
	if len(docs) == 0 {
		out = append(out, "broaden the query terms or add more jurisdictions")
		return out
	}
	hasCase := false
	for _, d := range docs {
		if d.DocumentType == DocCaseLaw || d.DocumentType == DocCourtDecision {
			hasCase = true
			break
		}
	}
	if !hasCase {
		out = append(out, "include CASE_LAW in document types to surface judicial interpretation")
	}
	if len(req.Jurisdictions) == 1 {
		out = append(out, "add a neighbouring jurisdiction for comparative context")
	}
	return out
}

// relatedQueries derives cheap query variants from the request facets.
func relatedQueries(req *ResearchRequest) []string {
	base := strings.TrimSpace(req.Query)
	out := make([]string, 0, len(req.LegalAreas)+1)
	for _, a := range req.LegalAreas {
		out = append(out, base+" "+strings.ToLower(strings.ReplaceAll(string(a), "_", " "))+" requirements")
	}
	if len(req.Jurisdictions) > 1 {
		out = append(out, base+" comparative analysis")
	}
	return out
}
