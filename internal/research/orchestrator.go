package research

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
)

// JurisdictionSearcher returns candidate documents for one jurisdiction.
// Implementations own their timeouts; the orchestrator treats a timeout
// like any other task failure and degrades.
type JurisdictionSearcher interface {
	// Name identifies the adapter for logging and result metadata.
	Name() string

	// Search returns candidates for the enhanced query within one
	// jurisdiction. The request carries document-type, language, and
	// date filters; opts carries the per-source search hints (candidate
	// bound, similarity floor, conceptual matching) each task applies
	// independently.
	Search(ctx context.Context, query string, jurisdiction Jurisdiction, req *ResearchRequest, opts SemanticSearchOptions) ([]LegalDocument, error)
}

// ComparativeSearcher returns cross-jurisdictional candidates. It is
// consulted only when a request names more than one jurisdiction.
type ComparativeSearcher interface {
	Name() string

	SearchComparative(ctx context.Context, query string, jurisdictions []Jurisdiction, req *ResearchRequest, opts SemanticSearchOptions) ([]LegalDocument, error)
}

// Default cap on concurrently running search tasks.
const defaultSearchParallelism = 8

// SearchReport is the joined outcome of one fan-out. Failed tasks are
// isolated: they contribute zero documents and a warning log, never an
// error to the caller.
type SearchReport struct {
	Documents      []LegalDocument
	SourcesUsed    []string
	FailedTasks    []string
	ComparativeRan bool
}

// Orchestrator fans out one search task per requested jurisdiction plus,
// for multi-jurisdiction requests, one comparative task, and joins all
// results. Results are appended in task-completion order, which is the
// tie-break order the ranker preserves.
type Orchestrator struct {
	searchers   map[Jurisdiction]JurisdictionSearcher
	comparative ComparativeSearcher
	parallelism int
	logger      *slog.Logger
}

// OrchestratorOption configures the orchestrator.
type OrchestratorOption func(*Orchestrator)

// WithComparative sets the comparative search task adapter.
func WithComparative(c ComparativeSearcher) OrchestratorOption {
	return func(o *Orchestrator) {
		o.comparative = c
	}
}

// WithParallelism caps the number of concurrently running tasks.
func WithParallelism(n int) OrchestratorOption {
	return func(o *Orchestrator) {
		if n > 0 {
			o.parallelism = n
		}
	}
}

// NewOrchestrator creates a search orchestrator over the given
// per-jurisdiction adapters.
func NewOrchestrator(searchers map[Jurisdiction]JurisdictionSearcher, logger *slog.Logger, opts ...OrchestratorOption) *Orchestrator {
	if logger == nil {
		logger = slog.Default()
	}
	o := &Orchestrator{
		searchers:   searchers,
		parallelism: defaultSearchParallelism,
		logger:      logger,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Search runs the fan-out/join for one request, handing every task the
// same search hints. A failing jurisdiction task must not fail the whole
// orchestration: its failure is recorded in the report and the remaining
// tasks' documents are still returned. Only caller cancellation aborts
// the join.
func (o *Orchestrator) Search(ctx context.Context, query string, req *ResearchRequest, opts SemanticSearchOptions) (*SearchReport, error) {
	report := &SearchReport{}

	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.parallelism)

	collect := func(task string, docs []LegalDocument, err error) {
		mu.Lock()
		defer mu.Unlock()
		if err != nil {
			report.FailedTasks = append(report.FailedTasks, task)
			o.logger.Warn("search_task_failed",
				slog.String("task", task),
				slog.String("error", err.Error()))
			return
		}
		report.Documents = append(report.Documents, docs...)
		report.SourcesUsed = append(report.SourcesUsed, task)
	}

	for _, j := range req.Jurisdictions {
		searcher, ok := o.searchers[j]
		if !ok {
			collect(string(j), nil, errNoSearcher(j))
			continue
		}
		g.Go(func() error {
			start := time.Now()
			docs, err := searcher.Search(gctx, query, j, req, opts)
			o.logger.Debug("jurisdiction_search_done",
				slog.String("jurisdiction", string(j)),
				slog.Int("documents", len(docs)),
				slog.Duration("duration", time.Since(start)))
			collect(taskName(searcher.Name(), j), docs, err)
			// Task failures are isolated; only cancellation propagates.
			return gctx.Err()
		})
	}

	// The comparative task must not run for single-jurisdiction requests.
	if len(req.Jurisdictions) > 1 && o.comparative != nil {
		g.Go(func() error {
			docs, err := o.comparative.SearchComparative(gctx, query, req.Jurisdictions, req, opts)
			collect(o.comparative.Name()+"/comparative", docs, err)
			if err == nil {
				// Only a successful comparative pass counts toward the
				// reported search strategy.
				mu.Lock()
				report.ComparativeRan = true
				mu.Unlock()
			}
			return gctx.Err()
		})
	}

	if err := g.Wait(); err != nil {
		// Cancellation: no partial result may be cached downstream.
		return nil, err
	}
	return report, nil
}

func taskName(adapter string, j Jurisdiction) string {
	return adapter + "/" + string(j)
}

type noSearcherError struct {
	jurisdiction Jurisdiction
}

func (e *noSearcherError) Error() string {
	return "no searcher registered for jurisdiction " + string(e.jurisdiction)
}

func errNoSearcher(j Jurisdiction) error {
	return &noSearcherError{jurisdiction: j}
}
