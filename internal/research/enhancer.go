package research

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/lexafrica/lexsearch/internal/llm"
)

// QueryEnhancer turns a raw query plus legal-area hints into an enhanced
// query string via the text-completion collaborator. It is pure and
// side-effect free; on any collaborator failure it falls back to the
// original query.
type QueryEnhancer struct {
	completer llm.Completer
	logger    *slog.Logger
}

// NewQueryEnhancer creates an enhancer. A nil completer disables
// enhancement entirely (the original query passes through).
func NewQueryEnhancer(completer llm.Completer, logger *slog.Logger) *QueryEnhancer {
	if logger == nil {
		logger = slog.Default()
	}
	return &QueryEnhancer{completer: completer, logger: logger}
}

// Enhance returns an enhanced query, or the original query unchanged
// when the collaborator fails or returns nothing usable. It never
// retries; retries are the collaborator's responsibility.
func (e *QueryEnhancer) Enhance(ctx context.Context, query string, areas []LegalArea) string {
	if e.completer == nil {
		return query
	}

	prompt := enhancementPrompt(query, areas)
	enhanced, err := e.completer.Complete(ctx, prompt, llm.CompletionContext{
		LegalAreas: asStrings(areas),
	})
	if err != nil {
		e.logger.Warn("query_enhancement_failed",
			slog.String("query", query),
			slog.String("error", err.Error()))
		return query
	}

	enhanced = strings.TrimSpace(enhanced)
	if enhanced == "" {
		e.logger.Warn("query_enhancement_empty", slog.String("query", query))
		return query
	}
	return enhanced
}

func enhancementPrompt(query string, areas []LegalArea) string {
	names := make([]string, len(areas))
	for i, a := range areas {
		names[i] = titleCase(string(a))
	}
	return fmt.Sprintf(`Rewrite the legal research query below as a single enhanced search query.
Add precise legal terminology, alternative phrasings, and key search terms
relevant to these practice areas: %s.
Return only the enhanced query text, no explanation.

Query: %s`, strings.Join(names, ", "), query)
}
