package research

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/lexafrica/lexsearch/internal/llm"
)

// Confidence assigned to a degraded analysis when generation fails.
const degradedAnalysisConfidence = 0.5

// AnalysisGenerator produces the optional narrative synthesis via the
// text-completion collaborator. This stage never raises a fatal error:
// a failed generation yields a degraded analysis whose limitations list
// says so.
type AnalysisGenerator struct {
	completer llm.Completer
	logger    *slog.Logger
}

// NewAnalysisGenerator creates an analysis generator. A nil completer
// behaves like a permanently failing one.
func NewAnalysisGenerator(completer llm.Completer, logger *slog.Logger) *AnalysisGenerator {
	if logger == nil {
		logger = slog.Default()
	}
	return &AnalysisGenerator{completer: completer, logger: logger}
}

// Generate returns an analysis for the ranked documents and extracted
// precedents. On collaborator failure the degraded analysis is returned,
// never an error.
func (g *AnalysisGenerator) Generate(ctx context.Context, docs []LegalDocument, precedents []Precedent, req *ResearchRequest) *ResearchAnalysis {
	if g.completer == nil {
		return g.degraded("analysis generation unavailable: no completion collaborator configured")
	}

	prompt := analysisPrompt(docs, precedents, req)
	summary, err := g.completer.Complete(ctx, prompt, llm.CompletionContext{
		Jurisdictions: asStrings(req.Jurisdictions),
		LegalAreas:    asStrings(req.LegalAreas),
	})
	if err != nil {
		g.logger.Warn("analysis_generation_failed",
			slog.String("query", req.Query),
			slog.String("error", err.Error()))
		return g.degraded("narrative analysis generation failed; results are unannotated")
	}

	return &ResearchAnalysis{
		Summary:             summary,
		KeyFindings:         keyFindings(docs),
		JurisdictionalNotes: jurisdictionalNotes(docs, req),
		ConfidenceLevel:     Confidence(docs, precedents),
		Methodology: []string{
			"multi-jurisdiction source aggregation",
			"weighted relevance/recency/authority ranking",
			"precedent extraction from case law",
		},
	}
}

// degraded builds the fallback analysis mandated for collaborator failure.
func (g *AnalysisGenerator) degraded(limitation string) *ResearchAnalysis {
	return &ResearchAnalysis{
		ConfidenceLevel: degradedAnalysisConfidence,
		Limitations:     []string{limitation},
	}
}

func analysisPrompt(docs []LegalDocument, precedents []Precedent, req *ResearchRequest) string {
	var b strings.Builder
	fmt.Fprintf(&b, `Synthesize a concise legal research analysis.

Research question: %s
Documents reviewed: %d
Precedents identified: %d
Jurisdictions: %s
Practice areas: %s

Top documents:
`, req.Query, len(docs), len(precedents),
		strings.Join(asStrings(req.Jurisdictions), ", "),
		strings.Join(asStrings(req.LegalAreas), ", "))

	limit := 5
	if len(docs) < limit {
		limit = len(docs)
	}
	for _, d := range docs[:limit] {
		fmt.Fprintf(&b, "- %s (%s, %s)\n", d.Title, d.Jurisdiction, d.DocumentType)
	}
	b.WriteString("\nWrite 2-3 paragraphs summarizing the legal position and any cross-jurisdictional differences.")
	return b.String()
}

// keyFindings lifts the highest-authority documents into finding lines.
func keyFindings(docs []LegalDocument) []string {
	findings := make([]string, 0, 3)
	for _, d := range docs {
		if d.AuthorityLevel == AuthoritySupreme || d.AuthorityLevel == AuthorityAppellate {
			findings = append(findings, fmt.Sprintf("%s (%s authority, %s)",
				d.Title, strings.ToLower(string(d.AuthorityLevel)), titleCase(string(d.Jurisdiction))))
		}
		if len(findings) == 3 {
			break
		}
	}
	return findings
}

// jurisdictionalNotes flags requested jurisdictions that contributed no
// documents, the only observable signal of partial degradation.
func jurisdictionalNotes(docs []LegalDocument, req *ResearchRequest) []string {
	covered := make(map[Jurisdiction]int)
	for _, d := range docs {
		covered[d.Jurisdiction]++
	}
	var notes []string
	for _, j := range req.Jurisdictions {
		if covered[j] == 0 {
			notes = append(notes, fmt.Sprintf("no documents retrieved for %s", titleCase(string(j))))
		}
	}
	return notes
}
