package cmd

import (
	"encoding/json"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lexafrica/lexsearch/internal/config"
	"github.com/lexafrica/lexsearch/internal/research"
	"github.com/lexafrica/lexsearch/internal/ui"
)

// researchOptions holds CLI flags for research.
type researchOptions struct {
	jurisdictions []string
	legalAreas    []string
	docTypes      []string
	maxResults    int
	analysis      bool
	citations     bool
	format        string // "text", "json"
	citationStyle string
}

func newResearchCmd() *cobra.Command {
	var opts researchOptions

	cmd := &cobra.Command{
		Use:   "research <query>",
		Short: "Run a legal research query",
		Long: `Run a legal research query across one or more jurisdictions.

Documents are aggregated from the configured sources, deduplicated,
ranked by relevance, recency, authority, and jurisdiction match, then
cited and mined for precedents.

Examples:
  lexsearch research "data protection obligations" -j NIGERIA -j KENYA -a REGULATORY -t STATUTE
  lexsearch research "employment termination notice" -j GHANA -a EMPLOYMENT -t CASE_LAW --analysis
  lexsearch research "merger control thresholds" -j SOUTH_AFRICA -a CORPORATE -t REGULATION --format json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runResearch(cmd, strings.Join(args, " "), opts)
		},
	}

	cmd.Flags().StringSliceVarP(&opts.jurisdictions, "jurisdiction", "j", nil, "Jurisdiction to search (repeatable)")
	cmd.Flags().StringSliceVarP(&opts.legalAreas, "area", "a", nil, "Legal area (repeatable)")
	cmd.Flags().StringSliceVarP(&opts.docTypes, "type", "t", []string{"CASE_LAW", "STATUTE"}, "Document type (repeatable)")
	cmd.Flags().IntVarP(&opts.maxResults, "limit", "n", 10, "Maximum number of results")
	cmd.Flags().BoolVar(&opts.analysis, "analysis", false, "Generate a narrative analysis")
	cmd.Flags().BoolVar(&opts.citations, "citations", true, "Generate citations")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "text", "Output format: text, json")
	cmd.Flags().StringVar(&opts.citationStyle, "citation-style", "BLUEBOOK", "Citation style: BLUEBOOK, OSCOLA, APA, NEUTRAL")

	return cmd
}

func runResearch(cmd *cobra.Command, query string, opts researchOptions) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	engine, _, cleanup, err := buildEngine(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	req := &research.ResearchRequest{
		Query:            query,
		Jurisdictions:    toEnums[research.Jurisdiction](opts.jurisdictions),
		LegalAreas:       toEnums[research.LegalArea](opts.legalAreas),
		DocumentTypes:    toEnums[research.DocumentType](opts.docTypes),
		MaxResults:       opts.maxResults,
		IncludeAnalysis:  opts.analysis,
		IncludeCitations: opts.citations,
		CitationFormat:   research.CitationFormat(strings.ToUpper(opts.citationStyle)),
	}

	result, err := engine.Research(cmd.Context(), req)
	if err != nil {
		return err
	}

	if opts.format == "json" {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}

	ui.New(cmd.OutOrStdout()).Result(result)
	return nil
}

func toEnums[T ~string](values []string) []T {
	out := make([]T, len(values))
	for i, v := range values {
		out[i] = T(strings.ToUpper(strings.TrimSpace(v)))
	}
	return out
}
