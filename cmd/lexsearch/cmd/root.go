// Package cmd provides the CLI commands for LexSearch.
package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/lexafrica/lexsearch/internal/config"
	"github.com/lexafrica/lexsearch/internal/llm"
	"github.com/lexafrica/lexsearch/internal/logging"
	"github.com/lexafrica/lexsearch/internal/registry"
	"github.com/lexafrica/lexsearch/internal/research"
	"github.com/lexafrica/lexsearch/internal/sources"
	"github.com/lexafrica/lexsearch/internal/usage"
)

var (
	configPath     string
	debugMode      bool
	loggingCleanup func()
)

// NewRootCmd creates the root command for the lexsearch CLI.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lexsearch",
		Short: "Multi-jurisdiction legal research engine",
		Long: `LexSearch aggregates, deduplicates, and ranks legal documents across
African jurisdictions, derives citations and precedents, and can
synthesize a narrative analysis of the results.`,
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			logCfg := logging.DefaultConfig()
			logCfg.WriteToStderr = false
			if debugMode {
				logCfg.Level = "debug"
				logCfg.WriteToStderr = true
			}
			logger, cleanup, err := logging.Setup(logCfg)
			if err != nil {
				return fmt.Errorf("setup logging: %w", err)
			}
			slog.SetDefault(logger)
			loggingCleanup = cleanup
			return nil
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			if loggingCleanup != nil {
				loggingCleanup()
			}
		},
	}

	cmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file (YAML)")
	cmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug logging to stderr")

	cmd.AddCommand(newResearchCmd())
	cmd.AddCommand(newSourcesCmd())
	cmd.AddCommand(newServeCmd())
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() error {
	return NewRootCmd().Execute()
}

// buildEngine assembles the full engine from configuration: registry,
// corpus-backed searchers, optional Gemini completer, optional usage
// recorder. The returned cleanup closes owned resources.
func buildEngine(ctx context.Context, cfg *config.Config) (*research.Engine, *registry.Registry, func(), error) {
	reg, err := loadRegistry(cfg)
	if err != nil {
		return nil, nil, nil, err
	}

	var cleanups []func()
	cleanup := func() {
		for _, fn := range cleanups {
			fn()
		}
	}

	searchers, comparative, err := buildSearchers(cfg, reg)
	if err != nil {
		return nil, nil, nil, err
	}

	orchestrator := research.NewOrchestrator(searchers, slog.Default(),
		research.WithComparative(comparative),
		research.WithParallelism(cfg.Search.Parallelism))

	opts := []research.EngineOption{
		research.WithSearchOptions(cfg.SearchOptions()),
		research.WithCache(research.NewLRUCache(cfg.Cache.Size, cfg.CacheTTL())),
	}

	if cfg.Completer.APIKey != "" || os.Getenv("GOOGLE_APPLICATION_CREDENTIALS") != "" {
		completer, err := llm.NewGeminiCompleter(ctx, cfg.Completer.APIKey,
			llm.WithModel(cfg.Completer.Model))
		if err != nil {
			// Degrade to fallback mode rather than refusing to start.
			slog.Warn("gemini_unavailable", slog.String("error", err.Error()))
		} else {
			cleanups = append(cleanups, func() { _ = completer.Close() })
			opts = append(opts, research.WithCompleter(completer))
		}
	}

	if cfg.Usage.DBPath != "" {
		recorder, err := usage.NewSQLiteRecorder(cfg.Usage.DBPath)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("open usage recorder: %w", err)
		}
		cleanups = append(cleanups, func() { _ = recorder.Close() })
		opts = append(opts, research.WithUsageRecorder(recorder))
	}

	engine := research.NewEngine(orchestrator, slog.Default(), opts...)
	return engine, reg, cleanup, nil
}

func loadRegistry(cfg *config.Config) (*registry.Registry, error) {
	if cfg.Registry.Path != "" {
		return registry.Load(cfg.Registry.Path)
	}
	return registry.LoadDefault()
}

// buildSearchers wires one corpus-backed adapter shared across all
// registered jurisdictions. The same adapter serves the comparative
// task for multi-jurisdiction requests.
func buildSearchers(cfg *config.Config, reg *registry.Registry) (map[research.Jurisdiction]research.JurisdictionSearcher, research.ComparativeSearcher, error) {
	var docs []research.LegalDocument
	if cfg.Search.CorpusPath != "" {
		loaded, err := sources.LoadCorpus(cfg.Search.CorpusPath)
		if err != nil {
			return nil, nil, err
		}
		docs = loaded
	}

	corpus, err := sources.NewCorpusSearcher("local-corpus", docs)
	if err != nil {
		return nil, nil, err
	}

	searchers := make(map[research.Jurisdiction]research.JurisdictionSearcher)
	for _, j := range reg.Jurisdictions() {
		searchers[j] = corpus
	}
	return searchers, corpus, nil
}
