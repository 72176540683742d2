package research

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/lexafrica/lexsearch/internal/llm"
)

// --- Shared Test Helpers ---

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		t.Fatalf("parse date %q: %v", s, err)
	}
	return d
}

func testClock() func() time.Time {
	fixed := time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC)
	return func() time.Time { return fixed }
}

func validRequest() *ResearchRequest {
	return &ResearchRequest{
		Query:         "director fiduciary duties in related-party transactions",
		Jurisdictions: []Jurisdiction{JurisdictionNigeria, JurisdictionKenya},
		LegalAreas:    []LegalArea{AreaCorporate},
		DocumentTypes: []DocumentType{DocCaseLaw, DocStatute},
		MaxResults:    10,
	}
}

func makeDoc(id, title string, j Jurisdiction, dt DocumentType) LegalDocument {
	return LegalDocument{
		ID:              id,
		Title:           title,
		Excerpt:         "The court held that directors owe fiduciary duties to the company.",
		DocumentType:    dt,
		Jurisdiction:    j,
		Language:        LangEnglish,
		LegalAreas:      []LegalArea{AreaCorporate},
		PublicationDate: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		AuthorityLevel:  AuthorityAppellate,
		Source:          SourceDescriptor{Name: "test-source", Jurisdiction: string(j), CredibilityTier: 1},
		RelevanceScore:  0.8,
		ConfidenceScore: 0.7,
	}
}

// stubSearcher returns fixed documents or a fixed error per call.
type stubSearcher struct {
	name     string
	docs     []LegalDocument
	err      error
	delay    time.Duration
	calls    int
	lastOpts SemanticSearchOptions
}

func (s *stubSearcher) Name() string { return s.name }

func (s *stubSearcher) Search(ctx context.Context, _ string, _ Jurisdiction, _ *ResearchRequest, opts SemanticSearchOptions) ([]LegalDocument, error) {
	s.calls++
	s.lastOpts = opts
	if s.delay > 0 {
		select {
		case <-time.After(s.delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if s.err != nil {
		return nil, s.err
	}
	return s.docs, nil
}

// stubComparative records whether the comparative path ran.
type stubComparative struct {
	name     string
	docs     []LegalDocument
	err      error
	calls    int
	lastOpts SemanticSearchOptions
}

func (s *stubComparative) Name() string { return s.name }

func (s *stubComparative) SearchComparative(_ context.Context, _ string, _ []Jurisdiction, _ *ResearchRequest, opts SemanticSearchOptions) ([]LegalDocument, error) {
	s.calls++
	s.lastOpts = opts
	if s.err != nil {
		return nil, s.err
	}
	return s.docs, nil
}

// stubCompleter is a canned llm.Completer.
type stubCompleter struct {
	output string
	err    error
	calls  int
}

func (s *stubCompleter) Complete(_ context.Context, _ string, _ llm.CompletionContext) (string, error) {
	s.calls++
	if s.err != nil {
		return "", s.err
	}
	return s.output, nil
}

var errUpstream = errors.New("upstream unavailable")
