package ui

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/lexafrica/lexsearch/internal/research"
)

func sampleResult() *research.ResearchResult {
	return &research.ResearchResult{
		RequestID: "req-1",
		Documents: []research.LegalDocument{{
			ID:              "ng-cama",
			Title:           "Companies and Allied Matters Act 2020",
			Jurisdiction:    research.JurisdictionNigeria,
			DocumentType:    research.DocStatute,
			PublicationDate: time.Date(2020, 8, 7, 0, 0, 0, 0, time.UTC),
			RelevanceScore:  0.82,
		}},
		Citations: []research.Citation{{
			DocumentID: "ng-cama",
			LongForm:   "Companies and Allied Matters Act 2020, nigeria-gazette (Nigeria 2020)",
		}},
		OverallConfidence: 0.74,
	}
}

func TestResult_PlainOutput(t *testing.T) {
	var buf bytes.Buffer
	New(&buf).Result(sampleResult())

	out := buf.String()
	assert.Contains(t, out, "Companies and Allied Matters Act 2020")
	assert.Contains(t, out, "confidence 0.74")
	assert.Contains(t, out, "Citations")
	// A bytes.Buffer is not a terminal; output must carry no ANSI codes.
	assert.NotContains(t, out, "\x1b[")
}

func TestResult_PrecedentLinePlainASCII(t *testing.T) {
	res := sampleResult()
	res.Precedents = []research.Precedent{{
		CaseName:     "Okafor v. Lagos State",
		Principle:    "directors owe fiduciary duties to the company alone",
		BindingLevel: research.BindingBinding,
	}}

	var buf bytes.Buffer
	New(&buf).Result(res)

	assert.Contains(t, buf.String(), "Okafor v. Lagos State - directors owe fiduciary duties to the company alone (binding)")
}

func TestResult_CacheHitNoted(t *testing.T) {
	res := sampleResult()
	res.CacheHit = true

	var buf bytes.Buffer
	New(&buf).Result(res)

	assert.Contains(t, buf.String(), "served from cache")
}

func TestResult_DegradedAnalysisLimitations(t *testing.T) {
	res := sampleResult()
	res.Analysis = &research.ResearchAnalysis{
		ConfidenceLevel: 0.5,
		Limitations:     []string{"narrative analysis generation failed; results are unannotated"},
	}

	var buf bytes.Buffer
	New(&buf).Result(res)

	assert.Contains(t, buf.String(), "limitation: narrative analysis generation failed")
}

func TestSources_ListsDescriptors(t *testing.T) {
	var buf bytes.Buffer
	New(&buf).Sources([]research.SourceDescriptor{{
		Name:            "nigeria-law-reports",
		Jurisdiction:    "NIGERIA",
		CredibilityTier: 1,
		Capabilities:    []string{"case_law", "statutes"},
	}})

	out := buf.String()
	assert.Contains(t, out, "Registered sources (1)")
	assert.Contains(t, out, "nigeria-law-reports")
	assert.Contains(t, out, "case_law, statutes")
}
