package research

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrchestratorSearch_FansOutPerJurisdiction(t *testing.T) {
	nigeria := &stubSearcher{name: "corpus", docs: []LegalDocument{
		makeDoc("ng1", "Companies Act 2020", JurisdictionNigeria, DocStatute),
	}}
	kenya := &stubSearcher{name: "corpus", docs: []LegalDocument{
		makeDoc("ke1", "Companies Act 2015", JurisdictionKenya, DocStatute),
	}}

	o := NewOrchestrator(map[Jurisdiction]JurisdictionSearcher{
		JurisdictionNigeria: nigeria,
		JurisdictionKenya:   kenya,
	}, testLogger())

	report, err := o.Search(context.Background(), "companies act", validRequest(), DefaultSearchOptions())

	require.NoError(t, err)
	assert.Equal(t, 1, nigeria.calls)
	assert.Equal(t, 1, kenya.calls)
	assert.Len(t, report.Documents, 2)
	assert.Len(t, report.SourcesUsed, 2)
	assert.Empty(t, report.FailedTasks)
}

func TestOrchestratorSearch_FailedTaskIsolated(t *testing.T) {
	healthy := &stubSearcher{name: "corpus", docs: []LegalDocument{
		makeDoc("ng1", "Companies Act 2020", JurisdictionNigeria, DocStatute),
	}}
	broken := &stubSearcher{name: "corpus", err: errUpstream}

	o := NewOrchestrator(map[Jurisdiction]JurisdictionSearcher{
		JurisdictionNigeria: healthy,
		JurisdictionKenya:   broken,
	}, testLogger())

	report, err := o.Search(context.Background(), "companies act", validRequest(), DefaultSearchOptions())

	// One task failing must not fail the orchestration.
	require.NoError(t, err)
	assert.Len(t, report.Documents, 1)
	require.Len(t, report.FailedTasks, 1)
	assert.Contains(t, report.FailedTasks[0], string(JurisdictionKenya))
}

func TestOrchestratorSearch_AllTasksFailStillSucceeds(t *testing.T) {
	broken := &stubSearcher{name: "corpus", err: errUpstream}

	o := NewOrchestrator(map[Jurisdiction]JurisdictionSearcher{
		JurisdictionNigeria: broken,
		JurisdictionKenya:   broken,
	}, testLogger())

	report, err := o.Search(context.Background(), "anything", validRequest(), DefaultSearchOptions())

	require.NoError(t, err)
	assert.Empty(t, report.Documents)
	assert.Len(t, report.FailedTasks, 2)
}

func TestOrchestratorSearch_MissingSearcherRecordedAsFailure(t *testing.T) {
	o := NewOrchestrator(map[Jurisdiction]JurisdictionSearcher{
		JurisdictionNigeria: &stubSearcher{name: "corpus"},
	}, testLogger())

	report, err := o.Search(context.Background(), "anything", validRequest(), DefaultSearchOptions())

	require.NoError(t, err)
	require.Len(t, report.FailedTasks, 1)
	assert.Equal(t, string(JurisdictionKenya), report.FailedTasks[0])
}

func TestOrchestratorSearch_ComparativeOnlyForMultiJurisdiction(t *testing.T) {
	comparative := &stubComparative{name: "corpus", docs: []LegalDocument{
		makeDoc("cmp1", "OHADA Uniform Act", JurisdictionSenegal, DocTreaty),
	}}

	o := NewOrchestrator(map[Jurisdiction]JurisdictionSearcher{
		JurisdictionNigeria: &stubSearcher{name: "corpus"},
		JurisdictionKenya:   &stubSearcher{name: "corpus"},
	}, testLogger(), WithComparative(comparative))

	// Multi-jurisdiction request: comparative runs.
	report, err := o.Search(context.Background(), "q", validRequest(), DefaultSearchOptions())
	require.NoError(t, err)
	assert.Equal(t, 1, comparative.calls)
	assert.True(t, report.ComparativeRan)

	// Single-jurisdiction request: it must not.
	single := validRequest()
	single.Jurisdictions = []Jurisdiction{JurisdictionNigeria}
	report, err = o.Search(context.Background(), "q", single, DefaultSearchOptions())
	require.NoError(t, err)
	assert.Equal(t, 1, comparative.calls)
	assert.False(t, report.ComparativeRan)
}

func TestOrchestratorSearch_ComparativeFailureIsolated(t *testing.T) {
	comparative := &stubComparative{name: "corpus", err: errUpstream}

	o := NewOrchestrator(map[Jurisdiction]JurisdictionSearcher{
		JurisdictionNigeria: &stubSearcher{name: "corpus", docs: []LegalDocument{
			makeDoc("ng1", "Companies Act 2020", JurisdictionNigeria, DocStatute),
		}},
		JurisdictionKenya: &stubSearcher{name: "corpus"},
	}, testLogger(), WithComparative(comparative))

	report, err := o.Search(context.Background(), "q", validRequest(), DefaultSearchOptions())

	require.NoError(t, err)
	assert.Len(t, report.Documents, 1)
	require.NotEmpty(t, report.FailedTasks)
	assert.Contains(t, report.FailedTasks[0], "comparative")
	assert.False(t, report.ComparativeRan)
}

func TestOrchestratorSearch_ForwardsSearchOptionsToTasks(t *testing.T) {
	nigeria := &stubSearcher{name: "corpus"}
	kenya := &stubSearcher{name: "corpus"}
	comparative := &stubComparative{name: "corpus"}

	o := NewOrchestrator(map[Jurisdiction]JurisdictionSearcher{
		JurisdictionNigeria: nigeria,
		JurisdictionKenya:   kenya,
	}, testLogger(), WithComparative(comparative))

	opts := SemanticSearchOptions{
		SimilarityThreshold: 0.45,
		MaxCandidates:       12,
		ConceptualMatch:     false,
	}

	_, err := o.Search(context.Background(), "q", validRequest(), opts)

	require.NoError(t, err)
	assert.Equal(t, opts, nigeria.lastOpts)
	assert.Equal(t, opts, kenya.lastOpts)
	assert.Equal(t, opts, comparative.lastOpts)
}

func TestOrchestratorSearch_CancellationAborts(t *testing.T) {
	slow := &stubSearcher{name: "corpus", delay: 5 * time.Second}

	o := NewOrchestrator(map[Jurisdiction]JurisdictionSearcher{
		JurisdictionNigeria: slow,
		JurisdictionKenya:   slow,
	}, testLogger())

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	report, err := o.Search(ctx, "q", validRequest(), DefaultSearchOptions())

	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Nil(t, report)
}

func TestOrchestratorSearch_TaskNamesCarryAdapterAndJurisdiction(t *testing.T) {
	o := NewOrchestrator(map[Jurisdiction]JurisdictionSearcher{
		JurisdictionNigeria: &stubSearcher{name: "corpus", docs: []LegalDocument{
			makeDoc("ng1", "Companies Act 2020", JurisdictionNigeria, DocStatute),
		}},
	}, testLogger())

	req := validRequest()
	req.Jurisdictions = []Jurisdiction{JurisdictionNigeria}

	report, err := o.Search(context.Background(), "q", req, DefaultSearchOptions())

	require.NoError(t, err)
	require.Len(t, report.SourcesUsed, 1)
	assert.Equal(t, "corpus/NIGERIA", report.SourcesUsed[0])
}
