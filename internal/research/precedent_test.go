package research

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractPrecedents_OnlyCaseLawAndCourtDecisions(t *testing.T) {
	docs := []LegalDocument{
		makeDoc("case", "Okafor v. Lagos State", JurisdictionNigeria, DocCaseLaw),
		makeDoc("decision", "In re Mombasa Port Authority", JurisdictionKenya, DocCourtDecision),
		makeDoc("statute", "Companies Act 2020", JurisdictionNigeria, DocStatute),
		makeDoc("journal", "Trends in African IP Law", JurisdictionGhana, DocJournal),
	}

	precedents := ExtractPrecedents(docs)

	require.Len(t, precedents, 2)
	assert.Equal(t, "case", precedents[0].DocumentID)
	assert.Equal(t, "decision", precedents[1].DocumentID)
}

func TestExtractPrecedents_BindingInOwnJurisdiction(t *testing.T) {
	doc := makeDoc("case", "Mwangi v. Attorney General", JurisdictionKenya, DocCaseLaw)

	precedents := ExtractPrecedents([]LegalDocument{doc})

	require.Len(t, precedents, 1)
	p := precedents[0]
	assert.Equal(t, BindingBinding, p.BindingLevel)
	assert.Equal(t, []Jurisdiction{JurisdictionKenya}, p.ApplicableJurisdictions)
	assert.Equal(t, doc.Title, p.CaseName)
	assert.Equal(t, doc.RelevanceScore, p.RelevanceScore)
}

func TestExtractPrecedents_PrincipleFromExcerpt(t *testing.T) {
	doc := makeDoc("case", "Okafor v. Lagos State", JurisdictionNigeria, DocCaseLaw)
	doc.Excerpt = "Directors must avoid conflicts of interest. Further discussion follows."

	precedents := ExtractPrecedents([]LegalDocument{doc})

	require.Len(t, precedents, 1)
	assert.Equal(t, "Directors must avoid conflicts of interest.", precedents[0].Principle)
}

func TestExtractPrecedents_EmptyExcerptFallsBackToTitle(t *testing.T) {
	doc := makeDoc("case", "Okafor v. Lagos State", JurisdictionNigeria, DocCaseLaw)
	doc.Excerpt = ""

	precedents := ExtractPrecedents([]LegalDocument{doc})

	require.Len(t, precedents, 1)
	assert.Contains(t, precedents[0].Principle, doc.Title)
}

func TestExtractPrecedents_NoCaseLaw(t *testing.T) {
	docs := []LegalDocument{
		makeDoc("statute", "Companies Act 2020", JurisdictionNigeria, DocStatute),
	}

	assert.Empty(t, ExtractPrecedents(docs))
}
