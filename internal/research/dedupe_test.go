package research

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDedupe_FirstOccurrenceWins(t *testing.T) {
	first := makeDoc("a", "Companies Act 2020", JurisdictionNigeria, DocStatute)
	first.RelevanceScore = 0.9
	dup := makeDoc("b", "Companies Act 2020", JurisdictionNigeria, DocStatute)
	dup.RelevanceScore = 0.2

	out := Dedupe([]LegalDocument{first, dup})

	require.Len(t, out, 1)
	assert.Equal(t, "a", out[0].ID)
	// No metadata merging: the survivor is the first document untouched.
	assert.Equal(t, 0.9, out[0].RelevanceScore)
}

func TestDedupe_CaseAndWhitespaceInsensitive(t *testing.T) {
	docs := []LegalDocument{
		makeDoc("a", "Companies Act 2020", JurisdictionNigeria, DocStatute),
		makeDoc("b", "COMPANIES  ACT   2020", JurisdictionNigeria, DocStatute),
		makeDoc("c", "  companies act 2020  ", JurisdictionNigeria, DocStatute),
	}

	out := Dedupe(docs)

	require.Len(t, out, 1)
	assert.Equal(t, "a", out[0].ID)
}

func TestDedupe_SameTitleDifferentJurisdictionKept(t *testing.T) {
	docs := []LegalDocument{
		makeDoc("a", "Companies Act 2020", JurisdictionNigeria, DocStatute),
		makeDoc("b", "Companies Act 2020", JurisdictionKenya, DocStatute),
	}

	out := Dedupe(docs)

	assert.Len(t, out, 2)
}

func TestDedupe_EmptyAndSingle(t *testing.T) {
	assert.Empty(t, Dedupe(nil))

	one := []LegalDocument{makeDoc("a", "Land Act", JurisdictionGhana, DocStatute)}
	assert.Equal(t, one, Dedupe(one))
}
