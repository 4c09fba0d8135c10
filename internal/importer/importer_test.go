package importer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLinesFullRow(t *testing.T) {
	rows := ParseLines("a.b@x.com, Alice , Brown ,https://ln/a,https://fb/a\n")
	require.Len(t, rows, 1)
	assert.Equal(t, Row{
		Email:      "a.b@x.com",
		Name:       "Alice",
		FamilyName: "Brown",
		Linkedin:   "https://ln/a",
		Facebook:   "https://fb/a",
	}, rows[0])
}

func TestParseLinesInfersMissingFields(t *testing.T) {
	rows := ParseLines("sara.mansouri@esprit.tn")
	require.Len(t, rows, 1)
	assert.Equal(t, "Sara", rows[0].Name)
	assert.Equal(t, "Mansouri", rows[0].FamilyName)
	assert.Equal(t, "https://www.linkedin.com/in/sara-mansouri", rows[0].Linkedin)
	assert.Equal(t, "https://www.facebook.com/sara.mansouri", rows[0].Facebook)
}

func TestParseLinesFillsOnlyMissing(t *testing.T) {
	// Name supplied, family name missing: only the gap is inferred.
	rows := ParseLines("sara.mansouri@esprit.tn,Sarra,,https://custom/ln")
	require.Len(t, rows, 1)
	assert.Equal(t, "Sarra", rows[0].Name)
	assert.Equal(t, "Mansouri", rows[0].FamilyName)
	assert.Equal(t, "https://custom/ln", rows[0].Linkedin)
	assert.Equal(t, "https://www.facebook.com/sara.mansouri", rows[0].Facebook)
}

func TestParseLinesNonEspritKeepsNamesEmpty(t *testing.T) {
	// Social links are guessed for any domain; names only for esprit.tn.
	rows := ParseLines("jane.doe@gmail.com")
	require.Len(t, rows, 1)
	assert.Empty(t, rows[0].Name)
	assert.Empty(t, rows[0].FamilyName)
	assert.Equal(t, "https://www.linkedin.com/in/jane-doe", rows[0].Linkedin)
}

func TestParseLinesSkipsBlankAndEmptyEmail(t *testing.T) {
	raw := "\r\n\n,Alice,Brown\n   \na.b@esprit.tn\n"
	rows := ParseLines(raw)
	require.Len(t, rows, 1)
	assert.Equal(t, "a.b@esprit.tn", rows[0].Email)
}

func TestParseLinesLowercasesEmail(t *testing.T) {
	rows := ParseLines("Ahmed.BenSalem@ESPRIT.TN")
	require.Len(t, rows, 1)
	assert.Equal(t, "ahmed.bensalem@esprit.tn", rows[0].Email)
	assert.Equal(t, "Ahmed", rows[0].Name)
	assert.Equal(t, "Bensalem", rows[0].FamilyName)
}

func TestParseLinesWindowsLineEndings(t *testing.T) {
	rows := ParseLines("a.b@esprit.tn\r\nc.d@esprit.tn\r\n")
	require.Len(t, rows, 2)
	assert.Equal(t, "a.b@esprit.tn", rows[0].Email)
	assert.Equal(t, "c.d@esprit.tn", rows[1].Email)
}
