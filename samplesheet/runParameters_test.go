package samplesheet

import (
	"path/filepath"
	"testing"

	"github.com/beevik/etree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadRunParameters(t *testing.T) {
	reads, err := ReadRunParameters(filepath.Join("testdata", "RunParameters.xml"))
	require.NoError(t, err)
	assert.Equal(t, ReadLengths{"[Reads]", "151", "151"}, reads)
	assert.Equal(t, []string{"151", "151"}, reads.Lengths())
}

func TestReadRunParametersRead1Only(t *testing.T) {
	reads, err := ReadRunParameters(filepath.Join("testdata", "RunParameters_read1.xml"))
	require.NoError(t, err)
	assert.Equal(t, ReadLengths{"[Reads]", "151"}, reads)
}

func TestReadRunParametersMissingReadLength(t *testing.T) {
	// Read1 outside of Setup does not count
	_, err := ReadRunParameters(filepath.Join("testdata", "RunParameters_noreads.xml"))
	assert.ErrorIs(t, err, ErrMissingReadLength)
}

func TestParseRunParametersRead2Only(t *testing.T) {
	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromString(`<RunParameters><Setup><Read2>75</Read2></Setup></RunParameters>`))
	reads, err := parseRunParameters(doc, "inline")
	require.NoError(t, err)
	assert.Equal(t, ReadLengths{"[Reads]", "75"}, reads)
}

func TestParseRunParametersOrder(t *testing.T) {
	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromString(`<RunParameters><Setup><Read2>75</Read2><Read1>151</Read1></Setup></RunParameters>`))
	reads, err := parseRunParameters(doc, "inline")
	require.NoError(t, err)
	assert.Equal(t, ReadLengths{"[Reads]", "151", "75"}, reads)
}

func TestParseRunParametersEmptyDocument(t *testing.T) {
	_, err := parseRunParameters(etree.NewDocument(), "empty")
	assert.ErrorIs(t, err, ErrMissingReadLength)
}

func TestReadRunParametersNotFound(t *testing.T) {
	_, err := ReadRunParameters(filepath.Join(t.TempDir(), "RunParameters.xml"))
	assert.Error(t, err)
}
