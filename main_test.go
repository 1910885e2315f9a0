package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/biosustain/library-to-samplesheet/samplesheet"
)

var (
	runParameters = filepath.Join("samplesheet", "testdata", "RunParameters.xml")
	librarySheet  = filepath.Join("samplesheet", "testdata", "library.csv")
	adapterTable  = filepath.Join("etc", "adapters.tsv")
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	output := filepath.Join(dir, "SampleSheet.csv")
	logFile := filepath.Join(dir, "log")
	_, err := execute(t, "-r", runParameters, "-l", librarySheet, "-o", output, "-a", adapterTable, "--log", logFile)
	require.NoError(t, err)

	got, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Contains(t, string(got), "[Reads]\n151\n151\n[Settings]\nAdapter,CTGTCTCTTATACACATCT\n")
	assert.Contains(t, string(got), "S1,Sample1,A01,i7-01,ATTACTCG,i5-01,AAGGTT,P1\n")
	assert.FileExists(t, logFile)
}

func TestRunLongFlags(t *testing.T) {
	output := filepath.Join(t.TempDir(), "SampleSheet.csv")
	_, err := execute(t,
		"--run_parameters", runParameters,
		"--library_sheet", librarySheet,
		"--output", output,
		"--adapters", adapterTable,
	)
	require.NoError(t, err)
	assert.FileExists(t, output)
}

func TestRunInputNotFound(t *testing.T) {
	dir := t.TempDir()
	output := filepath.Join(dir, "SampleSheet.csv")

	_, err := execute(t, "-r", filepath.Join(dir, "RunParameters.xml"), "-l", librarySheet, "-o", output, "-a", adapterTable)
	assert.ErrorIs(t, err, samplesheet.ErrInputNotFound)
	assert.Contains(t, err.Error(), "RunParameters")

	_, err = execute(t, "-r", runParameters, "-l", filepath.Join(dir, "library.csv"), "-o", output, "-a", adapterTable)
	assert.ErrorIs(t, err, samplesheet.ErrInputNotFound)
	assert.Contains(t, err.Error(), "library sheet")
	assert.NoFileExists(t, output)
}

func TestRunOutputAlreadyExists(t *testing.T) {
	output := filepath.Join(t.TempDir(), "SampleSheet.csv")
	require.NoError(t, os.WriteFile(output, []byte("keep\n"), 0644))

	_, err := execute(t, "-r", runParameters, "-l", librarySheet, "-o", output, "-a", adapterTable)
	assert.ErrorIs(t, err, samplesheet.ErrOutputAlreadyExists)
	got, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Equal(t, "keep\n", string(got))
}

func TestRunRequiredFlags(t *testing.T) {
	_, err := execute(t, "-r", runParameters)
	assert.Error(t, err)
}

func TestKits(t *testing.T) {
	out, err := execute(t, "kits", "-a", adapterTable)
	require.NoError(t, err)
	assert.Contains(t, out, "plexWell\n")
	assert.Contains(t, out, "plexWell_i7_only\n")
	assert.Contains(t, out, "TruSeq\n")
}
