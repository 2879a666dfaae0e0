package xlsxguard

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/xlsxguard-go/pkg/xlsxguard/models"
)

func TestIsCandidate(t *testing.T) {
	tests := []struct {
		name     string
		expected bool
	}{
		{"a.xlsx", true},
		{"~$a.xlsx", false},
		{"b.txt", false},
		{"B.XLSX", false},
		{"report.xlsx.bak", false},
		{"~a.xlsx", true},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, IsCandidate(tt.name), "IsCandidate(%q)", tt.name)
	}
}

func TestCollectCandidates(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.xlsx", "~$a.xlsx", "b.txt", "B.XLSX"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0644))
	}
	require.NoError(t, os.Mkdir(filepath.Join(dir, "nested.xlsx"), 0755))
	writeWorkbook(t, filepath.Join(dir, "nested.xlsx"), "inner.xlsx", "")

	paths, err := CollectCandidates(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(dir, "a.xlsx")}, paths)
}

func TestResolveTarget(t *testing.T) {
	dir := t.TempDir()
	path := writeWorkbook(t, dir, "demo.xlsx", "")

	target, err := ResolveTarget(path)
	require.NoError(t, err)
	assert.Equal(t, path, target.Path)
	assert.False(t, target.IsDir)

	target, err = ResolveTarget(dir)
	require.NoError(t, err)
	assert.True(t, target.IsDir)
	assert.True(t, filepath.IsAbs(target.Path))

	_, err = ResolveTarget(filepath.Join(dir, "missing.xlsx"))
	assert.True(t, errors.Is(err, ErrTargetNotFound))
}

func TestParseCommand(t *testing.T) {
	for _, c := range Commands {
		got, err := ParseCommand(string(c))
		require.NoError(t, err)
		assert.Equal(t, c, got)
	}

	for _, s := range []string{"", "Encrypt", "verify2", "check"} {
		_, err := ParseCommand(s)
		assert.ErrorIs(t, err, ErrUnknownCommand, "ParseCommand(%q)", s)
	}
}

func TestRunDirectoryPartialFailure(t *testing.T) {
	dir := t.TempDir()
	writeWorkbook(t, dir, "a.xlsx", "")
	writeWorkbook(t, dir, "b.xlsx", "other")
	writeWorkbook(t, dir, "c.xlsx", "1234")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "d.xlsx"), []byte("corrupt"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "~$a.xlsx"), []byte("lock"), 0644))

	target, err := ResolveTarget(dir)
	require.NoError(t, err)

	var out bytes.Buffer
	summary, err := Run(CommandEncrypt, target, Options{Password: "1234", Out: &out})
	require.NoError(t, err)

	assert.Equal(t, 2, summary.Succeeded)
	assert.Equal(t, 2, summary.Failed)
	assert.Equal(t, 1, summary.Skipped)
	require.Len(t, summary.Results, 4)

	outcomes := make(map[string]string)
	for _, r := range summary.Results {
		outcomes[r.File] = r.Outcome
	}
	assert.Equal(t, map[string]string{
		"a.xlsx": models.OutcomeEncrypted,
		"b.xlsx": models.OutcomeFailed,
		"c.xlsx": models.OutcomeSkipped,
		"d.xlsx": models.OutcomeFailed,
	}, outcomes)

	assert.Contains(t, out.String(), "b.xlsx: "+ErrUnopenable.Error())
	assert.Contains(t, out.String(), "done: 2 succeeded, 2 failed")
}

func TestRunDirectoryVerify(t *testing.T) {
	dir := t.TempDir()
	writeWorkbook(t, dir, "a.xlsx", "")
	writeWorkbook(t, dir, "b.xlsx", "")

	target, err := ResolveTarget(dir)
	require.NoError(t, err)

	var progress bytes.Buffer
	summary, err := Run(CommandVerify, target, Options{Password: "1234", Progress: &progress})
	require.NoError(t, err)

	assert.Equal(t, 2, summary.Succeeded)
	assert.Equal(t, 0, summary.Failed)
	for _, r := range summary.Results {
		assert.Equal(t, models.OutcomeMatch, r.Outcome, r.File)
		assert.NotNil(t, r.Verify, r.File)
	}
	assert.NotEmpty(t, progress.String())
}

func TestRunEmptyDirectory(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0644))

	var out bytes.Buffer
	summary, err := Run(CommandDecrypt, Target{Path: dir, IsDir: true}, Options{Password: "1234", Out: &out})
	require.NoError(t, err)

	assert.Equal(t, 0, summary.Succeeded+summary.Failed)
	assert.Contains(t, out.String(), "no target files found")
}

func TestRunSingleFileFailure(t *testing.T) {
	path := writeWorkbook(t, t.TempDir(), "locked.xlsx", "1234")

	_, err := Run(CommandDecrypt, Target{Path: path}, Options{Password: "wrong"})
	require.Error(t, err)

	var fileErr *FileError
	require.ErrorAs(t, err, &fileErr)
	assert.Equal(t, "locked.xlsx", fileErr.File)
	assert.Equal(t, CommandDecrypt, fileErr.Op)
	assert.ErrorIs(t, err, ErrUnopenable)
}

func TestRunSingleFile(t *testing.T) {
	path := writeWorkbook(t, t.TempDir(), "demo.xlsx", "")

	summary, err := Run(CommandEncrypt, Target{Path: path}, Options{Password: "1234"})
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Succeeded)
	require.Len(t, summary.Results, 1)
	assert.Equal(t, models.OutcomeEncrypted, summary.Results[0].Outcome)
}

func TestRunRejectsBadInput(t *testing.T) {
	dir := t.TempDir()
	writeWorkbook(t, dir, "a.xlsx", "")
	target := Target{Path: dir, IsDir: true}

	_, err := Run(Command("check"), target, Options{Password: "1234"})
	assert.ErrorIs(t, err, ErrUnknownCommand)

	_, err = Run(CommandEncrypt, target, Options{})
	assert.ErrorIs(t, err, ErrEmptyPassword)

	// nothing was touched
	state, err := Probe(filepath.Join(dir, "a.xlsx"), "1234")
	require.NoError(t, err)
	assert.Equal(t, StateUnprotected, state)
}
