package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func runRoot(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	RootCmd.SetOut(&out)
	RootCmd.SetArgs(args)
	t.Cleanup(func() {
		RootCmd.SetOut(nil)
		RootCmd.SetArgs(nil)
	})
	err := RootCmd.Execute()
	return out.String(), err
}

func TestCompareCommand(t *testing.T) {
	dir := t.TempDir()
	left := writeFile(t, dir, "left.csv", "Littera;Antal\n1;4\n2;5\n2;4\n")
	right := writeFile(t, dir, "right.csv", "1;4\n2;8\n")
	same := writeFile(t, dir, "same.csv", "1;4\n2;9\n")
	outFile := filepath.Join(dir, "result.csv")

	t.Run("CSVWithOutFile", func(t *testing.T) {
		out, err := runRoot(t, "compare", left, right, "--format", "csv", "--out", outFile, "--fail-on-diff=false")
		require.NoError(t, err)

		expected := "Littera,left.csv,right.csv,Lika\n1,4,4,True\n2,9,8,False\n"
		assert.Equal(t, expected, out)

		written, err := os.ReadFile(outFile)
		require.NoError(t, err)
		assert.Equal(t, expected, string(written))
	})

	t.Run("FailOnDiff", func(t *testing.T) {
		_, err := runRoot(t, "compare", left, right, "--format", "csv", "--out", "", "--fail-on-diff")
		assert.ErrorIs(t, err, errSchedulesDiffer)

		_, err = runRoot(t, "compare", left, same, "--format", "csv", "--out", "", "--fail-on-diff")
		assert.NoError(t, err)
	})

	t.Run("SingleFile", func(t *testing.T) {
		out, err := runRoot(t, "compare", left, "--format", "csv", "--out", "", "--fail-on-diff")
		require.NoError(t, err, "a single schedule has no verdict to fail on")
		assert.Equal(t, "Littera,left.csv\n1,4\n2,9\n", out)
	})

	t.Run("UnsupportedFile", func(t *testing.T) {
		doc := writeFile(t, dir, "notes.txt", "1;4\n")
		_, err := runRoot(t, "compare", left, doc, "--format", "csv", "--out", "", "--fail-on-diff=false")
		assert.Error(t, err)
	})

	t.Run("BadConflictPolicy", func(t *testing.T) {
		_, err := runRoot(t, "compare", left, right, "--conflict", "ignore", "--format", "csv", "--out", "")
		assert.Error(t, err)
	})
}
