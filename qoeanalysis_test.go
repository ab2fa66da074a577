package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFindRuns(t *testing.T) {
	dir := t.TempDir()
	touch := func(name string) {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0644))
	}
	touch("run1.vmaf.json")
	touch("run1.ratio.lpips.log")
	touch("run2.ratio.recv.log")
	touch("unrelated.txt")

	runs := findRuns(dir)
	require.Equal(t, []string{filepath.Join(dir, "run1"), filepath.Join(dir, "run2")}, runs)
}

func TestFindRunsEmptyDir(t *testing.T) {
	require.Empty(t, findRuns(t.TempDir()))
}
