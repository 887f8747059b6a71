package utils

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDumpFileName(t *testing.T) {
	now := time.Date(2023, 1, 5, 3, 4, 5, 999, time.FixedZone("EST", -5*3600))
	om := NewOutputManager("")

	assert.Equal(t, ".", om.BaseOutputDir)
	assert.Equal(t, "gokz-dump-2023-01-05_08-04-05.csv", om.DumpFileName(now, "csv"))
	assert.Equal(t, filepath.Join("out", "gokz-dump-2023-01-05_08-04-05.json"),
		NewOutputManager("out").DumpFilePath(now, "json"))
}

func TestEnsureOutputDirAndSize(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b")
	om := NewOutputManager(dir)
	require.NoError(t, om.EnsureOutputDirExists())

	path := filepath.Join(dir, "x")
	require.NoError(t, os.WriteFile(path, []byte("hello"), 0644))
	size, err := om.GetFileSize(path)
	require.NoError(t, err)
	assert.Equal(t, int64(5), size)

	_, err = om.GetFileSize(filepath.Join(dir, "missing"))
	assert.Error(t, err)
}
