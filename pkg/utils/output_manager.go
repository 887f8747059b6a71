package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// DumpFilePrefix starts every dump file name
const DumpFilePrefix = "gokz-dump-"

// OutputManager handles output file naming and placement
type OutputManager struct {
	BaseOutputDir string
}

// NewOutputManager creates a new output manager
func NewOutputManager(baseOutputDir string) *OutputManager {
	if baseOutputDir == "" {
		baseOutputDir = "."
	}
	return &OutputManager{
		BaseOutputDir: baseOutputDir,
	}
}

// DumpFileName returns gokz-dump-<UTC YYYY-MM-DD_HH-MM-SS>.<ext>
func (om *OutputManager) DumpFileName(now time.Time, ext string) string {
	return fmt.Sprintf("%s%s.%s", DumpFilePrefix, FileTimestamp(now), ext)
}

// DumpFilePath generates a full path for a dump file
func (om *OutputManager) DumpFilePath(now time.Time, ext string) string {
	return filepath.Join(om.BaseOutputDir, om.DumpFileName(now, ext))
}

// GetFileSize returns the size of a file in bytes
func (om *OutputManager) GetFileSize(filePath string) (int64, error) {
	fileInfo, err := os.Stat(filePath)
	if err != nil {
		return 0, err
	}
	return fileInfo.Size(), nil
}

// EnsureOutputDirExists ensures the base output directory exists
func (om *OutputManager) EnsureOutputDirExists() error {
	return os.MkdirAll(om.BaseOutputDir, 0755)
}
