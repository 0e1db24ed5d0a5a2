package fileutil

import (
	"fmt"
	"os"
)

// ReplaceAtomic writes data to tmpPath and renames it over path, so readers
// see either the old content or the new content, never a partial write. The
// original file's permissions are kept when it exists. A failed rename leaves
// tmpPath behind for inspection.
func ReplaceAtomic(path, tmpPath string, data []byte) error {
	mode := os.FileMode(0644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}
	if err := os.WriteFile(tmpPath, data, mode); err != nil {
		return fmt.Errorf("failed to write %s: %w", tmpPath, err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("failed to replace %s: %w", path, err)
	}
	return nil
}
