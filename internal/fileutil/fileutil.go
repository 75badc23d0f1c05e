// Package fileutil writes generated output files.
package fileutil

import (
	"fmt"
	"os"
	"path/filepath"
)

// ReadableByAll is the file permission mode for generated model sources
// intended to be read by build tools and other users.
const ReadableByAll os.FileMode = 0o644

// DirReadableByAll is the permission mode for directories created to hold
// generated sources.
const DirReadableByAll os.FileMode = 0o755

// WriteGenerated writes data to path, creating missing parent directories.
func WriteGenerated(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, DirReadableByAll); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, ReadableByAll); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	return nil
}
