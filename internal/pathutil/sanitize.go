// Package pathutil validates caller-supplied filesystem paths before the
// CLI or MCP server writes to them.
package pathutil

import (
	"fmt"
	"os"
	"path/filepath"
)

// SanitizeOutputPath cleans an output file path and resolves it to an
// absolute one. Writing through a symlink is refused; a new file in an
// existing directory is fine.
func SanitizeOutputPath(path string) (string, error) {
	abs, err := filepath.Abs(filepath.Clean(path))
	if err != nil {
		return "", fmt.Errorf("pathutil: cannot resolve absolute path: %w", err)
	}

	info, err := os.Lstat(abs)
	switch {
	case err == nil:
		if info.Mode()&os.ModeSymlink != 0 {
			return "", fmt.Errorf("pathutil: refusing to write to symlink: %s", abs)
		}
	case os.IsNotExist(err):
		// new file
	default:
		return "", fmt.Errorf("pathutil: cannot stat path: %w", err)
	}

	return abs, nil
}
