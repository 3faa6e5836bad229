// Package cliutil provides utilities for CLI operations.
package cliutil

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Writef writes formatted output to the writer.
// If the write fails, it logs to stderr (useful for debugging).
func Writef(w io.Writer, format string, args ...any) {
	if _, err := fmt.Fprintf(w, format, args...); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "write error: %v\n", err)
	}
}

// RejectSymlinkOutput refuses to write through an existing symlink, so a
// crafted link cannot redirect CLI output to an unexpected location.
func RejectSymlinkOutput(cleanedPath string) error {
	info, err := os.Lstat(cleanedPath)
	if os.IsNotExist(err) {
		// File doesn't exist yet — safe to write.
		return nil
	}
	if err != nil {
		return fmt.Errorf("cliutil: checking output path: %w", err)
	}
	if info.Mode()&os.ModeSymlink != 0 {
		return fmt.Errorf("cliutil: refusing to write to symlink: %s", cleanedPath)
	}
	return nil
}

// WriteOutputFile writes data to path with restrictive permissions, after
// cleaning the path and rejecting symlink targets.
func WriteOutputFile(path string, data []byte) error {
	cleaned := filepath.Clean(path)
	if err := RejectSymlinkOutput(cleaned); err != nil {
		return err
	}
	if err := os.WriteFile(cleaned, data, 0o600); err != nil {
		return fmt.Errorf("cliutil: writing %s: %w", cleaned, err)
	}
	return nil
}
