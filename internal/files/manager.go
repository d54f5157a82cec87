package files

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
)

// Manager provides file management operations
type Manager struct{}

// NewManager creates a new file manager instance
func NewManager() *Manager {
	return &Manager{}
}

// FileExists checks if a file or directory exists at the given path
func (m *Manager) FileExists(path string) bool {
	_, err := os.Stat(path)
	exists := err == nil

	slog.Debug("FileExists check",
		slog.String("path", path),
		slog.Bool("exists", exists))

	return exists
}

// CreateDirectory creates a directory with all parent directories
func (m *Manager) CreateDirectory(path string) error {
	slog.Debug("Creating directory", slog.String("path", path))
	return os.MkdirAll(path, 0755)
}

// CopyFile copies a file from source to destination, creating the
// destination directory if needed
func (m *Manager) CopyFile(src, dst string) error {
	slog.Debug("Copying file",
		slog.String("src", src),
		slog.String("dst", dst))

	// Ensure destination directory exists
	dstDir := filepath.Dir(dst)
	if err := os.MkdirAll(dstDir, 0755); err != nil {
		return fmt.Errorf("failed to create destination directory: %w", err)
	}

	srcFile, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("failed to open source file: %w", err)
	}
	defer srcFile.Close()

	dstFile, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("failed to create destination file: %w", err)
	}
	defer dstFile.Close()

	if _, err := io.Copy(dstFile, srcFile); err != nil {
		return fmt.Errorf("failed to copy file content: %w", err)
	}

	// Sync to ensure write is complete
	return dstFile.Sync()
}
