// Package screenshots copies filesystem-timestamped files that fall inside
// a date range into a screenshots subdirectory of the output location.
// Selection is by modification time only; file content is never inspected.
package screenshots

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"pdxcli/internal/daterange"
	apperrors "pdxcli/internal/errors"
	"pdxcli/internal/files"
	"pdxcli/pkg/contracts/domain"
)

// SubdirName is the subdirectory created under the output directory
const SubdirName = "screenshots"

// Filter selects and copies files by modification time
type Filter struct {
	discovery *files.Discovery
	manager   *files.Manager
}

// NewFilter creates a screenshots filter
func NewFilter() *Filter {
	return &Filter{
		discovery: files.NewDiscovery(),
		manager:   files.NewManager(),
	}
}

// Run scans sourceDir (non-recursive) and copies every regular file whose
// modification time falls within r into <outputDir>/screenshots, keeping
// original filenames. A copy failure on one file is logged and recorded in
// the report without aborting the scan. The returned error covers only
// conditions that prevent the scan entirely: a missing source directory or
// an uncreatable destination.
func (f *Filter) Run(sourceDir, outputDir string, r daterange.Range) (*domain.RunReport, error) {
	report := domain.NewRunReport(SubdirName)

	if !f.manager.FileExists(sourceDir) {
		return nil, apperrors.NewNotFoundError(
			fmt.Sprintf("screenshots directory not found: %s", sourceDir), nil)
	}

	destDir := filepath.Join(outputDir, SubdirName)
	if err := f.manager.CreateDirectory(destDir); err != nil {
		return nil, apperrors.NewStorageError(
			fmt.Sprintf("failed to create %s", destDir), err)
	}

	found, err := f.discovery.FindRegularFiles(sourceDir)
	if err != nil {
		return nil, apperrors.NewStorageError(
			fmt.Sprintf("failed to scan %s", sourceDir), err)
	}

	for _, file := range found {
		if !r.Contains(file.ModTime) {
			continue
		}

		dst := filepath.Join(destDir, file.Name)
		if err := f.manager.CopyFile(file.Path, dst); err != nil {
			slog.Error("Error copying screenshot",
				slog.String("file", file.Name),
				slog.String("error", err.Error()))
			report.AddFailed(file.Name, err)
			continue
		}

		slog.Info("Copied screenshot", slog.String("file", file.Name))
		report.AddSuccess(file.Name, dst, 1)
	}

	return report.Finish(), nil
}
