package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// Paths contains all output locations derived from the shared output
// directory. This is the single source of truth for output file layout.
//
// Output structure:
//
//	<output>/
//	  ├── spotify_journal_<start>_to_<end>.txt
//	  ├── screenshots/   (copies of in-range files, names unchanged)
//	  └── logs/          (application logs)
type Paths struct {
	OutputDir      string
	ScreenshotsDir string
	LogsDir        string
}

// NewPaths builds the output layout rooted at outputDir
func NewPaths(outputDir string) *Paths {
	return &Paths{
		OutputDir:      outputDir,
		ScreenshotsDir: filepath.Join(outputDir, "screenshots"),
		LogsDir:        filepath.Join(outputDir, "logs"),
	}
}

// JournalPath returns the journal file path for the given range boundaries
func (p *Paths) JournalPath(startDate, endDate string) string {
	filename := fmt.Sprintf("spotify_journal_%s_to_%s.txt", startDate, endDate)
	return filepath.Join(p.OutputDir, filename)
}

// GetLogPath returns the path for the named log file
func (p *Paths) GetLogPath(filename string) string {
	return filepath.Join(p.LogsDir, filename)
}

// EnsureDirectories creates the output and logs directories. The
// screenshots subdirectory is created by the screenshots step only when
// that step actually runs.
func (p *Paths) EnsureDirectories() error {
	for _, dir := range []string{p.OutputDir, p.LogsDir} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	return nil
}
