package exporter

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"pdxcli/internal/daterange"
	"pdxcli/pkg/contracts/domain"
)

// JournalWriter writes filtered streaming history as human-readable
// journal entries, one six-line block per record plus a separator line.
type JournalWriter struct{}

// NewJournalWriter creates a new journal writer
func NewJournalWriter() *JournalWriter {
	return &JournalWriter{}
}

// journalSeparator terminates each journal block
const journalSeparator = "---"

// WriteJournal writes one block per record, in input order, to a file named
// from the range boundaries inside outputDir. The directory is created if
// absent and an existing journal for the same range is overwritten.
// Optional metadata fields render as the placeholder value; they never fail
// the export. Returns the path of the written file.
func (j *JournalWriter) WriteJournal(records []domain.PlayRecord, outputDir string, r daterange.Range) (string, error) {
	return j.WriteJournalPart(records, outputDir, r, "")
}

// WriteJournalPart writes a journal for one part of a multi-file export.
// The part label is appended to the range-derived filename so each export
// part keeps its own journal instead of overwriting its siblings.
func (j *JournalWriter) WriteJournalPart(records []domain.PlayRecord, outputDir string, r daterange.Range, label string) (string, error) {
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	filename := fmt.Sprintf("spotify_journal_%s_to_%s%s.txt", r.StartDate(), r.EndDate(), label)
	outputPath := filepath.Join(outputDir, filename)

	file, err := os.Create(outputPath)
	if err != nil {
		return "", fmt.Errorf("failed to create journal file: %w", err)
	}
	defer file.Close()

	w := bufio.NewWriter(file)
	for _, record := range records {
		fmt.Fprintf(w, "Date: %s\n", record.TS)
		fmt.Fprintf(w, "Track: %s\n", domain.StringOr(record.TrackName))
		fmt.Fprintf(w, "Artist: %s\n", domain.StringOr(record.ArtistName))
		fmt.Fprintf(w, "Album: %s\n", domain.StringOr(record.AlbumName))
		fmt.Fprintf(w, "Platform: %s\n", domain.StringOr(record.Platform))
		fmt.Fprintf(w, "Time Played: %d ms\n", domain.Int64Or(record.MSPlayed))
		fmt.Fprintln(w, journalSeparator)
	}
	if err := w.Flush(); err != nil {
		return "", fmt.Errorf("failed to write journal file: %w", err)
	}

	slog.Info("Journal written",
		slog.String("path", outputPath),
		slog.Int("entry_count", len(records)))

	return outputPath, nil
}
