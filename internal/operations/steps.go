package operations

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	apperrors "pdxcli/internal/errors"
	"pdxcli/internal/exporter"
	"pdxcli/internal/files"
	"pdxcli/internal/screenshots"
	"pdxcli/internal/streaming"
	"pdxcli/pkg/contracts/domain"
)

// Step identifiers
const (
	StepIDStreaming   = "streaming"
	StepIDScreenshots = "screenshots"
)

// Step names
const (
	StepNameStreaming   = "Spotify Journal Export"
	StepNameScreenshots = "Screenshot Selection"
)

// StreamingJournalStep discovers streaming history export parts, filters
// each to the run's date range, and writes one journal file per part.
type StreamingJournalStep struct {
	discovery *files.Discovery
	manager   *files.Manager
	journal   *exporter.JournalWriter
}

// NewStreamingJournalStep creates the streaming journal step
func NewStreamingJournalStep() *StreamingJournalStep {
	return &StreamingJournalStep{
		discovery: files.NewDiscovery(),
		manager:   files.NewManager(),
		journal:   exporter.NewJournalWriter(),
	}
}

// ID implements Step
func (s *StreamingJournalStep) ID() string { return StepIDStreaming }

// Name implements Step
func (s *StreamingJournalStep) Name() string { return StepNameStreaming }

// Execute runs discovery and per-part filter + journal export. A failure
// on one part is recorded in the report and does not abort the others.
func (s *StreamingJournalStep) Execute(_ context.Context, state *State) error {
	cfg := state.Config
	if cfg.Sources.SpotifyDir == "" {
		return Skip("spotify source directory not configured")
	}
	if cfg.Output.Dir == "" {
		return Skip("output directory not configured")
	}
	if !s.manager.FileExists(cfg.Sources.SpotifyDir) {
		return Skip(fmt.Sprintf("spotify source directory not found: %s", cfg.Sources.SpotifyDir))
	}

	parts, err := s.discovery.FindStreamingHistory(cfg.Sources.SpotifyDir)
	if err != nil {
		return apperrors.NewStorageError("failed to scan spotify source directory", err)
	}
	if len(parts) == 0 {
		slog.Warn("No streaming history files found",
			slog.String("dir", cfg.Sources.SpotifyDir))
	}

	report := domain.NewRunReport(StepIDStreaming)
	for _, part := range parts {
		slog.Info("Processing streaming history file", slog.String("file", part.Name))

		records, err := streaming.ParseFile(part.Path)
		if err != nil {
			report.AddFailed(part.Name, err)
			continue
		}

		filtered, err := streaming.Filter(records, state.Range)
		if err != nil {
			report.AddFailed(part.Name, err)
			continue
		}

		path, err := s.journal.WriteJournalPart(filtered, cfg.Output.Dir, state.Range, partLabel(part.Name))
		if err != nil {
			report.AddFailed(part.Name, err)
			continue
		}

		report.AddSuccess(part.Name, path, len(filtered))
	}

	state.AddReport(s.ID(), report.Finish())
	return nil
}

// partLabel derives the journal filename suffix from an export part name:
// Streaming_History_Audio_2023_0.json -> _2023_0
func partLabel(name string) string {
	label := strings.TrimPrefix(name, files.StreamingHistoryPrefix)
	return strings.TrimSuffix(label, files.StreamingHistorySuffix)
}

// ScreenshotsStep copies modification-time-filtered files into the
// screenshots subdirectory of the output location.
type ScreenshotsStep struct {
	filter *screenshots.Filter
}

// NewScreenshotsStep creates the screenshots step
func NewScreenshotsStep() *ScreenshotsStep {
	return &ScreenshotsStep{filter: screenshots.NewFilter()}
}

// ID implements Step
func (s *ScreenshotsStep) ID() string { return StepIDScreenshots }

// Name implements Step
func (s *ScreenshotsStep) Name() string { return StepNameScreenshots }

// Execute runs the filesystem timestamp filter. Missing configuration or a
// missing source directory skips the step without effect.
func (s *ScreenshotsStep) Execute(_ context.Context, state *State) error {
	cfg := state.Config
	if cfg.Sources.ScreenshotsDir == "" {
		return Skip("screenshots source directory not configured")
	}
	if cfg.Output.Dir == "" {
		return Skip("output directory not configured")
	}

	report, err := s.filter.Run(cfg.Sources.ScreenshotsDir, cfg.Output.Dir, state.Range)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return Skip(err.Error())
		}
		return err
	}

	state.AddReport(s.ID(), report)
	return nil
}
