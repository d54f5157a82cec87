package tabular

import (
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v2"

	"pdxcli/internal/daterange"
	"pdxcli/internal/exporter"
	"pdxcli/pkg/contracts/domain"
)

// Source describes one batch item: an input file, the name of its date
// column, and where to write the filtered subset
type Source struct {
	Path       string `yaml:"path"`
	DateColumn string `yaml:"date_column"`
	OutputPath string `yaml:"output"`
}

// Manifest is the YAML document consumed by the batch processor
type Manifest struct {
	Sources []Source `yaml:"sources"`
}

// LoadManifest reads a batch manifest from a YAML file
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest %s: %w", path, err)
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse manifest %s: %w", path, err)
	}
	return &m, nil
}

// Processor applies the date-range filter to a sequence of tabular sources
type Processor struct {
	writer *exporter.CSVWriter
}

// NewProcessor creates a batch processor
func NewProcessor() *Processor {
	return &Processor{writer: exporter.NewCSVWriter("")}
}

// Process filters each source independently and writes the surviving rows
// to the source's output path. Items are processed in input order. A
// missing input file is skipped with a notice; a parse or write failure is
// recorded against that item only. One bad item never aborts its siblings.
func (p *Processor) Process(sources []Source, r daterange.Range) *domain.RunReport {
	report := domain.NewRunReport("tabular")

	for _, src := range sources {
		if _, err := os.Stat(src.Path); os.IsNotExist(err) {
			slog.Warn("File not found, skipping", slog.String("path", src.Path))
			report.AddSkipped(src.Path, "file not found")
			continue
		}

		slog.Info("Processing file",
			slog.String("path", src.Path),
			slog.String("date_column", src.DateColumn),
			slog.String("range", r.String()))

		filtered, err := Filter(src.Path, src.DateColumn, r)
		if err != nil {
			slog.Error("Failed to filter file",
				slog.String("path", src.Path),
				slog.String("error", err.Error()))
			report.AddFailed(src.Path, err)
			continue
		}

		if err := p.writer.WriteSimpleCSV(src.OutputPath, filtered.Headers, filtered.Rows); err != nil {
			slog.Error("Failed to write filtered data",
				slog.String("path", src.OutputPath),
				slog.String("error", err.Error()))
			report.AddFailed(src.Path, err)
			continue
		}

		slog.Info("Filtered data saved",
			slog.String("path", src.OutputPath),
			slog.Int("rows_selected", filtered.RowCount()))
		report.AddSuccess(src.Path, src.OutputPath, filtered.RowCount())
	}

	return report.Finish()
}
