package validation

import (
	"fmt"
	"log/slog"
	"os"

	"pdxcli/internal/tabular"
)

// ManifestValidator checks a batch manifest before processing starts.
// Structural problems (missing fields, duplicate outputs) are errors;
// a missing input file is only a warning, since the batch processor
// skips those per item.
type ManifestValidator struct {
	logger *slog.Logger
}

// NewManifestValidator creates a manifest validator
func NewManifestValidator(logger *slog.Logger) *ManifestValidator {
	if logger == nil {
		logger = slog.Default()
	}
	return &ManifestValidator{logger: logger}
}

// Validate checks every source entry of the manifest
func (v *ManifestValidator) Validate(m *tabular.Manifest) error {
	if len(m.Sources) == 0 {
		return fmt.Errorf("manifest lists no sources")
	}

	outputs := make(map[string]int)
	for i, src := range m.Sources {
		if src.Path == "" {
			return fmt.Errorf("source %d: path is required", i)
		}
		if src.DateColumn == "" {
			return fmt.Errorf("source %d (%s): date_column is required", i, src.Path)
		}
		if src.OutputPath == "" {
			return fmt.Errorf("source %d (%s): output is required", i, src.Path)
		}

		if prev, dup := outputs[src.OutputPath]; dup {
			return fmt.Errorf("source %d and source %d write to the same output %s",
				prev, i, src.OutputPath)
		}
		outputs[src.OutputPath] = i

		if _, err := os.Stat(src.Path); os.IsNotExist(err) {
			v.logger.Warn("Manifest source does not exist, it will be skipped",
				slog.String("path", src.Path))
		}
	}

	return nil
}
