// Package streaming parses Spotify extended streaming history files and
// filters their entries to a date range.
package streaming

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"pdxcli/internal/daterange"
	apperrors "pdxcli/internal/errors"
	"pdxcli/pkg/contracts/domain"
)

// TSLayout is the timestamp format used by the export: UTC, second
// precision, no fractional seconds
const TSLayout = "2006-01-02T15:04:05Z"

// ParseFile reads a streaming history file as a single JSON array of play
// records. It returns a NOT_FOUND error when the file is absent and a
// PARSING error when the top-level value is not an array or an entry
// carries a missing or malformed ts field.
func ParseFile(path string) ([]domain.PlayRecord, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("file not found: %s", path), err)
	}
	if err != nil {
		return nil, apperrors.NewStorageError(fmt.Sprintf("failed to read %s", path), err)
	}

	var records []domain.PlayRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, apperrors.NewParsingError(
			fmt.Sprintf("%s is not a JSON array of play records", path), err)
	}

	for i, record := range records {
		if _, err := ParseTS(record.TS); err != nil {
			return nil, apperrors.NewParsingError(
				fmt.Sprintf("entry %d of %s has a bad ts value %q", i, path, record.TS), err)
		}
	}

	return records, nil
}

// ParseTS parses an entry timestamp. An empty ts is an error; the export
// always stamps every play.
func ParseTS(ts string) (time.Time, error) {
	if ts == "" {
		return time.Time{}, fmt.Errorf("missing ts field")
	}
	return time.ParseInLocation(TSLayout, ts, time.UTC)
}

// Filter returns the ordered subsequence of records whose timestamp falls
// within r, boundaries inclusive. Input order is preserved and records are
// never mutated.
func Filter(records []domain.PlayRecord, r daterange.Range) ([]domain.PlayRecord, error) {
	var filtered []domain.PlayRecord
	for i, record := range records {
		ts, err := ParseTS(record.TS)
		if err != nil {
			return nil, apperrors.NewParsingError(
				fmt.Sprintf("entry %d has a bad ts value %q", i, record.TS), err)
		}
		if r.Contains(ts) {
			filtered = append(filtered, record)
		}
	}
	return filtered, nil
}
