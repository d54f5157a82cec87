package tabular

import (
	"fmt"
	"time"

	"pdxcli/internal/daterange"
	apperrors "pdxcli/internal/errors"
	"pdxcli/pkg/contracts/domain"
)

// timestampLayouts are the accepted forms for values in a date column,
// tried in order
var timestampLayouts = []string{
	"2006-01-02T15:04:05Z",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// Filter loads the tabular file at path and returns the subset of rows
// whose dateColumn value falls within r, boundaries inclusive. Column
// order, headers, and row order are preserved. It returns a NOT_FOUND
// error when the file does not exist and a PARSING error when the date
// column is absent or a value in it cannot be parsed.
func Filter(path, dateColumn string, r daterange.Range) (*domain.Table, error) {
	table, err := ReadTable(path)
	if err != nil {
		return nil, err
	}

	col := table.ColumnIndex(dateColumn)
	if col < 0 {
		return nil, apperrors.NewParsingError(
			fmt.Sprintf("date column %q not found in %s", dateColumn, path), nil)
	}

	filtered := &domain.Table{Headers: table.Headers}
	for i, row := range table.Rows {
		if col >= len(row) {
			return nil, apperrors.NewParsingError(
				fmt.Sprintf("row %d of %s has no value in date column %q", i+1, path, dateColumn), nil)
		}

		ts, err := parseTimestamp(row[col])
		if err != nil {
			return nil, apperrors.NewParsingError(
				fmt.Sprintf("row %d of %s: bad date value %q", i+1, path, row[col]), err)
		}

		if r.Contains(ts) {
			filtered.Rows = append(filtered.Rows, row)
		}
	}

	return filtered, nil
}

// parseTimestamp parses a date-column value, accepting full timestamps and
// bare dates. All values are interpreted as UTC.
func parseTimestamp(value string) (time.Time, error) {
	var lastErr error
	for _, layout := range timestampLayouts {
		t, err := time.ParseInLocation(layout, value, time.UTC)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}
