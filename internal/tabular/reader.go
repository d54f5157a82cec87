package tabular

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	apperrors "pdxcli/internal/errors"
	"pdxcli/pkg/contracts/domain"
)

// ReadTable loads a tabular source into a Table. The first row is the
// header. CSV and XLSX sources are supported, selected by file extension;
// XLSX reads the first sheet.
func ReadTable(path string) (*domain.Table, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("file not found: %s", path), err)
	}

	var rows [][]string
	var err error

	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xls":
		rows, err = readSpreadsheetRows(path)
	default:
		rows, err = readCSVRows(path)
	}
	if err != nil {
		return nil, err
	}

	if len(rows) == 0 {
		return nil, apperrors.NewParsingError(fmt.Sprintf("no header row in %s", path), nil)
	}

	return &domain.Table{
		Headers: rows[0],
		Rows:    rows[1:],
	}, nil
}

// readCSVRows reads all rows of a delimited file
func readCSVRows(path string) ([][]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, apperrors.NewStorageError(fmt.Sprintf("failed to open %s", path), err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	// Exports in the wild carry ragged rows; keep them rather than fail.
	reader.FieldsPerRecord = -1

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, apperrors.NewParsingError(fmt.Sprintf("malformed CSV in %s", path), err)
	}
	return rows, nil
}

// readSpreadsheetRows reads all rows of the first sheet of an Excel file
func readSpreadsheetRows(path string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, apperrors.NewParsingError(fmt.Sprintf("failed to open spreadsheet %s", path), err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, apperrors.NewParsingError(fmt.Sprintf("no sheets in %s", path), nil)
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, apperrors.NewParsingError(fmt.Sprintf("failed to read sheet %s of %s", sheets[0], path), err)
	}
	return rows, nil
}
