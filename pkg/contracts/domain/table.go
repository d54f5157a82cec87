package domain

// Table holds tabular data read from a delimited or spreadsheet source:
// a header row plus data rows in source order. Filtering operates on a
// Table and returns a new Table sharing the same headers.
type Table struct {
	Headers []string   `json:"headers"`
	Rows    [][]string `json:"rows"`
}

// ColumnIndex returns the position of the named column, or -1 if absent
func (t *Table) ColumnIndex(name string) int {
	for i, h := range t.Headers {
		if h == name {
			return i
		}
	}
	return -1
}

// RowCount returns the number of data rows (excluding the header)
func (t *Table) RowCount() int {
	return len(t.Rows)
}
