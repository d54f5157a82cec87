// Package tabular filters tabular data sources (CSV and XLSX) to an
// inclusive date range keyed on a caller-named date column, and runs
// batches of such sources with per-item failure isolation.
package tabular
