// Package exporter writes filtered data to its output forms: CSV files for
// tabular subsets and plain-text journal files for streaming history.
package exporter
