package domain

import (
	"fmt"
	"time"
)

// ItemStatus represents the outcome of processing a single batch item
type ItemStatus string

const (
	ItemStatusSuccess ItemStatus = "success"
	ItemStatusSkipped ItemStatus = "skipped"
	ItemStatusFailed  ItemStatus = "failed"
)

// ItemResult records the outcome of one item in a batch run.
// A skipped item carries a Reason, a failed item carries an Err.
type ItemResult struct {
	Name     string     `json:"name"`
	Status   ItemStatus `json:"status"`
	Reason   string     `json:"reason,omitempty"`
	Err      error      `json:"-"`
	Output   string     `json:"output,omitempty"`
	Selected int        `json:"selected"`
}

// RunReport collects per-item outcomes for one batch run. Items keep
// enumeration order so callers can correlate the report with the input.
type RunReport struct {
	Operation string       `json:"operation"`
	StartedAt time.Time    `json:"started_at"`
	EndedAt   time.Time    `json:"ended_at"`
	Items     []ItemResult `json:"items"`
}

// NewRunReport creates an empty report for the named operation
func NewRunReport(operation string) *RunReport {
	return &RunReport{
		Operation: operation,
		StartedAt: time.Now(),
	}
}

// Add appends one item outcome to the report
func (r *RunReport) Add(item ItemResult) {
	r.Items = append(r.Items, item)
}

// AddSuccess records a successfully processed item and how many records
// survived the filter
func (r *RunReport) AddSuccess(name, output string, selected int) {
	r.Add(ItemResult{
		Name:     name,
		Status:   ItemStatusSuccess,
		Output:   output,
		Selected: selected,
	})
}

// AddSkipped records an item that was skipped with the given reason
func (r *RunReport) AddSkipped(name, reason string) {
	r.Add(ItemResult{Name: name, Status: ItemStatusSkipped, Reason: reason})
}

// AddFailed records an item whose processing failed
func (r *RunReport) AddFailed(name string, err error) {
	r.Add(ItemResult{Name: name, Status: ItemStatusFailed, Err: err, Reason: err.Error()})
}

// Finish stamps the end time and returns the report for chaining
func (r *RunReport) Finish() *RunReport {
	r.EndedAt = time.Now()
	return r
}

// Succeeded returns the number of successful items
func (r *RunReport) Succeeded() int { return r.count(ItemStatusSuccess) }

// Skipped returns the number of skipped items
func (r *RunReport) Skipped() int { return r.count(ItemStatusSkipped) }

// Failed returns the number of failed items
func (r *RunReport) Failed() int { return r.count(ItemStatusFailed) }

func (r *RunReport) count(status ItemStatus) int {
	n := 0
	for _, item := range r.Items {
		if item.Status == status {
			n++
		}
	}
	return n
}

// Summary returns a one-line human-readable summary of the run
func (r *RunReport) Summary() string {
	return fmt.Sprintf("%s: %d processed, %d skipped, %d failed",
		r.Operation, r.Succeeded(), r.Skipped(), r.Failed())
}
