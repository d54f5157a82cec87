package operations

import (
	"context"
	"errors"
	"time"
)

// Step represents a single step of an export run
type Step interface {
	// ID returns the unique identifier for this step
	ID() string

	// Name returns the human-readable name for this step
	Name() string

	// Execute runs the step against the shared run state. Returning a
	// *SkipError marks the step skipped rather than failed.
	Execute(ctx context.Context, state *State) error
}

// StepStatus represents the outcome of a step
type StepStatus string

const (
	StepStatusCompleted StepStatus = "completed"
	StepStatusFailed    StepStatus = "failed"
	StepStatusSkipped   StepStatus = "skipped"
)

// SkipError signals that a step cannot run in the current configuration
// (missing path value, absent source directory) and was skipped without
// effect. It is a notice, not a failure.
type SkipError struct {
	Reason string
}

func (e *SkipError) Error() string { return e.Reason }

// Skip builds a SkipError with the given reason
func Skip(reason string) error {
	return &SkipError{Reason: reason}
}

// IsSkip reports whether err marks a skipped step
func IsSkip(err error) bool {
	var skip *SkipError
	return errors.As(err, &skip)
}

// StepResult records the outcome of one step execution
type StepResult struct {
	StepID   string        `json:"step_id"`
	StepName string        `json:"step_name"`
	Status   StepStatus    `json:"status"`
	Reason   string        `json:"reason,omitempty"`
	Err      error         `json:"-"`
	Duration time.Duration `json:"duration"`
}
