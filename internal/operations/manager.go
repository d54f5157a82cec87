package operations

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// Manager executes registered steps sequentially for one shared date
// range. A step failure is recorded and never aborts the remaining steps;
// steps share no mutable state beyond the run State.
type Manager struct {
	steps []Step
}

// NewManager creates an operation manager
func NewManager() *Manager {
	return &Manager{}
}

// Register appends a step to the run order
func (m *Manager) Register(step Step) {
	m.steps = append(m.steps, step)
}

// Result holds the outcome of a whole run
type Result struct {
	ID        string       `json:"id"`
	Steps     []StepResult `json:"steps"`
	StartedAt time.Time    `json:"started_at"`
	EndedAt   time.Time    `json:"ended_at"`
}

// Failed returns the number of failed steps
func (r *Result) Failed() int {
	n := 0
	for _, s := range r.Steps {
		if s.Status == StepStatusFailed {
			n++
		}
	}
	return n
}

// Run executes all registered steps in registration order
func (m *Manager) Run(ctx context.Context, state *State) *Result {
	result := &Result{
		ID:        uuid.New().String(),
		StartedAt: time.Now(),
	}

	slog.Info("Starting export run",
		slog.String("operation_id", result.ID),
		slog.String("range", state.Range.String()),
		slog.Int("step_count", len(m.steps)))

	for _, step := range m.steps {
		stepStart := time.Now()
		slog.Info("Executing step",
			slog.String("step_id", step.ID()),
			slog.String("step_name", step.Name()))

		err := step.Execute(ctx, state)

		stepResult := StepResult{
			StepID:   step.ID(),
			StepName: step.Name(),
			Duration: time.Since(stepStart),
		}

		switch {
		case err == nil:
			stepResult.Status = StepStatusCompleted
			slog.Info("Step completed",
				slog.String("step_id", step.ID()),
				slog.Duration("duration", stepResult.Duration))
		case IsSkip(err):
			stepResult.Status = StepStatusSkipped
			stepResult.Reason = err.Error()
			slog.Warn("Step skipped",
				slog.String("step_id", step.ID()),
				slog.String("reason", err.Error()))
		default:
			stepResult.Status = StepStatusFailed
			stepResult.Err = err
			stepResult.Reason = err.Error()
			slog.Error("Step failed",
				slog.String("step_id", step.ID()),
				slog.String("error", err.Error()))
		}

		result.Steps = append(result.Steps, stepResult)
	}

	result.EndedAt = time.Now()
	return result
}
