package operations

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pdxcli/internal/config"
	"pdxcli/internal/daterange"
)

type fakeStep struct {
	id     string
	err    error
	called bool
}

func (f *fakeStep) ID() string   { return f.id }
func (f *fakeStep) Name() string { return f.id }
func (f *fakeStep) Execute(_ context.Context, _ *State) error {
	f.called = true
	return f.err
}

func testState(t *testing.T) *State {
	t.Helper()
	r, err := daterange.Parse("2023-12-24", "2023-12-31")
	require.NoError(t, err)
	return NewState(r, &config.Config{})
}

func TestManager_Run_SequentialWithIsolation(t *testing.T) {
	first := &fakeStep{id: "first"}
	failing := &fakeStep{id: "failing", err: errors.New("boom")}
	skipped := &fakeStep{id: "skipped", err: Skip("not configured")}
	last := &fakeStep{id: "last"}

	m := NewManager()
	for _, s := range []Step{first, failing, skipped, last} {
		m.Register(s)
	}

	result := m.Run(context.Background(), testState(t))

	// every step ran despite the failure in the middle
	assert.True(t, first.called)
	assert.True(t, failing.called)
	assert.True(t, skipped.called)
	assert.True(t, last.called)

	require.Len(t, result.Steps, 4)
	assert.Equal(t, StepStatusCompleted, result.Steps[0].Status)
	assert.Equal(t, StepStatusFailed, result.Steps[1].Status)
	assert.Equal(t, "boom", result.Steps[1].Reason)
	assert.Equal(t, StepStatusSkipped, result.Steps[2].Status)
	assert.Equal(t, StepStatusCompleted, result.Steps[3].Status)

	assert.Equal(t, 1, result.Failed())
	assert.NotEmpty(t, result.ID)
	assert.False(t, result.EndedAt.Before(result.StartedAt))
}

func TestManager_Run_NoSteps(t *testing.T) {
	result := NewManager().Run(context.Background(), testState(t))
	assert.Empty(t, result.Steps)
	assert.Equal(t, 0, result.Failed())
}

func TestIsSkip(t *testing.T) {
	assert.True(t, IsSkip(Skip("reason")))
	assert.False(t, IsSkip(errors.New("reason")))
	assert.False(t, IsSkip(nil))
}
