package operations

import (
	"pdxcli/internal/config"
	"pdxcli/internal/daterange"
	"pdxcli/pkg/contracts/domain"
)

// State is the shared state of one export run: the date range, the loaded
// configuration, and the per-step item reports collected along the way.
// Steps run sequentially, so no locking discipline is needed.
type State struct {
	Range   daterange.Range
	Config  *config.Config
	Paths   *config.Paths
	reports map[string]*domain.RunReport
}

// NewState creates run state for the given range and configuration
func NewState(r daterange.Range, cfg *config.Config) *State {
	return &State{
		Range:   r,
		Config:  cfg,
		Paths:   config.NewPaths(cfg.Output.Dir),
		reports: make(map[string]*domain.RunReport),
	}
}

// AddReport stores the item report produced by the named step
func (s *State) AddReport(stepID string, report *domain.RunReport) {
	s.reports[stepID] = report
}

// Report returns the item report for the named step, or nil
func (s *State) Report(stepID string) *domain.RunReport {
	return s.reports[stepID]
}
