// Package operations orchestrates an export run: a sequence of steps
// executed in order for one shared date range, each step isolated so a
// failure or a missing configuration value never aborts its siblings.
package operations
