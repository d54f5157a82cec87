// Package shared provides common utilities and test helpers used across
// the codebase. It should only contain generic functionality with no
// domain-specific logic.
package shared
