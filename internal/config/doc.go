// Package config provides application configuration loaded from
// environment variables (PDX_ prefix) merged with an optional YAML file,
// plus the derived output path layout.
//
// Source and output directories are intentionally not validated for
// existence at load time: a missing or unset path aborts only the affected
// processing step with a user-facing notice, never the whole run.
package config
