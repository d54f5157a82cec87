// Package files provides file discovery and management operations:
// non-recursive directory scans for export parts and timestamped files,
// plus existence checks, directory creation, and copies.
package files
