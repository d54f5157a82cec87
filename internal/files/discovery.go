package files

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// Streaming history export parts follow a fixed naming convention; files
// outside it are ignored by discovery.
const (
	StreamingHistoryPrefix = "Streaming_History_Audio"
	StreamingHistorySuffix = ".json"
)

// FileInfo represents information about a discovered file
type FileInfo struct {
	Path    string
	Name    string
	Size    int64
	ModTime time.Time
}

// Discovery provides file discovery operations
type Discovery struct{}

// NewDiscovery creates a new file discovery instance
func NewDiscovery() *Discovery {
	return &Discovery{}
}

// FindStreamingHistory scans dir (non-recursive) for streaming history
// export parts: files named with the fixed prefix and suffix. Results are
// sorted by name so multi-part exports are processed in part order.
func (d *Discovery) FindStreamingHistory(dir string) ([]FileInfo, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", dir, err)
	}

	var files []FileInfo
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		name := entry.Name()
		if !strings.HasPrefix(name, StreamingHistoryPrefix) ||
			!strings.HasSuffix(name, StreamingHistorySuffix) {
			continue
		}

		info, err := entry.Info()
		if err != nil {
			continue
		}

		files = append(files, FileInfo{
			Path:    filepath.Join(dir, name),
			Name:    name,
			Size:    info.Size(),
			ModTime: info.ModTime(),
		})
	}

	sort.Slice(files, func(i, j int) bool {
		return files[i].Name < files[j].Name
	})

	return files, nil
}

// FindRegularFiles scans dir (non-recursive) and returns every regular
// file with its modification time, in directory enumeration order.
func (d *Discovery) FindRegularFiles(dir string) ([]FileInfo, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", dir, err)
	}

	var files []FileInfo
	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}

		info, err := entry.Info()
		if err != nil {
			continue
		}

		files = append(files, FileInfo{
			Path:    filepath.Join(dir, entry.Name()),
			Name:    entry.Name(),
			Size:    info.Size(),
			ModTime: info.ModTime(),
		})
	}

	return files, nil
}
