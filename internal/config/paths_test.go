package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPaths(t *testing.T) {
	p := NewPaths("/data/out")

	assert.Equal(t, "/data/out", p.OutputDir)
	assert.Equal(t, filepath.Join("/data/out", "screenshots"), p.ScreenshotsDir)
	assert.Equal(t, filepath.Join("/data/out", "logs"), p.LogsDir)
}

func TestPaths_JournalPath(t *testing.T) {
	p := NewPaths("/data/out")

	got := p.JournalPath("2023-12-24", "2023-12-31")
	assert.Equal(t, filepath.Join("/data/out", "spotify_journal_2023-12-24_to_2023-12-31.txt"), got)
}

func TestPaths_EnsureDirectories(t *testing.T) {
	base := t.TempDir()
	p := NewPaths(filepath.Join(base, "out"))

	require.NoError(t, p.EnsureDirectories())

	for _, dir := range []string{p.OutputDir, p.LogsDir} {
		info, err := os.Stat(dir)
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	}

	// screenshots dir is created lazily by the screenshots step
	_, err := os.Stat(p.ScreenshotsDir)
	assert.True(t, os.IsNotExist(err))
}
