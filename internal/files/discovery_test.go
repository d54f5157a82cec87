package files

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func touch(t *testing.T, dir, name string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0644))
}

func TestDiscovery_FindStreamingHistory(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "Streaming_History_Audio_2023_1.json")
	touch(t, dir, "Streaming_History_Audio_2023_0.json")
	touch(t, dir, "Streaming_History_Video_2023_0.json") // wrong prefix
	touch(t, dir, "Streaming_History_Audio_2023_2.txt")  // wrong suffix
	touch(t, dir, "ReadMeFirst.pdf")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "Streaming_History_Audio_dir.json"), 0755))

	found, err := NewDiscovery().FindStreamingHistory(dir)
	require.NoError(t, err)

	require.Len(t, found, 2)
	// sorted by name, so part 0 comes first
	assert.Equal(t, "Streaming_History_Audio_2023_0.json", found[0].Name)
	assert.Equal(t, "Streaming_History_Audio_2023_1.json", found[1].Name)
	assert.Equal(t, filepath.Join(dir, found[0].Name), found[0].Path)
}

func TestDiscovery_FindStreamingHistory_MissingDir(t *testing.T) {
	_, err := NewDiscovery().FindStreamingHistory(filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)
}

func TestDiscovery_FindRegularFiles(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "a.png")
	touch(t, dir, "b.jpg")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "subdir"), 0755))

	found, err := NewDiscovery().FindRegularFiles(dir)
	require.NoError(t, err)

	require.Len(t, found, 2)
	for _, f := range found {
		assert.False(t, f.ModTime.IsZero())
	}
}

func TestDiscovery_FindRegularFiles_EmptyDir(t *testing.T) {
	found, err := NewDiscovery().FindRegularFiles(t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, found)
}
