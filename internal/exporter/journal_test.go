package exporter

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pdxcli/internal/daterange"
	"pdxcli/pkg/contracts/domain"
)

func strPtr(s string) *string { return &s }
func intPtr(n int64) *int64   { return &n }

func testRange(t *testing.T) daterange.Range {
	t.Helper()
	r, err := daterange.Parse("2023-12-24", "2023-12-31")
	require.NoError(t, err)
	return r
}

func TestJournalWriter_WriteJournal(t *testing.T) {
	outputDir := filepath.Join(t.TempDir(), "out")
	records := []domain.PlayRecord{
		{
			TS:         "2023-12-25T09:15:00Z",
			Platform:   strPtr("ios"),
			MSPlayed:   intPtr(214000),
			TrackName:  strPtr("White Winter Hymnal"),
			ArtistName: strPtr("Fleet Foxes"),
			AlbumName:  strPtr("Fleet Foxes"),
		},
		{
			TS:         "2023-12-26T21:40:11Z",
			Platform:   strPtr("android"),
			MSPlayed:   intPtr(187500),
			TrackName:  strPtr("River"),
			ArtistName: strPtr("Joni Mitchell"),
			AlbumName:  strPtr("Blue"),
		},
	}

	path, err := NewJournalWriter().WriteJournal(records, outputDir, testRange(t))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(outputDir, "spotify_journal_2023-12-24_to_2023-12-31.txt"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	content := string(data)

	assert.Contains(t, content, "Date: 2023-12-25T09:15:00Z\n")
	assert.Contains(t, content, "Track: White Winter Hymnal\n")
	assert.Contains(t, content, "Artist: Joni Mitchell\n")
	assert.Contains(t, content, "Time Played: 214000 ms\n")

	// one six-line block plus separator per record, input order preserved
	blocks := strings.Split(strings.TrimSuffix(content, "---\n"), "---\n")
	require.Len(t, blocks, 2)
	assert.Contains(t, blocks[0], "Fleet Foxes")
	assert.Contains(t, blocks[1], "Joni Mitchell")
}

func TestJournalWriter_MissingOptionalFields(t *testing.T) {
	records := []domain.PlayRecord{
		{TS: "2023-12-25T09:15:00Z"},
	}

	path, err := NewJournalWriter().WriteJournal(records, t.TempDir(), testRange(t))
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	content := string(data)

	assert.Contains(t, content, "Track: (unknown)\n")
	assert.Contains(t, content, "Artist: (unknown)\n")
	assert.Contains(t, content, "Platform: (unknown)\n")
	assert.Contains(t, content, "Time Played: 0 ms\n")
}

func TestJournalWriter_EmptyInputWritesEmptyFile(t *testing.T) {
	path, err := NewJournalWriter().WriteJournal(nil, t.TempDir(), testRange(t))
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Empty(t, data)
}

func TestJournalWriter_OverwritesPreviousRun(t *testing.T) {
	outputDir := t.TempDir()
	r := testRange(t)
	w := NewJournalWriter()

	_, err := w.WriteJournal([]domain.PlayRecord{{TS: "2023-12-25T00:00:00Z"}, {TS: "2023-12-26T00:00:00Z"}}, outputDir, r)
	require.NoError(t, err)

	path, err := w.WriteJournal([]domain.PlayRecord{{TS: "2023-12-27T00:00:00Z"}}, outputDir, r)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(string(data), "Date: "))
}
