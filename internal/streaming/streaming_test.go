package streaming

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pdxcli/internal/daterange"
	apperrors "pdxcli/internal/errors"
	"pdxcli/pkg/contracts/domain"
)

func writeJSON(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func mustRange(t *testing.T, start, end string) daterange.Range {
	t.Helper()
	r, err := daterange.Parse(start, end)
	require.NoError(t, err)
	return r
}

const sampleExport = `[
  {"ts":"2023-12-20T08:00:00Z","platform":"ios","ms_played":10000,
   "master_metadata_track_name":"Holocene",
   "master_metadata_album_artist_name":"Bon Iver",
   "master_metadata_album_album_name":"Bon Iver, Bon Iver"},
  {"ts":"2023-12-24T00:00:00Z","platform":"ios","ms_played":214000,
   "master_metadata_track_name":"White Winter Hymnal",
   "master_metadata_album_artist_name":"Fleet Foxes",
   "master_metadata_album_album_name":"Fleet Foxes"},
  {"ts":"2023-12-31T23:59:59Z","platform":"android","ms_played":187500,
   "master_metadata_track_name":"River",
   "master_metadata_album_artist_name":"Joni Mitchell",
   "master_metadata_album_album_name":"Blue"},
  {"ts":"2024-01-02T10:00:00Z","platform":"windows","ms_played":99000,
   "master_metadata_track_name":null,
   "master_metadata_album_artist_name":null,
   "master_metadata_album_album_name":null}
]`

func TestParseFile(t *testing.T) {
	path := writeJSON(t, t.TempDir(), "Streaming_History_Audio_2023_0.json", sampleExport)

	records, err := ParseFile(path)
	require.NoError(t, err)
	require.Len(t, records, 4)

	assert.Equal(t, "2023-12-20T08:00:00Z", records[0].TS)
	require.NotNil(t, records[1].TrackName)
	assert.Equal(t, "White Winter Hymnal", *records[1].TrackName)
	assert.Nil(t, records[3].TrackName)
}

func TestParseFile_NotFound(t *testing.T) {
	_, err := ParseFile(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestParseFile_NotAnArray(t *testing.T) {
	path := writeJSON(t, t.TempDir(), "object.json", `{"ts":"2023-12-25T00:00:00Z"}`)

	_, err := ParseFile(path)
	require.Error(t, err)
	assert.True(t, apperrors.IsParsing(err))
}

func TestParseFile_BadTS(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"missing ts", `[{"platform":"ios"}]`},
		{"malformed ts", `[{"ts":"25 Dec 2023"}]`},
		{"date only", `[{"ts":"2023-12-25"}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeJSON(t, t.TempDir(), "bad.json", tt.content)
			_, err := ParseFile(path)
			require.Error(t, err)
			assert.True(t, apperrors.IsParsing(err))
		})
	}
}

func TestFilter_BoundaryTimestamps(t *testing.T) {
	path := writeJSON(t, t.TempDir(), "export.json", sampleExport)
	records, err := ParseFile(path)
	require.NoError(t, err)

	// end boundary is end-of-day: both midnight-of-start and 23:59:59-of-end
	// entries are retained
	filtered, err := Filter(records, mustRange(t, "2023-12-24", "2023-12-31"))
	require.NoError(t, err)

	require.Len(t, filtered, 2)
	assert.Equal(t, "2023-12-24T00:00:00Z", filtered[0].TS)
	assert.Equal(t, "2023-12-31T23:59:59Z", filtered[1].TS)
}

func TestFilter_SubsetAndOrder(t *testing.T) {
	records := []domain.PlayRecord{
		{TS: "2023-12-26T12:00:00Z"},
		{TS: "2023-12-24T12:00:00Z"},
		{TS: "2023-11-01T12:00:00Z"},
		{TS: "2023-12-30T12:00:00Z"},
	}

	filtered, err := Filter(records, mustRange(t, "2023-12-24", "2023-12-31"))
	require.NoError(t, err)

	require.Len(t, filtered, 3)
	assert.Equal(t, "2023-12-26T12:00:00Z", filtered[0].TS)
	assert.Equal(t, "2023-12-24T12:00:00Z", filtered[1].TS)
	assert.Equal(t, "2023-12-30T12:00:00Z", filtered[2].TS)

	// idempotence: filtering the result again yields the identical set
	again, err := Filter(filtered, mustRange(t, "2023-12-24", "2023-12-31"))
	require.NoError(t, err)
	assert.Equal(t, filtered, again)
}

func TestFilter_EmptyInput(t *testing.T) {
	filtered, err := Filter(nil, mustRange(t, "2023-12-24", "2023-12-31"))
	require.NoError(t, err)
	assert.Empty(t, filtered)
}
