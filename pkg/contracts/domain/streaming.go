package domain

// PlayRecord represents one entry of a Spotify extended streaming history
// export. Only TS is required; the metadata fields are optional and may be
// null in the export, so they are pointers with a documented placeholder
// policy at render time (see journal exporter).
type PlayRecord struct {
	TS         string  `json:"ts" validate:"required"`
	Platform   *string `json:"platform"`
	MSPlayed   *int64  `json:"ms_played"`
	TrackName  *string `json:"master_metadata_track_name"`
	ArtistName *string `json:"master_metadata_album_artist_name"`
	AlbumName  *string `json:"master_metadata_album_album_name"`
}

// PlaceholderValue is substituted for optional metadata fields that are
// absent or null in the export. A partial record is never treated as an
// error; only a missing or malformed TS fails parsing.
const PlaceholderValue = "(unknown)"

// StringOr returns the pointed-to string or the placeholder when nil
func StringOr(s *string) string {
	if s == nil {
		return PlaceholderValue
	}
	return *s
}

// Int64Or returns the pointed-to value or zero when nil
func Int64Or(n *int64) int64 {
	if n == nil {
		return 0
	}
	return *n
}
