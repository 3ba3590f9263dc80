package models

// ChannelLookupResult is the outcome of resolving a channel to its uploads playlist.
type ChannelLookupResult struct {
	ChannelID         string
	UploadsPlaylistID string
}

// Found reports whether the lookup produced a usable uploads playlist.
func (r ChannelLookupResult) Found() bool {
	return r.UploadsPlaylistID != ""
}
