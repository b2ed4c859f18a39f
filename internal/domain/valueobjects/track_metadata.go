package valueobjects

import (
	"fmt"

	"github.com/vuongmanhnghia/sailfmt/internal/display"
)

// TrackMetadata contains what the player shows about a track
type TrackMetadata struct {
	URI          string   `json:"uri,omitempty" yaml:"uri,omitempty"`
	Title        string   `json:"title" yaml:"title"`
	Artists      []Artist `json:"artists,omitempty" yaml:"artists,omitempty"`
	Album        string   `json:"album,omitempty" yaml:"album,omitempty"`
	AlbumArtists []Artist `json:"album_artists,omitempty" yaml:"album_artists,omitempty"`
	DurationMs   int64    `json:"duration_ms" yaml:"duration_ms"`
	Images       []Image  `json:"images,omitempty" yaml:"images,omitempty"`
	Explicit     bool     `json:"explicit,omitempty" yaml:"explicit,omitempty"`
}

// GetName returns the track title
func (m *TrackMetadata) GetName() string {
	return m.Title
}

// ArtistNames returns the credited artists joined for display
func (m *TrackMetadata) ArtistNames() string {
	return display.JoinNames[Artist](display.Sequence[Artist](m.Artists))
}

// AlbumArtistNames returns the album artists joined for display
func (m *TrackMetadata) AlbumArtistNames() string {
	return display.JoinNames[Artist](display.Sequence[Artist](m.AlbumArtists))
}

// DisplayName returns the best display name for the track
func (m *TrackMetadata) DisplayName() string {
	if artists := m.ArtistNames(); artists != "" {
		return fmt.Sprintf("%s - %s", artists, m.Title)
	}
	return m.Title
}

// DurationFormatted returns duration in M:SS format
func (m *TrackMetadata) DurationFormatted() string {
	return display.DurationMsToString(float64(m.DurationMs))
}

// CoverURL returns the cover image for the requested size
func (m *TrackMetadata) CoverURL(size int) string {
	return display.ChooseImage[Image](display.Sequence[Image](m.Images), size)
}
