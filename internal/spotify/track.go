package spotify

import (
	"fmt"

	"github.com/vuongmanhnghia/sailfmt/internal/display"
	"github.com/vuongmanhnghia/sailfmt/internal/domain/valueobjects"
)

// Track represents a Spotify track
type Track struct {
	ID          string      `json:"id" yaml:"id"`
	URI         string      `json:"uri" yaml:"uri"`
	Name        string      `json:"name" yaml:"name"`
	Artists     []Artist    `json:"artists" yaml:"artists"`
	Album       Album       `json:"album" yaml:"album"`
	DurationMs  int64       `json:"duration_ms" yaml:"duration_ms"`
	Explicit    bool        `json:"explicit" yaml:"explicit"`
	ExternalIDs ExternalIDs `json:"external_ids" yaml:"external_ids"`
}

// ExternalIDs represents external identifiers for a track
type ExternalIDs struct {
	ISRC string `json:"isrc" yaml:"isrc"`
}

// Artist represents a Spotify artist
type Artist struct {
	Name string `json:"name" yaml:"name"`
	URI  string `json:"uri" yaml:"uri"`
}

// GetName returns the artist name
func (a Artist) GetName() string {
	return a.Name
}

// Album represents a Spotify album
type Album struct {
	Name    string   `json:"name" yaml:"name"`
	URI     string   `json:"uri" yaml:"uri"`
	Artists []Artist `json:"artists" yaml:"artists"`
	Images  []Image  `json:"images" yaml:"images"`
}

// GetName returns the album name
func (a Album) GetName() string {
	return a.Name
}

// Image is one size of an album cover
type Image struct {
	URL    string `json:"url" yaml:"url"`
	Width  int    `json:"width" yaml:"width"`
	Height int    `json:"height" yaml:"height"`
}

// GetURL returns the image location
func (i Image) GetURL() string {
	return i.URL
}

// Paging is a page of items as returned by list endpoints
type Paging[T any] struct {
	Items []T    `json:"items" yaml:"items"`
	Next  string `json:"next" yaml:"next"`
	Total int    `json:"total" yaml:"total"`
}

// ArtistNames returns the track artists joined for display
func (t *Track) ArtistNames() string {
	return display.JoinNames[Artist](display.Sequence[Artist](t.Artists))
}

// DurationFormatted returns the track length as M:SS
func (t *Track) DurationFormatted() string {
	return display.DurationMsToString(float64(t.DurationMs))
}

// CoverURL returns the album cover for the requested size
func (t *Track) CoverURL(size int) string {
	return display.ChooseImage[Image](display.Sequence[Image](t.Album.Images), size)
}

// ToSearchQuery converts a track to a search query
func (t *Track) ToSearchQuery() string {
	if len(t.Artists) == 0 {
		return t.Name
	}
	// Format: "Artist - Track Name"
	return fmt.Sprintf("%s - %s", t.Artists[0].Name, t.Name)
}

// GetISRC returns the ISRC code if available
func (t *Track) GetISRC() string {
	return t.ExternalIDs.ISRC
}

// Metadata converts the track into player metadata
func (t *Track) Metadata() *valueobjects.TrackMetadata {
	meta := &valueobjects.TrackMetadata{
		URI:          t.URI,
		Title:        t.Name,
		Artists:      toArtists(t.Artists),
		Album:        t.Album.Name,
		AlbumArtists: toArtists(t.Album.Artists),
		DurationMs:   t.DurationMs,
		Explicit:     t.Explicit,
	}

	if len(t.Album.Images) > 0 {
		meta.Images = make([]valueobjects.Image, 0, len(t.Album.Images))
		for _, img := range t.Album.Images {
			meta.Images = append(meta.Images, valueobjects.Image{
				URL:    img.URL,
				Width:  img.Width,
				Height: img.Height,
			})
		}
	}

	return meta
}

func toArtists(artists []Artist) []valueobjects.Artist {
	if len(artists) == 0 {
		return nil
	}
	out := make([]valueobjects.Artist, 0, len(artists))
	for _, a := range artists {
		out = append(out, valueobjects.Artist{Name: a.Name, URI: a.URI})
	}
	return out
}
