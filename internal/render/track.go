package render

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/vuongmanhnghia/sailfmt/internal/domain/entities"
	"github.com/vuongmanhnghia/sailfmt/internal/domain/valueobjects"
	"github.com/vuongmanhnghia/sailfmt/internal/validation"
)

const maxTitleLength = 50

// TrackCard renders the metadata of a single track
func TrackCard(meta *valueobjects.TrackMetadata, imageSize int) string {
	if meta == nil {
		return NewCard().
			Description("Nothing to show").
			Color(ColorInfo).
			Build()
	}

	card := NewCard().
		Title(validation.TruncateString(meta.Title, maxTitleLength)).
		Field("Artists", meta.ArtistNames()).
		Field("Album", meta.Album).
		Field("Duration", meta.DurationFormatted()).
		Thumbnail(meta.CoverURL(imageSize))

	if meta.Explicit {
		card.Footer("Explicit")
	}
	return card.Build()
}

// NowPlayingCard renders the player state together with the track
func NowPlayingCard(np *entities.NowPlaying, imageSize int) string {
	if np == nil {
		return TrackCard(nil, imageSize)
	}

	card := NewCard().
		Title(validation.TruncateString(np.DisplayName(), maxTitleLength)).
		Color(stateColor(np.State))

	if np.Metadata != nil {
		card.Field("Album", np.Metadata.Album).
			Thumbnail(np.Metadata.CoverURL(imageSize))
	}

	return card.
		Field("State", np.State.String()).
		Field("Progress", np.Progress()).
		Footer(fmt.Sprintf("-%s", np.Remaining())).
		Build()
}

func stateColor(state valueobjects.PlaybackState) lipgloss.Color {
	switch state {
	case valueobjects.PlaybackStatePlaying:
		return ColorSuccess
	case valueobjects.PlaybackStatePaused, valueobjects.PlaybackStateLoading:
		return ColorWarning
	case valueobjects.PlaybackStateUnavailable:
		return ColorError
	default:
		return ColorInfo
	}
}
