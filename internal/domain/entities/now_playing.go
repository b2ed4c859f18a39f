package entities

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/vuongmanhnghia/sailfmt/internal/display"
	"github.com/vuongmanhnghia/sailfmt/internal/domain/valueobjects"
)

// NowPlaying is the player's view of the current track
type NowPlaying struct {
	// Identity of the play request, renewed on every track change
	ID       string `json:"id"`
	TrackURI string `json:"track_uri"`

	State      valueobjects.PlaybackState  `json:"state"`
	PositionMs int64                       `json:"position_ms"`
	DurationMs int64                       `json:"duration_ms"`
	Metadata   *valueobjects.TrackMetadata `json:"metadata,omitempty"`

	UpdatedAt time.Time `json:"updated_at"`
}

// NewNowPlaying creates a stopped entry for a track
func NewNowPlaying(trackURI string) *NowPlaying {
	return &NowPlaying{
		ID:        uuid.New().String(),
		TrackURI:  trackURI,
		State:     valueobjects.PlaybackStateStopped,
		UpdatedAt: time.Now(),
	}
}

// ChangeTrack switches to another track and starts a new play request
func (n *NowPlaying) ChangeTrack(trackURI string) {
	n.ID = uuid.New().String()
	n.TrackURI = trackURI
	n.State = valueobjects.PlaybackStateStopped
	n.PositionMs = 0
	n.DurationMs = 0
	n.Metadata = nil
	n.UpdatedAt = time.Now()
}

// SetMetadata attaches track metadata. A known duration fills DurationMs
// when the player has not reported one yet.
func (n *NowPlaying) SetMetadata(metadata *valueobjects.TrackMetadata) {
	n.Metadata = metadata
	if metadata != nil && n.DurationMs == 0 {
		n.DurationMs = metadata.DurationMs
	}
	n.UpdatedAt = time.Now()
}

// MarkLoading marks the track as loading at a position
func (n *NowPlaying) MarkLoading(positionMs int64) {
	n.State = valueobjects.PlaybackStateLoading
	n.PositionMs = positionMs
	n.UpdatedAt = time.Now()
}

// MarkPlaying marks the track as playing
func (n *NowPlaying) MarkPlaying(positionMs, durationMs int64) {
	n.setPlayerStatus(valueobjects.PlaybackStatePlaying, positionMs, durationMs)
}

// MarkPaused marks the track as paused
func (n *NowPlaying) MarkPaused(positionMs, durationMs int64) {
	n.setPlayerStatus(valueobjects.PlaybackStatePaused, positionMs, durationMs)
}

// MarkStopped marks the track as stopped and rewinds it
func (n *NowPlaying) MarkStopped() {
	n.State = valueobjects.PlaybackStateStopped
	n.PositionMs = 0
	n.UpdatedAt = time.Now()
}

// MarkUnavailable marks the track as not playable
func (n *NowPlaying) MarkUnavailable() {
	n.State = valueobjects.PlaybackStateUnavailable
	n.UpdatedAt = time.Now()
}

// IsPlaying checks if the track is currently playing
func (n *NowPlaying) IsPlaying() bool {
	return n.State == valueobjects.PlaybackStatePlaying
}

// DisplayName returns the best display name for the track
func (n *NowPlaying) DisplayName() string {
	if n.Metadata != nil {
		return n.Metadata.DisplayName()
	}
	return n.TrackURI
}

// Progress returns "position / duration", both as M:SS
func (n *NowPlaying) Progress() string {
	return fmt.Sprintf("%s / %s",
		display.DurationMsToString(float64(n.PositionMs)),
		display.DurationMsToString(float64(n.DurationMs)))
}

// Remaining returns the time left as M:SS
func (n *NowPlaying) Remaining() string {
	left := n.DurationMs - n.PositionMs
	if left < 0 {
		left = 0
	}
	return display.DurationMsToString(float64(left))
}

func (n *NowPlaying) setPlayerStatus(state valueobjects.PlaybackState, positionMs, durationMs int64) {
	n.State = state
	n.PositionMs = positionMs
	n.DurationMs = durationMs
	n.UpdatedAt = time.Now()
}
