package valueobjects

// PlaybackState represents what the player is doing with the current track
type PlaybackState string

const (
	PlaybackStateStopped     PlaybackState = "stopped"
	PlaybackStateLoading     PlaybackState = "loading"
	PlaybackStatePlaying     PlaybackState = "playing"
	PlaybackStatePaused      PlaybackState = "paused"
	PlaybackStateUnavailable PlaybackState = "unavailable"
)

// String returns the string representation
func (s PlaybackState) String() string {
	return string(s)
}

// IsValid checks if the state is valid
func (s PlaybackState) IsValid() bool {
	switch s {
	case PlaybackStateStopped, PlaybackStateLoading, PlaybackStatePlaying,
		PlaybackStatePaused, PlaybackStateUnavailable:
		return true
	}
	return false
}

// IsActive reports whether a track is loaded in the player
func (s PlaybackState) IsActive() bool {
	return s == PlaybackStatePlaying || s == PlaybackStatePaused || s == PlaybackStateLoading
}
