package valueobjects

// ItemType is the kind of object a streaming URI points at
type ItemType string

const (
	ItemTypeTrack    ItemType = "track"
	ItemTypeAlbum    ItemType = "album"
	ItemTypeArtist   ItemType = "artist"
	ItemTypePlaylist ItemType = "playlist"
	ItemTypeEpisode  ItemType = "episode"
	ItemTypeShow     ItemType = "show"
)

// String returns the string representation
func (t ItemType) String() string {
	return string(t)
}

// IsValid checks if the item type is valid
func (t ItemType) IsValid() bool {
	switch t {
	case ItemTypeTrack, ItemTypeAlbum, ItemTypeArtist,
		ItemTypePlaylist, ItemTypeEpisode, ItemTypeShow:
		return true
	}
	return false
}

// IsPlayable reports whether the item can be sent to the player directly
func (t ItemType) IsPlayable() bool {
	return t == ItemTypeTrack || t == ItemTypeEpisode
}
