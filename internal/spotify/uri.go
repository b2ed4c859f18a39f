package spotify

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/vuongmanhnghia/sailfmt/internal/domain/valueobjects"
	"github.com/vuongmanhnghia/sailfmt/internal/errors"
)

var (
	// spotify:<type>:<id>
	uriRegex = regexp.MustCompile(`^spotify:(track|album|artist|playlist|episode|show):([a-zA-Z0-9]+)$`)
	// open.spotify.com/<type>/<id>, optionally with a locale segment
	urlRegex = regexp.MustCompile(`^https?://open\.spotify\.com/(?:intl-[a-z]{2}/)?(track|album|artist|playlist|episode|show)/([a-zA-Z0-9]+)`)
)

// IsSpotifyURL checks if URL is a Spotify URL
func IsSpotifyURL(urlStr string) bool {
	return strings.Contains(urlStr, "spotify.com/")
}

// IsSpotifyURI checks if the string is a spotify: URI
func IsSpotifyURI(uri string) bool {
	return strings.HasPrefix(uri, "spotify:")
}

// ParseURI splits a spotify:<type>:<id> URI
func ParseURI(uri string) (valueobjects.ItemType, string, error) {
	matches := uriRegex.FindStringSubmatch(strings.TrimSpace(uri))
	if len(matches) < 3 {
		return "", "", fmt.Errorf("%w: %q", errors.ErrInvalidURI, uri)
	}
	return valueobjects.ItemType(matches[1]), matches[2], nil
}

// ParseURL parses a Spotify URL and returns the type and ID
func ParseURL(urlStr string) (valueobjects.ItemType, string, error) {
	matches := urlRegex.FindStringSubmatch(strings.TrimSpace(urlStr))
	if len(matches) < 3 {
		return "", "", fmt.Errorf("%w: %q", errors.ErrInvalidURL, urlStr)
	}
	return valueobjects.ItemType(matches[1]), matches[2], nil
}

// Parse accepts either a URI or an open.spotify.com URL
func Parse(input string) (valueobjects.ItemType, string, error) {
	if IsSpotifyURI(input) {
		return ParseURI(input)
	}
	return ParseURL(input)
}

// ToURI builds the canonical URI for an item
func ToURI(itemType valueobjects.ItemType, id string) string {
	return fmt.Sprintf("spotify:%s:%s", itemType, id)
}
