package validation

import (
	"fmt"
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/vuongmanhnghia/sailfmt/internal/errors"
	"github.com/vuongmanhnghia/sailfmt/internal/spotify"
)

// ValidateURL validates if a string is a valid URL
func ValidateURL(input string) error {
	if input == "" {
		return fmt.Errorf("%w: URL cannot be empty", errors.ErrInvalidURL)
	}

	_, err := url.ParseRequestURI(input)
	if err != nil {
		return fmt.Errorf("%w: %v", errors.ErrInvalidURL, err)
	}

	return nil
}

// ValidateSpotifyInput accepts a spotify: URI or an open.spotify.com URL
func ValidateSpotifyInput(input string) error {
	input = SanitizeInput(input)
	if input == "" {
		return fmt.Errorf("%w: link cannot be empty", errors.ErrInvalidInput)
	}

	if spotify.IsSpotifyURI(input) {
		_, _, err := spotify.ParseURI(input)
		return err
	}

	if err := ValidateURL(input); err != nil {
		return err
	}
	_, _, err := spotify.ParseURL(input)
	return err
}

// ValidateDuration validates a duration in milliseconds
func ValidateDuration(durationMs int64) error {
	if durationMs < 0 {
		return fmt.Errorf("%w: got %d", errors.ErrInvalidDuration, durationMs)
	}
	return nil
}

// ValidateImageSize validates a requested image edge length in pixels
func ValidateImageSize(size int) error {
	if size <= 0 {
		return fmt.Errorf("%w: got %d", errors.ErrInvalidImageSize, size)
	}
	return nil
}

// ValidatePage validates a zero-based page index
func ValidatePage(page, totalPages int) error {
	if page < 0 || (totalPages > 0 && page >= totalPages) {
		return fmt.Errorf("%w: must be between 1 and %d", errors.ErrInvalidPage, max(totalPages, 1))
	}
	return nil
}

// SanitizeInput sanitizes user input by removing potentially dangerous characters
func SanitizeInput(input string) string {
	// Remove null bytes
	input = strings.ReplaceAll(input, "\x00", "")

	// Trim whitespace
	input = strings.TrimSpace(input)

	return input
}

// TruncateString safely truncates a string to max length in runes
func TruncateString(s string, maxLen int) string {
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}

	runes := []rune(s)

	// Try to truncate at word boundary
	if maxLen > 3 {
		s = string(runes[:maxLen-3])
		if idx := strings.LastIndexAny(s, " \t\n"); idx > 0 {
			s = s[:idx]
		}
		return s + "..."
	}

	return string(runes[:maxLen])
}
