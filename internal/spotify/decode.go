package spotify

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vuongmanhnghia/sailfmt/internal/errors"
)

// Format is the encoding of a payload
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat converts a user supplied name into a Format
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "json", "":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("%w: %q", errors.ErrUnsupportedFormat, name)
}

// DecodeTrack decodes a single track object
func DecodeTrack(data []byte, format Format) (*Track, error) {
	var track Track
	if err := unmarshal(data, format, &track); err != nil {
		return nil, err
	}
	return &track, nil
}

// DecodeTracks decodes either a bare array of tracks or a paging object
func DecodeTracks(data []byte, format Format) ([]Track, error) {
	var tracks []Track
	if err := unmarshal(data, format, &tracks); err == nil {
		return tracks, nil
	} else if !isShapeError(err) {
		return nil, err
	}

	var page Paging[Track]
	if err := unmarshal(data, format, &page); err != nil {
		return nil, err
	}
	return page.Items, nil
}

func unmarshal(data []byte, format Format, v any) error {
	if len(bytes.TrimSpace(data)) == 0 {
		return errors.ErrEmptyPayload
	}

	switch format {
	case FormatJSON:
		if err := json.Unmarshal(data, v); err != nil {
			return &decodeError{format: format, err: err}
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, v); err != nil {
			return &decodeError{format: format, err: err}
		}
	default:
		return fmt.Errorf("%w: %q", errors.ErrUnsupportedFormat, format)
	}
	return nil
}

// decodeError keeps the syntax error while matching ErrInvalidPayload
type decodeError struct {
	format Format
	err    error
}

func (e *decodeError) Error() string {
	return fmt.Sprintf("%s: %s payload: %v", errors.ErrInvalidPayload, e.format, e.err)
}

func (e *decodeError) Unwrap() []error {
	return []error{errors.ErrInvalidPayload, e.err}
}

// isShapeError reports whether the payload parsed but did not fit the target type
func isShapeError(err error) bool {
	var de *decodeError
	if !errors.As(err, &de) {
		return false
	}
	var typeErr *json.UnmarshalTypeError
	if errors.As(de.err, &typeErr) {
		return true
	}
	var yamlErr *yaml.TypeError
	return errors.As(de.err, &yamlErr)
}
