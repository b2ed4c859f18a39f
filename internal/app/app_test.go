package app

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vuongmanhnghia/sailfmt/internal/config"
	"github.com/vuongmanhnghia/sailfmt/internal/errors"
	"github.com/vuongmanhnghia/sailfmt/pkg/logger"
)

const trackPayload = `{
  "uri": "spotify:track:5W3cjX2J3tjhG8zb6u0qHn",
  "name": "Harder, Better, Faster, Stronger",
  "duration_ms": 224693,
  "external_ids": {"isrc": "GBDUW0000059"},
  "artists": [{"name": "Daft Punk"}],
  "album": {
    "name": "Discovery",
    "images": [
      {"url": "https://i.scdn.co/image/a", "width": 640, "height": 640},
      {"url": "https://i.scdn.co/image/b", "width": 64, "height": 64}
    ]
  }
}`

func newTestFormatter() *Formatter {
	cfg := &config.Config{
		LogLevel:    "debug",
		LogFormat:   "text",
		ImageSize:   300,
		InputFormat: "json",
		PageSize:    10,
	}
	return New(cfg, logger.Nop())
}

func run(t *testing.T, f *Formatter, payload string, opts Options) (string, error) {
	t.Helper()

	out := &bytes.Buffer{}
	err := f.Run(context.Background(), strings.NewReader(payload), out, opts)
	return out.String(), err
}

func TestRunTrackCard(t *testing.T) {
	f := newTestFormatter()

	out, err := run(t, f, trackPayload, f.DefaultOptions())
	require.NoError(t, err)

	assert.Contains(t, out, "Harder, Better, Faster, Stronger")
	assert.Contains(t, out, "Daft Punk")
	assert.Contains(t, out, "3:45")
	assert.Contains(t, out, "https://i.scdn.co/image/a")
}

func TestRunFields(t *testing.T) {
	tests := []struct {
		field    Field
		expected string
	}{
		{FieldTitle, "Harder, Better, Faster, Stronger\n"},
		{FieldArtists, "Daft Punk\n"},
		{FieldDuration, "3:45\n"},
		{FieldCover, "https://i.scdn.co/image/a\n"},
		{FieldQuery, "Daft Punk - Harder, Better, Faster, Stronger\n"},
		{FieldISRC, "GBDUW0000059\n"},
	}

	f := newTestFormatter()
	for _, tt := range tests {
		t.Run(string(tt.field), func(t *testing.T) {
			opts := f.DefaultOptions()
			opts.Field = tt.field

			out, err := run(t, f, trackPayload, opts)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, out)
		})
	}
}

func TestRunUnknownField(t *testing.T) {
	f := newTestFormatter()
	opts := f.DefaultOptions()
	opts.Field = Field("lyrics")

	_, err := run(t, f, trackPayload, opts)
	assert.ErrorIs(t, err, errors.ErrInvalidInput)
}

func TestRunYAML(t *testing.T) {
	f := newTestFormatter()
	opts := f.DefaultOptions()
	opts.Format = "yaml"
	opts.Field = FieldArtists

	payload := "name: Around the World\nartists:\n  - name: Daft Punk\n"
	out, err := run(t, f, payload, opts)
	require.NoError(t, err)
	assert.Equal(t, "Daft Punk\n", out)
}

func TestRunList(t *testing.T) {
	f := newTestFormatter()
	opts := f.DefaultOptions()
	opts.List = true
	opts.PageSize = 2
	opts.Page = 2

	payload := `{"items":[{"name":"One More Time"},{"name":"Aerodynamic"},{"name":"Digital Love"}],"total":3}`
	out, err := run(t, f, payload, opts)
	require.NoError(t, err)

	assert.Contains(t, out, "Tracks (Page 2/2)")
	assert.Contains(t, out, " 3. Digital Love")
	assert.NotContains(t, out, "Aerodynamic")
}

func TestRunListPageOutOfRange(t *testing.T) {
	f := newTestFormatter()
	opts := f.DefaultOptions()
	opts.List = true
	opts.Page = 5

	_, err := run(t, f, `[{"name":"A"}]`, opts)
	require.ErrorIs(t, err, errors.ErrInvalidPage)
	assert.Equal(t, "Page 5 does not exist (1 tracks, 10 per page)", errors.GetUserMessage(err))
}

func TestRunErrors(t *testing.T) {
	f := newTestFormatter()

	_, err := run(t, f, "", f.DefaultOptions())
	assert.ErrorIs(t, err, errors.ErrEmptyPayload)

	_, err = run(t, f, "{", f.DefaultOptions())
	assert.ErrorIs(t, err, errors.ErrInvalidPayload)

	opts := f.DefaultOptions()
	opts.Format = "xml"
	_, err = run(t, f, trackPayload, opts)
	assert.ErrorIs(t, err, errors.ErrUnsupportedFormat)

	opts = f.DefaultOptions()
	opts.ImageSize = 0
	_, err = run(t, f, trackPayload, opts)
	assert.ErrorIs(t, err, errors.ErrInvalidImageSize)
}

func TestRunCancelled(t *testing.T) {
	f := newTestFormatter()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := f.Run(ctx, strings.NewReader(trackPayload), io.Discard, f.DefaultOptions())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestFormatDuration(t *testing.T) {
	f := newTestFormatter()

	out := &bytes.Buffer{}
	require.NoError(t, f.FormatDuration(out, 59600))
	assert.Equal(t, "0:60\n", out.String())

	assert.ErrorIs(t, f.FormatDuration(io.Discard, -1), errors.ErrInvalidDuration)
}

func TestRunRows(t *testing.T) {
	f := newTestFormatter()
	payload := `[{"name":"Daft Punk","url":"https://i.scdn.co/image/dp"},{"name":"Justice"},42]`

	opts := f.DefaultOptions()
	opts.Rows = true
	out, err := run(t, f, payload, opts)
	require.NoError(t, err)
	assert.Contains(t, out, " 1. Daft Punk")
	assert.Contains(t, out, " 2. Justice")
	assert.Contains(t, out, " 3. -")

	opts.Field = FieldArtists
	out, err = run(t, f, payload, opts)
	require.NoError(t, err)
	assert.Equal(t, "Daft Punk, Justice, \n", out)

	opts.Field = FieldCover
	out, err = run(t, f, payload, opts)
	require.NoError(t, err)
	assert.Equal(t, "https://i.scdn.co/image/dp\n", out)

	opts.Field = FieldDuration
	_, err = run(t, f, payload, opts)
	assert.ErrorIs(t, err, errors.ErrInvalidInput)
}

func TestRunRowsInvalidJSONDegrades(t *testing.T) {
	f := newTestFormatter()
	opts := f.DefaultOptions()
	opts.Rows = true
	opts.Field = FieldArtists

	out, err := run(t, f, `[{"name":`, opts)
	require.NoError(t, err)
	assert.Equal(t, "\n", out)

	opts.Format = "yaml"
	_, err = run(t, f, `- name: x`, opts)
	assert.ErrorIs(t, err, errors.ErrUnsupportedFormat)
}

func TestRunNowPlaying(t *testing.T) {
	f := newTestFormatter()
	opts := f.DefaultOptions()
	opts.PositionMs = 65000

	out, err := run(t, f, trackPayload, opts)
	require.NoError(t, err)

	assert.Contains(t, out, "Daft Punk - Harder, Better, Faster, Stronger")
	assert.Contains(t, out, "playing")
	assert.Contains(t, out, "1:05 / 3:45")
}

func TestRunTrackWithInvalidURI(t *testing.T) {
	f := newTestFormatter()

	_, err := run(t, f, `{"uri":"spotify:local:::Track","name":"Local"}`, f.DefaultOptions())
	assert.ErrorIs(t, err, errors.ErrInvalidURI)
}

func TestRunFile(t *testing.T) {
	f := newTestFormatter()
	opts := f.DefaultOptions()
	opts.Field = FieldTitle

	path := filepath.Join(t.TempDir(), "track.json")
	require.NoError(t, os.WriteFile(path, []byte(trackPayload), 0o600))

	out := &bytes.Buffer{}
	require.NoError(t, f.RunFile(context.Background(), path, out, opts))
	assert.Equal(t, "Harder, Better, Faster, Stronger\n", out.String())

	missing := filepath.Join(t.TempDir(), "missing.json")
	err := f.RunFile(context.Background(), missing, io.Discard, opts)
	require.ErrorIs(t, err, os.ErrNotExist)
	assert.Equal(t, "Cannot open "+missing, errors.GetUserMessage(err))
}

func TestIdentify(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
		err      error
	}{
		{"uri", "spotify:track:4uLU6hMCjMI75M1A2tKUQC", "spotify:track:4uLU6hMCjMI75M1A2tKUQC\n", nil},
		{"url", " https://open.spotify.com/intl-de/album/4m2880jivSbbyEGAKfITCa?si=x ", "spotify:album:4m2880jivSbbyEGAKfITCa\n", nil},
		{"bad uri", "spotify:user:someone", "", errors.ErrInvalidURI},
		{"other site", "https://www.spotify.com/us/premium/", "", errors.ErrInvalidURL},
	}

	f := newTestFormatter()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := &bytes.Buffer{}
			err := f.Identify(out, tt.input)
			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, out.String())
		})
	}
}

func TestIsLink(t *testing.T) {
	assert.True(t, IsLink("spotify:track:1"))
	assert.True(t, IsLink("https://open.spotify.com/track/1"))
	assert.False(t, IsLink("track.json"))
	assert.False(t, IsLink(""))
}

func TestRunRowsFilterSort(t *testing.T) {
	payload := `[
	  {"name":"Digital Love","type":"track","duration":301},
	  {"name":"Discovery","type":"album"},
	  {"name":"Aerodynamic","type":"track","duration":212},
	  {"name":5,"type":"track","duration":320}
	]`

	tests := []struct {
		name     string
		filter   string
		sort     string
		expected string
	}{
		{"none", "", "", "Digital Love, Discovery, Aerodynamic, 5\n"},
		{"filter", "type=track", "", "Digital Love, Aerodynamic, 5\n"},
		{"inverted filter", "type!=track", "", "Discovery\n"},
		{"sort", "", "name", "5, Aerodynamic, Digital Love, Discovery\n"},
		{"filter and sort descending", "type=track", "-duration", "5, Digital Love, Aerodynamic\n"},
	}

	f := newTestFormatter()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := f.DefaultOptions()
			opts.Rows = true
			opts.Field = FieldTitle
			opts.Filter = tt.filter
			opts.Sort = tt.sort

			out, err := run(t, f, payload, opts)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, out)
		})
	}
}

func TestRunRowsFilteredPage(t *testing.T) {
	f := newTestFormatter()
	opts := f.DefaultOptions()
	opts.Rows = true
	opts.Filter = "type=track"
	opts.Sort = "name"

	out, err := run(t, f, `[{"name":"B","type":"track"},{"name":"X","type":"album"},{"name":"A","type":"track"}]`, opts)
	require.NoError(t, err)
	assert.Contains(t, out, " 1. A")
	assert.Contains(t, out, " 2. B")
	assert.NotContains(t, out, "X")
	assert.Contains(t, out, "Total: 2")
}

func TestRunRowsBadFilter(t *testing.T) {
	f := newTestFormatter()
	opts := f.DefaultOptions()
	opts.Rows = true
	opts.Filter = "track"

	_, err := run(t, f, `[]`, opts)
	require.ErrorIs(t, err, errors.ErrInvalidInput)
	assert.Equal(t, "Filter must look like role=value or role!=value", errors.GetUserMessage(err))
}
