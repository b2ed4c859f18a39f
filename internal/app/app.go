package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/vuongmanhnghia/sailfmt/internal/config"
	"github.com/vuongmanhnghia/sailfmt/internal/display"
	"github.com/vuongmanhnghia/sailfmt/internal/domain/entities"
	"github.com/vuongmanhnghia/sailfmt/internal/domain/valueobjects"
	"github.com/vuongmanhnghia/sailfmt/internal/errors"
	"github.com/vuongmanhnghia/sailfmt/internal/render"
	"github.com/vuongmanhnghia/sailfmt/internal/spotify"
	"github.com/vuongmanhnghia/sailfmt/internal/validation"
	"github.com/vuongmanhnghia/sailfmt/pkg/logger"
)

// Field selects a single plain value instead of a card
type Field string

const (
	FieldNone     Field = ""
	FieldTitle    Field = "title"
	FieldArtists  Field = "artists"
	FieldDuration Field = "duration"
	FieldCover    Field = "cover"
	FieldQuery    Field = "query"
	FieldISRC     Field = "isrc"
)

// Options controls one formatting run
type Options struct {
	Format    string
	ImageSize int
	PageSize  int
	Page      int // 1-based
	List      bool
	Rows      bool // JSON array of arbitrary objects with "name" and "url"
	Field     Field

	// Rows only: "role=value" keeps matching rows, "role!=value" drops them
	Filter string
	// Rows only: order by a role, descending with a leading "-"
	Sort string

	// PositionMs >= 0 renders the track as now playing at that position
	PositionMs int64
}

// Formatter reads streaming payloads and writes display text
type Formatter struct {
	config *config.Config
	logger *logger.Logger
}

// New creates a new Formatter
func New(cfg *config.Config, log *logger.Logger) *Formatter {
	return &Formatter{
		config: cfg,
		logger: log,
	}
}

// DefaultOptions returns the options implied by the configuration
func (f *Formatter) DefaultOptions() Options {
	return Options{
		Format:    f.config.InputFormat,
		ImageSize: f.config.ImageSize,
		PageSize:  f.config.PageSize,
		Page:      1,

		PositionMs: -1,
	}
}

// Run decodes the payload from in and writes the formatted result to out
func (f *Formatter) Run(ctx context.Context, in io.Reader, out io.Writer, opts Options) error {
	format, err := spotify.ParseFormat(opts.Format)
	if err != nil {
		return err
	}
	if err := validation.ValidateImageSize(opts.ImageSize); err != nil {
		return err
	}

	data, err := io.ReadAll(in)
	if err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	f.logger.Component("formatter").WithFields(logrus.Fields{
		"bytes":  len(data),
		"format": format,
		"list":   opts.List,
		"rows":   opts.Rows,
	}).Debug("Formatting payload")

	var result string
	switch {
	case opts.Rows:
		result, err = f.formatRows(data, format, opts)
	case opts.List:
		result, err = f.formatList(data, format, opts)
	default:
		result, err = f.formatTrack(data, format, opts)
	}
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(out, result)
	return err
}

// RunFile runs the formatter on the contents of a file
func (f *Formatter) RunFile(ctx context.Context, path string, out io.Writer, opts Options) error {
	file, err := os.Open(path)
	if err != nil {
		return errors.WrapUserError(err, "Cannot open %s", path)
	}
	defer file.Close()

	return f.Run(ctx, file, out, opts)
}

// Identify validates a spotify: URI or open.spotify.com link and writes
// its canonical URI
func (f *Formatter) Identify(out io.Writer, input string) error {
	if err := validation.ValidateSpotifyInput(input); err != nil {
		return err
	}

	itemType, id, err := spotify.Parse(validation.SanitizeInput(input))
	if err != nil {
		return err
	}

	f.logger.Component("formatter").WithFields(logrus.Fields{
		"type": itemType,
		"id":   id,
	}).Debug("Identified link")

	_, err = fmt.Fprintln(out, spotify.ToURI(itemType, id))
	return err
}

// IsLink reports whether a command line argument is a Spotify link rather
// than a file path
func IsLink(arg string) bool {
	return spotify.IsSpotifyURI(arg) || spotify.IsSpotifyURL(arg)
}

// FormatDuration validates and renders a raw millisecond value
func (f *Formatter) FormatDuration(out io.Writer, durationMs int64) error {
	if err := validation.ValidateDuration(durationMs); err != nil {
		return err
	}
	_, err := fmt.Fprintln(out, display.DurationMsToString(float64(durationMs)))
	return err
}

func (f *Formatter) formatTrack(data []byte, format spotify.Format, opts Options) (string, error) {
	track, err := spotify.DecodeTrack(data, format)
	if err != nil {
		return "", err
	}

	meta := track.Metadata()
	if meta.URI != "" {
		if _, _, err := spotify.ParseURI(meta.URI); err != nil {
			return "", err
		}
	}
	f.logger.Component("formatter").WithField("uri", meta.URI).Debug("Decoded track")

	switch opts.Field {
	case FieldNone:
		if opts.PositionMs >= 0 {
			return render.NowPlayingCard(nowPlaying(meta, opts.PositionMs), opts.ImageSize), nil
		}
		return render.TrackCard(meta, opts.ImageSize), nil
	case FieldTitle:
		return meta.Title, nil
	case FieldArtists:
		return meta.ArtistNames(), nil
	case FieldDuration:
		return meta.DurationFormatted(), nil
	case FieldCover:
		return meta.CoverURL(opts.ImageSize), nil
	case FieldQuery:
		return track.ToSearchQuery(), nil
	case FieldISRC:
		return track.GetISRC(), nil
	}
	return "", fmt.Errorf("%w: unknown field %q", errors.ErrInvalidInput, opts.Field)
}

func nowPlaying(meta *valueobjects.TrackMetadata, positionMs int64) *entities.NowPlaying {
	np := entities.NewNowPlaying(meta.URI)
	np.SetMetadata(meta)
	np.MarkPlaying(min(positionMs, meta.DurationMs), meta.DurationMs)
	return np
}

func (f *Formatter) formatList(data []byte, format spotify.Format, opts Options) (string, error) {
	tracks, err := spotify.DecodeTracks(data, format)
	if err != nil {
		return "", err
	}

	items := make(display.Sequence[*valueobjects.TrackMetadata], 0, len(tracks))
	for i := range tracks {
		items = append(items, tracks[i].Metadata())
	}

	page := opts.Page - 1
	if err := validation.ValidatePage(page, render.TotalPages(len(items), opts.PageSize)); err != nil {
		return "", errors.WrapUserError(err, "Page %d does not exist (%d tracks, %d per page)",
			opts.Page, len(items), opts.PageSize)
	}

	f.logger.Component("formatter").WithField("tracks", len(items)).Debug("Decoded track list")
	return render.ListPage[*valueobjects.TrackMetadata]("Tracks", items, page, opts.PageSize), nil
}

// formatRows loads loosely shaped JSON objects into a list model, so
// malformed entries become blank rows instead of failing the run
func (f *Formatter) formatRows(data []byte, format spotify.Format, opts Options) (string, error) {
	if format != spotify.FormatJSON {
		return "", fmt.Errorf("%w: rows must be json, got %s", errors.ErrUnsupportedFormat, format)
	}

	model := entities.NewListModel(f.logger)
	model.SetValues(string(data))

	view := entities.NewSortFilterModel(model)
	if err := applyFilter(view, opts.Filter); err != nil {
		return "", err
	}
	if role, descending := strings.CutPrefix(opts.Sort, "-"); role != "" {
		view.SetSort(role, !descending)
	}
	rows := display.FromModel[entities.Row](view)

	switch opts.Field {
	case FieldNone:
		page := opts.Page - 1
		if err := validation.ValidatePage(page, render.TotalPages(rows.Len(), opts.PageSize)); err != nil {
			return "", errors.WrapUserError(err, "Page %d does not exist (%d rows, %d per page)",
				opts.Page, rows.Len(), opts.PageSize)
		}
		return render.ListPage[entities.Row]("Items", rows, page, opts.PageSize), nil
	case FieldTitle, FieldArtists:
		// rows carry a single "name", both fields join it
		return display.JoinNames[entities.Row](rows), nil
	case FieldCover:
		return display.ChooseImage[entities.Row](rows, opts.ImageSize), nil
	}
	return "", fmt.Errorf("%w: field %q is not available for rows", errors.ErrInvalidInput, opts.Field)
}

func applyFilter(view *entities.SortFilterModel, filter string) error {
	if filter == "" {
		return nil
	}
	if role, value, ok := strings.Cut(filter, "!="); ok && role != "" {
		view.SetFilter(role, value)
		view.SetInvertFilter(true)
		return nil
	}
	if role, value, ok := strings.Cut(filter, "="); ok && role != "" {
		view.SetFilter(role, value)
		return nil
	}
	return errors.WrapUserError(
		fmt.Errorf("%w: filter %q", errors.ErrInvalidInput, filter),
		"Filter must look like role=value or role!=value")
}
