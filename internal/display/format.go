// Package display turns artist lists, durations and image lists into the
// strings a player UI binds to. None of the functions fail: missing or
// malformed input degrades to an empty string.
package display

import (
	"fmt"
	"math"
	"strings"
)

// NameSeparator joins names in JoinNames
const NameSeparator = ", "

// JoinNames joins the names of all items in iteration order.
//
// A nil interface item counts as an empty name. A typed nil pointer is
// passed to GetName like any other item, so its GetName must handle a nil
// receiver or JoinNames panics.
func JoinNames[T NamedItem](objects Collection[T]) string {
	var names []string

	switch c := objects.(type) {
	case Sequence[T]:
		names = make([]string, len(c))
		for i, item := range c {
			names[i] = nameOf(item)
		}
	case Model[T]:
		names = make([]string, 0, c.Len())
		for i := 0; i < c.Len(); i++ {
			names = append(names, nameOf(c.M.Get(i)))
		}
	case nil:
		return ""
	}

	return strings.Join(names, NameSeparator)
}

// DurationMsToString renders a millisecond duration as M:SS.
//
// The seconds part is rounded after taking the remainder, so 59.6s renders
// as "0:60" rather than carrying into the minutes. NaN and infinite
// durations render as "".
func DurationMsToString(durationMs float64) string {
	if math.IsNaN(durationMs) || math.IsInf(durationMs, 0) {
		return ""
	}

	seconds := durationMs / 1000

	minutes := math.Floor(seconds / 60)
	rest := math.Floor(math.Mod(seconds, 60) + 0.5)

	if rest >= 10 {
		return fmt.Sprintf("%d:%d", int64(minutes), int64(rest))
	}
	return fmt.Sprintf("%d:0%d", int64(minutes), int64(rest))
}

// ChooseImage returns the URL of the first image in images.
//
// size is accepted for callers that request a resolution but currently
// has no effect.
func ChooseImage[T ImageRef](images Collection[T], size int) string {
	switch c := images.(type) {
	case nil:
		return ""
	case Sequence[T]:
		if len(c) > 0 {
			return urlOf(c[0])
		}
	case Model[T]:
		if c.Len() > 0 {
			return urlOf(c.M.Get(0))
		}
	}
	return ""
}

func nameOf[T NamedItem](item T) string {
	if any(item) == nil {
		return ""
	}
	return item.GetName()
}

func urlOf[T ImageRef](item T) string {
	if any(item) == nil {
		return ""
	}
	return item.GetURL()
}
