package render

import (
	"fmt"
	"strings"

	"github.com/vuongmanhnghia/sailfmt/internal/display"
	"github.com/vuongmanhnghia/sailfmt/internal/validation"
)

// ItemsPerPage is the default page length
const ItemsPerPage = 10

// TotalPages returns how many pages of perPage items count needs
func TotalPages(count, perPage int) int {
	if perPage <= 0 {
		perPage = ItemsPerPage
	}
	return (count + perPage - 1) / perPage
}

// ListPage renders one page (zero-based) of a named collection. Out of range
// pages are clamped to the first or last page.
func ListPage[T display.NamedItem](title string, items display.Collection[T], page, perPage int) string {
	if perPage <= 0 {
		perPage = ItemsPerPage
	}

	var names []string
	if items != nil {
		names = make([]string, 0, items.Len())
		items.Each(func(_ int, item T) {
			var name string
			if any(item) != nil {
				name = item.GetName()
			}
			names = append(names, name)
		})
	}

	if len(names) == 0 {
		return NewCard().
			Title(title).
			Description("This list is empty").
			Color(ColorInfo).
			Build()
	}

	totalItems := len(names)
	totalPages := TotalPages(totalItems, perPage)

	// Validate page number
	if page < 0 {
		page = 0
	}
	if page >= totalPages {
		page = totalPages - 1
	}

	start := page * perPage
	end := min(start+perPage, totalItems)

	var sb strings.Builder
	for i := start; i < end; i++ {
		name := names[i]
		if name == "" {
			name = "-"
		}
		// Position indicator (1-based)
		sb.WriteString(fmt.Sprintf("%2d. %s\n", i+1, validation.TruncateString(name, maxTitleLength)))
	}

	return NewCard().
		Title(fmt.Sprintf("%s (Page %d/%d)", title, page+1, totalPages)).
		Description(sb.String()).
		Footer(fmt.Sprintf("Total: %d • Showing %d-%d", totalItems, start+1, end)).
		Build()
}
