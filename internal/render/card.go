package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Colors for cards
var (
	ColorPrimary = lipgloss.Color("#1DB954") // Spotify green
	ColorSuccess = lipgloss.Color("#57F287")
	ColorWarning = lipgloss.Color("#FEE75C")
	ColorError   = lipgloss.Color("#ED4245")
	ColorInfo    = lipgloss.Color("#7FDBFF")
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F8F8F2")).
			Bold(true)

	fieldNameStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#A6ADC8"))

	footerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#A6ADC8")).
			Italic(true)
)

type field struct {
	name  string
	value string
}

// Card builds a bordered text block for a terminal
type Card struct {
	title       string
	description string
	fields      []field
	thumbnail   string
	footer      string
	color       lipgloss.Color
}

// NewCard creates a new card builder
func NewCard() *Card {
	return &Card{color: ColorPrimary}
}

// Title sets the card title
func (c *Card) Title(title string) *Card {
	c.title = title
	return c
}

// Description sets the text under the title
func (c *Card) Description(desc string) *Card {
	c.description = desc
	return c
}

// Color sets the border color
func (c *Card) Color(color lipgloss.Color) *Card {
	c.color = color
	return c
}

// Field adds a name/value line. Empty values are skipped.
func (c *Card) Field(name, value string) *Card {
	if value != "" {
		c.fields = append(c.fields, field{name: name, value: value})
	}
	return c
}

// Thumbnail sets the cover URL
func (c *Card) Thumbnail(url string) *Card {
	c.thumbnail = url
	return c
}

// Footer sets the footer text
func (c *Card) Footer(text string) *Card {
	c.footer = text
	return c
}

// Build renders the card
func (c *Card) Build() string {
	var blocks []string

	if c.title != "" {
		blocks = append(blocks, titleStyle.Render(c.title))
	}
	if c.description != "" {
		blocks = append(blocks, strings.TrimRight(c.description, "\n"))
	}

	if len(c.fields) > 0 || c.thumbnail != "" {
		var lines []string
		for _, f := range c.fields {
			lines = append(lines, fieldNameStyle.Render(f.name+":")+" "+f.value)
		}
		if c.thumbnail != "" {
			lines = append(lines, fieldNameStyle.Render("Cover:")+" "+c.thumbnail)
		}
		blocks = append(blocks, strings.Join(lines, "\n"))
	}

	if c.footer != "" {
		blocks = append(blocks, footerStyle.Render(c.footer))
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(c.color).
		Padding(0, 1).
		Render(lipgloss.JoinVertical(lipgloss.Left, blocks...))
}
