package overlay

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

const (
	lightPage = "#f8fafc"
	darkPage  = "#0b1120"
	lightText = "#111827"
	darkText  = "#f1f5f9"
)

// Render draws the caption as a bordered card at most width cells wide.
// A fully transparent overlay renders as the empty string.
func (o *Overlay) Render(width int) string {
	c := o.Caption()
	if c.Opacity <= 0 || c.Name == "" {
		return ""
	}
	o.mu.Lock()
	dark := o.dark
	o.mu.Unlock()

	page, ink := lightPage, lightText
	if dark {
		page, ink = darkPage, darkText
	}
	accent := fade(c.Accent, page, c.Opacity)
	text := fade(ink, page, c.Opacity)

	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(accent).
		Padding(0, 2)
	prose := lipgloss.NewStyle().Foreground(text)
	if width > 4 {
		card = card.MaxWidth(width)
	}
	// border and padding take six cells
	if width > 16 {
		prose = prose.Width(width - 6)
	}
	title := lipgloss.NewStyle().Foreground(accent).Bold(true).Render(c.Name)
	genre := lipgloss.NewStyle().Foreground(text).Italic(true).Render(c.Genre)

	lines := []string{
		lipgloss.JoinHorizontal(lipgloss.Top, title, "  ", genre),
		prose.Render(c.Description),
	}
	if c.ThemeDescription != "" {
		lines = append(lines, "", prose.Faint(true).Render(c.ThemeDescription))
	}
	return card.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

// fade blends fg into the page colour; opacity 1 leaves fg unchanged.
func fade(fg, page string, opacity float64) lipgloss.Color {
	a, err := colorful.Hex(fg)
	if err != nil {
		return lipgloss.Color(fg)
	}
	b, err := colorful.Hex(page)
	if err != nil {
		return lipgloss.Color(fg)
	}
	return lipgloss.Color(b.BlendRgb(a, opacity).Hex())
}
