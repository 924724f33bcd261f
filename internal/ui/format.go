package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/hlop3z/modelgen/internal/strutil"
)

// Panel renders content in a rounded box whose border and title use style.
func panel(style lipgloss.Style, icon, title, content string) string {
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1)
	heading := icon + " " + title

	if EnableColors() {
		box = box.BorderForeground(style.GetForeground())
		heading = style.Bold(true).Render(heading)
	}
	return box.Render(heading + "\n\n" + content)
}

// RenderSuccessPanel renders content in a success-styled panel.
func RenderSuccessPanel(title, content string) string {
	return panel(successStyle, "✓", title, content)
}

// RenderWarningPanel renders content in a warning-styled panel.
func RenderWarningPanel(title, content string) string {
	return panel(warningStyle, "⚠", title, content)
}

// RenderTitle renders a title with an underline.
func RenderTitle(title string) string {
	return Header(title) + "\n" + Dim(strings.Repeat("─", lipgloss.Width(title)))
}

// FormatKeyValue formats a key-value pair.
func FormatKeyValue(key, value string) string {
	return Dim(key+": ") + value
}

// FormatCount formats a count with its singular or plural noun.
func FormatCount(count int, singular, plural string) string {
	if count == 1 {
		return fmt.Sprintf("%d %s", count, singular)
	}
	return fmt.Sprintf("%d %s", count, plural)
}

// Indent indents each non-empty line of content.
func Indent(content string, spaces int) string {
	return strutil.Indent(content, spaces)
}

// padRight pads s to width visible cells.
func padRight(s string, width int) string {
	if w := lipgloss.Width(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}
