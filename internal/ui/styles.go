package ui

import "github.com/charmbracelet/lipgloss"

// ANSI colours for broad terminal compatibility.
var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10")) // Green
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))  // Red
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11")) // Yellow
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("14")) // Cyan
	primaryStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("12")) // Blue
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))  // Gray
	boldStyle    = lipgloss.NewStyle().Bold(true)
	headerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	codeStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	helpStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	noteStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true)
)

func render(s lipgloss.Style, text string) string {
	if !EnableColors() {
		return text
	}
	return s.Render(text)
}

func Success(text string) string { return render(successStyle, "✓ "+text) }
func Error(text string) string   { return render(errorStyle, "✗ "+text) }
func Warning(text string) string { return render(warningStyle, "⚠ "+text) }
func Info(text string) string    { return render(infoStyle, "ℹ "+text) }

func Green(text string) string   { return render(successStyle, text) }
func Red(text string) string     { return render(errorStyle, text) }
func Yellow(text string) string  { return render(warningStyle, text) }
func Cyan(text string) string    { return render(infoStyle, text) }
func Primary(text string) string { return render(primaryStyle, text) }
func Dim(text string) string     { return render(dimStyle, text) }
func Bold(text string) string    { return render(boldStyle, text) }
func Header(text string) string  { return render(headerStyle, text) }

// FilePath styles a path.
func FilePath(path string) string { return Primary(path) }
