// Package cli provides styled terminal output helpers for CLI applications.
package cli

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
)

var (
	successStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#00ff9f"))
	errorStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ff5f5f"))
	warnStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ffd75f"))
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#5fafff"))
	labelStyle   = lipgloss.NewStyle().Bold(true)
)

// PrintSuccess prints a success message with checkmark
func PrintSuccess(format string, args ...any) {
	fmt.Println(successStyle.Render("✓") + " " + fmt.Sprintf(format, args...))
}

// PrintError prints an error message to stderr
func PrintError(format string, args ...any) {
	fmt.Fprintln(os.Stderr, errorStyle.Render("Error:")+" "+fmt.Sprintf(format, args...))
}

// PrintInfo prints an info message
func PrintInfo(format string, args ...any) {
	fmt.Println(infoStyle.Render("ℹ") + " " + fmt.Sprintf(format, args...))
}

// PrintWarning prints a warning message
func PrintWarning(format string, args ...any) {
	fmt.Println(warnStyle.Render("⚠") + " " + fmt.Sprintf(format, args...))
}

// Header renders a bold section header.
func Header(text string) string {
	return labelStyle.Render(text)
}

// Label renders a field label.
func Label(text string) string {
	return labelStyle.Render(text)
}

// Money formats a monetary value with two decimals and a currency sign.
func Money(v float64) string {
	return fmt.Sprintf("$%.2f", v)
}
