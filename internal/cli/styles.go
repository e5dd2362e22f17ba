package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Stderr receives every message printed by this package. Standard output
// carries demodulated samples and is never written to.
var Stderr io.Writer = os.Stderr

// Styles
var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(DialAmber)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(PanelGray).
			Italic(true)

	ErrorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(DialRed)

	WarningStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(DialAmber)

	SuccessStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(DialGreen)

	KeyStyle = lipgloss.NewStyle().
			Foreground(PanelGray)

	ValueStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(DialCyan)
)

// PrintBanner prints the program name and version.
func PrintBanner(name, version string) {
	fmt.Fprintf(Stderr, "%s %s\n", TitleStyle.Render(name), SubtitleStyle.Render(version))
}

// PrintVersion prints version information.
func PrintVersion(name, version string) {
	fmt.Fprintln(Stderr, TitleStyle.Render(name))
	fmt.Fprintf(Stderr, "%s %s\n", KeyStyle.Render("Version:"), ValueStyle.Render(version))
}

// PrintError prints an error message.
func PrintError(message string) {
	fmt.Fprintf(Stderr, "%s %s\n", ErrorStyle.Render("Error:"), message)
}

// PrintWarning prints a warning message.
func PrintWarning(message string) {
	fmt.Fprintf(Stderr, "%s %s\n", WarningStyle.Render("Warning:"), message)
}

// PrintInfo prints a key/value line.
func PrintInfo(key, value string) {
	fmt.Fprintf(Stderr, "%s %s\n", KeyStyle.Render(key+":"), ValueStyle.Render(value))
}

// PrintSummary prints aligned key/value pairs under a success heading.
// pairs alternates keys and values.
func PrintSummary(title string, pairs ...string) {
	var b strings.Builder

	b.WriteString(SuccessStyle.Render("✓ " + title))
	b.WriteString("\n")

	width := 0
	for i := 0; i+1 < len(pairs); i += 2 {
		width = max(width, len(pairs[i]))
	}
	for i := 0; i+1 < len(pairs); i += 2 {
		b.WriteString("  ")
		b.WriteString(KeyStyle.Render(fmt.Sprintf("%-*s", width+1, pairs[i]+":")))
		b.WriteString(" ")
		b.WriteString(ValueStyle.Render(pairs[i+1]))
		b.WriteString("\n")
	}

	fmt.Fprint(Stderr, b.String())
}

// FormatBytes formats bytes into human-readable format.
func FormatBytes(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(bytes)/float64(div), "KMGTPE"[exp])
}

// FormatRate formats a sample rate in Hz with a metric prefix.
func FormatRate(hz uint32) string {
	switch {
	case hz >= 1000000 && hz%1000 == 0:
		return fmt.Sprintf("%g MHz", float64(hz)/1e6)
	case hz >= 1000:
		return fmt.Sprintf("%g kHz", float64(hz)/1e3)
	default:
		return fmt.Sprintf("%d Hz", hz)
	}
}
