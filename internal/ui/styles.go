package ui

import "fmt"

// ANSI256 color codes for CLI output.
const (
	colorAccent  = 74  // blue: record and entity names
	colorCmd     = 250 // light gray: command names in help
	colorMuted   = 245 // medium gray: ids, units, annotations
	colorStored  = 71  // green: stored counts
	colorSkipped = 179 // yellow: skipped counts
	colorError   = 167 // red: failures
)

var noColor bool

func render(code int, s string) string {
	if noColor {
		return s
	}
	return fmt.Sprintf("\x1b[38;5;%dm%s\x1b[0m", code, s)
}

// RenderAccent returns s in the accent (blue) color.
func RenderAccent(s string) string { return render(colorAccent, s) }

// RenderCommand returns s styled as a command name (light gray).
func RenderCommand(s string) string { return render(colorCmd, s) }

// RenderMuted returns s in the muted (gray) color.
func RenderMuted(s string) string { return render(colorMuted, s) }

// RenderStored returns s in the stored (green) color.
func RenderStored(s string) string { return render(colorStored, s) }

// RenderSkipped returns s in the skipped (yellow) color.
func RenderSkipped(s string) string { return render(colorSkipped, s) }

// RenderError returns s in the error (red) color.
func RenderError(s string) string { return render(colorError, s) }

// ForceNoColor disables color output globally.
func ForceNoColor() {
	noColor = true
}
