// Package console renders the user-facing status lines hook commands
// print to stdout. Each line carries a fixed tag; color comes from
// lipgloss and degrades to plain text on terminals without color
// support.
package console

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
)

var (
	okStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
	warnStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("3")).Bold(true)
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
	infoStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true)
)

var out io.Writer = os.Stdout

// SetOutput redirects console output. Tests use this to capture lines.
func SetOutput(w io.Writer) {
	out = w
}

// ResetOutput restores output to stdout.
func ResetOutput() {
	out = os.Stdout
}

func emit(style lipgloss.Style, tag, format string, args ...any) {
	fmt.Fprintf(out, "%s%s\n", style.Render(tag), fmt.Sprintf(format, args...))
}

// OK prints a success line prefixed with [OK].
func OK(format string, args ...any) {
	emit(okStyle, "[OK] ", format, args...)
}

// Warn prints a warning line prefixed with [WARN].
func Warn(format string, args ...any) {
	emit(warnStyle, "[WARN] ", format, args...)
}

// Error prints an error line prefixed with [ERROR].
func Error(format string, args ...any) {
	emit(errorStyle, "[ERROR] ", format, args...)
}

// Info prints an informational line prefixed with [INFO].
func Info(format string, args ...any) {
	emit(infoStyle, "[INFO] ", format, args...)
}
