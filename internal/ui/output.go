package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
)

// UI provides user interface methods
type UI struct {
	output         io.Writer
	nonInteractive bool // If true, don't prompt user for input
	verbose        bool // If true, Action lines are printed
	dryRun         bool // If true, Action lines carry a dry-run prefix
	// Color functions
	colorInfo    *color.Color
	colorSuccess *color.Color
	colorWarning *color.Color
	colorError   *color.Color
	colorBold    *color.Color
	colorCyan    *color.Color
	colorDim     *color.Color
}

// New creates a new UI instance
func New() *UI {
	return &UI{
		output:       os.Stdout,
		colorInfo:    color.New(color.FgBlue),
		colorSuccess: color.New(color.FgGreen),
		colorWarning: color.New(color.FgYellow),
		colorError:   color.New(color.FgRed),
		colorBold:    color.New(color.Bold),
		colorCyan:    color.New(color.FgCyan, color.Bold),
		colorDim:     color.New(color.Faint),
	}
}

// NewWithWriter creates a UI with custom output writer (useful for testing)
func NewWithWriter(w io.Writer) *UI {
	ui := New()
	ui.output = w
	return ui
}

// SetColorMode applies "auto", "always" or "never". Auto leaves the
// terminal detection of fatih/color in charge.
func SetColorMode(mode string) error {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "", "auto":
	case "always":
		color.NoColor = false
	case "never":
		color.NoColor = true
	default:
		return fmt.Errorf("invalid color mode %q (want auto, always or never)", mode)
	}
	return nil
}

// SetNonInteractive enables or disables non-interactive mode
func (u *UI) SetNonInteractive(enabled bool) {
	u.nonInteractive = enabled
}

// IsNonInteractive returns true if non-interactive mode is enabled
func (u *UI) IsNonInteractive() bool {
	return u.nonInteractive
}

// SetVerbose enables per-path action lines
func (u *UI) SetVerbose(enabled bool) {
	u.verbose = enabled
}

// SetDryRun marks every action line as a dry run. Dry runs always print
// their actions since that is their only output.
func (u *UI) SetDryRun(enabled bool) {
	u.dryRun = enabled
}

// Info prints an info message
func (u *UI) Info(msg string) {
	u.colorInfo.Fprintf(u.output, "[INFO] %s\n", msg)
}

// Infof prints a formatted info message
func (u *UI) Infof(format string, args ...interface{}) {
	u.Info(fmt.Sprintf(format, args...))
}

// Success prints a success message
func (u *UI) Success(msg string) {
	u.colorSuccess.Fprintf(u.output, "[✓] %s\n", msg)
}

// Successf prints a formatted success message
func (u *UI) Successf(format string, args ...interface{}) {
	u.Success(fmt.Sprintf(format, args...))
}

// Warning prints a warning message
func (u *UI) Warning(msg string) {
	u.colorWarning.Fprintf(u.output, "[WARNING] %s\n", msg)
}

// Warningf prints a formatted warning message
func (u *UI) Warningf(format string, args ...interface{}) {
	u.Warning(fmt.Sprintf(format, args...))
}

// Error prints an error message
func (u *UI) Error(msg string) {
	u.colorError.Fprintf(u.output, "[ERROR] %s\n", msg)
}

// Errorf prints a formatted error message
func (u *UI) Errorf(format string, args ...interface{}) {
	u.Error(fmt.Sprintf(format, args...))
}

// Action reports a single filesystem action such as "create app.py".
// It is silent unless verbose or dry-run output is enabled.
func (u *UI) Action(action, path string) {
	if !u.verbose && !u.dryRun {
		return
	}
	if u.dryRun {
		u.colorDim.Fprint(u.output, "dry-run: ")
	}
	u.colorBold.Fprintf(u.output, "%-9s", action)
	fmt.Fprintf(u.output, " %s\n", path)
}

// Header prints a header with a box
func (u *UI) Header(title string) {
	width := 70
	border := strings.Repeat("=", width)

	fmt.Fprintln(u.output)
	u.colorCyan.Fprintln(u.output, border)
	u.colorCyan.Fprintf(u.output, "  %s\n", title)
	u.colorCyan.Fprintln(u.output, border)
	fmt.Fprintln(u.output)
}

// Separator prints a separator line
func (u *UI) Separator() {
	u.colorCyan.Fprintln(u.output, strings.Repeat("-", 70))
}

// TreeEntry prints one line of a directory tree with an optional note
func (u *UI) TreeEntry(branch, name, note string) {
	fmt.Fprintf(u.output, "  %s ", branch)
	u.colorBold.Fprint(u.output, name)
	if note != "" {
		u.colorDim.Fprintf(u.output, "  (%s)", note)
	}
	fmt.Fprintln(u.output)
}

// Print prints a plain message without formatting
func (u *UI) Print(msg string) {
	fmt.Fprintln(u.output, msg)
}

// Printf prints a formatted plain message
func (u *UI) Printf(format string, args ...interface{}) {
	fmt.Fprintf(u.output, format+"\n", args...)
}
