// Package console prints styled progress and summary lines for a report run.
package console

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"golang.org/x/term"

	"github.com/dkoosis/epiccheck-report/pkg/violation"
)

// Console writes human-readable status lines.
type Console struct {
	w           io.Writer
	theme       Theme
	width       int
	interactive bool
}

// Options configures a Console.
type Options struct {
	Theme   string
	NoColor bool
	// Interactive treats w as a terminal even when it is not one.
	Interactive bool
}

// New creates a console writing to w. Colors are disabled when w is not a
// terminal or opts.NoColor is set.
func New(w io.Writer, opts Options) *Console {
	interactive := opts.Interactive || IsTTY(w)
	r := lipgloss.NewRenderer(w)
	theme := ThemeByName(opts.Theme, r)
	if opts.NoColor || !interactive {
		theme = MonoTheme(r)
	}
	return &Console{
		w:           w,
		theme:       theme,
		width:       Width(w),
		interactive: interactive,
	}
}

// Interactive reports whether the console is attached to a terminal.
func (c *Console) Interactive() bool {
	return c.interactive
}

// Writer returns the underlying writer.
func (c *Console) Writer() io.Writer {
	return c.w
}

// Theme returns the active theme.
func (c *Console) Theme() Theme {
	return c.theme
}

// Step announces the start of a pipeline stage.
func (c *Console) Step(msg string) {
	c.line(c.theme.Primary, c.theme.Icons.Step, msg)
}

// Success reports a completed stage.
func (c *Console) Success(msg string) {
	c.line(c.theme.Success, c.theme.Icons.Pass, msg)
}

// Warn reports a non-fatal condition.
func (c *Console) Warn(msg string) {
	c.line(c.theme.Warning, c.theme.Icons.Warn, msg)
}

// Error reports a fatal condition.
func (c *Console) Error(msg string) {
	c.line(c.theme.Error, c.theme.Icons.Fail, msg)
}

// Summary prints the status and per-severity counts of a run.
func (c *Console) Summary(counts violation.Counts) {
	status := counts.Status()
	style, icon := c.theme.Success, c.theme.Icons.Pass
	if status != violation.Conforming {
		style, icon = c.theme.Error, c.theme.Icons.Fail
	}
	c.line(style, icon, fmt.Sprintf("%s: %d violation(s)", status, counts.Total))

	parts := make([]string, 0, len(violation.Markers()))
	for _, m := range violation.Markers() {
		parts = append(parts, fmt.Sprintf("%s %d", violation.Label(m), counts.Get(m)))
	}
	fmt.Fprintln(c.w, "  "+c.theme.Muted.Render(strings.Join(parts, " · ")))
}

// Path fits a path into the console width, eliding the middle if needed.
func (c *Console) Path(p string) string {
	limit := c.width - 24
	if limit < 20 || runewidth.StringWidth(p) <= limit {
		return p
	}
	head := runewidth.Truncate(p, limit/2, "")
	tailWidth := limit - runewidth.StringWidth(head) - 1
	runes := []rune(p)
	tail := ""
	for i := len(runes) - 1; i >= 0; i-- {
		candidate := string(runes[i:])
		if runewidth.StringWidth(candidate) > tailWidth {
			break
		}
		tail = candidate
	}
	return head + "…" + tail
}

func (c *Console) line(style lipgloss.Style, icon, msg string) {
	if icon != "" {
		msg = icon + " " + msg
	}
	fmt.Fprintln(c.w, style.Render(msg))
}

// IsTTY reports whether w is a terminal.
func IsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// Width returns the terminal width for w, defaulting to 80.
func Width(w io.Writer) int {
	if f, ok := w.(*os.File); ok {
		if tw, _, err := term.GetSize(int(f.Fd())); err == nil && tw > 0 {
			return tw
		}
	}
	return 80
}
