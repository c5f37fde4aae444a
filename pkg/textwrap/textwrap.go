// Package textwrap breaks cell text into display lines of bounded width.
//
// Wrapping is delegated to muesli/reflow: wordwrap breaks at whitespace
// and breakpoint runes, and the optional hard-break pass (wrap) splits
// words that are longer than the limit. Display widths are measured with
// the ANSI-aware rune width from reflow/ansi, so escape sequences in cell
// content do not count against column budgets.
//
// The planner probes many candidate widths for the same text. To avoid
// rebuilding configuration per probe, [VarWidths] holds one mutable
// Options value whose Width field is overwritten by [VarWidths.AtWidth].
package textwrap

import (
	"os"
	"strings"

	"github.com/muesli/reflow/ansi"
	"github.com/muesli/reflow/wordwrap"
	"github.com/muesli/reflow/wrap"
	"golang.org/x/term"
)

// fallbackWidth is used when the terminal size cannot be determined.
const fallbackWidth = 80

// Options control how cell text is broken into display lines.
type Options struct {
	// Width is the maximum display width of a line. A nonpositive width
	// disables wrapping: the text is split on hard newlines only.
	Width int

	// BreakWords hard-breaks words longer than Width. When false, an
	// overlong word is emitted on its own line and may exceed Width.
	BreakWords bool

	// KeepNewlines preserves hard newlines in the input instead of
	// treating them as word separators.
	KeepNewlines bool

	// Breakpoints are runes after which a line may additionally be
	// broken. Nil means the wordwrap default ("-").
	Breakpoints []rune
}

// DefaultOptions returns the wrapping policy used by the CLI: soft
// wrapping at hyphens and whitespace, hard newlines preserved, overlong
// words left intact.
func DefaultOptions() Options {
	return Options{KeepNewlines: true}
}

// Wrap breaks s into display lines no wider than o.Width, where possible.
// The result always contains at least one line; wrapping an empty string
// yields a single empty line.
func Wrap(s string, o *Options) []string {
	wrapped := s
	if o.Width > 0 {
		f := wordwrap.NewWriter(o.Width)
		f.KeepNewlines = o.KeepNewlines
		if o.Breakpoints != nil {
			f.Breakpoints = o.Breakpoints
		}
		_, _ = f.Write([]byte(s))
		_ = f.Close()
		wrapped = f.String()
		if o.BreakWords {
			wrapped = wrap.String(wrapped, o.Width)
		}
	}
	return strings.Split(wrapped, "\n")
}

// LineWidths wraps s and returns the display width of each resulting
// line. This is the dry-run entry point used by the planner's cost
// evaluator: line content is discarded, only widths are kept.
func LineWidths(s string, o *Options) []int {
	lines := Wrap(s, o)
	widths := make([]int, len(lines))
	for i, line := range lines {
		widths[i] = ansi.PrintableRuneWidth(line)
	}
	return widths
}

// Width returns the display width of s, ignoring ANSI escape sequences
// and accounting for wide runes.
func Width(s string) int {
	return ansi.PrintableRuneWidth(s)
}

// TermWidth returns the width of the terminal attached to stdout, or a
// fallback of 80 columns when stdout is not a terminal.
func TermWidth() int {
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		return w
	}
	return fallbackWidth
}

// VarWidths wraps an [Options] value whose width changes per probe.
// It is a plain mutable value passed by reference; it is not safe for
// concurrent use.
type VarWidths struct {
	opts Options
}

// NewVarWidths creates a variable-width options holder from o.
// The Width field of o is irrelevant; it is overwritten by AtWidth.
func NewVarWidths(o Options) *VarWidths {
	return &VarWidths{opts: o}
}

// AtWidth returns a reference to the held Options with Width set to w.
// The returned pointer aliases the holder and is invalidated by the
// next AtWidth call.
func (v *VarWidths) AtWidth(w int) *Options {
	v.opts.Width = w
	return &v.opts
}
