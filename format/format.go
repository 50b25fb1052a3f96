// Package format provides the text primitives used by the help and usage
// renderers: emphasis, fixed-width indentation, and width-constrained word
// wrap.
//
// This package is the only place where lipgloss is imported. Emphasis is
// structural (bold, underline) rather than colored, so output stays readable
// on any terminal theme.
//
// When disabled, the emphasis helpers return the input string unchanged with
// no ANSI codes.
package format

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

var (
	enabled bool

	// Pre-created styles for performance.
	// These are only used when enabled is true.
	boldStyle          lipgloss.Style
	underlineStyle     lipgloss.Style
	boldUnderlineStyle lipgloss.Style
)

// Init initializes the package with the given enabled state. It also
// respects the NO_COLOR and HEARTH_PLAIN environment variables; if either is
// set (to any non-empty value), emphasis is disabled regardless of the
// enable parameter.
//
// This function should be called once from main before any output.
func Init(enable bool) {
	if os.Getenv("NO_COLOR") != "" || os.Getenv("HEARTH_PLAIN") != "" {
		enabled = false
		return
	}

	enabled = enable

	if enabled {
		// Force a profile so emphasis survives pipes and non-TTY output.
		// Bold and underline need no color support beyond basic ANSI.
		lipgloss.SetColorProfile(termenv.ANSI)

		boldStyle = lipgloss.NewStyle().Bold(true)
		underlineStyle = lipgloss.NewStyle().Underline(true)
		boldUnderlineStyle = lipgloss.NewStyle().Bold(true).Underline(true)
	}
}

// Enabled returns whether emphasis is currently enabled.
func Enabled() bool {
	return enabled
}

// Bold emphasizes text in bold. Used for section titles.
func Bold(text string) string {
	if !enabled {
		return text
	}
	return boldStyle.Render(text)
}

// Underline emphasizes text with an underline. Used for argument and flag
// name tokens.
func Underline(text string) string {
	if !enabled {
		return text
	}
	return underlineStyle.Render(text)
}

// BoldUnderline emphasizes text in bold with an underline. Used for
// positional argument items.
func BoldUnderline(text string) string {
	if !enabled {
		return text
	}
	return boldUnderlineStyle.Render(text)
}

// Indent prefixes every non-empty line of text with the given number of
// spaces. Empty lines are left empty so indented blocks carry no trailing
// whitespace.
func Indent(text string, spaces int) string {
	pad := strings.Repeat(" ", spaces)
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = pad + line
		}
	}
	return strings.Join(lines, "\n")
}

// WrappedJoin joins items with separator, greedily filling lines of at most
// width display columns. Every line except the last ends with the separator
// that links it to the next item. Widths are measured with ANSI escape
// sequences excluded, so emphasized items wrap the same as plain ones.
func WrappedJoin(items []string, separator string, width int) []string {
	var lines []string
	var current string

	for i, item := range items {
		last := i == len(items)-1
		if last {
			if lipgloss.Width(current)+lipgloss.Width(item) <= width {
				current += item
			} else {
				lines = append(lines, strings.TrimRight(current, " "))
				current = item
			}
		} else {
			if lipgloss.Width(current)+lipgloss.Width(item)+lipgloss.Width(separator) <= width {
				current += item + separator
			} else {
				lines = append(lines, strings.TrimRight(current, " "))
				current = item + separator
			}
		}
	}

	return append(lines, strings.TrimRight(current, " "))
}
