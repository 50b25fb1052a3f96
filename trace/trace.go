// Package trace records the command path a CLI has consumed so far.
//
// A Trace is an immutable ordered list of path segments. The renderers only
// ever read it: the command string with or without separator tokens, and
// whether a literal "--" must precede flags so a trailing "--help" cannot be
// taken for a positional argument.
package trace

import "strings"

// DefaultSeparator is the token shown between a segment and the arguments
// that follow it when separators were used on the command line.
const DefaultSeparator = "-"

type segment struct {
	arg          string
	hasSeparator bool
}

// Trace is the command path consumed so far. The zero value is unusable;
// construct with New. All mutating operations return a new Trace.
type Trace struct {
	segments     []segment
	separator    string
	separatorReq bool
}

// New returns a Trace holding the given path segments, using
// DefaultSeparator as the separator token.
func New(args ...string) *Trace {
	t := &Trace{separator: DefaultSeparator}
	for _, arg := range args {
		t.segments = append(t.segments, segment{arg: arg})
	}
	return t
}

// Append returns a copy of t with arg added as the final path segment.
func (t *Trace) Append(arg string) *Trace {
	c := t.copy()
	c.segments = append(c.segments, segment{arg: arg})
	return c
}

// MarkSeparator returns a copy of t recording that a separator token
// followed the final segment on the command line. It is a no-op on an empty
// trace.
func (t *Trace) MarkSeparator() *Trace {
	if len(t.segments) == 0 {
		return t
	}
	c := t.copy()
	c.segments[len(c.segments)-1].hasSeparator = true
	return c
}

// WithSeparatorRequired returns a copy of t recording whether a literal "--"
// is needed before flag-like arguments such as --help.
func (t *Trace) WithSeparatorRequired(required bool) *Trace {
	c := t.copy()
	c.separatorReq = required
	return c
}

// Command returns the command path as a single string. When
// includeSeparators is true, separator tokens recorded with MarkSeparator
// appear in their original positions.
func (t *Trace) Command(includeSeparators bool) string {
	parts := make([]string, 0, len(t.segments))
	for _, s := range t.segments {
		parts = append(parts, s.arg)
		if includeSeparators && s.hasSeparator {
			parts = append(parts, t.separator)
		}
	}
	return strings.Join(parts, " ")
}

// NeedsSeparatingHyphenHyphen reports whether a literal "--" must be
// inserted before flags when extending this command line.
func (t *Trace) NeedsSeparatingHyphenHyphen() bool {
	return t.separatorReq
}

// Empty reports whether no segments have been recorded.
func (t *Trace) Empty() bool {
	return len(t.segments) == 0
}

func (t *Trace) copy() *Trace {
	c := &Trace{
		segments:     make([]segment, len(t.segments)),
		separator:    t.separator,
		separatorReq: t.separatorReq,
	}
	copy(c.segments, t.segments)
	return c
}
