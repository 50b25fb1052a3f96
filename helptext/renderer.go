// Package helptext renders help screens and usage lines for components
// discovered at runtime.
//
// There are two kinds of informative text. Usage lines are shown when a
// group is accessed, or a command is accessed without being called, and stay
// short. Help screens are shown on an explicit --help request and carry the
// detailed sections: NAME, SYNOPSIS, DESCRIPTION, then either the argument
// and flag sections of a callable or the group/command/value/index sections
// of an object.
//
// Rendering is a pure function of the component, the trace, and the
// Inspector's answers; nothing is written or cached.
package helptext

import (
	"github.com/hearth-cli/hearth/format"
	"github.com/hearth-cli/hearth/inspect"
)

// Renderer produces help and usage text using an Inspector for component
// metadata and a Layout for column settings.
type Renderer struct {
	insp   inspect.Inspector
	layout Layout
}

// New returns a Renderer with the default layout.
func New(insp inspect.Inspector) *Renderer {
	return NewWithLayout(insp, DefaultLayout())
}

// NewWithLayout returns a Renderer with an explicit layout.
func NewWithLayout(insp inspect.Inspector, layout Layout) *Renderer {
	return &Renderer{insp: insp, layout: layout}
}

// item renders a name above its indented description.
func item(name, description string, indent int) string {
	return name + "\n" + format.Indent(description, indent)
}
