package helptext

import (
	"fmt"
	"strings"

	"github.com/hearth-cli/hearth/format"
	"github.com/hearth-cli/hearth/inspect"
)

// SynopsisTokens renders a signature as synopsis tokens: each required
// positional parameter as an emphasized bare token (or a --name=NAME token
// when positional syntax is disallowed), then each flag as a bracketed
// optional token. Emphasis covers only the upper-cased value name.
func SynopsisTokens(spec inspect.ArgSpec, acceptsPositional bool) string {
	var tokens []string

	for _, arg := range spec.Required() {
		if acceptsPositional {
			tokens = append(tokens, format.Underline(strings.ToUpper(arg)))
		} else {
			tokens = append(tokens, fmt.Sprintf("--%s=%s", arg, format.Underline(strings.ToUpper(arg))))
		}
	}

	for _, flag := range spec.Flags() {
		tokens = append(tokens, fmt.Sprintf("[--%s=%s]", format.Underline(flag), strings.ToUpper(flag)))
	}

	return strings.Join(tokens, " ")
}

// argsAndFlagsSections builds the itemized ARGUMENTS (or POSITIONAL
// ARGUMENTS) and FLAGS sections for a callable, plus a NOTES section when
// flag syntax is also usable for positional arguments. Sections with no
// items are not produced.
func (r *Renderer) argsAndFlagsSections(doc inspect.DocInfo, spec inspect.ArgSpec, acceptsPositional bool) (sections, notes []section) {
	var argItems []string
	for _, arg := range spec.Required() {
		argItems = append(argItems, r.argItem(arg, doc))
	}
	if len(argItems) > 0 {
		title := titleArguments
		if acceptsPositional {
			title = titlePositionalArguments
		}
		sections = append(sections, section{title, strings.TrimRight(strings.Join(argItems, "\n"), "\n")})
		if acceptsPositional {
			notes = append(notes, section{titleNotes, "You can also use flags syntax for POSITIONAL ARGUMENTS"})
		}
	}

	var flagItems []string
	for _, flag := range spec.Flags() {
		flagItems = append(flagItems, r.flagItem(flag, doc))
	}
	if len(flagItems) > 0 {
		sections = append(sections, section{titleFlags, strings.Join(flagItems, "\n")})
	}

	return sections, notes
}

func (r *Renderer) argItem(arg string, doc inspect.DocInfo) string {
	name := format.BoldUnderline(strings.ToUpper(arg))
	if desc := docForArg(doc, arg); desc != "" {
		return item(name, desc, r.layout.ArgIndent)
	}
	return name
}

func (r *Renderer) flagItem(flag string, doc inspect.DocInfo) string {
	name := "--" + format.Underline(flag)
	if desc := docForArg(doc, flag); desc != "" {
		return item(name, desc, r.layout.FlagIndent)
	}
	return name
}

// docForArg finds the documented description for a parameter name. The
// first matching entry wins; duplicate names further down are ignored. Names
// absent from the documentation simply never match.
func docForArg(doc inspect.DocInfo, name string) string {
	for _, a := range doc.Args {
		if a.Name == name {
			return a.Description
		}
	}
	return ""
}
