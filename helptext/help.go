package helptext

import (
	"strings"

	"github.com/hearth-cli/hearth/format"
	"github.com/hearth-cli/hearth/inspect"
	"github.com/hearth-cli/hearth/trace"
)

// Fixed help-screen section titles.
const (
	titleName                = "NAME"
	titleSynopsis            = "SYNOPSIS"
	titleDescription         = "DESCRIPTION"
	titleArguments           = "ARGUMENTS"
	titlePositionalArguments = "POSITIONAL ARGUMENTS"
	titleFlags               = "FLAGS"
	titleNotes               = "NOTES"
	titleGroups              = "GROUPS"
	titleCommands            = "COMMANDS"
	titleValues              = "VALUES"
	titleIndexes             = "INDEXES"
)

// Group/command items indent their summaries by this much.
const memberItemIndent = 2

// section is a titled block of pre-formatted text. Sections with an empty
// body are never emitted.
type section struct {
	title string
	body  string
}

// HelpText renders the full help screen for component: NAME, SYNOPSIS and
// DESCRIPTION, then argument and flag sections for callable components or
// usage-details sections for objects. Verbose mode includes hidden members
// and shows path separators in the NAME section.
func (r *Renderer) HelpText(component any, tr *trace.Trace, verbose bool) (string, error) {
	doc := r.insp.Doc(component)

	var sections []section
	sections = append(sections, r.nameSection(doc, tr, verbose))

	if r.insp.IsCommand(component) {
		spec, err := r.insp.ArgSpec(component)
		if err != nil {
			return "", err
		}
		accepts := r.insp.Metadata(component).AcceptsPositional

		sections = append(sections, section{titleSynopsis, synopsisBody(currentCommand(tr, true), SynopsisTokens(spec, accepts))})
		sections = append(sections, descriptionSection(doc))

		argSections, noteSections := r.argsAndFlagsSections(doc, spec, accepts)
		sections = append(sections, argSections...)
		sections = append(sections, noteSections...)
	} else {
		actions := r.Actions(component, verbose)

		sections = append(sections, section{titleSynopsis, synopsisBody(currentCommand(tr, true), possibleActionsString(actions))})
		sections = append(sections, descriptionSection(doc))
		sections = append(sections, r.usageDetailsSections(component, actions)...)
	}

	rendered := make([]string, 0, len(sections))
	for _, s := range sections {
		if s.body == "" {
			continue
		}
		rendered = append(rendered, format.Bold(s.title)+"\n"+format.Indent(s.body, r.layout.SectionIndent))
	}
	return strings.Join(rendered, "\n\n"), nil
}

// nameSection renders the current command path, with " - summary" appended
// when a one-line summary exists. Path separators appear only in verbose
// mode.
func (r *Renderer) nameSection(doc inspect.DocInfo, tr *trace.Trace, verbose bool) section {
	text := currentCommand(tr, verbose)
	if doc.Summary != "" {
		text += " - " + doc.Summary
	}
	return section{titleName, text}
}

// descriptionSection prefers the extended description, falls back to the
// summary, and is omitted when neither exists.
func descriptionSection(doc inspect.DocInfo) section {
	text := doc.Description
	if text == "" {
		text = doc.Summary
	}
	return section{titleDescription, text}
}

func synopsisBody(command, rest string) string {
	return strings.TrimRight(command+" "+rest, " ")
}

// possibleActionsString pipe-joins the emphasized action kinds present.
func possibleActionsString(actions ActionGroups) string {
	var possible []string
	if len(actions.Groups) > 0 {
		possible = append(possible, "GROUP")
	}
	if len(actions.Commands) > 0 {
		possible = append(possible, "COMMAND")
	}
	if len(actions.Values) > 0 {
		possible = append(possible, "VALUE")
	}
	if actions.Indexes != "" {
		possible = append(possible, "INDEX")
	}
	for i, action := range possible {
		possible[i] = format.Underline(action)
	}
	return strings.Join(possible, " | ")
}

// usageDetailsSections builds the GROUPS, COMMANDS, VALUES and INDEXES
// sections of an object's help screen, in that order, skipping empty kinds.
func (r *Renderer) usageDetailsSections(component any, actions ActionGroups) []section {
	var sections []section

	if len(actions.Groups) > 0 {
		sections = append(sections, section{titleGroups, r.choices("GROUP", r.memberItems(actions.Groups))})
	}
	if len(actions.Commands) > 0 {
		sections = append(sections, section{titleCommands, r.choices("COMMAND", r.memberItems(actions.Commands))})
	}
	if len(actions.Values) > 0 {
		sections = append(sections, section{titleValues, r.choices("VALUE", r.valueItems(component, actions.Values))})
	}
	if actions.Indexes != "" {
		sections = append(sections, section{titleIndexes, r.choices("INDEX", []string{actions.Indexes})})
	}

	return sections
}

// memberItems renders group and command items: the member name, with its own
// one-line summary indented beneath when it has one.
func (r *Renderer) memberItems(members []inspect.Member) []string {
	items := make([]string, 0, len(members))
	for _, m := range members {
		if summary := r.insp.Doc(m.Value).Summary; summary != "" {
			items = append(items, item(m.Name, summary, memberItemIndent))
		} else {
			items = append(items, m.Name)
		}
	}
	return items
}

// valueItems renders value items, described by the owning component's
// constructor documentation where a parameter name matches.
func (r *Renderer) valueItems(component any, values []inspect.Member) []string {
	ctorDoc := r.insp.ConstructorDoc(component)

	items := make([]string, 0, len(values))
	for _, m := range values {
		if desc := docForArg(ctorDoc, m.Name); desc != "" {
			items = append(items, item(m.Name, desc, memberItemIndent))
		} else {
			items = append(items, m.Name)
		}
	}
	return items
}

// choices lays out a "<KIND> is one of the following:" header above the
// double-spaced choice list.
func (r *Renderer) choices(kind string, choices []string) string {
	header := format.Bold(format.Underline(kind)) + " is one of the following:"
	return item(header, "\n"+strings.Join(choices, "\n\n"), r.layout.ChoiceIndent)
}

// currentCommand reads the command path from the trace, which may be absent.
func currentCommand(tr *trace.Trace, includeSeparators bool) string {
	if tr == nil {
		return ""
	}
	return tr.Command(includeSeparators)
}
