package helptext

import (
	"fmt"
	"strings"

	"github.com/hearth-cli/hearth/format"
	"github.com/hearth-cli/hearth/inspect"
	"github.com/hearth-cli/hearth/trace"
)

// UsageText renders the compact usage summary shown on errors or when a
// component is accessed without being invoked, ending with a hint to run
// --help. Callable components show the call pattern; objects show the
// available action kinds. Verbose mode includes hidden members for objects
// and has no effect for callables.
func (r *Renderer) UsageText(component any, tr *trace.Trace, verbose bool) (string, error) {
	if r.insp.IsCommand(component) {
		return r.usageTextForCallable(component, tr)
	}
	return r.usageTextForObject(component, tr, verbose), nil
}

func (r *Renderer) usageTextForCallable(component any, tr *trace.Trace) (string, error) {
	command := currentCommand(tr, true)

	spec, err := r.insp.ArgSpec(component)
	if err != nil {
		return "", err
	}
	accepts := r.insp.Metadata(component).AcceptsPositional

	var items []string
	for _, arg := range spec.Required() {
		if accepts {
			items = append(items, strings.ToUpper(arg))
		} else {
			items = append(items, fmt.Sprintf("--%s=%s", arg, strings.ToUpper(arg)))
		}
	}

	availability := ""
	if flags := spec.Flags(); len(flags) > 0 {
		items = append(items, "<flags>")
		for i, flag := range flags {
			flags[i] = "--" + flag
		}
		availability = "\nAvailable flags: " + strings.Join(flags, " | ") + "\n"
	}

	// A "--" keeps the trailing --help from being taken for an argument.
	hyphenHyphen := ""
	if tr != nil && tr.NeedsSeparatingHyphenHyphen() {
		hyphenHyphen = " --"
	}

	return fmt.Sprintf("%s\n%s\nFor detailed information on this command, run:\n  %s%s --help",
		strings.TrimRight("Usage: "+command+" "+strings.Join(items, " "), " "),
		availability,
		command,
		hyphenHyphen,
	), nil
}

func (r *Renderer) usageTextForObject(component any, tr *trace.Trace, verbose bool) string {
	command := currentCommand(tr, true)
	actions := r.Actions(component, verbose)

	var possible []string
	var availability []string
	if len(actions.Groups) > 0 {
		possible = append(possible, "group")
		availability = append(availability, r.availabilityLine("available groups:", memberNames(actions.Groups)))
	}
	if len(actions.Commands) > 0 {
		possible = append(possible, "command")
		availability = append(availability, r.availabilityLine("available commands:", memberNames(actions.Commands)))
	}
	if len(actions.Values) > 0 {
		possible = append(possible, "value")
		availability = append(availability, r.availabilityLine("available values:", memberNames(actions.Values)))
	}
	if actions.Indexes != "" {
		possible = append(possible, "index")
		availability = append(availability, r.availabilityLine("available indexes:", []string{actions.Indexes}))
	}

	possibleActions := ""
	if len(possible) > 0 {
		possibleActions = " <" + strings.Join(possible, "|") + ">"
	}

	return fmt.Sprintf("Usage: %s%s\n%s\nFor detailed information on this command, run:\n  %s --help",
		command,
		possibleActions,
		strings.Join(availability, ""),
		command,
	)
}

// availabilityLine renders a header at a small indent, then the item names
// word-wrapped to fill from ItemsColumn out to LineLength, wrapped lines
// aligned under that column.
func (r *Renderer) availabilityLine(header string, names []string) string {
	itemsWidth := r.layout.LineLength - r.layout.ItemsColumn
	itemsText := strings.Join(format.WrappedJoin(names, " | ", itemsWidth), "\n")
	indentedItems := format.Indent(itemsText, r.layout.ItemsColumn)
	indentedHeader := format.Indent(header, r.layout.HeaderIndent)

	// The header overlays the leading spaces of the first items line.
	if len(indentedItems) <= len(indentedHeader) {
		return indentedHeader + "\n"
	}
	return indentedHeader + indentedItems[len(indentedHeader):] + "\n"
}

func memberNames(members []inspect.Member) []string {
	names := make([]string, 0, len(members))
	for _, m := range members {
		names = append(names, m.Name)
	}
	return names
}
