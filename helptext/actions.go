package helptext

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/hearth-cli/hearth/inspect"
)

// ActionKind classifies what can be done with a component or member. Kinds
// are independent predicates, not a partition: a member may carry several.
type ActionKind uint8

const (
	KindGroup ActionKind = 1 << iota
	KindCommand
	KindValue
	KindIndex
)

// Has reports whether k includes kind.
func (k ActionKind) Has(kind ActionKind) bool {
	return k&kind != 0
}

// MemberEntry is a classified member of a component.
type MemberEntry struct {
	Name  string
	Value any
	Kinds ActionKind
}

// ActionGroups holds a component's members grouped by action kind, each in
// enumeration order. A member appears in every group whose kind it
// satisfies.
type ActionGroups struct {
	Groups   []inspect.Member
	Commands []inspect.Member
	Values   []inspect.Member

	// Indexes describes the valid indexes of a sequence component: the
	// literal comma-joined list for short sequences, a compressed 0..n-1
	// range otherwise. Empty when the component is not a non-empty
	// sequence.
	Indexes string
}

// Sequences at or above this length render a compressed index range.
const indexRangeThreshold = 10

// Actions classifies every exposed member of component by action kind.
// Verbose mode includes members the inspector marks hidden. Degenerate
// components classify to empty groups.
func (r *Renderer) Actions(component any, verbose bool) ActionGroups {
	var actions ActionGroups

	for _, m := range r.insp.Members(component, verbose) {
		entry := r.classify(m)
		if entry.Kinds.Has(KindGroup) {
			actions.Groups = append(actions.Groups, m)
		}
		if entry.Kinds.Has(KindCommand) {
			actions.Commands = append(actions.Commands, m)
		}
		if entry.Kinds.Has(KindValue) {
			actions.Values = append(actions.Values, m)
		}
	}

	if n, ok := r.insp.SequenceLen(component); ok && n > 0 {
		actions.Indexes = indexDescriptor(n)
	}

	return actions
}

// classify runs every kind predicate against a member; no predicate
// excludes another.
func (r *Renderer) classify(m inspect.Member) MemberEntry {
	entry := MemberEntry{Name: m.Name, Value: m.Value}
	if r.insp.IsGroup(m.Value) {
		entry.Kinds |= KindGroup
	}
	if r.insp.IsCommand(m.Value) {
		entry.Kinds |= KindCommand
	}
	if r.insp.IsValue(m.Value) {
		entry.Kinds |= KindValue
	}
	if _, ok := r.insp.SequenceLen(m.Value); ok {
		entry.Kinds |= KindIndex
	}
	return entry
}

func indexDescriptor(n int) string {
	if n < indexRangeThreshold {
		parts := make([]string, n)
		for i := range parts {
			parts[i] = strconv.Itoa(i)
		}
		return strings.Join(parts, ", ")
	}
	return fmt.Sprintf("0..%d", n-1)
}
