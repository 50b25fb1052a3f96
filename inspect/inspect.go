// Package inspect defines the metadata contracts the help and usage
// renderers consume: member enumeration, signatures, documentation, and the
// semantic predicates that classify a component.
//
// The rendering core never touches reflection itself; it talks to an
// Inspector. Reflector is the default implementation, but any CLI framework
// can supply its own.
package inspect

import (
	"fmt"
	"reflect"
)

// Member is a named sub-component exposed by a component.
type Member struct {
	Name  string
	Value any
}

// ArgSpec describes a callable component's parameters.
type ArgSpec struct {
	// Positional holds the positional parameter names in declaration order.
	Positional []string
	// NumDefaulted is the number of trailing Positional entries that carry
	// default values.
	NumDefaulted int
	// FlagOnly holds the names of parameters only settable by flag syntax,
	// in declaration order.
	FlagOnly []string
}

// Required returns the positional parameters without defaults.
func (s ArgSpec) Required() []string {
	return s.Positional[:len(s.Positional)-s.NumDefaulted]
}

// Defaulted returns the positional parameters carrying defaults.
func (s ArgSpec) Defaulted() []string {
	return s.Positional[len(s.Positional)-s.NumDefaulted:]
}

// Flags returns every parameter exposed via flag syntax: the defaulted
// positional parameters in declaration order, then the flag-only parameters
// in declaration order. This ordering is relied on by both the synopsis and
// the FLAGS section.
func (s ArgSpec) Flags() []string {
	flags := make([]string, 0, s.NumDefaulted+len(s.FlagOnly))
	flags = append(flags, s.Defaulted()...)
	return append(flags, s.FlagOnly...)
}

// ArgDoc is the documentation for a single named parameter.
type ArgDoc struct {
	Name        string
	Description string
}

// DocInfo is the structured documentation of a component. Any field may be
// empty; Args may document names absent from the signature and may repeat
// names.
type DocInfo struct {
	Summary     string
	Description string
	Args        []ArgDoc
}

// Metadata carries per-component policy that is declared rather than
// inferred from the signature.
type Metadata struct {
	// AcceptsPositional reports whether the component may be called with
	// bare positional arguments, as opposed to requiring flag syntax for
	// every parameter.
	AcceptsPositional bool
}

// Inspector supplies everything the renderers need to know about a
// component. Implementations must be read-only and return stable member
// ordering.
type Inspector interface {
	// Members enumerates the named sub-components of component.
	// Hidden members are included only when includeHidden is true.
	Members(component any, includeHidden bool) []Member

	// ArgSpec returns the parameter specification of a callable component.
	// It returns a *SignatureError when the parameters cannot be determined.
	ArgSpec(component any) (ArgSpec, error)

	// Doc returns the component's documentation. It is tolerant: missing
	// documentation yields a zero DocInfo, never an error.
	Doc(component any) DocInfo

	// ConstructorDoc returns the documentation of the component's
	// constructor, whose Args entries may describe the component's value
	// members.
	ConstructorDoc(component any) DocInfo

	// Metadata returns the component's declared policy metadata.
	Metadata(component any) Metadata

	// IsGroup reports whether the component exposes further named
	// sub-components. IsCommand reports whether it is invocable. IsValue
	// reports whether it is a terminal value. The predicates are
	// independent; a component may satisfy several.
	IsGroup(component any) bool
	IsCommand(component any) bool
	IsValue(component any) bool

	// SequenceLen returns the length of an ordered finite sequence
	// component, and whether the component is one.
	SequenceLen(component any) (int, bool)
}

// SignatureError reports that a component's parameters could not be
// determined.
type SignatureError struct {
	Type reflect.Type
}

func (e *SignatureError) Error() string {
	return fmt.Sprintf("cannot determine the signature of %v", e.Type)
}
