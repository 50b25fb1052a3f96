package helptext

// Layout holds the column and indent settings used when rendering help
// screens and usage lines. Values are threaded explicitly so renders stay
// pure and independently testable.
type Layout struct {
	// LineLength is the total output line width.
	LineLength int
	// SectionIndent indents every help-section body under its title.
	SectionIndent int
	// ArgIndent indents the description under a positional-argument item.
	ArgIndent int
	// FlagIndent indents the description under a flag item.
	FlagIndent int
	// ChoiceIndent indents the choice list of a usage-details section.
	ChoiceIndent int
	// HeaderIndent indents the "available <kind>s:" headers of a usage line.
	HeaderIndent int
	// ItemsColumn is the column where availability-line items begin.
	ItemsColumn int
}

// DefaultLayout returns the standard 80-column layout.
func DefaultLayout() Layout {
	return Layout{
		LineLength:    80,
		SectionIndent: 4,
		ArgIndent:     4,
		FlagIndent:    2,
		ChoiceIndent:  1,
		HeaderIndent:  2,
		ItemsColumn:   25,
	}
}
