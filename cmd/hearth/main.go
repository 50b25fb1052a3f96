// Command hearth renders the help and usage screens for a small sample
// component tree. It exists to exercise the library end to end: pass member
// names as positional arguments to walk the tree, --usage for the compact
// summary, --help (the default) for the full help screen.
package main

import (
	"fmt"
	"os"

	"github.com/hearth-cli/hearth/format"
	"github.com/hearth-cli/hearth/helptext"
	"github.com/hearth-cli/hearth/inspect"
	"github.com/hearth-cli/hearth/trace"
	flag "github.com/spf13/pflag"
	"golang.org/x/term"
)

// pantry is the sample application component.
type pantry struct {
	Theme  string
	Shelf  shelf
	Labels []string
	Audit  string `help:"-"`
}

// shelf groups the stocking commands.
type shelf struct {
	Capacity int
}

func (s shelf) Stock(name string, count int) error {
	return nil
}

func (s shelf) Clear() error {
	return nil
}

func newInspector(p *pantry) *inspect.Reflector {
	r := inspect.NewReflector()

	r.DescribeType(p, inspect.DocInfo{
		Summary:     "Keeps track of what is in the pantry.",
		Description: "A toy pantry manager used to demonstrate help and usage rendering.",
		Args: []inspect.ArgDoc{
			{Name: "theme", Description: "Name of the output theme."},
		},
	})
	r.DescribeType(p.Shelf, inspect.DocInfo{
		Summary: "Stocking commands.",
	})
	r.DescribeMethod(p.Shelf, "Stock", inspect.FuncInfo{
		Positional:        []string{"name", "count"},
		NumDefaulted:      1,
		FlagOnly:          []string{"expiry"},
		AcceptsPositional: true,
		Doc: inspect.DocInfo{
			Summary: "Adds an item to the shelf.",
			Args: []inspect.ArgDoc{
				{Name: "name", Description: "The item to add."},
				{Name: "count", Description: "How many to add. Defaults to 1."},
				{Name: "expiry", Description: "Best-before date, YYYY-MM-DD."},
			},
		},
	})
	r.DescribeMethod(p.Shelf, "Clear", inspect.FuncInfo{
		AcceptsPositional: true,
		Doc:               inspect.DocInfo{Summary: "Empties the shelf."},
	})

	return r
}

// resolve walks the component tree along the given member names.
func resolve(insp inspect.Inspector, component any, tr *trace.Trace, names []string) (any, *trace.Trace, error) {
	for _, name := range names {
		next, ok := lookup(insp, component, name)
		if !ok {
			return nil, nil, fmt.Errorf("hearth: unknown member %q", name)
		}
		component = next
		tr = tr.Append(name)
	}
	return component, tr, nil
}

func lookup(insp inspect.Inspector, component any, name string) (any, bool) {
	for _, m := range insp.Members(component, true) {
		if m.Name == name {
			return m.Value, true
		}
	}
	return nil, false
}

func main() {
	showUsage := flag.Bool("usage", false, "Show the usage line instead of the help screen")
	verbose := flag.BoolP("verbose", "v", false, "Include hidden members")
	noColor := flag.Bool("no-color", false, "Disable emphasis")
	width := flag.Int("width", 0, "Override the output line width")
	flag.Parse()

	format.Init(term.IsTerminal(int(os.Stdout.Fd())) && !*noColor)

	layout := helptext.DefaultLayout()
	if *width > 0 {
		layout.LineLength = *width
	}

	p := &pantry{Theme: "plain", Labels: []string{"fragile", "heavy"}}
	insp := newInspector(p)
	renderer := helptext.NewWithLayout(insp, layout)

	component, tr, err := resolve(insp, p, trace.New("hearth"), flag.Args())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	render := renderer.HelpText
	if *showUsage {
		render = renderer.UsageText
	}

	out, err := render(component, tr, *verbose)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Println(out)
}
