// Package treeview implements the shrinkview program, which shows the shrink
// tree of values given on the command line.
//
// Each argument is a literal: an integer, true or false, or a string
// (optionally double-quoted). An argument of the form key=literal names a
// field; if every argument names a field, the values are combined into a
// record, and otherwise into a list. The tree is forced to a given depth and
// printed as an outline or as YAML.
//
// With -search, the program instead finds the leftmost shrink whose
// components all have a size of at least -min, where the size of an integer
// is its absolute value, the size of a string its number of runes and the
// size of a boolean 1 for true and 0 for false.
package treeview

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/mattn/go-isatty"
	"gopkg.in/yaml.v3"

	"github.com/pbtkit/shrinktree/pkg/logutil"
	"github.com/pbtkit/shrinktree/pkg/prog"
	"github.com/pbtkit/shrinktree/pkg/tree"
)

var logger = logutil.GetLogger("[treeview] ")

// Program is the shrinkview program.
type Program struct {
	depth   int
	format  string
	pairing string
	color   string
	search  bool
	min     int
	fuel    int
}

func (p *Program) RegisterFlags(fs *prog.FlagSet) {
	fs.IntVar(&p.depth, "depth", 2, "depth to expand the tree to; negative for unlimited")
	fs.ChoiceVar(&p.format, "format", []string{"text", "yaml"}, "output format")
	fs.ChoiceVar(&p.pairing, "pairing", []string{"fair", "left"},
		"how to combine the shrinks of multiple values")
	fs.ChoiceVar(&p.color, "color", []string{"auto", "always", "never"},
		"whether to highlight values in text output")
	fs.BoolVar(&p.search, "search", false, "search for a minimal value instead of showing the tree")
	fs.IntVar(&p.min, "min", 1, "minimal size of every component when searching")
	fs.IntVar(&p.fuel, "fuel", tree.Unbounded, "number of shrinks to try when searching; negative for unlimited")
}

func (p *Program) Run(fds [3]*os.File, args []string) error {
	if len(args) == 0 {
		return prog.BadUsage("no values given")
	}
	t, err := build(args, p.pairing)
	if err != nil {
		return err
	}
	logger.Printf("built tree for %v with %s pairing", t.Top(), p.pairing)

	if p.search {
		return p.runSearch(fds[1], t)
	}
	s := tree.MapStrict(t.Force(p.depth), plain)
	logger.Printf("forced %d nodes to depth %d", s.Size(), p.depth)
	switch p.format {
	case "yaml":
		return writeYAML(fds[1], s)
	default:
		show := text
		if p.useColor(fds[1]) {
			show = highlight
		}
		return s.Render(fds[1], show)
	}
}

func (p *Program) useColor(f *os.File) bool {
	switch p.color {
	case "always":
		return true
	case "never":
		return false
	default:
		return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}
}

type searchResult struct {
	Result any `yaml:"result"`
	Fuel   int `yaml:"fuel"`
}

func (p *Program) runSearch(w io.Writer, t tree.Tree[any]) error {
	res, ok := t.LeftFirstSearch(p.atLeastMin, p.fuel)
	if !ok {
		logger.Printf("%v is smaller than %d", t.Top(), p.min)
		_, err := fmt.Fprintf(w, "no match: %s has a component smaller than %d\n", text(plain(t.Top())), p.min)
		if err != nil {
			return err
		}
		return prog.Exit(1)
	}
	logger.Printf("minimized to %v with %d fuel left", res.Tree.Top(), res.Fuel)
	if p.format == "yaml" {
		return writeYAML(w, searchResult{plain(res.Tree.Top()), res.Fuel})
	}
	_, err := fmt.Fprintf(w, "%s\nfuel left: %d\n", text(plain(res.Tree.Top())), res.Fuel)
	return err
}

func (p *Program) atLeastMin(v any) bool {
	switch v := v.(type) {
	case []any:
		for _, e := range v {
			if !p.atLeastMin(e) {
				return false
			}
		}
		return true
	case map[string]any:
		for _, e := range v {
			if !p.atLeastMin(e) {
				return false
			}
		}
		return true
	default:
		return size(v) >= p.min
	}
}

func size(v any) int {
	switch v := v.(type) {
	case int:
		if v < 0 {
			return -v
		}
		return v
	case string:
		return len([]rune(v))
	case bool:
		if v {
			return 1
		}
		return 0
	}
	return 0
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode YAML: %w", err)
	}
	return enc.Close()
}

// Converts the value in a tree built by build to a form that formats well,
// turning single-element lists into the element itself.
func plain(v any) any {
	if l, ok := v.([]any); ok && len(l) == 1 {
		return l[0]
	}
	return v
}

func text(v any) string {
	switch v := v.(type) {
	case string:
		return strconv.Quote(v)
	case []any:
		parts := make([]string, len(v))
		for i, e := range v {
			parts[i] = text(e)
		}
		return "[" + strings.Join(parts, " ") + "]"
	case map[string]any:
		keys := sortedKeys(v)
		parts := make([]string, len(keys))
		for i, k := range keys {
			parts[i] = k + "=" + text(v[k])
		}
		return "{" + strings.Join(parts, " ") + "}"
	default:
		return fmt.Sprint(v)
	}
}

func highlight(v any) string { return "\033[1m" + text(v) + "\033[m" }
