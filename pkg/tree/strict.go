package tree

import (
	"fmt"
	"io"
	"strings"
)

// Strict is a fully materialized, finite snapshot of a Tree.
type Strict[A any] struct {
	Top    A           `yaml:"top"`
	Forest []Strict[A] `yaml:"forest,omitempty"`
}

// Force materializes t down to the given depth. Nodes at that depth have no
// children in the snapshot. A negative depth materializes everything, which
// only terminates for finite trees.
func (t Tree[A]) Force(depth int) Strict[A] {
	s := Strict[A]{Top: t.top}
	if depth == 0 {
		return s
	}
	for _, c := range t.Forest() {
		s.Forest = append(s.Forest, c.Force(depth-1))
	}
	return s
}

// Tree converts the snapshot back to a lazy tree.
func (s Strict[A]) Tree() Tree[A] {
	if len(s.Forest) == 0 {
		return Of(s.Top)
	}
	return Tree[A]{s.Top, func() []Tree[A] {
		children := make([]Tree[A], len(s.Forest))
		for i, c := range s.Forest {
			children[i] = c.Tree()
		}
		return children
	}}
}

// Size returns the number of nodes in the snapshot.
func (s Strict[A]) Size() int {
	n := 1
	for _, c := range s.Forest {
		n += c.Size()
	}
	return n
}

// MapStrict applies f to every value in a snapshot.
func MapStrict[A, B any](s Strict[A], f func(A) B) Strict[B] {
	r := Strict[B]{Top: f(s.Top)}
	if s.Forest != nil {
		r.Forest = make([]Strict[B], len(s.Forest))
		for i, c := range s.Forest {
			r.Forest[i] = MapStrict(c, f)
		}
	}
	return r
}

// Render writes an outline of the snapshot to w, one node per line, with
// children indented under their parent. Values are converted to text with
// show; if show is nil, fmt.Sprint is used.
func (s Strict[A]) Render(w io.Writer, show func(A) string) error {
	if show == nil {
		show = func(a A) string { return fmt.Sprint(a) }
	}
	return s.render(w, show, "", "")
}

func (s Strict[A]) render(w io.Writer, show func(A) string, first, rest string) error {
	if _, err := fmt.Fprintf(w, "%s%s\n", first, show(s.Top)); err != nil {
		return err
	}
	for i, c := range s.Forest {
		var err error
		if i == len(s.Forest)-1 {
			err = c.render(w, show, rest+"└─ ", rest+"   ")
		} else {
			err = c.render(w, show, rest+"├─ ", rest+"│  ")
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// String returns the outline written by Render.
func (s Strict[A]) String() string {
	var sb strings.Builder
	s.Render(&sb, nil)
	return sb.String()
}
