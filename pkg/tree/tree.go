// Package tree implements lazy shrink trees.
//
// A shrink tree pairs a generated value with all of its possible
// simplifications. The children of a node are computed on demand and are
// never cached, so trees can be infinite and can be built from recursive
// combinators.
package tree

// Tree is a lazy rose tree. The zero value is a leaf holding the zero value
// of A.
type Tree[A any] struct {
	top    A
	forest func() []Tree[A]
}

// Of returns a leaf tree holding a.
func Of[A any](a A) Tree[A] {
	return Tree[A]{top: a}
}

// New returns a tree with the given top value whose children are computed by
// calling forest. A nil forest is treated as having no children.
//
// The forest function is called every time the children are requested, and
// must return structurally equal results each time.
func New[A any](top A, forest func() []Tree[A]) Tree[A] {
	return Tree[A]{top, forest}
}

// Node returns a tree with the given top value and an already materialized
// list of children.
func Node[A any](top A, children ...Tree[A]) Tree[A] {
	if len(children) == 0 {
		return Of(top)
	}
	children = append([]Tree[A](nil), children...)
	return Tree[A]{top, func() []Tree[A] {
		return append([]Tree[A](nil), children...)
	}}
}

// Top returns the value at the root of the tree. Slice and map tops are
// shared with the tree and must not be modified.
func (t Tree[A]) Top() A { return t.top }

// Forest computes the children of the tree. Index 0 is the first shrink
// candidate. Each call returns a newly allocated slice.
func (t Tree[A]) Forest() []Tree[A] {
	if t.forest == nil {
		return nil
	}
	return t.forest()
}
