package tree

// Chain is the monadic bind of trees. The top of the result is the top of
// f(t.Top()). The children of the result are the children of t chained
// through f, followed by the children of f(t.Top()).
//
// Neither t.Forest() nor the forest of f(t.Top()) is evaluated until the
// children of the result are requested.
func Chain[A, B any](t Tree[A], f func(A) Tree[B]) Tree[B] {
	u := f(t.top)
	return Tree[B]{u.top, func() []Tree[B] {
		outer := t.Forest()
		inner := u.Forest()
		children := make([]Tree[B], 0, len(outer)+len(inner))
		for _, c := range outer {
			children = append(children, Chain(c, f))
		}
		return append(children, inner...)
	}}
}

// Map applies f to every value in the tree, preserving its shape. The values
// of descendants are computed only when they are reached.
func Map[A, B any](t Tree[A], f func(A) B) Tree[B] {
	return Chain(t, func(a A) Tree[B] { return Of(f(a)) })
}
