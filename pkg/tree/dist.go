package tree

import "fmt"

// Pair is a 2-tuple.
type Pair[A, B any] struct {
	First  A
	Second B
}

// Triple is a 3-tuple.
type Triple[A, B, C any] struct {
	First  A
	Second B
	Third  C
}

// LeftFirstPair combines two trees by nesting Chain. All shrinks of the first
// component, including everything reachable while re-expanding the second,
// come before any shrink of the second component.
func LeftFirstPair[A, B any](ta Tree[A], tb Tree[B]) Tree[Pair[A, B]] {
	return Chain(ta, func(a A) Tree[Pair[A, B]] {
		return Chain(tb, func(b B) Tree[Pair[A, B]] {
			return Of(Pair[A, B]{a, b})
		})
	})
}

// FairPair combines two trees so that each child of the result shrinks
// exactly one component. Children shrinking the first component come first,
// followed by children shrinking the second; the two groups are siblings.
func FairPair[A, B any](ta Tree[A], tb Tree[B]) Tree[Pair[A, B]] {
	return Tree[Pair[A, B]]{Pair[A, B]{ta.top, tb.top}, func() []Tree[Pair[A, B]] {
		as, bs := ta.Forest(), tb.Forest()
		children := make([]Tree[Pair[A, B]], 0, len(as)+len(bs))
		for _, a := range as {
			children = append(children, FairPair(a, tb))
		}
		for _, b := range bs {
			children = append(children, FairPair(ta, b))
		}
		return children
	}}
}

// FairTriple is like FairPair, for three components.
func FairTriple[A, B, C any](ta Tree[A], tb Tree[B], tc Tree[C]) Tree[Triple[A, B, C]] {
	top := Triple[A, B, C]{ta.top, tb.top, tc.top}
	return Tree[Triple[A, B, C]]{top, func() []Tree[Triple[A, B, C]] {
		as, bs, cs := ta.Forest(), tb.Forest(), tc.Forest()
		children := make([]Tree[Triple[A, B, C]], 0, len(as)+len(bs)+len(cs))
		for _, a := range as {
			children = append(children, FairTriple(a, tb, tc))
		}
		for _, b := range bs {
			children = append(children, FairTriple(ta, b, tc))
		}
		for _, c := range cs {
			children = append(children, FairTriple(ta, tb, c))
		}
		return children
	}}
}

// DistArray combines a fixed-length list of trees into a tree of lists. Each
// child of the result shrinks exactly one element, and children shrinking
// different elements are siblings, ordered by element index. Every value in
// the result has length len(trees).
//
// Every node of the result holds its own slice, so modifying a top does not
// affect its children, but it does affect later calls to Top on that node.
func DistArray[A any](trees []Tree[A]) Tree[[]A] {
	trees = append([]Tree[A](nil), trees...)
	tops := make([]A, len(trees))
	for i, t := range trees {
		tops[i] = t.top
	}
	if len(trees) == 0 {
		return Of(tops)
	}
	return Tree[[]A]{tops, func() []Tree[[]A] {
		var children []Tree[[]A]
		for i, t := range trees {
			for _, c := range t.Forest() {
				replaced := append([]Tree[A](nil), trees...)
				replaced[i] = c
				children = append(children, DistArray(replaced))
			}
		}
		return children
	}}
}

// Field names a component tree of a record.
type Field[K comparable, V any] struct {
	Key  K
	Tree Tree[V]
}

// F is a shorthand for constructing a Field.
func F[K comparable, V any](key K, t Tree[V]) Field[K, V] {
	return Field[K, V]{key, t}
}

// Dist combines named trees into a tree of records. The order of fields
// determines the order of children: all shrinks of the first field come
// first, then all shrinks of the second, and so on; each child shrinks
// exactly one field and holds the others at their current values.
//
// Like the slices of DistArray, each node holds its own map, which must not be
// modified. Dist panics if a key appears more than once.
func Dist[K comparable, V any](fields ...Field[K, V]) Tree[map[K]V] {
	keys := make([]K, len(fields))
	trees := make([]Tree[V], len(fields))
	seen := make(map[K]struct{}, len(fields))
	for i, f := range fields {
		if _, dup := seen[f.Key]; dup {
			panic(fmt.Sprintf("tree.Dist: duplicate key %v", f.Key))
		}
		seen[f.Key] = struct{}{}
		keys[i], trees[i] = f.Key, f.Tree
	}
	return Map(DistArray(trees), func(vs []V) map[K]V {
		m := make(map[K]V, len(keys))
		for i, k := range keys {
			m[k] = vs[i]
		}
		return m
	})
}
