// Package shrink provides shrink trees for primitive values.
//
// These are the seeds from which generators build trees for compound values
// with the combinators in the tree package.
package shrink

import "github.com/pbtkit/shrinktree/pkg/tree"

// Int returns a tree shrinking n toward zero. The children of n are n-d for
// d = n, ceil(n/2), ceil(n/4), ... down to 1 in magnitude, so 0 is always
// tried first and n-1 (or n+1 for negative n) last.
func Int(n int) tree.Tree[int] {
	return tree.New(n, func() []tree.Tree[int] {
		var children []tree.Tree[int]
		for d := n; d != 0; d = d/2 + d%2 {
			children = append(children, Int(n-d))
			if d == 1 || d == -1 {
				break
			}
		}
		return children
	})
}

// String returns a tree shrinking s by dropping runes from the end. The
// children of s are its prefixes of 1, 2, 4, ... fewer runes, followed by the
// empty string.
func String(s string) tree.Tree[string] {
	return tree.Map(Slice([]rune(s)), func(rs []rune) string { return string(rs) })
}

// Slice returns a tree shrinking xs by dropping elements from the end, in the
// same order as String. The elements themselves are not shrunk; combine
// tree.DistArray with this tree for that.
//
// Slice copies xs, and every node holds its own copy.
func Slice[A any](xs []A) tree.Tree[[]A] {
	if xs != nil {
		xs = append(make([]A, 0, len(xs)), xs...)
	}
	return tree.New(xs, func() []tree.Tree[[]A] {
		lengths := prefixLengths(len(xs))
		children := make([]tree.Tree[[]A], len(lengths))
		for i, n := range lengths {
			children[i] = Slice(xs[:n])
		}
		return children
	})
}

func prefixLengths(n int) []int {
	var lengths []int
	for d := 1; d < n; d *= 2 {
		lengths = append(lengths, n-d)
	}
	if n > 0 {
		lengths = append(lengths, 0)
	}
	return lengths
}

// Bool returns a tree where true shrinks to false.
func Bool(b bool) tree.Tree[bool] {
	if b {
		return tree.Node(true, tree.Of(false))
	}
	return tree.Of(false)
}
