package tree

// Unbounded is a fuel value that places no limit on a search.
const Unbounded = -1

// SearchResult is the outcome of a successful LeftFirstSearch.
type SearchResult[A any] struct {
	// The deepest node reached.
	Tree Tree[A]
	// Fuel left over. Negative if the search was unbounded.
	Fuel int
}

// LeftFirstSearch descends greedily into the tree, always following the
// first child that satisfies p and never backtracking. It is the strategy
// used to minimize a failing value: the result is not guaranteed to be the
// smallest node satisfying p, only the last one on the leftmost path.
//
// If p does not hold for the top of t, LeftFirstSearch returns false.
//
// Every child examined costs one unit of fuel, including the one that
// matches; when fuel runs out the search stops at the current node. A
// negative fuel means no limit and is returned unchanged.
func (t Tree[A]) LeftFirstSearch(p func(A) bool, fuel int) (SearchResult[A], bool) {
	if !p(t.top) {
		return SearchResult[A]{}, false
	}
descend:
	for {
		for _, c := range t.Forest() {
			if fuel == 0 {
				break descend
			}
			if fuel > 0 {
				fuel--
			}
			if p(c.top) {
				t = c
				continue descend
			}
		}
		break
	}
	return SearchResult[A]{t, fuel}, true
}
