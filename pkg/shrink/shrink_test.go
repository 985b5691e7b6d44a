package shrink

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/pbtkit/shrinktree/pkg/tree"
	"github.com/pbtkit/shrinktree/pkg/tt"
	"pgregory.net/rapid"
)

func childTops[A any](t tree.Tree[A]) []A {
	var tops []A
	for _, c := range t.Forest() {
		tops = append(tops, c.Top())
	}
	return tops
}

func intChildren(n int) []int { return childTops(Int(n)) }
func stringChildren(s string) []string { return childTops(String(s)) }
func sliceChildren(xs []int) [][]int { return childTops(Slice(xs)) }
func boolChildren(b bool) []bool { return childTops(Bool(b)) }

func TestInt(t *testing.T) {
	tt.Test(t, tt.Fn("intChildren", intChildren), tt.Table{
		tt.Args(0).Rets([]int(nil)),
		tt.Args(1).Rets([]int{0}),
		tt.Args(2).Rets([]int{0, 1}),
		tt.Args(3).Rets([]int{0, 1, 2}),
		tt.Args(10).Rets([]int{0, 5, 7, 8, 9}),
		tt.Args(-3).Rets([]int{0, -1, -2}),
		tt.Args(-10).Rets([]int{0, -5, -7, -8, -9}),
	})
}

func TestString(t *testing.T) {
	tt.Test(t, tt.Fn("stringChildren", stringChildren), tt.Table{
		tt.Args("").Rets([]string(nil)),
		tt.Args("a").Rets([]string{""}),
		tt.Args("ab").Rets([]string{"a", ""}),
		tt.Args("abcd").Rets([]string{"abc", "ab", ""}),
		tt.Args("abcde").Rets([]string{"abcd", "abc", "a", ""}),
		tt.Args("你好").Rets([]string{"你", ""}),
	})
}

func TestSlice(t *testing.T) {
	tt.Test(t, tt.Fn("sliceChildren", sliceChildren), tt.Table{
		tt.Args(nil).Rets([][]int(nil)),
		tt.Args([]int{1, 2, 3}).Rets([][]int{{1, 2}, {1}, {}}),
	})
}

func TestSlice_ChildrenDoNotAlias(t *testing.T) {
	xs := []int{1, 2, 3}
	children := Slice(xs).Forest()
	grown := append(children[0].Top(), 100)
	if xs[2] != 3 {
		t.Errorf("appending to a child overwrote the parent: %v, %v", xs, grown)
	}
}

func TestSlice_CopiesItsInput(t *testing.T) {
	xs := []int{1, 2, 3}
	s := Slice(xs)
	xs[0] = 42
	if got := s.Top(); !cmp.Equal(got, []int{1, 2, 3}) {
		t.Errorf("top = %v, want [1 2 3]", got)
	}
	child := s.Forest()[0]
	if got := child.Top(); !cmp.Equal(got, []int{1, 2}) {
		t.Errorf("first child = %v, want [1 2]", got)
	}
	child.Top()[0] = 7
	if got := s.Top(); !cmp.Equal(got, []int{1, 2, 3}) {
		t.Errorf("top after modifying a child = %v, want [1 2 3]", got)
	}
}

func TestBool(t *testing.T) {
	tt.Test(t, tt.Fn("boolChildren", boolChildren), tt.Table{
		tt.Args(true).Rets([]bool{false}),
		tt.Args(false).Rets([]bool(nil)),
	})
}

func TestInt_ChildrenAreSmaller(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(-1<<40, 1<<40).Draw(t, "n")
		for _, c := range intChildren(n) {
			if abs(c) >= abs(n) {
				t.Fatalf("Int(%d) has child %d", n, c)
			}
		}
	})
}

func TestInt_SearchFindsBoundary(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(0, 1_000_000).Draw(t, "n")
		k := rapid.IntRange(0, n).Draw(t, "k")
		res, ok := Int(n).LeftFirstSearch(func(x int) bool { return x >= k }, tree.Unbounded)
		if !ok || res.Tree.Top() != k {
			t.Fatalf("searching x >= %d from %d reached %d", k, n, res.Tree.Top())
		}
	})
}

func TestString_ChildrenArePrefixes(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		s := rapid.String().Draw(t, "s")
		for _, c := range stringChildren(s) {
			if !strings.HasPrefix(s, c) || len(c) >= len(s) {
				t.Fatalf("String(%q) has child %q", s, c)
			}
		}
	})
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
