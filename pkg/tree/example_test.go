package tree_test

import (
	"fmt"

	"github.com/pbtkit/shrinktree/pkg/shrink"
	"github.com/pbtkit/shrinktree/pkg/tree"
)

func Example() {
	t := tree.FairPair(shrink.Int(3), shrink.String("ab"))
	fmt.Print(t.Force(1))
	// Output:
	// {3 ab}
	// ├─ {0 ab}
	// ├─ {1 ab}
	// ├─ {2 ab}
	// ├─ {3 a}
	// └─ {3 }
}

func ExampleTree_LeftFirstSearch() {
	t := shrink.Int(100)
	res, ok := t.LeftFirstSearch(func(x int) bool { return x >= 13 }, tree.Unbounded)
	fmt.Println(res.Tree.Top(), ok)
	_, ok = t.LeftFirstSearch(func(x int) bool { return x < 50 }, tree.Unbounded)
	fmt.Println(ok)
	// Output:
	// 13 true
	// false
}

func ExampleChain() {
	// Shrinking the length of a list comes before shrinking the list that
	// was re-generated from it.
	t := tree.Chain(shrink.Int(2), func(n int) tree.Tree[[]bool] {
		bs := make([]tree.Tree[bool], n)
		for i := range bs {
			bs[i] = shrink.Bool(true)
		}
		return tree.DistArray(bs)
	})
	fmt.Print(t.Force(1))
	// Output:
	// [true true]
	// ├─ []
	// ├─ [true]
	// ├─ [false true]
	// └─ [true false]
}
