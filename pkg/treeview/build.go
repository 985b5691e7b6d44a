package treeview

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/pbtkit/shrinktree/pkg/prog"
	"github.com/pbtkit/shrinktree/pkg/shrink"
	"github.com/pbtkit/shrinktree/pkg/tree"
)

var keyPattern = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)

// Builds the shrink tree of the values denoted by args, combining them with
// the given pairing. The values of the returned tree are []any for lists and
// map[string]any for records.
func build(args []string, pairing string) (tree.Tree[any], error) {
	fields := make([]tree.Field[string, any], len(args))
	named := 0
	for i, arg := range args {
		key, lit, found := strings.Cut(arg, "=")
		if found && keyPattern.MatchString(key) {
			named++
		} else {
			key, lit = "", arg
		}
		t, err := parse(lit)
		if err != nil {
			return tree.Tree[any]{}, err
		}
		fields[i] = tree.F(key, t)
	}

	switch named {
	case 0:
		trees := make([]tree.Tree[any], len(fields))
		for i, f := range fields {
			trees[i] = f.Tree
		}
		return toAny(combine(trees, pairing)), nil
	case len(fields):
		seen := make(map[string]bool)
		for _, f := range fields {
			if seen[f.Key] {
				return tree.Tree[any]{}, prog.BadUsage("duplicate key " + f.Key)
			}
			seen[f.Key] = true
		}
		if pairing == "fair" {
			return toAny(tree.Dist(fields...)), nil
		}
		trees := make([]tree.Tree[any], len(fields))
		for i, f := range fields {
			trees[i] = f.Tree
		}
		return tree.Map(leftFirst(trees), func(vs []any) any {
			m := make(map[string]any, len(vs))
			for i, v := range vs {
				m[fields[i].Key] = v
			}
			return m
		}), nil
	default:
		return tree.Tree[any]{}, prog.BadUsage("cannot mix named and unnamed values")
	}
}

func combine(trees []tree.Tree[any], pairing string) tree.Tree[[]any] {
	if pairing == "left" {
		return leftFirst(trees)
	}
	return tree.DistArray(trees)
}

// Combines trees into a tree of lists, shrinking earlier elements before
// later ones.
func leftFirst(trees []tree.Tree[any]) tree.Tree[[]any] {
	acc := tree.Of([]any{})
	for _, t := range trees {
		acc = tree.Map(tree.LeftFirstPair(acc, t), func(p tree.Pair[[]any, any]) []any {
			return append(p.First[:len(p.First):len(p.First)], p.Second)
		})
	}
	return acc
}

// Parses a literal into a shrink tree.
func parse(lit string) (tree.Tree[any], error) {
	if n, err := strconv.Atoi(lit); err == nil {
		return toAny(shrink.Int(n)), nil
	}
	switch {
	case lit == "true" || lit == "false":
		return toAny(shrink.Bool(lit == "true")), nil
	case strings.HasPrefix(lit, `"`):
		s, err := strconv.Unquote(lit)
		if err != nil {
			return tree.Tree[any]{}, fmt.Errorf("bad string literal %s: %w", lit, err)
		}
		return toAny(shrink.String(s)), nil
	default:
		return toAny(shrink.String(lit)), nil
	}
}

func toAny[A any](t tree.Tree[A]) tree.Tree[any] {
	return tree.Map(t, func(a A) any { return a })
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
