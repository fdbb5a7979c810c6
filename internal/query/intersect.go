package query

import (
	"cmp"
	"slices"
)

// Intersect returns the elements of the smallest set that are present, by
// id, in every other set. The result keeps the smallest set's order and its
// duplicates. A single set is returned unchanged; no sets yields nil, so
// callers that mean "no constraint" must handle that case themselves.
func Intersect[T any](sets [][]T, id func(T) int) []T {
	switch len(sets) {
	case 0:
		return nil
	case 1:
		return sets[0]
	}

	bySize := slices.Clone(sets)
	slices.SortStableFunc(bySize, func(a, b []T) int { return cmp.Compare(len(a), len(b)) })

	others := make([]map[int]struct{}, 0, len(bySize)-1)
	for _, set := range bySize[1:] {
		ids := make(map[int]struct{}, len(set))
		for _, e := range set {
			ids[id(e)] = struct{}{}
		}
		others = append(others, ids)
	}

	out := make([]T, 0, len(bySize[0]))
	for _, e := range bySize[0] {
		k := id(e)
		inAll := true
		for _, ids := range others {
			if _, ok := ids[k]; !ok {
				inAll = false
				break
			}
		}
		if inAll {
			out = append(out, e)
		}
	}
	return out
}
