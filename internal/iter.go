// Package internal holds iteration helpers shared by the intcode packages.
package internal

import (
	"iter"
	"slices"
)

// Permutations iterates over every ordering of items, in lexicographic order
// of the original indices. Each yielded slice is freshly allocated.
func Permutations[T any](items []T) iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		used := make([]bool, len(items))
		perm := make([]T, 0, len(items))

		var walk func() bool
		walk = func() bool {
			if len(perm) == len(items) {
				return yield(slices.Clone(perm))
			}
			for n, item := range items {
				if used[n] {
					continue
				}
				used[n] = true
				perm = append(perm, item)
				ok := walk()
				perm = perm[:len(perm)-1]
				used[n] = false
				if !ok {
					return false // Stop if the consumer stops
				}
			}
			return true
		}

		walk()
	}
}
