package search

import "iter"

// Compositions enumerates every way to split n into k positive integer
// parts, i.e. every tuple of positive integers of length k summing to n,
// in lexicographic order. Ported from original_source/util.py's
// share(n, k) generator.
//
//	Compositions(4, 2) yields (1,3), (2,2), (3,1)
//
// Yields nothing if n < k (no composition of n positive parts exists).
func Compositions(n, k int) iter.Seq[[]int] {
	return func(yield func([]int) bool) {
		compose(n, k, nil, yield)
	}
}

func compose(n, k int, prefix []int, yield func([]int) bool) bool {
	if k == 1 {
		if n < 1 {
			return true
		}
		full := make([]int, len(prefix)+1)
		copy(full, prefix)
		full[len(prefix)] = n
		return yield(full)
	}
	for x := 1; x < n; x++ {
		next := make([]int, len(prefix)+1)
		copy(next, prefix)
		next[len(prefix)] = x
		if !compose(n-x, k-1, next, yield) {
			return false
		}
	}
	return true
}
