package dedupe

// cluster groups items by a pairwise match predicate using a greedy
// single-pivot sweep: the first unclustered item becomes a pivot and
// absorbs every remaining item it matches, then the sweep repeats on what
// is left. Every item lands in exactly one cluster (an item always matches
// itself).
//
// This is not transitive closure: an item matching a non-pivot member but
// not the pivot starts its own cluster, so the grouping depends on input
// order. Kept as-is to reproduce the established output.
func cluster[T any](items []T, match func(a, b T) bool) [][]T {
	remaining := make([]T, len(items))
	copy(remaining, items)

	var clusters [][]T
	for len(remaining) > 0 {
		pivot := remaining[0]
		var matched, rest []T
		for _, item := range remaining {
			if match(pivot, item) {
				matched = append(matched, item)
			} else {
				rest = append(rest, item)
			}
		}
		clusters = append(clusters, matched)
		remaining = rest
	}
	return clusters
}
