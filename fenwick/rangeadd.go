package fenwick

// RangeAdd and At drive the tree in its range-update point-query mode: the
// blocks hold per-range deltas and an element is recovered as the prefix
// sum of every delta at or before it. The mode shares nothing but storage
// with the point-update operations, so an instance is driven through
// RangeAdd/At or through Add/Build/queries, never both. Mixing the two on
// one tree corrupts both interpretations silently. Clear returns a tree to
// the state where either mode can start.

// RangeAdd adds delta to every a[x] with l <= x <= r.
//
// Complexity: O(log n). Assumes 1 <= l <= r <= n.
func (ft *Tree) RangeAdd(l, r int, delta int64) {
	ft.Add(l, delta)
	if r < ft.Len() {
		ft.Add(r+1, -delta)
	}
}

// At returns a[i] under the RangeAdd mode.
//
// Complexity: O(log n). Assumes 1 <= i <= n.
func (ft *Tree) At(i int) int64 {
	return ft.PrefixSum(i)
}
