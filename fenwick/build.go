package fenwick

// Build rebuilds the tree from vals, read 1-indexed: a[i] = vals[i] for
// 1 <= i <= n, vals[0] ignored. Whatever the tree held before is
// discarded. Processing indices in descending order lets each slot be
// zeroed just before the first addition that can touch it, so no separate
// clearing pass is needed.
//
// Complexity: O(n log n). Assumes len(vals) >= n+1.
func (ft *Tree) Build(vals []int64) {
	for i := ft.Len(); i >= 1; i-- {
		ft.t[i] = 0
		ft.Add(i, vals[i])
	}
}

// FastBuild rebuilds the tree from vals in O(n). The input is first folded
// in place into its running prefix sums, then every slot is derived
// directly as the difference of the two prefixes bounding its block.
//
// The caller's slice is consumed: on return vals[i] holds
// vals[1] + ... + vals[i] and vals[0] is zero. Copy first if the values
// are still needed.
//
// Assumes len(vals) >= n+1.
func (ft *Tree) FastBuild(vals []int64) {
	n := ft.Len()
	vals[0] = 0
	for i := 1; i <= n; i++ {
		vals[i] += vals[i-1]
	}
	for i := 1; i <= n; i++ {
		ft.t[i] = vals[i] - vals[i-lowbit(i)]
	}
}
