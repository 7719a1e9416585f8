package fenwick

// RangeTree solves the range-update range-query variant of the dynamic
// partial sums problem by composing two plain Trees of the same order.
//
// An update adding delta over [l, r] is recorded as a step function:
// sums carries the per-position delta (delta from l onward, cancelled
// after r), corr carries the constant correction that makes the closed
// form exact:
//
//	PrefixSum(i) = sums.PrefixSum(i)*i - corr.PrefixSum(i)
//
// For i inside [l, r] the first term overcounts by delta*(l-1), which corr
// accumulates at l; past r the first term collapses to zero and corr's
// entry at r+1 restores the settled total delta*(r-l+1).
//
// The sub-trees are plain fields. Nothing outside this type can reach
// them, so their mode invariants hold by construction.
type RangeTree struct {
	sums Tree
	corr Tree
}

// NewRangeTree returns a zeroed range-update range-query tree covering
// a[1..n] with n = 2^order - 1. The order must be in [1, MaxOrder],
// anything else panics.
func NewRangeTree(order int) *RangeTree {
	return &RangeTree{
		sums: newTree(order),
		corr: newTree(order),
	}
}

// Len returns n, the length of the conceptual sequence.
func (rt *RangeTree) Len() int {
	return rt.sums.Len()
}

// Clear resets every element of a to zero in place. n does not change.
//
// Complexity: O(n).
func (rt *RangeTree) Clear() {
	rt.sums.Clear()
	rt.corr.Clear()
}

// Add adds delta to every a[x] with l <= x <= r.
//
// Complexity: O(log n). Assumes 1 <= l <= r <= n.
func (rt *RangeTree) Add(l, r int, delta int64) {
	rt.sums.Add(l, delta)
	rt.corr.Add(l, delta*int64(l-1))
	if r < rt.sums.Len() {
		rt.sums.Add(r+1, -delta)
		rt.corr.Add(r+1, -delta*int64(r))
	}
}

// PrefixSum returns a[1] + ... + a[i].
//
// Complexity: O(log n). Assumes 1 <= i <= n.
func (rt *RangeTree) PrefixSum(i int) int64 {
	return rt.sums.PrefixSum(i)*int64(i) - rt.corr.PrefixSum(i)
}

// RangeSum returns a[l] + ... + a[r].
//
// Complexity: O(log n). Assumes 1 <= l <= r <= n.
func (rt *RangeTree) RangeSum(l, r int) int64 {
	sum := rt.PrefixSum(r)
	if l > 1 {
		sum -= rt.PrefixSum(l - 1)
	}
	return sum
}
