package fenwick

// Tree is a Fenwick tree over a conceptual sequence a[1..n] of signed 64
// bit values. The zero value is not usable; create trees with New.
//
// All elements start at zero. Reads and writes go through the operation
// set only, there is no way to reach the raw blocks.
type Tree struct {
	// t[i] accumulates a[j] for j in (i-lowbit(i), i]. t[0] is never read.
	t []int64
	// nmask is the highest power of two <= n, cached for FastSearch.
	nmask int
}

// New returns a zeroed tree of the given order, covering a[1..n] with
// n = 2^order - 1. This is the sole construction path. The order must be
// in [1, MaxOrder], anything else panics.
func New(order int) *Tree {
	ft := newTree(order)
	return &ft
}

func newTree(order int) Tree {
	if order < 1 || order > MaxOrder {
		panic("fenwick: order should be >= 1 and <= MaxOrder")
	}
	return Tree{
		t:     make([]int64, OrderSize(order)+1),
		nmask: 1 << (order - 1),
	}
}

// Len returns n, the length of the conceptual sequence.
func (ft *Tree) Len() int {
	return len(ft.t) - 1
}

// Clear resets every element of a to zero in place. n does not change.
//
// Complexity: O(n).
func (ft *Tree) Clear() {
	clear(ft.t)
}

// Add adds delta to a[i].
//
// Complexity: O(log n). Assumes 1 <= i <= n.
func (ft *Tree) Add(i int, delta int64) {
	for n := ft.Len(); i <= n; i += lowbit(i) {
		ft.t[i] += delta
	}
}

// PrefixSum returns a[1] + ... + a[i].
//
// Complexity: O(log n). Assumes 1 <= i <= n.
func (ft *Tree) PrefixSum(i int) int64 {
	var sum int64
	for ; i >= 1; i -= lowbit(i) {
		sum += ft.t[i]
	}
	return sum
}
