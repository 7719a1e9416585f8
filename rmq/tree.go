package rmq

import "math"

// Absent is the initial value of every element and the result of a Min
// over an empty or out-of-range request. It orders after every value a
// caller can meaningfully store, behaving as positive infinity.
const Absent int64 = math.MaxInt64

// Tree answers range-minimum queries over a conceptual sequence a[1..n]
// under point updates. The zero value is not usable; create trees with
// New.
//
// Unlike the sum trees, n is unconstrained: every traversal here is
// bounds-guarded, so nothing is gained by forcing n to 2^m - 1.
type Tree struct {
	n int
	// a holds the authoritative element values.
	a []int64
	// lbit[i] = min of a[i-lowbit(i)+1 .. i], the reach-left block.
	lbit []int64
	// rbit[i] = min of a[i .. i+lowbit(i)-1], the reach-right block.
	rbit []int64
}

// New returns a tree over a[1..n] with every element Absent. n must be at
// least 1, anything else panics.
func New(n int) *Tree {
	if n < 1 {
		panic("rmq: size should be >= 1")
	}
	rt := &Tree{
		n:    n,
		a:    make([]int64, n+1),
		lbit: make([]int64, n+1),
		rbit: make([]int64, n+1),
	}
	rt.Clear()
	return rt
}

// Len returns n, the length of the conceptual sequence.
func (rt *Tree) Len() int {
	return rt.n
}

// Clear resets every element to Absent in place. n does not change.
//
// Complexity: O(n).
func (rt *Tree) Clear() {
	for i := range rt.a {
		rt.a[i] = Absent
		rt.lbit[i] = Absent
		rt.rbit[i] = Absent
	}
}
