package fenwick

// Tree2D is the two dimensional Fenwick tree over a conceptual grid
// a[1..n][1..n]. The block encoding of Tree applies independently on both
// axes: slot (x, y) accumulates the rectangle
// (x-lowbit(x), x] by (y-lowbit(y), y].
//
// The (n+1) x (n+1) accumulators live in a single flat row-major block,
// slot (n+1)*y + x, so the whole structure is one allocation. Row 0 and
// column 0 are never read.
type Tree2D struct {
	t []int64
	n int
}

// New2D returns a zeroed n x n tree, n = 2^order - 1. The order must be in
// [1, MaxOrder2D], anything else panics.
func New2D(order int) *Tree2D {
	if order < 1 || order > MaxOrder2D {
		panic("fenwick: 2d order should be >= 1 and <= MaxOrder2D")
	}
	n := OrderSize(order)
	return &Tree2D{
		t: make([]int64, (n+1)*(n+1)),
		n: n,
	}
}

// Len returns n, the side of the conceptual grid.
func (ft *Tree2D) Len() int {
	return ft.n
}

// Clear resets every element of a to zero in place. n does not change.
//
// Complexity: O(n^2).
func (ft *Tree2D) Clear() {
	clear(ft.t)
}

// Add adds delta to a[x][y].
//
// Complexity: O(log^2 n). Assumes 1 <= x, y <= n.
func (ft *Tree2D) Add(x, y int, delta int64) {
	for ; x <= ft.n; x += lowbit(x) {
		for yy := y; yy <= ft.n; yy += lowbit(yy) {
			ft.t[(ft.n+1)*yy+x] += delta
		}
	}
}

// PrefixSum returns the sum of the rectangle a[1..x][1..y].
//
// Complexity: O(log^2 n). Assumes 1 <= x, y <= n.
func (ft *Tree2D) PrefixSum(x, y int) int64 {
	var sum int64
	for ; x >= 1; x -= lowbit(x) {
		for yy := y; yy >= 1; yy -= lowbit(yy) {
			sum += ft.t[(ft.n+1)*yy+x]
		}
	}
	return sum
}

// RangeSum returns the sum of the rectangle a[x1..x2][y1..y2], combining
// the four prefix corners by inclusion-exclusion. Corners at coordinate
// zero contribute nothing and are skipped.
//
// Complexity: O(log^2 n). Assumes 1 <= x1 <= x2 <= n and 1 <= y1 <= y2 <= n.
func (ft *Tree2D) RangeSum(x1, y1, x2, y2 int) int64 {
	sum := ft.PrefixSum(x2, y2)
	if x1 > 1 {
		sum -= ft.PrefixSum(x1-1, y2)
	}
	if y1 > 1 {
		sum -= ft.PrefixSum(x2, y1-1)
	}
	if x1 > 1 && y1 > 1 {
		sum += ft.PrefixSum(x1-1, y1-1)
	}
	return sum
}
