package fenwick

// RangeSum returns a[l] + ... + a[r] as a difference of prefix sums.
// Compatible with every point-update operation on the tree.
//
// Complexity: O(log n). Assumes 1 <= l <= r <= n.
func (ft *Tree) RangeSum(l, r int) int64 {
	sum := ft.PrefixSum(r)
	if l > 1 {
		sum -= ft.PrefixSum(l - 1)
	}
	return sum
}

// FastRangeSum returns a[l] + ... + a[r] by the same converging walk as
// FastValue, generalized to an arbitrary right endpoint: the descents from
// r and from l-1 cancel below their common ancestor, so the shared prefix
// blocks are never visited.
//
// Complexity: O(log n), with fewer steps than two prefix sums in practice.
// Assumes 1 <= l <= r <= n.
func (ft *Tree) FastRangeSum(l, r int) int64 {
	sum := ft.t[r]
	i := r - lowbit(r)
	j := l - 1
	for i != j {
		if i > j {
			sum += ft.t[i]
			i -= lowbit(i)
		} else {
			sum -= ft.t[j]
			j -= lowbit(j)
		}
	}
	return sum
}
