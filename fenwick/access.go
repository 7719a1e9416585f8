package fenwick

// Value returns a[i] as the difference of two prefix sums. i == 1 is
// answered straight from the first block.
//
// Complexity: O(log n). Assumes 1 <= i <= n.
func (ft *Tree) Value(i int) int64 {
	if i == 1 {
		return ft.t[1]
	}
	return ft.PrefixSum(i) - ft.PrefixSum(i-1)
}

// FastValue returns a[i] in O(1) on average, O(log n) worst case.
//
// Instead of evaluating two full prefix sums, it starts from T[idx] and
// converges the two descents that PrefixSum(idx) and PrefixSum(idx-1)
// would perform. Both walks strip low bits toward the common ancestor of
// idx and idx-1; every block below the meeting point cancels, so only the
// blocks between the fork and idx are ever touched.
//
// Assumes 1 <= idx <= n.
func (ft *Tree) FastValue(idx int) int64 {
	sum := ft.t[idx]
	i := idx - lowbit(idx)
	j := idx - 1
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
