package fenwick

// Search returns the smallest k such that a[1] + ... + a[k] >= val, or
// n+1 when even the total falls short. Linear reference for FastSearch,
// valid for any sequence.
//
// Complexity: O(n log n).
func (ft *Tree) Search(val int64) int {
	n := ft.Len()
	for k := 1; k <= n; k++ {
		if ft.PrefixSum(k) >= val {
			return k
		}
	}
	return n + 1
}

// FastSearch returns the smallest k such that a[1] + ... + a[k] >= val, or
// n+1 when even the total falls short.
//
// Only valid while the sequence is non-negative, so that prefix sums are
// non-decreasing. This is a documented precondition in the spirit of the
// rest of the contract: it is not asserted, and on a sequence with
// negative elements the result is meaningless.
//
// The walk is a binary-lifting descent: starting from stride nmask it
// keeps the largest position whose prefix sum is still below val,
// consuming one block per stride, and answers one past that position.
//
// Complexity: O(log n).
func (ft *Tree) FastSearch(val int64) int {
	// Find the last position with prefix sum <= val-1; the answer is the
	// next one.
	val--
	i := 0
	for mask := ft.nmask; mask != 0; mask >>= 1 {
		// i is a sum of accepted strides above mask, so i+mask is at most
		// 2*nmask - 1 = n and the candidate is always in bounds.
		if ii := i + mask; ft.t[ii] <= val {
			val -= ft.t[ii]
			i = ii
		}
	}
	return i + 1
}
