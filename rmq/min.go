package rmq

// Min returns the smallest value among a[from..to], or Absent when the
// range is empty or not contained in [1, n].
//
// Complexity: O(log n).
func (rt *Tree) Min(from, to int) int64 {
	if from < 1 || to > rt.n || from > to {
		return Absent
	}

	res := Absent

	// Climb rbit upward from the left edge, folding whole blocks while
	// they fit, then the single element the last block would overshoot.
	i := from
	for i <= rt.n && i+lowbit(i)-1 <= to {
		res = min(res, rt.rbit[i])
		i += lowbit(i)
	}
	if i <= to {
		res = min(res, rt.a[i])
	}

	// Climb lbit downward from the right edge the same way. Whatever the
	// first climb could not reach, this one covers.
	i = to
	for i >= 1 && i-lowbit(i)+1 >= from {
		res = min(res, rt.lbit[i])
		i -= lowbit(i)
	}
	if i >= from {
		res = min(res, rt.a[i])
	}

	return res
}
