package rmq

// sideScan accumulates the minimum over a growing flank of the updated
// index: the elements strictly left of it, consumed from lbit blocks
// downward, or strictly right of it, consumed from rbit blocks upward.
//
// Set extends a scan as it climbs into wider and wider blocks; the scan
// resumes where it stopped instead of restarting, so across one climb
// every flank element is folded at most once. Restarting per block would
// make Set O(log^2 n).
type sideScan struct {
	step int   // +1 consumes rbit upward, -1 consumes lbit downward
	at   int   // frontier: next index whose block may be folded
	best int64 // minimum over everything folded so far
}

func newSideScan(i, step int) sideScan {
	return sideScan{step: step, at: i + step, best: Absent}
}

// extend folds whole blocks into the running minimum while they fit
// between the frontier and edge, the recomputed block's boundary on this
// scan's side, then folds the single frontier element if it is still
// within edge. The frontier survives for the next, wider extend.
func (s *sideScan) extend(rt *Tree, edge int) int64 {
	if s.step > 0 {
		for s.at <= rt.n && s.at+lowbit(s.at)-1 <= edge {
			s.best = min(s.best, rt.rbit[s.at])
			s.at += lowbit(s.at)
		}
		// The block edge may stick out past n, the frontier element must not.
		if s.at <= min(rt.n, edge) {
			s.best = min(s.best, rt.a[s.at])
		}
		return s.best
	}
	for s.at >= 1 && s.at-lowbit(s.at)+1 >= edge {
		s.best = min(s.best, rt.lbit[s.at])
		s.at -= lowbit(s.at)
	}
	if s.at >= edge {
		s.best = min(s.best, rt.a[s.at])
	}
	return s.best
}

// Set assigns val to a[i] and repairs every reach block whose recorded
// minimum the assignment can invalidate.
//
// Per block one of three cases applies: val undercuts the recorded
// minimum, which is then simply lowered; the recorded minimum equals the
// displaced value, so it may have been witnessed only by i and is
// recomputed exactly from the two flank scans and val; or the recorded
// minimum is witnessed by some other element and stands. The recompute
// case resumes the flank scans rather than restarting them, which holds
// the whole update to amortized O(log n).
//
// Assumes 1 <= i <= n.
func (rt *Tree) Set(i int, val int64) {
	old := rt.a[i]
	if old == val {
		return
	}

	// Reach-left blocks containing i, narrowest first.
	left, right := newSideScan(i, -1), newSideScan(i, +1)
	for r := i; r <= rt.n; r += lowbit(r) {
		if val <= rt.lbit[r] {
			rt.lbit[r] = val
		} else if rt.lbit[r] == old {
			flanks := min(left.extend(rt, r-lowbit(r)+1), right.extend(rt, r))
			rt.lbit[r] = min(val, flanks)
		}
	}

	// Reach-right blocks containing i, narrowest first. Fresh scans: the
	// two climbs visit different block chains.
	left, right = newSideScan(i, -1), newSideScan(i, +1)
	for l := i; l >= 1; l -= lowbit(l) {
		if val <= rt.rbit[l] {
			rt.rbit[l] = val
		} else if rt.rbit[l] == old {
			flanks := min(left.extend(rt, l), right.extend(rt, l+lowbit(l)-1))
			rt.rbit[l] = min(val, flanks)
		}
	}

	rt.a[i] = val
}
