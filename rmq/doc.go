// Package rmq implements a dynamic range-minimum structure with the index
// arithmetic of a Fenwick tree: point updates and arbitrary range-minimum
// queries over a 1-indexed sequence, both in O(log n).
package rmq

/*

# Two reach arrays

Minimum does not cancel the way addition does, so a single Fenwick array
cannot answer an arbitrary range by subtracting prefixes. This structure
keeps the live values and two block-minimum arrays, one per direction:

	rbit[i] = min of a[i .. i+lowbit(i)-1]   (reach right from i)
	lbit[i] = min of a[i-lowbit(i)+1 .. i]   (reach left from i)

For n = 7 the rbit blocks look like this (lbit is the mirror image):

	rbit[1] |-------|
	rbit[2]         |---------------|
	rbit[3]                 |-------|
	rbit[4]                         |-------------------------------|
	rbit[5]                                 |-------|
	rbit[6]                                         |---------------|
	rbit[7]                                                 |-------|
	          a[1]    a[2]    a[3]    a[4]    a[5]    a[6]    a[7]

# Querying: the dual climb

Min(from, to) climbs rbit upward from the left edge, folding in whole
blocks while they still fit inside the range, and independently climbs
lbit downward from the right edge doing the same. Each climb finishes with
at most one bare element where its last block would overshoot. Between
them the two climbs cover [from, to] completely, so the answer is the
smaller of their folds.

# Updating: cheap lowering or exact recompute

Set(i, val) visits every lbit and rbit block containing i, narrowest
first. A block whose recorded minimum val undercuts is simply lowered. A
block whose recorded minimum equals the displaced value may have depended
on i and is recomputed exactly: the elements on each side of i are folded
by two flank scans that resume from block to block as Set climbs, so the
whole walk rescans any flank element at most once. That resumability is
what keeps Set at amortized O(log n); restarting the scans per block would
cost O(log^2 n). Blocks passing neither test already hold a minimum
witnessed elsewhere and are left alone.

# Absent

Every element starts at Absent, which orders after every storable value
and is what Min reports for empty or out-of-range requests. Unlike the sum
trees, Min checks its range; a structure meant for arbitrary caller ranges
gets the one tolerant surface.

*/
