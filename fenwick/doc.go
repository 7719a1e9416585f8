// Package fenwick implements the Fenwick (binary-indexed) tree and the two
// composite structures built from it: a two dimensional tree and a
// range-update range-query tree. All of them answer dynamic partial sum
// queries over a conceptual 1-indexed sequence a[1..n] in logarithmic time.
package fenwick

/*

# The block encoding

Every index i of the storage array summarizes a block of the conceptual
sequence whose length is lowbit(i), the value of i's lowest set bit:

	T[i] = a[i-lowbit(i)+1] + ... + a[i]

For n = 7 the blocks nest like this:

	T[4]  |-------------------------------|
	T[2]  |---------------|
	T[6]                                  |---------------|
	T[1]  |-------|
	T[3]                  |-------|
	T[5]                                  |-------|
	T[7]                                                  |-------|
	        a[1]    a[2]    a[3]    a[4]    a[5]    a[6]    a[7]

A prefix sum is assembled by repeatedly stripping the lowest set bit
(i -= lowbit(i)), folding in one whole block per step. A point update walks
the other way (i += lowbit(i)), touching every block that contains the
index. Both walks visit at most one index per bit of n.

# Why n = 2^m - 1

Trees are created at an order m and cover exactly n = 2^m - 1 elements.
With n of this form the storage index never leaves [1, n] on any traversal,
including the binary-lifting descent of FastSearch, so the hot paths carry
no bounds checks at all. The order also fixes nmask = 2^(m-1), the highest
power of two <= n, which is the first stride FastSearch tries.

# Burden of knowledge

In the interest of raw traversal speed the package places a burden of
knowledge on the caller:

  - index and range preconditions (1 <= i <= n, 1 <= l <= r <= n) are
    documented, never checked; violating one corrupts sums or faults
  - FastSearch is only meaningful while the sequence is non-negative
  - a Tree is driven either through the point-update operations (Add, Build,
    FastBuild) or through the range-update pair (RangeAdd, At), never both;
    the two interpretations of the stored blocks are incompatible

Constructors are the one place that validates: an order outside the
supported range is a programming error and panics.

# Slow and fast pairs

Several operations ship in two versions with identical contracts: Value and
FastValue, Search and FastSearch, RangeSum and FastRangeSum, Build and
FastBuild. The slow ones are straight-line compositions of PrefixSum and
Add and serve as references; the fast ones exploit structure (converging
walks, binary lifting, closed-form slot derivation) for better constants or
complexity. The test suite drives every pair with identical random
workloads and demands identical answers.

# The composites

Tree2D applies the same block encoding independently on two axes of an
n x n grid, storing the (n+1) x (n+1) accumulators as one flat row-major
block. RangeTree pairs two plain Trees so that range updates and arbitrary
range sums are both logarithmic; see rangetree.go for the closed form.

*/
