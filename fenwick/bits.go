package fenwick

// lowbit isolates the lowest set bit of i. In two's complement i & -i
// clears everything above the least significant 1, and the result is the
// length of the block T[i] summarizes.
func lowbit(i int) int {
	return i & -i
}
