package rmq

// lowbit isolates the lowest set bit of i, the length of the block the two
// reach arrays summarize at i.
func lowbit(i int) int {
	return i & -i
}
