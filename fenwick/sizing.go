package fenwick

const (
	// MaxOrder is the largest order New accepts. Beyond it 1 << order no
	// longer fits an int.
	MaxOrder = 62

	// MaxOrder2D is the largest order New2D accepts. The flat grid holds
	// (n+1) * (n+1) accumulators, so the square has to fit an int.
	MaxOrder2D = 31
)

// OrderSize returns the sequence length n = 2^order - 1 covered by a tree
// of the given order. Callers are responsible for keeping order within
// [1, MaxOrder]; outside it the shift result is meaningless.
func OrderSize(order int) int {
	return (1 << order) - 1
}
