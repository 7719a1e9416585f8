// Package fenwicktesting supplies the random workloads and brute-force
// oracles the tree packages' tests and the bench tool drive the structures
// with. It deliberately imports none of the tree packages, so their own
// test files can use it without an import cycle.
package fenwicktesting

import (
	rng "github.com/leesper/go_rng"
)

// DefaultMaxValue bounds generated element values when Config.MaxValue is
// left zero. Small values keep sums readable in failure output while still
// exercising every traversal shape.
const DefaultMaxValue = 1000

// Config fixes a workload. Two generators built from equal configs over
// equal n produce identical streams.
type Config struct {
	// Seed seeds the generator stream. It is normal to force it to some
	// fixed value so that the generated workload is the same from run to
	// run.
	Seed int64
	// MaxValue bounds generated values; zero means DefaultMaxValue.
	MaxValue int64
	// Signed widens Value to [-MaxValue, MaxValue]. Workloads for the
	// search operations must leave this off: their fast variant requires
	// a non-negative sequence.
	Signed bool
}

// Generator produces uniform index, value and range streams over a
// conceptual sequence a[1..n].
type Generator struct {
	n       int
	cfg     Config
	uniform *rng.UniformGenerator
}

// NewGenerator returns a generator for sequences of length n. n must be at
// least 1, anything else panics.
func NewGenerator(n int, cfg Config) *Generator {
	if n < 1 {
		panic("fenwicktesting: n should be >= 1")
	}
	if cfg.MaxValue == 0 {
		cfg.MaxValue = DefaultMaxValue
	}
	return &Generator{
		n:       n,
		cfg:     cfg,
		uniform: rng.NewUniformGenerator(cfg.Seed),
	}
}

// Len returns n.
func (g *Generator) Len() int {
	return g.n
}

// Index returns a uniform index in [1, n].
func (g *Generator) Index() int {
	return int(g.uniform.Int64Range(1, int64(g.n)+1))
}

// Value returns a uniform value in [0, MaxValue], or in
// [-MaxValue, MaxValue] for a signed config.
func (g *Generator) Value() int64 {
	if g.cfg.Signed {
		return g.uniform.Int64Range(-g.cfg.MaxValue, g.cfg.MaxValue+1)
	}
	return g.uniform.Int64Range(0, g.cfg.MaxValue+1)
}

// ValueIn returns a uniform value in [lo, hi], ignoring the configured
// value bounds. lo must not exceed hi.
func (g *Generator) ValueIn(lo, hi int64) int64 {
	return g.uniform.Int64Range(lo, hi+1)
}

// Range returns a uniform non-empty range 1 <= l <= r <= n: two
// independent indices, swapped into order.
func (g *Generator) Range() (l, r int) {
	l, r = g.Index(), g.Index()
	if l > r {
		l, r = r, l
	}
	return l, r
}

// Indices returns count draws of Index.
func (g *Generator) Indices(count int) []int {
	idxs := make([]int, count)
	for i := range idxs {
		idxs[i] = g.Index()
	}
	return idxs
}

// Values returns count draws of Value.
func (g *Generator) Values(count int) []int64 {
	vals := make([]int64, count)
	for i := range vals {
		vals[i] = g.Value()
	}
	return vals
}

// Ranges returns count draws of Range as parallel slices.
func (g *Generator) Ranges(count int) (ls, rs []int) {
	ls = make([]int, count)
	rs = make([]int, count)
	for i := range ls {
		ls[i], rs[i] = g.Range()
	}
	return ls, rs
}

// Sequence returns a fresh 1-indexed sequence of n values, shaped for the
// build operations: length n+1 with index 0 zero.
func (g *Generator) Sequence() []int64 {
	vals := make([]int64, g.n+1)
	for i := 1; i <= g.n; i++ {
		vals[i] = g.Value()
	}
	return vals
}
