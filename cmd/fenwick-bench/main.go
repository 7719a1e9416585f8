// Command fenwick-bench sweeps the tree structures across a range of sizes
// and reports per-operation latency.
//
// For every order m in a sweep the structure is sized at n = 2^m - 1, each
// public operation is driven through pre-generated random workloads, and
// whole batches are timed, several rounds per operation. The default
// report is a table with mean, p50, p99 and standard deviation per
// operation; -plot switches to a tab-separated dump of the means, one line
// per order, for plotting. -verify first cross-checks the fast operation
// variants against their references on the same seed.
package main

import (
	"flag"
	"fmt"
	"os"
	"slices"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/ViktorSlavkovic/Fenwick/fenwick"
	"github.com/ViktorSlavkovic/Fenwick/fenwicktesting"
	"github.com/ViktorSlavkovic/Fenwick/rmq"
	"github.com/fatih/color"
	"gonum.org/v1/gonum/stat"
)

var (
	structureFlag = flag.String("structure", "all", "structure to sweep: tree, tree2d, rangetree, rmq or all")
	seedFlag      = flag.Int64("seed", 0, "workload seed; 0 derives one from the clock")
	roundsFlag    = flag.Int("rounds", 8, "timed batches per operation")
	minOrderFlag  = flag.Int("min-order", 0, "first order of the sweep; 0 keeps the structure's default")
	maxOrderFlag  = flag.Int("max-order", 0, "last order of the sweep; 0 keeps the structure's default")
	verifyFlag    = flag.Bool("verify", false, "cross-check fast variants and composites against references before timing")
	plotFlag      = flag.Bool("plot", false, "dump tab-separated mean latencies instead of the table")
)

var (
	headingColor = color.New(color.FgCyan, color.Bold)
	orderColor   = color.New(color.Bold)
	okColor      = color.New(color.FgGreen)
)

// sink keeps measured query results live.
var sink int64

// station is one operation at one order. run regenerates its workload,
// then executes and times one batch of ops calls, so only the operations
// land inside the timed window.
type station struct {
	name  string
	ops   int
	setup func() // optional, once before the station's rounds
	run   func() time.Duration
}

// sweep is one structure's run: its default order range plus its stations
// and verification at a given order.
type sweep struct {
	name     string
	minOrder int
	maxOrder int
	stations func(order int, seed int64) []station
	verify   func(order int, seed int64) error
}

var sweeps = []sweep{
	{name: "tree", minOrder: 7, maxOrder: 20, stations: treeStations, verify: verifyTree},
	{name: "tree2d", minOrder: 7, maxOrder: 11, stations: tree2DStations, verify: verifyTree2D},
	{name: "rangetree", minOrder: 7, maxOrder: 20, stations: rangeTreeStations, verify: verifyRangeTree},
	{name: "rmq", minOrder: 7, maxOrder: 20, stations: rmqStations, verify: verifyRMQ},
}

// opsFor returns the batch size for one timed round at the given order,
// shrinking as the structures grow.
func opsFor(order int) int {
	switch {
	case order <= 11:
		return 10000
	case order <= 16:
		return 1000
	case order == 17:
		return 800
	case order == 18:
		return 500
	case order <= 24:
		return 100
	default:
		return 50
	}
}

// verifyProbes returns the reference-model workload size at the given
// order. The models answer by linear scans, so it shrinks fast.
func verifyProbes(order int) int {
	switch {
	case order <= 10:
		return 512
	case order <= 16:
		return 128
	default:
		return 32
	}
}

func main() {
	flag.Parse()

	if *roundsFlag < 1 {
		*roundsFlag = 1
	}
	seed := *seedFlag
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	selected, err := selectSweeps(*structureFlag)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	for _, sw := range selected {
		if err := runSweep(sw, seed); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}
}

func selectSweeps(name string) ([]sweep, error) {
	if name == "all" {
		return sweeps, nil
	}
	for _, sw := range sweeps {
		if sw.name == name {
			return []sweep{sw}, nil
		}
	}
	return nil, fmt.Errorf("unknown structure %q: want tree, tree2d, rangetree, rmq or all", name)
}

func runSweep(sw sweep, seed int64) error {
	lo, hi := sw.minOrder, sw.maxOrder
	if *minOrderFlag > 0 {
		lo = *minOrderFlag
	}
	if *maxOrderFlag > 0 {
		hi = *maxOrderFlag
	}
	lo = max(lo, 1)
	hi = min(hi, orderLimit(sw.name))
	if lo > hi {
		return fmt.Errorf("%s: empty order range [%d, %d]", sw.name, lo, hi)
	}

	if *plotFlag {
		names := make([]string, 0, 16)
		for _, st := range sw.stations(lo, seed) {
			names = append(names, st.name)
		}
		fmt.Printf("# %s seed=%d: order\t%s\n", sw.name, seed, strings.Join(names, "\t"))
	} else {
		headingColor.Printf("%s  (seed %d)\n", sw.name, seed)
	}

	for order := lo; order <= hi; order++ {
		orderSeed := seed + int64(order)
		if !*plotFlag {
			orderColor.Printf("Order %d (n = %d)\n", order, fenwick.OrderSize(order))
		}
		if *verifyFlag {
			if err := sw.verify(order, orderSeed); err != nil {
				return fmt.Errorf("%s order %d: %w", sw.name, order, err)
			}
			if !*plotFlag {
				okColor.Println("  verify ok")
			}
		}

		stations := sw.stations(order, orderSeed)
		results := make([]summary, len(stations))
		for k, st := range stations {
			results[k] = measure(st, *roundsFlag)
		}
		report(order, stations, results)
	}
	return nil
}

// orderLimit caps a sweep where the structure itself has a cap.
func orderLimit(structure string) int {
	if structure == "tree2d" {
		return fenwick.MaxOrder2D
	}
	return fenwick.MaxOrder
}

type summary struct {
	mean   float64
	stddev float64
	p50    float64
	p99    float64
}

func measure(st station, rounds int) summary {
	if st.setup != nil {
		st.setup()
	}
	samples := make([]float64, rounds)
	for r := range samples {
		samples[r] = float64(st.run().Nanoseconds()) / float64(st.ops)
	}
	sorted := slices.Clone(samples)
	slices.Sort(sorted)
	s := summary{
		mean: stat.Mean(samples, nil),
		p50:  stat.Quantile(0.5, stat.Empirical, sorted, nil),
		p99:  stat.Quantile(0.99, stat.Empirical, sorted, nil),
	}
	if rounds > 1 {
		s.stddev = stat.StdDev(samples, nil)
	}
	return s
}

func report(order int, stations []station, results []summary) {
	if *plotFlag {
		fmt.Printf("%d\t", order)
		for _, r := range results {
			fmt.Printf("%15.3f\t", r.mean)
		}
		fmt.Println()
		return
	}
	w := tabwriter.NewWriter(os.Stdout, 2, 0, 2, ' ', 0)
	fmt.Fprintln(w, "  operation\tops/round\tmean\tp50\tp99\tstddev")
	for k, st := range stations {
		r := results[k]
		fmt.Fprintf(w, "  %s\t%d\t%s\t%s\t%s\t%s\n",
			st.name, st.ops, fmtNs(r.mean), fmtNs(r.p50), fmtNs(r.p99), fmtNs(r.stddev))
	}
	w.Flush()
}

// fmtNs renders a nanosecond quantity at a readable scale.
func fmtNs(ns float64) string {
	switch {
	case ns >= 1e6:
		return fmt.Sprintf("%.2fms", ns/1e6)
	case ns >= 1e3:
		return fmt.Sprintf("%.2fµs", ns/1e3)
	default:
		return fmt.Sprintf("%.1fns", ns)
	}
}

// treeStations runs the core tree's operations in their natural usage
// progression against one shared tree: queries and point updates first,
// the two builds, element and range reads of the built state, searches
// against its running total, then range updates on a cleared tree. The
// clear before RangeAdd also switches the instance into its
// range-update mode.
func treeStations(order int, seed int64) []station {
	n := fenwick.OrderSize(order)
	ops := opsFor(order)
	g := fenwicktesting.NewGenerator(n, fenwicktesting.Config{Seed: seed})
	ft := fenwick.New(order)

	timedIndexQuery := func(q func(int) int64) func() time.Duration {
		return func() time.Duration {
			idxs := g.Indices(ops)
			start := time.Now()
			for _, i := range idxs {
				sink += q(i)
			}
			return time.Since(start)
		}
	}
	timedRangeQuery := func(q func(int, int) int64) func() time.Duration {
		return func() time.Duration {
			ls, rs := g.Ranges(ops)
			start := time.Now()
			for k := range ls {
				sink += q(ls[k], rs[k])
			}
			return time.Since(start)
		}
	}
	timedBuild := func(build func([]int64)) func() time.Duration {
		scratch := make([]int64, n+1)
		return func() time.Duration {
			base := g.Sequence()
			// The copy is timed with the rebuild; it is noise next to the
			// rebuild itself and keeps FastBuild's input consumption out of
			// the next round's workload.
			start := time.Now()
			copy(scratch, base)
			build(scratch)
			return time.Since(start)
		}
	}
	timedSearch := func(q func(int64) int, searchOps int) func() time.Duration {
		return func() time.Duration {
			hi := max(2*ft.PrefixSum(n), 1)
			targets := make([]int64, searchOps)
			for k := range targets {
				targets[k] = g.ValueIn(1, hi)
			}
			start := time.Now()
			for _, val := range targets {
				sink += int64(q(val))
			}
			return time.Since(start)
		}
	}

	// Search is the linear reference: at large orders a full batch of its
	// scans would dominate the whole sweep.
	searchOps := ops
	if order > 12 {
		searchOps = max(1, ops/50)
	}

	return []station{
		{name: "PrefixSum", ops: ops, run: timedIndexQuery(ft.PrefixSum)},
		{name: "Add", ops: ops, run: func() time.Duration {
			idxs := g.Indices(ops)
			vals := g.Values(ops)
			start := time.Now()
			for k := range idxs {
				ft.Add(idxs[k], vals[k])
			}
			return time.Since(start)
		}},
		{name: "Build", ops: 1, setup: ft.Clear, run: timedBuild(ft.Build)},
		{name: "FastBuild", ops: 1, run: timedBuild(ft.FastBuild)},
		{name: "Value", ops: ops, run: timedIndexQuery(ft.Value)},
		{name: "FastValue", ops: ops, run: timedIndexQuery(ft.FastValue)},
		{name: "Search", ops: searchOps, run: timedSearch(ft.Search, searchOps)},
		{name: "FastSearch", ops: ops, run: timedSearch(ft.FastSearch, ops)},
		{name: "RangeSum", ops: ops, run: timedRangeQuery(ft.RangeSum)},
		{name: "FastRangeSum", ops: ops, run: timedRangeQuery(ft.FastRangeSum)},
		{name: "RangeAdd", ops: ops, setup: ft.Clear, run: func() time.Duration {
			ls, rs := g.Ranges(ops)
			deltas := g.Values(ops)
			start := time.Now()
			for k := range ls {
				ft.RangeAdd(ls[k], rs[k], deltas[k])
			}
			return time.Since(start)
		}},
	}
}

func tree2DStations(order int, seed int64) []station {
	n := fenwick.OrderSize(order)
	ops := opsFor(order)
	g := fenwicktesting.NewGenerator(n, fenwicktesting.Config{Seed: seed})
	ft := fenwick.New2D(order)

	return []station{
		{name: "PrefixSum", ops: ops, run: func() time.Duration {
			xs := g.Indices(ops)
			ys := g.Indices(ops)
			start := time.Now()
			for k := range xs {
				sink += ft.PrefixSum(xs[k], ys[k])
			}
			return time.Since(start)
		}},
		{name: "Add", ops: ops, run: func() time.Duration {
			xs := g.Indices(ops)
			ys := g.Indices(ops)
			vals := g.Values(ops)
			start := time.Now()
			for k := range xs {
				ft.Add(xs[k], ys[k], vals[k])
			}
			return time.Since(start)
		}},
		{name: "RangeSum", ops: ops, run: func() time.Duration {
			x1s, x2s := g.Ranges(ops)
			y1s, y2s := g.Ranges(ops)
			start := time.Now()
			for k := range x1s {
				sink += ft.RangeSum(x1s[k], y1s[k], x2s[k], y2s[k])
			}
			return time.Since(start)
		}},
	}
}

func rangeTreeStations(order int, seed int64) []station {
	n := fenwick.OrderSize(order)
	ops := opsFor(order)
	g := fenwicktesting.NewGenerator(n, fenwicktesting.Config{Seed: seed})
	rt := fenwick.NewRangeTree(order)

	return []station{
		{name: "PrefixSum", ops: ops, run: func() time.Duration {
			idxs := g.Indices(ops)
			start := time.Now()
			for _, i := range idxs {
				sink += rt.PrefixSum(i)
			}
			return time.Since(start)
		}},
		{name: "Add", ops: ops, run: func() time.Duration {
			ls, rs := g.Ranges(ops)
			deltas := g.Values(ops)
			start := time.Now()
			for k := range ls {
				rt.Add(ls[k], rs[k], deltas[k])
			}
			return time.Since(start)
		}},
		{name: "RangeSum", ops: ops, run: func() time.Duration {
			ls, rs := g.Ranges(ops)
			start := time.Now()
			for k := range ls {
				sink += rt.RangeSum(ls[k], rs[k])
			}
			return time.Since(start)
		}},
	}
}

func rmqStations(order int, seed int64) []station {
	n := fenwick.OrderSize(order)
	ops := opsFor(order)
	g := fenwicktesting.NewGenerator(n, fenwicktesting.Config{Seed: seed, MaxValue: 1 << 30})
	rt := rmq.New(n)
	// Full prefill, so every reach block carries a real minimum.
	for i := 1; i <= n; i++ {
		rt.Set(i, g.Value())
	}

	return []station{
		{name: "Set", ops: ops, run: func() time.Duration {
			idxs := g.Indices(ops)
			vals := g.Values(ops)
			start := time.Now()
			for k := range idxs {
				rt.Set(idxs[k], vals[k])
			}
			return time.Since(start)
		}},
		{name: "Min", ops: ops, run: func() time.Duration {
			froms, tos := g.Ranges(ops)
			start := time.Now()
			for k := range froms {
				sink += rt.Min(froms[k], tos[k])
			}
			return time.Since(start)
		}},
	}
}

func verifyTree(order int, seed int64) error {
	n := fenwick.OrderSize(order)
	g := fenwicktesting.NewGenerator(n, fenwicktesting.Config{Seed: seed + 1})
	seq := g.Sequence()

	slow := fenwick.New(order)
	slow.Build(seq)
	fast := fenwick.New(order)
	fast.FastBuild(slices.Clone(seq))

	probes := verifyProbes(order)
	for k := 0; k < probes; k++ {
		i := g.Index()
		if got, want := slow.FastValue(i), seq[i]; got != want {
			return fmt.Errorf("FastValue(%d) = %d, want %d", i, got, want)
		}
		if got, want := fast.Value(i), seq[i]; got != want {
			return fmt.Errorf("Value(%d) after FastBuild = %d, want %d", i, got, want)
		}
		l, r := g.Range()
		if got, want := slow.FastRangeSum(l, r), slow.RangeSum(l, r); got != want {
			return fmt.Errorf("FastRangeSum(%d, %d) = %d, want %d", l, r, got, want)
		}
	}

	// The linear reference search costs O(n log n) per probe, so fewer.
	total := slow.PrefixSum(n)
	for k := 0; k < min(probes, 16); k++ {
		val := g.ValueIn(1, max(2*total, 1))
		if got, want := slow.FastSearch(val), slow.Search(val); got != want {
			return fmt.Errorf("FastSearch(%d) = %d, want %d", val, got, want)
		}
	}

	// Range updates against the element model.
	ra := fenwick.New(order)
	m := fenwicktesting.NewModel(n)
	for k := 0; k < probes; k++ {
		l, r := g.Range()
		delta := g.ValueIn(-1000, 1000)
		ra.RangeAdd(l, r, delta)
		m.RangeAdd(l, r, delta)
		i := g.Index()
		if got, want := ra.At(i), m.A[i]; got != want {
			return fmt.Errorf("At(%d) = %d, want %d", i, got, want)
		}
	}
	return nil
}

func verifyTree2D(order int, seed int64) error {
	n := fenwick.OrderSize(order)
	g := fenwicktesting.NewGenerator(n, fenwicktesting.Config{Seed: seed + 1, Signed: true})
	ft := fenwick.New2D(order)
	m := fenwicktesting.NewModel2D(n)

	probes := verifyProbes(order)
	for k := 0; k < probes; k++ {
		x, y := g.Index(), g.Index()
		delta := g.Value()
		ft.Add(x, y, delta)
		m.Add(x, y, delta)

		px, py := g.Index(), g.Index()
		if got, want := ft.PrefixSum(px, py), m.PrefixSum(px, py); got != want {
			return fmt.Errorf("Tree2D PrefixSum(%d, %d) = %d, want %d", px, py, got, want)
		}
		x1, x2 := g.Range()
		y1, y2 := g.Range()
		if got, want := ft.RangeSum(x1, y1, x2, y2), m.RangeSum(x1, y1, x2, y2); got != want {
			return fmt.Errorf("Tree2D RangeSum(%d, %d, %d, %d) = %d, want %d", x1, y1, x2, y2, got, want)
		}
	}
	return nil
}

func verifyRangeTree(order int, seed int64) error {
	n := fenwick.OrderSize(order)
	g := fenwicktesting.NewGenerator(n, fenwicktesting.Config{Seed: seed + 1, Signed: true})
	rt := fenwick.NewRangeTree(order)
	m := fenwicktesting.NewModel(n)

	probes := verifyProbes(order)
	for k := 0; k < probes; k++ {
		l, r := g.Range()
		delta := g.Value()
		rt.Add(l, r, delta)
		m.RangeAdd(l, r, delta)

		i := g.Index()
		if got, want := rt.PrefixSum(i), m.PrefixSum(i); got != want {
			return fmt.Errorf("RangeTree PrefixSum(%d) = %d, want %d", i, got, want)
		}
		ql, qr := g.Range()
		if got, want := rt.RangeSum(ql, qr), m.RangeSum(ql, qr); got != want {
			return fmt.Errorf("RangeTree RangeSum(%d, %d) = %d, want %d", ql, qr, got, want)
		}
	}
	return nil
}

func verifyRMQ(order int, seed int64) error {
	n := fenwick.OrderSize(order)
	g := fenwicktesting.NewGenerator(n, fenwicktesting.Config{Seed: seed + 1, MaxValue: 1 << 30})
	rt := rmq.New(n)
	m := fenwicktesting.NewMinModel(n)

	// Half prefill keeps Absent regions in play.
	for i := 0; i < n/2+1; i++ {
		idx, val := g.Index(), g.Value()
		rt.Set(idx, val)
		m.Set(idx, val)
	}
	probes := verifyProbes(order)
	for k := 0; k < probes; k++ {
		i, val := g.Index(), g.Value()
		rt.Set(i, val)
		m.Set(i, val)

		from, to := g.Range()
		if got, want := rt.Min(from, to), m.Min(from, to); got != want {
			return fmt.Errorf("Min(%d, %d) = %d, want %d", from, to, got, want)
		}
	}
	return nil
}
