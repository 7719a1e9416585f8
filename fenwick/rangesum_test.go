package fenwick

import (
	"fmt"
	"testing"

	"github.com/ViktorSlavkovic/Fenwick/fenwicktesting"
	"github.com/stretchr/testify/assert"
)

func TestRangeSum(t *testing.T) {
	ft := New(3)
	ft.Build(sampleSequence())

	type args struct {
		l, r int
	}
	tests := []struct {
		name string
		args args
		want int64
	}{
		{"full range", args{1, 7}, 2},
		{"suffix", args{3, 7}, 1},
		{"prefix", args{1, 4}, 3},
		{"single, first", args{1, 1}, 1},
		{"single, zero element", args{2, 2}, 0},
		{"single, last", args{7, 7}, -1},
		{"interior zeros", args{4, 6}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ft.RangeSum(tt.args.l, tt.args.r); got != tt.want {
				t.Errorf("RangeSum() = %v, want %v", got, tt.want)
			}
			if got := ft.FastRangeSum(tt.args.l, tt.args.r); got != tt.want {
				t.Errorf("FastRangeSum() = %v, want %v", got, tt.want)
			}
		})
	}
}

// Both range sums agree with a linear scan over every random range tried.
func TestFastRangeSumMatchesRangeSum(t *testing.T) {
	const probes = 300
	for _, order := range []int{1, 2, 3, 5, 8} {
		t.Run(fmt.Sprintf("order=%d", order), func(t *testing.T) {
			n := OrderSize(order)
			g := fenwicktesting.NewGenerator(n, fenwicktesting.Config{Seed: int64(20 + order), Signed: true})
			m := fenwicktesting.NewModel(n)

			ft := New(order)
			seq := g.Sequence()
			ft.Build(seq)
			copy(m.A, seq)

			for p := 0; p < probes; p++ {
				l, r := g.Range()
				want := m.RangeSum(l, r)
				assert.Equal(t, want, ft.RangeSum(l, r), "RangeSum(%d, %d)", l, r)
				assert.Equal(t, want, ft.FastRangeSum(l, r), "FastRangeSum(%d, %d)", l, r)
			}
		})
	}
}
