package fenwick

import (
	"fmt"
	"testing"

	"github.com/ViktorSlavkovic/Fenwick/fenwicktesting"
	"github.com/stretchr/testify/assert"
)

func TestNew2D(t *testing.T) {
	ft := New2D(2)
	if got := ft.Len(); got != 3 {
		t.Errorf("Len() = %v, want 3", got)
	}
	if got := len(ft.t); got != 16 {
		t.Errorf("len(t) = %v, want 16", got)
	}
	if got := ft.PrefixSum(3, 3); got != 0 {
		t.Errorf("PrefixSum(3, 3) = %v, want 0", got)
	}
}

func TestNew2DPanics(t *testing.T) {
	for _, order := range []int{0, -2, MaxOrder2D + 1} {
		t.Run(fmt.Sprintf("order=%d", order), func(t *testing.T) {
			assert.Panics(t, func() { New2D(order) })
		})
	}
}

func TestTree2DAddPrefixSum(t *testing.T) {
	ft := New2D(2)
	ft.Add(1, 1, 5)
	ft.Add(2, 3, 7)
	ft.Add(3, 3, 1)

	type args struct {
		x, y int
	}
	tests := []struct {
		name string
		args args
		want int64
	}{
		{"origin", args{1, 1}, 5},
		{"row below the additions", args{3, 2}, 5},
		{"column left of one addition", args{1, 3}, 5},
		{"covers two", args{2, 3}, 12},
		{"full grid", args{3, 3}, 13},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ft.PrefixSum(tt.args.x, tt.args.y); got != tt.want {
				t.Errorf("PrefixSum() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTree2DRangeSum(t *testing.T) {
	ft := New2D(2)
	ft.Add(1, 1, 5)
	ft.Add(2, 3, 7)
	ft.Add(3, 3, 1)

	type args struct {
		x1, y1, x2, y2 int
	}
	tests := []struct {
		name string
		args args
		want int64
	}{
		{"full grid", args{1, 1, 3, 3}, 13},
		{"interior corner", args{2, 2, 3, 3}, 8},
		{"single cell", args{2, 3, 2, 3}, 7},
		{"empty region", args{3, 1, 3, 2}, 0},
		{"top row", args{1, 3, 3, 3}, 8},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ft.RangeSum(tt.args.x1, tt.args.y1, tt.args.x2, tt.args.y2); got != tt.want {
				t.Errorf("RangeSum() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTree2DMatchesModel(t *testing.T) {
	const order = 3
	n := OrderSize(order)
	g := fenwicktesting.NewGenerator(n, fenwicktesting.Config{Seed: 60, Signed: true})
	m := fenwicktesting.NewModel2D(n)
	ft := New2D(order)

	for round := 0; round < 200; round++ {
		x, y := g.Index(), g.Index()
		delta := g.Value()
		ft.Add(x, y, delta)
		m.Add(x, y, delta)

		px, py := g.Index(), g.Index()
		assert.Equal(t, m.PrefixSum(px, py), ft.PrefixSum(px, py), "PrefixSum(%d, %d)", px, py)

		x1, x2 := g.Range()
		y1, y2 := g.Range()
		assert.Equal(t, m.RangeSum(x1, y1, x2, y2), ft.RangeSum(x1, y1, x2, y2),
			"RangeSum(%d, %d, %d, %d)", x1, y1, x2, y2)
	}
}

func TestTree2DClear(t *testing.T) {
	ft := New2D(2)
	ft.Add(2, 2, 9)
	ft.Clear()

	assert.Zero(t, ft.PrefixSum(3, 3))
	ft.Add(1, 2, 4)
	assert.Equal(t, int64(4), ft.PrefixSum(3, 3))
}
