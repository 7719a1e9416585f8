package fenwick

import (
	"fmt"
	"testing"

	"github.com/ViktorSlavkovic/Fenwick/fenwicktesting"
	"github.com/stretchr/testify/assert"
)

func TestRangeTree(t *testing.T) {
	rt := NewRangeTree(3)
	assert.Equal(t, 7, rt.Len())

	rt.Add(2, 5, 10)

	wantPrefix := []int64{0, 10, 20, 30, 40, 40, 40}
	for i := 1; i <= 7; i++ {
		assert.Equal(t, wantPrefix[i-1], rt.PrefixSum(i), "PrefixSum(%d)", i)
	}
	for x := 1; x <= 7; x++ {
		var want int64
		if x >= 2 && x <= 5 {
			want = 10
		}
		assert.Equal(t, want, rt.RangeSum(x, x), "RangeSum(%d, %d)", x, x)
	}

	// r = n exercises the no-cancel branch of the update.
	rt.Add(3, 7, -2)
	assert.Equal(t, int64(30), rt.PrefixSum(7))
	assert.Equal(t, int64(8), rt.RangeSum(3, 3))
	assert.Equal(t, int64(-2), rt.RangeSum(6, 6))
	assert.Equal(t, int64(10), rt.RangeSum(1, 2))
	assert.Equal(t, int64(20), rt.RangeSum(3, 7))

	rt.Add(1, 7, 5)
	assert.Equal(t, int64(65), rt.PrefixSum(7))
	assert.Equal(t, int64(5), rt.RangeSum(1, 1))
}

func TestRangeTreeMatchesModel(t *testing.T) {
	const rounds = 200
	for _, order := range []int{1, 2, 3, 5, 8} {
		t.Run(fmt.Sprintf("order=%d", order), func(t *testing.T) {
			n := OrderSize(order)
			g := fenwicktesting.NewGenerator(n, fenwicktesting.Config{
				Seed:   int64(70 + order),
				Signed: true,
			})
			m := fenwicktesting.NewModel(n)
			rt := NewRangeTree(order)

			for round := 0; round < rounds; round++ {
				l, r := g.Range()
				delta := g.Value()
				rt.Add(l, r, delta)
				m.RangeAdd(l, r, delta)

				i := g.Index()
				assert.Equal(t, m.PrefixSum(i), rt.PrefixSum(i), "PrefixSum(%d) after %d rounds", i, round+1)

				ql, qr := g.Range()
				assert.Equal(t, m.RangeSum(ql, qr), rt.RangeSum(ql, qr),
					"RangeSum(%d, %d) after %d rounds", ql, qr, round+1)
			}
		})
	}
}

func TestRangeTreeClear(t *testing.T) {
	rt := NewRangeTree(2)
	rt.Add(1, 3, 6)
	rt.Clear()

	assert.Zero(t, rt.PrefixSum(3))
	rt.Add(2, 2, 4)
	assert.Equal(t, int64(4), rt.PrefixSum(3))
	assert.Equal(t, int64(0), rt.PrefixSum(1))
}
