package fenwick

import (
	"fmt"
	"testing"

	"github.com/ViktorSlavkovic/Fenwick/fenwicktesting"
	"github.com/stretchr/testify/assert"
)

func TestValue(t *testing.T) {
	ft := New(3)
	seq := sampleSequence()
	ft.Build(seq)

	type args struct {
		i int
	}
	tests := []struct {
		name string
		args args
		want int64
	}{
		{"first element short-circuits", args{1}, 1},
		{"2", args{2}, 0},
		{"3", args{3}, 2},
		{"4", args{4}, 0},
		{"7", args{7}, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ft.Value(tt.args.i); got != tt.want {
				t.Errorf("Value() = %v, want %v", got, tt.want)
			}
			if got := ft.FastValue(tt.args.i); got != tt.want {
				t.Errorf("FastValue() = %v, want %v", got, tt.want)
			}
		})
	}
}

// Value and FastValue answer identically at every index of every sequence.
func TestFastValueMatchesValue(t *testing.T) {
	for _, order := range []int{1, 2, 3, 5, 8} {
		t.Run(fmt.Sprintf("order=%d", order), func(t *testing.T) {
			n := OrderSize(order)
			g := fenwicktesting.NewGenerator(n, fenwicktesting.Config{Seed: int64(10 + order), Signed: true})

			ft := New(order)
			seq := g.Sequence()
			ft.Build(seq)

			for i := 1; i <= n; i++ {
				assert.Equal(t, seq[i], ft.Value(i), "Value(%d)", i)
				assert.Equal(t, seq[i], ft.FastValue(i), "FastValue(%d)", i)
			}
		})
	}
}
