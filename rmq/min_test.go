package rmq

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMinOutOfRange(t *testing.T) {
	rt := New(4)
	for i := 1; i <= 4; i++ {
		rt.Set(i, int64(i))
	}

	type args struct {
		from, to int
	}
	tests := []struct {
		name string
		args args
	}{
		{"from below 1", args{0, 3}},
		{"to past n", args{2, 5}},
		{"both out", args{0, 5}},
		{"inverted", args{3, 2}},
		{"far out", args{-10, -5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := rt.Min(tt.args.from, tt.args.to); got != Absent {
				t.Errorf("Min() = %v, want Absent", got)
			}
		})
	}
}

// A range that only touches never-set positions reports Absent; one that
// straddles set and unset positions reports the set minimum.
func TestMinSparse(t *testing.T) {
	rt := New(9)
	rt.Set(3, 40)
	rt.Set(7, 25)

	assert.Equal(t, Absent, rt.Min(4, 6))
	assert.Equal(t, Absent, rt.Min(8, 9))
	assert.Equal(t, int64(40), rt.Min(1, 5))
	assert.Equal(t, int64(25), rt.Min(4, 9))
	assert.Equal(t, int64(25), rt.Min(1, 9))
	assert.Equal(t, int64(25), rt.Min(7, 7))
}

func TestMinSingleElement(t *testing.T) {
	rt := New(1)
	assert.Equal(t, Absent, rt.Min(1, 1))

	rt.Set(1, -3)
	assert.Equal(t, int64(-3), rt.Min(1, 1))
	assert.Equal(t, Absent, rt.Min(1, 2))
}
