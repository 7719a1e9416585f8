package fenwicktesting

import "math"

// Model is the brute-force sums oracle: a live 1-indexed slice queried by
// linear scans. The randomized suites drive a tree and a Model with the
// same operations and demand the same answers.
type Model struct {
	// A is the sequence, 1-indexed; A[0] stays zero.
	A []int64
}

// NewModel returns a zeroed oracle over a[1..n].
func NewModel(n int) *Model {
	return &Model{A: make([]int64, n+1)}
}

// Len returns n.
func (m *Model) Len() int {
	return len(m.A) - 1
}

// Add adds delta to a[i].
func (m *Model) Add(i int, delta int64) {
	m.A[i] += delta
}

// RangeAdd adds delta to every a[x], l <= x <= r.
func (m *Model) RangeAdd(l, r int, delta int64) {
	for x := l; x <= r; x++ {
		m.A[x] += delta
	}
}

// PrefixSum returns a[1] + ... + a[i].
func (m *Model) PrefixSum(i int) int64 {
	var sum int64
	for j := 1; j <= i; j++ {
		sum += m.A[j]
	}
	return sum
}

// RangeSum returns a[l] + ... + a[r].
func (m *Model) RangeSum(l, r int) int64 {
	var sum int64
	for j := l; j <= r; j++ {
		sum += m.A[j]
	}
	return sum
}

// Search returns the smallest k with PrefixSum(k) >= val, or n+1 when the
// total falls short.
func (m *Model) Search(val int64) int {
	var sum int64
	for k := 1; k < len(m.A); k++ {
		sum += m.A[k]
		if sum >= val {
			return k
		}
	}
	return len(m.A)
}

// Model2D is the brute-force oracle for the two dimensional tree: a live
// 1-indexed grid with rectangle scans.
type Model2D struct {
	// A is the grid, A[y][x], both axes 1-indexed.
	A [][]int64
}

// NewModel2D returns a zeroed oracle over a[1..n][1..n].
func NewModel2D(n int) *Model2D {
	a := make([][]int64, n+1)
	for y := range a {
		a[y] = make([]int64, n+1)
	}
	return &Model2D{A: a}
}

// Add adds delta to a[x][y].
func (m *Model2D) Add(x, y int, delta int64) {
	m.A[y][x] += delta
}

// PrefixSum returns the sum of the rectangle a[1..x][1..y].
func (m *Model2D) PrefixSum(x, y int) int64 {
	return m.RangeSum(1, 1, x, y)
}

// RangeSum returns the sum of the rectangle a[x1..x2][y1..y2].
func (m *Model2D) RangeSum(x1, y1, x2, y2 int) int64 {
	var sum int64
	for y := y1; y <= y2; y++ {
		for x := x1; x <= x2; x++ {
			sum += m.A[y][x]
		}
	}
	return sum
}

// MinModel is the brute-force minimum oracle. Elements start at
// math.MaxInt64, the same sentinel the rmq tree reports as Absent, so
// untouched regions compare equal between oracle and tree.
type MinModel struct {
	// A is the sequence, 1-indexed.
	A []int64
}

// NewMinModel returns an oracle over a[1..n] with every element absent.
func NewMinModel(n int) *MinModel {
	a := make([]int64, n+1)
	for i := range a {
		a[i] = math.MaxInt64
	}
	return &MinModel{A: a}
}

// Len returns n.
func (m *MinModel) Len() int {
	return len(m.A) - 1
}

// Set assigns val to a[i].
func (m *MinModel) Set(i int, val int64) {
	m.A[i] = val
}

// Min returns the smallest value among a[from..to], or math.MaxInt64 when
// the range is empty or out of bounds.
func (m *MinModel) Min(from, to int) int64 {
	res := int64(math.MaxInt64)
	if from < 1 || to >= len(m.A) || from > to {
		return res
	}
	for i := from; i <= to; i++ {
		res = min(res, m.A[i])
	}
	return res
}
