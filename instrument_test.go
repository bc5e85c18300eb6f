package igemm

import (
	"math/rand"
	"testing"
)

// Every output cell must be formed from exactly k multiply-accumulate
// terms, k spanning the full inner dimension
func TestInstrumentedTermCount(t *testing.T) {
	shapes := []struct {
		m, n, k int
	}{
		{1, 1, 1},
		{2, 2, 2},
		{4, 4, 16},
		{8, 3, 5},
		{16, 16, 16},
	}

	rng := rand.New(rand.NewSource(30))

	for _, s := range shapes {
		a := RandomMatrix(s.m, s.k, 100, rng)
		b := RandomMatrix(s.k, s.n, 100, rng)
		c := NewMatrix(s.m, s.n)

		var ins Instrumented
		ins.MatMul(s.m, s.n, s.k,
			a.data, a.stride, b.data, b.stride, c.data, c.stride)

		wantTotal := int64(s.m) * int64(s.n) * int64(s.k)
		if ins.MACs != wantTotal {
			t.Errorf("%dx%dx%d: %d MACs, want %d", s.m, s.n, s.k, ins.MACs, wantTotal)
		}
		if got := ins.TermsPerCell(s.m, s.n); got != int64(s.k) {
			t.Errorf("%dx%dx%d: %d terms per cell, want %d", s.m, s.n, s.k, got, s.k)
		}

		// The counter must not perturb the arithmetic
		want := NewMatrix(s.m, s.n)
		Reference{}.MatMulMatrix(want, a, b)
		AssertMatrixEqual(t, c, want, "instrumented result")
	}
}

// No terms may be skipped for zero operands
func TestInstrumentedNoShortCircuit(t *testing.T) {
	n := 8
	a := NewSquare(n) // all zero
	b := NewSquare(n)
	c := NewSquare(n)

	var ins Instrumented
	ins.MatMul(n, n, n, a.data, a.stride, b.data, b.stride, c.data, c.stride)

	if want := int64(n * n * n); ins.MACs != want {
		t.Errorf("zero operands: %d MACs, want %d", ins.MACs, want)
	}
}
