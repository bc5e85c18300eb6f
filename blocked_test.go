package igemm

import (
	"math"
	"math/rand"
	"testing"
)

// The blocked kernel must reproduce the reference bit for bit, across
// shapes that exercise full tiles, ragged edges and tiny inputs
func TestBlockedMatchesReference(t *testing.T) {
	shapes := []struct {
		m, n, k int
	}{
		{1, 1, 1},
		{2, 2, 2},
		{TileM, TileN, TileK},
		{TileM + 1, TileN - 1, TileK + 3},
		{130, 70, 95},
		{256, 256, 256},
	}

	rng := rand.New(rand.NewSource(10))
	ref := Reference{}
	blocked := NewBlockedMatMul()

	for _, s := range shapes {
		a := RandomMatrix(s.m, s.k, 1000, rng)
		b := RandomMatrix(s.k, s.n, 1000, rng)

		want := NewMatrix(s.m, s.n)
		got := NewMatrix(s.m, s.n)
		got.Fill(99)

		ref.MatMulMatrix(want, a, b)
		blocked.MatMulMatrix(got, a, b)

		AssertMatrixEqual(t, got, want, "blocked vs reference")
	}
}

// Equivalence must hold for overflowing inputs too, since wrapping
// addition is associative
func TestBlockedOverflowEquivalence(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	n := 96

	a := RandomMatrix(n, n, math.MaxInt32/2, rng)
	b := RandomMatrix(n, n, math.MaxInt32/2, rng)

	want := NewSquare(n)
	got := NewSquare(n)

	Reference{}.MatMulMatrix(want, a, b)
	NewBlockedMatMul().MatMulMatrix(got, a, b)

	AssertMatrixEqual(t, got, want, "blocked overflow")
}

// The zero-entry fast path in the tile kernel must not change results
func TestBlockedSparseOperand(t *testing.T) {
	rng := rand.New(rand.NewSource(12))
	n := 100

	a := NewSquare(n)
	// ~10% nonzero
	for i := 0; i < n*n/10; i++ {
		a.Set(rng.Intn(n), rng.Intn(n), rng.Int31n(2001)-1000)
	}
	b := RandomMatrix(n, n, 1000, rng)

	want := NewSquare(n)
	got := NewSquare(n)

	Reference{}.MatMulMatrix(want, a, b)
	NewBlockedMatMul().MatMulMatrix(got, a, b)

	AssertMatrixEqual(t, got, want, "sparse A")
}

// Repeated multiplications reuse packing buffers from the pool
func TestBlockedReusesPool(t *testing.T) {
	rng := rand.New(rand.NewSource(13))
	a := RandomMatrix(TileM, TileK, 100, rng)
	b := RandomMatrix(TileK, TileN, 100, rng)
	c := NewMatrix(TileM, TileN)

	blocked := NewBlockedMatMul()
	blocked.pool = NewBufferPool()

	for i := 0; i < 4; i++ {
		blocked.MatMulMatrix(c, a, b)
	}

	allocated, peak := blocked.pool.Stats()
	if allocated != 0 {
		t.Errorf("pool should have no outstanding buffers, has %d bytes", allocated)
	}
	if wantPeak := int64(TileK * TileN * 4); peak != wantPeak {
		t.Errorf("pool peak = %d bytes, want %d (one packing buffer)", peak, wantPeak)
	}
}
