package igemm

import (
	"math/rand"
	"testing"
)

// The dispatcher must agree with the reference kernel regardless of
// which variant it selects for this machine
func TestMultiplyMatchesSequential(t *testing.T) {
	rng := rand.New(rand.NewSource(40))
	sizes := []int{1, 16, 100, MinParallelDim, 300}

	for _, n := range sizes {
		a := RandomMatrix(n, n, 1000, rng)
		b := RandomMatrix(n, n, 1000, rng)

		want := NewSquare(n)
		if err := MultiplySequential(want, a, b); err != nil {
			t.Fatalf("MultiplySequential failed: %v", err)
		}

		got := NewSquare(n)
		MultiplyOrFail(t, got, a, b)
		AssertMatrixEqual(t, got, want, "dispatcher vs sequential")
	}
}

func TestMultiplyValidation(t *testing.T) {
	a := NewSquare(4)
	b := NewSquare(4)
	c := NewSquare(4)

	cases := []struct {
		name    string
		c, a, b *Matrix
		check   func(error) bool
	}{
		{"nil A", c, nil, b, IsInvalidArgError},
		{"nil B", c, a, nil, IsInvalidArgError},
		{"nil C", nil, a, b, IsInvalidArgError},
		{"inner mismatch", NewMatrix(4, 3), a, NewMatrix(3, 3), IsDimensionError},
		{"output rows mismatch", NewMatrix(5, 4), a, b, IsDimensionError},
		{"output cols mismatch", NewMatrix(4, 5), a, b, IsDimensionError},
		{"C aliases A", a, a, b, IsInvalidArgError},
		{"C aliases B", b, a, b, IsInvalidArgError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := Multiply(tc.c, tc.a, tc.b)
			if err == nil {
				t.Fatal("expected an error")
			}
			if !tc.check(err) {
				t.Errorf("wrong error class: %v", err)
			}
		})
	}
}

// The reference workload shape: three Dim x Dim matrices. Freshly
// allocated operands are zero, so the product is zero — this mirrors
// the process-entry behavior of cmd/matmul.
func TestMultiplyDefaultShape(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping full-size multiply in short mode")
	}

	a := NewDefault()
	b := NewDefault()
	c := NewDefault()
	c.Fill(3)

	MultiplyOrFail(t, c, a, b)

	for i := 0; i < Dim; i += Dim / 8 {
		for j := 0; j < Dim; j += Dim / 8 {
			if c.At(i, j) != 0 {
				t.Fatalf("C[%d][%d] = %d, want 0", i, j, c.At(i, j))
			}
		}
	}
}

func TestBestImplementation(t *testing.T) {
	// Tiny workloads never go parallel or blocked
	if got := BestImplementation(2, 2, 2); got != "reference" {
		t.Errorf("2x2x2: got %q, want reference", got)
	}

	// The full-size workload must not fall back to the naive loop on
	// any multi-core machine
	if Features().NumCores > 1 {
		if got := BestImplementation(Dim, Dim, Dim); got != "parallel" {
			t.Errorf("full size: got %q, want parallel", got)
		}
	}
}
