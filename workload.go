package igemm

import (
	"fmt"
)

// Workload describes one matrix multiplication over flat operands.
// It carries the dimensions and buffers for C = A*B and knows how to
// validate itself before any kernel touches the data.
type Workload struct {
	M, N, K int     // C is M x N, inner dimension K
	A       []int32 // M x K, row-major
	B       []int32 // K x N, row-major
	C       []int32 // M x N, row-major (output)
}

// NewWorkload builds the workload for multiplying a and b into c
func NewWorkload(c, a, b *Matrix) *Workload {
	return &Workload{
		M: a.rows,
		N: b.cols,
		K: a.cols,
		A: a.data,
		B: b.data,
		C: c.data,
	}
}

// Validate checks dimensions and buffer lengths
func (w *Workload) Validate() error {
	if w.M <= 0 || w.N <= 0 || w.K <= 0 {
		return NewDimensionError("Validate",
			fmt.Sprintf("invalid dimensions: M=%d, N=%d, K=%d", w.M, w.N, w.K))
	}

	if len(w.A) < w.M*w.K {
		return NewDimensionError("Validate",
			fmt.Sprintf("A buffer too small: %d < %d", len(w.A), w.M*w.K))
	}

	if len(w.B) < w.K*w.N {
		return NewDimensionError("Validate",
			fmt.Sprintf("B buffer too small: %d < %d", len(w.B), w.K*w.N))
	}

	if len(w.C) < w.M*w.N {
		return NewDimensionError("Validate",
			fmt.Sprintf("C buffer too small: %d < %d", len(w.C), w.M*w.N))
	}

	return nil
}

// Operations returns the number of integer operations in the workload
func (w *Workload) Operations() int64 {
	return int64(2) * int64(w.M) * int64(w.N) * int64(w.K) // multiply-add
}

// Bytes returns the memory footprint of the workload in bytes
func (w *Workload) Bytes() int64 {
	// Read A and B, write C, 4 bytes per element
	return int64(w.M*w.K+w.K*w.N+w.M*w.N) * 4
}
