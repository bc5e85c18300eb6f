// Package igemm reference kernel for verification and as the
// semantic baseline every optimized variant must reproduce bit for bit.
package igemm

// Reference contains the simple, obviously correct kernel implementations.
// Optimized variants are tested against these.
type Reference struct{}

// DOT computes the int32 inner product of x and y with strictly
// sequential accumulation. All arithmetic wraps in two's complement.
func (r Reference) DOT(x, y []int32) int32 {
	var sum int32
	for i := range x {
		sum += x[i] * y[i]
	}
	return sum
}

// MatMul performs C = A*B over flat row-major operands:
// A is m x k with leading dimension lda, B is k x n with leading
// dimension ldb, C is m x n with leading dimension ldc.
//
// Every cell of C is fully overwritten; C is never read. The inner
// accumulation runs kk = 0..k-1 in order, although with wrapping int32
// arithmetic the order cannot affect the result. There is no blocking,
// no early exit, and no special-casing of zero operands.
func (r Reference) MatMul(m, n, k int,
	a []int32, lda int,
	b []int32, ldb int,
	c []int32, ldc int) {

	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			var sum int32
			for kk := 0; kk < k; kk++ {
				sum += a[i*lda+kk] * b[kk*ldb+j]
			}
			c[i*ldc+j] = sum
		}
	}
}

// MatMulMatrix is the Matrix-typed convenience wrapper around MatMul
func (r Reference) MatMulMatrix(c, a, b *Matrix) {
	r.MatMul(a.rows, b.cols, a.cols,
		a.data, a.stride,
		b.data, b.stride,
		c.data, c.stride)
}
