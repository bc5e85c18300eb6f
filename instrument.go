package igemm

// Instrumented wraps the reference kernel with a multiply-accumulate
// term counter. It exists for verification: every output cell of an
// m x n x k multiplication must be formed from exactly k terms, and the
// whole run from m*n*k terms. The counting loop mirrors
// Reference.MatMul term for term.
type Instrumented struct {
	// MACs is the number of multiply-accumulate terms executed by the
	// last MatMul call
	MACs int64
}

// MatMul performs C = A*B like Reference.MatMul while counting every
// multiply-accumulate term. Not intended for production use.
func (ins *Instrumented) MatMul(m, n, k int,
	a []int32, lda int,
	b []int32, ldb int,
	c []int32, ldc int) {

	ins.MACs = 0
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			var sum int32
			for kk := 0; kk < k; kk++ {
				sum += a[i*lda+kk] * b[kk*ldb+j]
				ins.MACs++
			}
			c[i*ldc+j] = sum
		}
	}
}

// TermsPerCell returns the MAC count divided by the number of output
// cells of the last run, or 0 if no run has happened.
func (ins *Instrumented) TermsPerCell(m, n int) int64 {
	if m <= 0 || n <= 0 {
		return 0
	}
	return ins.MACs / int64(m*n)
}
