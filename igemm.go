package igemm

// MatMulKernel is the contract every kernel variant satisfies:
// C = A*B over flat row-major operands with explicit leading dimensions.
// Implementations must fully overwrite the m x n target region of C and
// must not read its prior contents.
type MatMulKernel interface {
	MatMul(m, n, k int,
		a []int32, lda int,
		b []int32, ldb int,
		c []int32, ldc int)
}

// Multiply computes c = a*b, dispatching to the best kernel variant for
// this machine and workload shape. a must be m x k, b k x n, c m x n.
//
// Example:
//
//	a := igemm.NewDefault()
//	b := igemm.Identity(igemm.Dim)
//	c := igemm.NewDefault()
//	err := igemm.Multiply(c, a, b)
func Multiply(c, a, b *Matrix) error {
	kernel, err := selectKernel(c, a, b)
	if err != nil {
		return err
	}

	kernel.MatMul(a.rows, b.cols, a.cols,
		a.data, a.stride,
		b.data, b.stride,
		c.data, c.stride)
	return nil
}

// MultiplySequential computes c = a*b with the strictly sequential
// reference kernel, regardless of machine topology. This is the
// variant whose accumulation order defines the package semantics.
func MultiplySequential(c, a, b *Matrix) error {
	if err := validateOperands(c, a, b); err != nil {
		return err
	}
	Reference{}.MatMulMatrix(c, a, b)
	return nil
}

// selectKernel validates the operands and picks a kernel variant
func selectKernel(c, a, b *Matrix) (MatMulKernel, error) {
	if err := validateOperands(c, a, b); err != nil {
		return nil, err
	}

	switch BestImplementation(a.rows, b.cols, a.cols) {
	case "parallel":
		return NewParallelMatMul(), nil
	case "blocked":
		return NewBlockedMatMul(), nil
	default:
		return Reference{}, nil
	}
}

// validateOperands checks shapes, buffers and aliasing for c = a*b
func validateOperands(c, a, b *Matrix) error {
	if a == nil || b == nil || c == nil {
		return ErrNilMatrix
	}
	if a.cols != b.rows || c.rows != a.rows || c.cols != b.cols {
		return ErrDimensionMismatch
	}
	if c.aliases(a) || c.aliases(b) {
		return ErrAliasedOutput
	}
	return NewWorkload(c, a, b).Validate()
}
