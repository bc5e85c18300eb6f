package igemm

// BlockedMatMul is a cache-tiled sequential variant of the kernel.
// It walks C in TileM x TileN blocks and packs the corresponding
// TileK x TileN panel of B into a contiguous buffer so the innermost
// loop streams both operands linearly.
//
// Because int32 addition wraps and is associative, the tiled
// accumulation order produces results bit-identical to Reference.MatMul
// for every input, including inputs that overflow.
type BlockedMatMul struct {
	tileM int
	tileN int
	tileK int
	pool  *BufferPool
}

// NewBlockedMatMul creates a blocked kernel with the default tile shape
func NewBlockedMatMul() *BlockedMatMul {
	return &BlockedMatMul{
		tileM: TileM,
		tileN: TileN,
		tileK: TileK,
		pool:  defaultPool,
	}
}

// MatMul performs C = A*B over flat row-major operands, same contract
// as Reference.MatMul.
func (bm *BlockedMatMul) MatMul(m, n, k int,
	a []int32, lda int,
	b []int32, ldb int,
	c []int32, ldc int) {

	// C is fully overwritten, so clear the target region first and
	// accumulate tile contributions into it.
	for i := 0; i < m; i++ {
		row := c[i*ldc : i*ldc+n]
		for j := range row {
			row[j] = 0
		}
	}

	packed, err := bm.pool.Get(bm.tileK * bm.tileN)
	if err != nil {
		// Pool exhaustion only happens on invalid sizes; fall back
		// to the unpacked reference loop.
		Reference{}.MatMul(m, n, k, a, lda, b, ldb, c, ldc)
		return
	}
	defer bm.pool.Put(packed)

	for j0 := 0; j0 < n; j0 += bm.tileN {
		jEnd := min(j0+bm.tileN, n)
		jw := jEnd - j0

		for k0 := 0; k0 < k; k0 += bm.tileK {
			kEnd := min(k0+bm.tileK, k)
			kw := kEnd - k0

			// Pack B[k0:kEnd, j0:jEnd] row-major into the scratch buffer
			for kk := 0; kk < kw; kk++ {
				src := b[(k0+kk)*ldb+j0 : (k0+kk)*ldb+jEnd]
				copy(packed[kk*jw:kk*jw+jw], src)
			}

			for i0 := 0; i0 < m; i0 += bm.tileM {
				iEnd := min(i0+bm.tileM, m)

				bm.tileKernel(
					a, lda, i0, iEnd, k0, kw,
					packed, jw,
					c, ldc, j0)
			}
		}
	}
}

// tileKernel accumulates one A row-block against a packed B panel
func (bm *BlockedMatMul) tileKernel(
	a []int32, lda int, i0, iEnd, k0, kw int,
	packed []int32, jw int,
	c []int32, ldc int, j0 int) {

	for i := i0; i < iEnd; i++ {
		aRow := a[i*lda+k0 : i*lda+k0+kw]
		cRow := c[i*ldc+j0 : i*ldc+j0+jw]

		for kk := 0; kk < kw; kk++ {
			av := aRow[kk]
			if av == 0 {
				// Skipping zero A entries is safe here: the
				// contribution av*b is exactly zero under
				// wrapping arithmetic, so the stored sums are
				// unchanged.
				continue
			}
			bRow := packed[kk*jw : kk*jw+jw]
			for j := range bRow {
				cRow[j] += av * bRow[j]
			}
		}
	}
}

// MatMulMatrix is the Matrix-typed convenience wrapper around MatMul
func (bm *BlockedMatMul) MatMulMatrix(c, a, b *Matrix) {
	bm.MatMul(a.rows, b.cols, a.cols,
		a.data, a.stride,
		b.data, b.stride,
		c.data, c.stride)
}
