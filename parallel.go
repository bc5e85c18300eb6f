package igemm

import (
	"runtime"
	"sync"
)

// ParallelMatMul splits the output rows of C into bands and computes
// each band on its own worker goroutine. Each worker runs the blocked
// kernel over its band, so per-cell accumulation stays sequential and
// the result remains bit-identical to Reference.MatMul.
//
// Workers never share output cells: band boundaries partition the rows
// of C, and A and B are read-only during the run.
type ParallelMatMul struct {
	numWorkers  int
	rowsPerTask int
}

// NewParallelMatMul creates a parallel kernel using one worker per CPU
func NewParallelMatMul() *ParallelMatMul {
	return &ParallelMatMul{
		numWorkers:  runtime.NumCPU(),
		rowsPerTask: RowsPerTask,
	}
}

// NewParallelMatMulWorkers creates a parallel kernel with a fixed
// worker count, mainly for testing scheduling behavior
func NewParallelMatMulWorkers(workers int) *ParallelMatMul {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &ParallelMatMul{
		numWorkers:  workers,
		rowsPerTask: RowsPerTask,
	}
}

// MatMul performs C = A*B over flat row-major operands, same contract
// as Reference.MatMul.
func (pm *ParallelMatMul) MatMul(m, n, k int,
	a []int32, lda int,
	b []int32, ldb int,
	c []int32, ldc int) {

	numTasks := (m + pm.rowsPerTask - 1) / pm.rowsPerTask
	workers := pm.numWorkers
	if workers > numTasks {
		workers = numTasks
	}

	if workers <= 1 {
		NewBlockedMatMul().MatMul(m, n, k, a, lda, b, ldb, c, ldc)
		return
	}

	tasks := make(chan int, numTasks)
	for t := 0; t < numTasks; t++ {
		tasks <- t
	}
	close(tasks)

	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()

			// Packing buffers come from the shared pool, so each
			// worker holds at most one at a time.
			kernel := NewBlockedMatMul()

			for t := range tasks {
				i0 := t * pm.rowsPerTask
				iEnd := min(i0+pm.rowsPerTask, m)

				kernel.MatMul(iEnd-i0, n, k,
					a[i0*lda:], lda,
					b, ldb,
					c[i0*ldc:], ldc)
			}
		}()
	}
	wg.Wait()
}

// MatMulMatrix is the Matrix-typed convenience wrapper around MatMul
func (pm *ParallelMatMul) MatMulMatrix(c, a, b *Matrix) {
	pm.MatMul(a.rows, b.cols, a.cols,
		a.data, a.stride,
		b.data, b.stride,
		c.data, c.stride)
}
