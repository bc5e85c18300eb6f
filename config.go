// Package igemm configuration constants
package igemm

// Dim is the fixed dimension of the default matrices. The kernel itself
// accepts arbitrary m, n, k so that reduced-size testing is possible, but
// the reference workload is three Dim x Dim matrices.
const Dim = 1024

// Cache sizes for different levels (in bytes)
const (
	// L1 cache size per core (typical for modern CPUs)
	L1CacheSize = 32 * 1024 // 32KB

	// L2 cache size per core (typical for modern CPUs)
	L2CacheSize = 256 * 1024 // 256KB

	// L3 cache size (shared, typical for modern CPUs)
	L3CacheSize = 8 * 1024 * 1024 // 8MB
)

// Tiling parameters for the blocked kernel.
//
// An int32 tile of TileM x TileK plus a packed TileK x TileN tile of B
// must fit in L1 alongside the C accumulator rows.
const (
	// TileM is the row-block height for the blocked kernel
	TileM = 64

	// TileN is the column-block width for the blocked kernel
	TileN = 64

	// TileK is the depth of one packing pass over B
	TileK = 64
)

// Memory pool parameters
const (
	// MemoryAlignment for pooled buffers, in int32 elements.
	// 16 elements = 64 bytes, one cache line.
	MemoryAlignment = 16

	// MinPoolBuffer is the smallest buffer the pool hands out,
	// in int32 elements. Prevents free-list fragmentation.
	MinPoolBuffer = 256
)

// Parallel execution parameters
const (
	// MinParallelDim is the smallest output dimension worth splitting
	// across workers. Below this the goroutine overhead dominates.
	MinParallelDim = 128

	// RowsPerTask is the row-band granularity handed to each worker
	RowsPerTask = 32
)
