package igemm

import (
	"sync"
)

// BufferPool manages reusable int32 scratch buffers with a free list.
// The blocked kernel packs B tiles through the pool so repeated
// multiplications do not reallocate per call.
type BufferPool struct {
	mu          sync.Mutex
	outstanding map[*int32]int
	freeList    [][]int32
	totalAlloc  int64
	peakAlloc   int64
}

// NewBufferPool creates a new buffer pool
func NewBufferPool() *BufferPool {
	return &BufferPool{
		outstanding: make(map[*int32]int),
	}
}

// defaultPool serves the package-level kernels
var defaultPool = NewBufferPool()

// Get returns a buffer of at least n int32 elements. The contents are
// unspecified; callers that need zeroed storage must clear it.
func (p *BufferPool) Get(n int) ([]int32, error) {
	if n <= 0 {
		return nil, ErrInvalidSize
	}

	// Round up to alignment and enforce the minimum size
	aligned := (n + MemoryAlignment - 1) &^ (MemoryAlignment - 1)
	if aligned < MinPoolBuffer {
		aligned = MinPoolBuffer
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	// Try to reuse from free list
	for i, buf := range p.freeList {
		if cap(buf) >= aligned {
			p.freeList = append(p.freeList[:i], p.freeList[i+1:]...)
			buf = buf[:n]
			p.outstanding[&buf[0]] = cap(buf)
			p.account(int64(cap(buf)))
			return buf, nil
		}
	}

	buf := make([]int32, aligned)
	p.outstanding[&buf[0]] = aligned
	p.account(int64(aligned))
	return buf[:n], nil
}

// Put returns a buffer to the pool for reuse
func (p *BufferPool) Put(buf []int32) error {
	if len(buf) == 0 {
		return nil
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	size, ok := p.outstanding[&buf[0]]
	if !ok {
		return ErrDoubleFree
	}
	delete(p.outstanding, &buf[0])

	p.freeList = append(p.freeList, buf[:0:size])
	p.totalAlloc -= int64(size) * 4
	return nil
}

// account tracks allocation totals in bytes, holding the pool lock
func (p *BufferPool) account(elems int64) {
	p.totalAlloc += elems * 4
	if p.totalAlloc > p.peakAlloc {
		p.peakAlloc = p.totalAlloc
	}
}

// Stats returns the outstanding and peak allocation in bytes
func (p *BufferPool) Stats() (allocated, peak int64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.totalAlloc, p.peakAlloc
}
