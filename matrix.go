package igemm

import (
	"math/rand"
)

// Matrix is a dense row-major matrix of 32-bit signed integers.
// The backing slice is allocated once at construction and is never
// resized; a freshly constructed Matrix is all zeros per Go allocation
// semantics.
type Matrix struct {
	rows   int
	cols   int
	stride int
	data   []int32
}

// NewMatrix creates a zeroed rows x cols matrix.
// Panics if either dimension is not positive, matching the contract
// that matrix shapes are fixed at construction.
func NewMatrix(rows, cols int) *Matrix {
	if rows <= 0 || cols <= 0 {
		panic("igemm: matrix dimensions must be positive")
	}
	return &Matrix{
		rows:   rows,
		cols:   cols,
		stride: cols,
		data:   make([]int32, rows*cols),
	}
}

// NewSquare creates a zeroed n x n matrix
func NewSquare(n int) *Matrix {
	return NewMatrix(n, n)
}

// NewDefault creates a zeroed Dim x Dim matrix, the reference workload shape
func NewDefault() *Matrix {
	return NewSquare(Dim)
}

// FromSlice creates a rows x cols matrix backed by a copy of data.
// len(data) must be rows*cols.
func FromSlice(rows, cols int, data []int32) *Matrix {
	m := NewMatrix(rows, cols)
	if len(data) != rows*cols {
		panic("igemm: slice length does not match matrix shape")
	}
	copy(m.data, data)
	return m
}

// Identity creates the n x n identity matrix
func Identity(n int) *Matrix {
	m := NewSquare(n)
	for i := 0; i < n; i++ {
		m.data[i*m.stride+i] = 1
	}
	return m
}

// RandomMatrix creates a rows x cols matrix with values drawn from rng
// in [-bound, bound]. Used by tests and the bench tool.
func RandomMatrix(rows, cols int, bound int32, rng *rand.Rand) *Matrix {
	m := NewMatrix(rows, cols)
	for i := range m.data {
		m.data[i] = rng.Int31n(2*bound+1) - bound
	}
	return m
}

// Rows returns the number of rows
func (m *Matrix) Rows() int { return m.rows }

// Cols returns the number of columns
func (m *Matrix) Cols() int { return m.cols }

// Stride returns the row stride of the backing slice, in elements
func (m *Matrix) Stride() int { return m.stride }

// At returns the element at row i, column j
func (m *Matrix) At(i, j int) int32 {
	return m.data[i*m.stride+j]
}

// Set stores v at row i, column j
func (m *Matrix) Set(i, j int, v int32) {
	m.data[i*m.stride+j] = v
}

// Row returns row i as a slice sharing the matrix backing store
func (m *Matrix) Row(i int) []int32 {
	return m.data[i*m.stride : i*m.stride+m.cols]
}

// Data returns the flat row-major backing slice.
// The kernel entry points operate on this representation directly.
func (m *Matrix) Data() []int32 {
	return m.data
}

// Fill sets every element to v
func (m *Matrix) Fill(v int32) {
	for i := range m.data {
		m.data[i] = v
	}
}

// Zero sets every element to 0
func (m *Matrix) Zero() {
	m.Fill(0)
}

// Clone returns a deep copy of the matrix
func (m *Matrix) Clone() *Matrix {
	c := NewMatrix(m.rows, m.cols)
	copy(c.data, m.data)
	return c
}

// Equal reports whether two matrices have the same shape and elements
func (m *Matrix) Equal(other *Matrix) bool {
	if other == nil || m.rows != other.rows || m.cols != other.cols {
		return false
	}
	for i := 0; i < m.rows; i++ {
		a := m.Row(i)
		b := other.Row(i)
		for j := range a {
			if a[j] != b[j] {
				return false
			}
		}
	}
	return true
}

// aliases reports whether two matrices share a backing array.
// The kernel overwrites C while streaming A and B, so aliased operands
// would read partially written results.
func (m *Matrix) aliases(other *Matrix) bool {
	if m == nil || other == nil || len(m.data) == 0 || len(other.data) == 0 {
		return false
	}
	return &m.data[0] == &other.data[0]
}
