package igemm

import (
	"testing"
)

// MultiplyOrFail multiplies and fails the test if unsuccessful
func MultiplyOrFail(t testing.TB, c, a, b *Matrix) {
	t.Helper()
	if err := Multiply(c, a, b); err != nil {
		t.Fatalf("Multiply failed: %v", err)
	}
}

// AssertMatrixEqual fails the test unless got and want match cell for cell
func AssertMatrixEqual(t testing.TB, got, want *Matrix, context string) {
	t.Helper()
	if got.rows != want.rows || got.cols != want.cols {
		t.Fatalf("%s: shape mismatch %dx%d vs %dx%d",
			context, got.rows, got.cols, want.rows, want.cols)
	}
	for i := 0; i < got.rows; i++ {
		for j := 0; j < got.cols; j++ {
			if got.At(i, j) != want.At(i, j) {
				t.Fatalf("%s: mismatch at (%d,%d): got %d, want %d",
					context, i, j, got.At(i, j), want.At(i, j))
			}
		}
	}
}
