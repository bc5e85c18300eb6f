// Package igemm provides dense integer matrix multiplication on the CPU.
//
// The package is built around a single kernel: C = A·B for row-major
// matrices of 32-bit signed integers. The reference implementation is a
// plain triple-nested loop with strictly sequential accumulation; the
// blocked and parallel variants produce bit-identical results because
// int32 addition wraps in two's complement and is therefore associative.
//
// Example usage:
//
//	a := igemm.NewDefault() // 1024x1024, zeroed
//	b := igemm.Identity(igemm.Dim)
//	c := igemm.NewDefault()
//
//	if err := igemm.Multiply(c, a, b); err != nil {
//		log.Fatal(err)
//	}
//
// All arithmetic is wrapping two's-complement. Inputs whose
// multiply-accumulate overflows an int32 are accepted and produce the
// same wrapped result on every platform and in every kernel variant.
package igemm
