// Command matmul runs the reference workload: C = A*B for three
// 1024x1024 int32 matrices. It takes no arguments, reads no
// environment, prints nothing and exits 0 on completion. The operands
// are freshly allocated and therefore zero.
package main

import (
	"log"

	"github.com/densemath/igemm"
)

func main() {
	a := igemm.NewDefault()
	b := igemm.NewDefault()
	c := igemm.NewDefault()

	if err := igemm.Multiply(c, a, b); err != nil {
		// Unreachable for well-formed default matrices; allocation
		// failure would already have aborted the process.
		log.Fatal(err)
	}
}
