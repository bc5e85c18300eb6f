// Command bench times the kernel variants on the full-size workload
// and reports integer GOPS for each. Useful for comparing the naive,
// blocked and parallel paths on a given machine.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"runtime"
	"time"

	"github.com/densemath/igemm"
)

func main() {
	var (
		size    = flag.Int("n", igemm.Dim, "Matrix dimension")
		runs    = flag.Int("runs", 3, "Timed runs per variant")
		skipRef = flag.Bool("skip-reference", false, "Skip the naive kernel (slow at full size)")
	)
	flag.Parse()

	fmt.Println("=== igemm kernel comparison ===")
	fmt.Printf("Date: %s\n", time.Now().Format(time.RFC3339))
	fmt.Printf("Go Version: %s\n", runtime.Version())
	fmt.Printf("GOARCH: %s\n", runtime.GOARCH)
	fmt.Printf("CPU: %d cores\n", runtime.NumCPU())
	if v, _ := igemm.Version(); v != "" {
		fmt.Printf("igemm: %s\n", v)
	}

	feat := igemm.Features()
	fmt.Printf("AVX2: %v, AVX512F: %v, AVX512BW: %v\n",
		feat.HasAVX2, feat.HasAVX512F, feat.HasAVX512BW)
	fmt.Printf("Selected for %dx%d: %s\n\n",
		*size, *size, igemm.BestImplementation(*size, *size, *size))

	n := *size
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	a := igemm.RandomMatrix(n, n, 1000, rng)
	b := igemm.RandomMatrix(n, n, 1000, rng)
	c := igemm.NewSquare(n)

	w := igemm.NewWorkload(c, a, b)
	fmt.Printf("Workload: %d integer ops, %.1f MB\n\n",
		w.Operations(), float64(w.Bytes())/(1<<20))

	variants := []struct {
		name   string
		kernel igemm.MatMulKernel
	}{
		{"reference", igemm.Reference{}},
		{"blocked", igemm.NewBlockedMatMul()},
		{"parallel", igemm.NewParallelMatMul()},
	}

	for _, v := range variants {
		if v.name == "reference" && *skipRef {
			continue
		}

		best := time.Duration(1<<63 - 1)
		for r := 0; r < *runs; r++ {
			start := time.Now()
			v.kernel.MatMul(n, n, n,
				a.Data(), a.Stride(),
				b.Data(), b.Stride(),
				c.Data(), c.Stride())
			if elapsed := time.Since(start); elapsed < best {
				best = elapsed
			}
		}

		gops := float64(w.Operations()) / best.Seconds() / 1e9
		fmt.Printf("%-10s %12v  %8.2f GOPS\n", v.name, best, gops)
	}
}
