package igemm

import (
	"runtime"

	"golang.org/x/sys/cpu"
)

// CPUFeatures tracks the instruction set extensions and topology that
// matter for integer GEMM kernel selection
type CPUFeatures struct {
	HasAVX2     bool
	HasAVX512F  bool
	HasAVX512BW bool // Byte/Word integer ops
	HasSSE4     bool
	NumCores    int
}

// Global CPU feature detection
var cpuFeatures CPUFeatures

func init() {
	detectCPUFeatures()
}

// detectCPUFeatures populates the global cpuFeatures struct
func detectCPUFeatures() {
	cpuFeatures = CPUFeatures{
		HasSSE4:     cpu.X86.HasSSE41 || cpu.X86.HasSSE42,
		HasAVX2:     cpu.X86.HasAVX2,
		HasAVX512F:  cpu.X86.HasAVX512F,
		HasAVX512BW: cpu.X86.HasAVX512BW,
		NumCores:    runtime.NumCPU(),
	}
}

// Features returns the detected CPU features
func Features() CPUFeatures {
	return cpuFeatures
}

// BestImplementation returns the kernel variant the dispatcher would
// pick for an M x N x K workload on this machine.
func BestImplementation(m, n, k int) string {
	if cpuFeatures.NumCores > 1 && m >= MinParallelDim {
		return "parallel"
	}
	if m >= TileM && n >= TileN && k >= TileK {
		return "blocked"
	}
	return "reference"
}
