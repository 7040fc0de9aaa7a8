// Validate decoder performance - measures throughput and allocations of the
// RVV disassembler over a fixed instruction mix.
package main

import (
	"fmt"
	"runtime"
	"time"

	"github.com/sarchlab/rvvdasm/insts"
)

func main() {
	decoder := insts.NewDecoder()

	// A mix of arithmetic, unary, configuration and memory encodings.
	words := []uint32{
		0x022180D7, // vadd.vv v1, v2, v3
		0x022FB0D7, // vadd.vi v1, v2, -1
		0x423822D7, // vcpop.m x5, v3
		0x0D0170D7, // vsetvli x1, x2, e32, m1, ta, ma
		0x02017087, // vle64.v v1, (x2)
		0x0A316087, // vlse32.v v1, (x2), x3
		0x062180D7, // UNKNOWN
	}

	// Warm up
	for i := 0; i < 1000; i++ {
		decoder.Disassemble(words[i%len(words)])
	}

	runtime.GC()
	var m1, m2 runtime.MemStats
	runtime.ReadMemStats(&m1)

	start := time.Now()
	iterations := 100000

	for i := 0; i < iterations; i++ {
		for _, w := range words {
			decoder.Disassemble(w)
		}
	}

	elapsed := time.Since(start)
	runtime.ReadMemStats(&m2)

	totalDecodes := iterations * len(words)
	allocations := m2.Mallocs - m1.Mallocs
	allocatedBytes := m2.TotalAlloc - m1.TotalAlloc

	fmt.Printf("Decoder Validation Results:\n")
	fmt.Printf("===========================\n")
	fmt.Printf("Total decode operations: %d\n", totalDecodes)
	fmt.Printf("Time elapsed: %v\n", elapsed)
	fmt.Printf("Decodes per second: %.0f\n", float64(totalDecodes)/elapsed.Seconds())
	fmt.Printf("Allocations: %d\n", allocations)
	fmt.Printf("Allocated bytes: %d\n", allocatedBytes)
	fmt.Printf("Allocations per decode: %.3f\n", float64(allocations)/float64(totalDecodes))
	fmt.Printf("Bytes per decode: %.1f\n", float64(allocatedBytes)/float64(totalDecodes))
}
