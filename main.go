// Package main provides the entry point for rvvdasm.
// rvvdasm is a RISC-V Vector extension instruction disassembler.
//
// For the full CLI, use: go run ./cmd/rvvdasm
package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Println("rvvdasm - RISC-V Vector instruction disassembler")
	fmt.Println("")
	fmt.Println("Usage: rvvdasm [options] <instruction>")
	fmt.Println("")
	fmt.Println("Options:")
	fmt.Println("  --dump     Dump the extracted field breakdown")
	fmt.Println("  -v         Trace decoding at debug level")
	fmt.Println("")
	fmt.Println("Run 'go run ./cmd/rvvdasm' for the full CLI.")

	if len(os.Args) > 1 {
		fmt.Println("\nNote: You provided arguments. Use 'go run ./cmd/rvvdasm' instead.")
	}
}
