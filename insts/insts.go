// Package insts provides RISC-V Vector extension (RVV) instruction decoding.
//
// This package disassembles single 32-bit RVV instruction words into
// assembly text. It covers the OP-V arithmetic/configuration space
// (opcode 0x57) and the vector load/store space (opcodes 0x07/0x27):
//   - integer, fixed-point, floating-point and mask arithmetic
//   - the unary sub-opcode families (scalar moves, extensions, conversions,
//     mask-bit scans)
//   - vsetvli/vsetivli/vsetvl with full vtype rendering
//   - unit-stride, strided, indexed, segment, whole-register and mask
//     loads and stores
//
// Usage:
//
//	decoder := insts.NewDecoder()
//	text := decoder.Disassemble(0x022180D7) // "vadd.vv v1, v2, v3"
//
// Decoding is total: every 32-bit word yields a string, with the sentinels
// Unknown and Illegal standing in for unassigned and reserved encodings.
package insts
