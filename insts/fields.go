package insts

// RVV major opcodes.
const (
	OpcodeLoadFP  = 0x07 // vector loads (and scalar FP loads)
	OpcodeStoreFP = 0x27 // vector stores (and scalar FP stores)
	OpcodeVector  = 0x57 // OP-V arithmetic and configuration
)

// FieldSet holds the fixed-position sub-fields of a 32-bit RVV instruction
// word. Extraction is total; field meaning depends on the opcode and
// category. For memory operations Funct6 further splits into nf/mew/mop and
// VS2 doubles as the lumop/sumop/rs2 slot.
type FieldSet struct {
	Opcode uint8 // bits [6:0]
	VD     uint8 // bits [11:7], vd/rd/vs3
	Funct3 uint8 // bits [14:12], operand category (or width for memory ops)
	VS1    uint8 // bits [19:15], vs1/rs1/imm5/sub-opcode
	VS2    uint8 // bits [24:20], vs2/rs2/lumop/sumop
	VM     uint8 // bit [25], 1 = unmasked
	Funct6 uint8 // bits [31:26]
}

// ExtractFields slices word into its RVV sub-fields.
func ExtractFields(word uint32) FieldSet {
	return FieldSet{
		Opcode: uint8(word & 0x7F),
		VD:     uint8((word >> 7) & 0x1F),
		Funct3: uint8((word >> 12) & 0x7),
		VS1:    uint8((word >> 15) & 0x1F),
		VS2:    uint8((word >> 20) & 0x1F),
		VM:     uint8((word >> 25) & 0x1),
		Funct6: uint8((word >> 26) & 0x3F),
	}
}

// Imm5 reinterprets the vs1/rs1 slot as a 5-bit two's-complement immediate.
func (f FieldSet) Imm5() int32 {
	if f.VS1&0x10 != 0 {
		return int32(f.VS1) - 32
	}
	return int32(f.VS1)
}

// Masked reports whether the mask-enable bit selects the masked form
// (vm=0 means masked, vm=1 means unmasked).
func (f FieldSet) Masked() bool {
	return f.VM == 0
}

// Memory-op views of the shared fields.

// Nf returns the number-of-fields code (bits [31:29]); the segment count is
// Nf+1.
func (f FieldSet) Nf() uint8 { return f.Funct6 >> 3 }

// Mew returns the memory element width extension bit (bit [28]).
func (f FieldSet) Mew() uint8 { return (f.Funct6 >> 2) & 0x1 }

// Mop returns the memory addressing mode selector (bits [27:26]).
func (f FieldSet) Mop() uint8 { return f.Funct6 & 0x3 }
