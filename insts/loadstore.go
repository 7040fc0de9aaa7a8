package insts

import "fmt"

// AddressMode is the memory addressing mode of a vector load/store.
type AddressMode uint8

// Addressing modes. The first four mirror the 2-bit mop field; whole-register
// and mask forms are carved out of the unit-stride space by lumop/sumop.
const (
	ModeUnitStride AddressMode = iota
	ModeIndexedUnordered
	ModeStrided
	ModeIndexedOrdered
	ModeWholeRegister
	ModeMask
)

// lumop/sumop codes, valid only when mop selects unit-stride.
const (
	umopUnit         = 0b00000
	umopWholeReg     = 0b01000
	umopMask         = 0b01011
	umopFaultOnFirst = 0b10000
)

// LoadStoreDescriptor captures the shape of a classified vector memory
// operation.
type LoadStoreDescriptor struct {
	EEW        uint32
	NFields    uint8 // 1-8
	Mode       AddressMode
	Segment    bool
	FaultFirst bool
	Store      bool
}

// eewFromWidth maps the width (funct3) field of a vector memory op to its
// effective element width in bits. Widths 1-4 belong to the scalar FP
// opcodes sharing 0x07/0x27.
var eewFromWidth = map[uint8]uint32{
	0b000: 8,
	0b101: 16,
	0b110: 32,
	0b111: 64,
}

// classifyLoadStore derives the memory-op descriptor from the extracted
// fields. It returns false for reserved shapes: unknown width, mew set, an
// unassigned lumop/sumop code, fault-only-first on a store, or a
// whole-register count other than 1/2/4/8.
func classifyLoadStore(f FieldSet) (LoadStoreDescriptor, bool) {
	eew, ok := eewFromWidth[f.Funct3]
	if !ok || f.Mew() != 0 {
		return LoadStoreDescriptor{}, false
	}

	desc := LoadStoreDescriptor{
		EEW:     eew,
		NFields: f.Nf() + 1,
		Store:   f.Opcode == OpcodeStoreFP,
		Segment: f.Nf() > 0,
	}

	switch f.Mop() {
	case 0b00:
		// Unit-stride: the vs2 slot is a sub-opcode. Whole-register and
		// mask forms take precedence over any other unit-stride reading.
		switch f.VS2 {
		case umopWholeReg:
			if n := desc.NFields; n != 1 && n != 2 && n != 4 && n != 8 {
				return LoadStoreDescriptor{}, false
			}
			desc.Mode = ModeWholeRegister
			desc.Segment = false
		case umopMask:
			desc.Mode = ModeMask
			desc.EEW = 8
			desc.NFields = 1
			desc.Segment = false
		case umopFaultOnFirst:
			if desc.Store {
				return LoadStoreDescriptor{}, false
			}
			desc.Mode = ModeUnitStride
			desc.FaultFirst = true
		case umopUnit:
			desc.Mode = ModeUnitStride
		default:
			return LoadStoreDescriptor{}, false
		}
	case 0b01:
		desc.Mode = ModeIndexedUnordered
	case 0b10:
		desc.Mode = ModeStrided
	case 0b11:
		desc.Mode = ModeIndexedOrdered
	}

	return desc, true
}

// Mnemonic builds the full load/store mnemonic, suffix included.
func (d LoadStoreDescriptor) Mnemonic() string {
	ls := "l"
	if d.Store {
		ls = "s"
	}

	switch d.Mode {
	case ModeWholeRegister:
		if d.Store {
			return fmt.Sprintf("vs%dr.v", d.NFields)
		}
		return fmt.Sprintf("vl%dre%d.v", d.NFields, d.EEW)
	case ModeMask:
		return fmt.Sprintf("v%sm.v", ls)
	}

	seg := ""
	if d.Segment {
		seg = fmt.Sprintf("seg%d", d.NFields)
	}
	ff := ""
	if d.FaultFirst {
		ff = "ff"
	}

	switch d.Mode {
	case ModeUnitStride:
		return fmt.Sprintf("v%s%se%d%s.v", ls, seg, d.EEW, ff)
	case ModeStrided:
		return fmt.Sprintf("v%ss%se%d.v", ls, seg, d.EEW)
	case ModeIndexedUnordered:
		return fmt.Sprintf("v%sux%sei%d.v", ls, seg, d.EEW)
	default: // ModeIndexedOrdered
		return fmt.Sprintf("v%sox%sei%d.v", ls, seg, d.EEW)
	}
}

// formatLoadStore renders a vector (or scalar FP) memory operation, or
// Unknown for a reserved shape.
func formatLoadStore(word uint32, f FieldSet) string {
	if s, ok := formatScalarFP(word, f); ok {
		return s
	}

	desc, ok := classifyLoadStore(f)
	if !ok {
		return Unknown
	}

	operands := fmt.Sprintf("v%d, (x%d)", f.VD, f.VS1)
	switch desc.Mode {
	case ModeStrided:
		operands += fmt.Sprintf(", x%d", f.VS2)
	case ModeIndexedUnordered, ModeIndexedOrdered:
		operands += fmt.Sprintf(", v%d", f.VS2)
	}
	if f.Masked() && desc.Mode != ModeWholeRegister && desc.Mode != ModeMask {
		operands += ", v0.t"
	}

	return desc.Mnemonic() + " " + operands
}

// formatScalarFP handles the scalar floating-point loads and stores that
// share the 0x07/0x27 opcodes with the vector forms (width 0b010/0b011).
func formatScalarFP(word uint32, f FieldSet) (string, bool) {
	var name string
	switch f.Funct3 {
	case 0b010:
		name = "flw"
	case 0b011:
		name = "fld"
	default:
		return "", false
	}

	if f.Opcode == OpcodeStoreFP {
		name = "fs" + name[2:]
		// S-type immediate: imm[11:5] in bits [31:25], imm[4:0] in [11:7].
		imm := int32(word&0xFE000000)>>20 | int32(f.VD)
		return fmt.Sprintf("%s f%d, %d(x%d)", name, f.VS2, imm, f.VS1), true
	}

	// I-type immediate: bits [31:20], sign-extended.
	imm := int32(word) >> 20
	return fmt.Sprintf("%s f%d, %d(x%d)", name, f.VD, imm, f.VS1), true
}
