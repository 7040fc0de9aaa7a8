package insts

// OperandShape tags how an instruction's operand list is laid out.
type OperandShape uint8

// Operand shapes.
const (
	ShapeRegular       OperandShape = iota // vd, vs2, vs1/x rs1/imm
	ShapeUnary                             // vd, vs2 (vs1 is a sub-opcode)
	ShapeNullary                           // vd only (vid.v)
	ShapeScalarExtract                     // x/f rd, vs2 (vmv.x.s, vcpop.m, ...)
	ShapeScalarInsert                      // vd, x/f rs1 (vmv.s.x, vfmv.s.f)
	ShapeWholeMove                         // vd, vs2 (vmv<nr>r.v)
)

// SuffixRule selects how the mnemonic suffix is derived from the category
// and the mask-enable bit.
type SuffixRule uint8

// Suffix rules.
const (
	SuffixDefault     SuffixRule = iota // .vv/.vx/.vi/.vf by category
	SuffixCarry                         // carry/borrow: append m when masked, v0 operand
	SuffixMerge                         // vmerge when masked, vmv.v.* when not
	SuffixNarrow                        // .wv/.wx/.wi (narrowing shifts and clips)
	SuffixWide                          // .wv/.wx/.wf (vd and vs2 are wide)
	SuffixReduction                     // .vs
	SuffixMaskLogical                   // .mm
	SuffixCompress                      // .vm
	SuffixNone                          // mnemonic text is already complete
)

// MnemonicEntry is one resolved instruction name plus the formatting rules
// that go with it.
type MnemonicEntry struct {
	Name        string
	Shape       OperandShape
	Suffix      SuffixRule
	UnsignedImm bool // OPIVI immediate renders unsigned (shifts, slides, ...)
}

func regular(name string) MnemonicEntry {
	return MnemonicEntry{Name: name, Shape: ShapeRegular}
}

func withSuffix(name string, rule SuffixRule) MnemonicEntry {
	return MnemonicEntry{Name: name, Shape: ShapeRegular, Suffix: rule}
}

func unsignedImm(name string) MnemonicEntry {
	return MnemonicEntry{Name: name, Shape: ShapeRegular, UnsignedImm: true}
}

func narrowing(name string) MnemonicEntry {
	return MnemonicEntry{Name: name, Shape: ShapeRegular, Suffix: SuffixNarrow, UnsignedImm: true}
}

// Category-scoped funct6 tables, one per operand category, built from the
// ratified RVV v1.0 opcode listings. Each (category, funct6) pair maps to at
// most one entry; the map literals reject duplicate keys at compile time,
// so any collision introduced here fails the build rather than being
// resolved by lookup order. Absent keys are legitimately unassigned
// encodings, reported as not-found.
var opivvTable = map[uint8]MnemonicEntry{
	0b000000: regular("vadd"),
	0b000010: regular("vsub"),
	0b000100: regular("vminu"),
	0b000101: regular("vmin"),
	0b000110: regular("vmaxu"),
	0b000111: regular("vmax"),
	0b001001: regular("vand"),
	0b001010: regular("vor"),
	0b001011: regular("vxor"),
	0b001100: regular("vrgather"),
	0b001110: regular("vrgatherei16"),
	0b010000: withSuffix("vadc", SuffixCarry),
	0b010001: withSuffix("vmadc", SuffixCarry),
	0b010010: withSuffix("vsbc", SuffixCarry),
	0b010011: withSuffix("vmsbc", SuffixCarry),
	0b010111: withSuffix("vmerge", SuffixMerge),
	0b011000: regular("vmseq"),
	0b011001: regular("vmsne"),
	0b011010: regular("vmsltu"),
	0b011011: regular("vmslt"),
	0b011100: regular("vmsleu"),
	0b011101: regular("vmsle"),
	0b100000: regular("vsaddu"),
	0b100001: regular("vsadd"),
	0b100010: regular("vssubu"),
	0b100011: regular("vssub"),
	0b100101: unsignedImm("vsll"),
	0b100111: regular("vsmul"),
	0b101000: unsignedImm("vsrl"),
	0b101001: unsignedImm("vsra"),
	0b101010: unsignedImm("vssrl"),
	0b101011: unsignedImm("vssra"),
	0b101100: narrowing("vnsrl"),
	0b101101: narrowing("vnsra"),
	0b101110: narrowing("vnclipu"),
	0b101111: narrowing("vnclip"),
	0b110000: withSuffix("vwredsumu", SuffixReduction),
	0b110001: withSuffix("vwredsum", SuffixReduction),
}

var opivxTable = map[uint8]MnemonicEntry{
	0b000000: regular("vadd"),
	0b000010: regular("vsub"),
	0b000011: regular("vrsub"),
	0b000100: regular("vminu"),
	0b000101: regular("vmin"),
	0b000110: regular("vmaxu"),
	0b000111: regular("vmax"),
	0b001001: regular("vand"),
	0b001010: regular("vor"),
	0b001011: regular("vxor"),
	0b001100: regular("vrgather"),
	0b001110: regular("vslideup"),
	0b001111: regular("vslidedown"),
	0b010000: withSuffix("vadc", SuffixCarry),
	0b010001: withSuffix("vmadc", SuffixCarry),
	0b010010: withSuffix("vsbc", SuffixCarry),
	0b010011: withSuffix("vmsbc", SuffixCarry),
	0b010111: withSuffix("vmerge", SuffixMerge),
	0b011000: regular("vmseq"),
	0b011001: regular("vmsne"),
	0b011010: regular("vmsltu"),
	0b011011: regular("vmslt"),
	0b011100: regular("vmsleu"),
	0b011101: regular("vmsle"),
	0b011110: regular("vmsgtu"),
	0b011111: regular("vmsgt"),
	0b100000: regular("vsaddu"),
	0b100001: regular("vsadd"),
	0b100010: regular("vssubu"),
	0b100011: regular("vssub"),
	0b100101: regular("vsll"),
	0b100111: regular("vsmul"),
	0b101000: regular("vsrl"),
	0b101001: regular("vsra"),
	0b101010: regular("vssrl"),
	0b101011: regular("vssra"),
	0b101100: narrowing("vnsrl"),
	0b101101: narrowing("vnsra"),
	0b101110: narrowing("vnclipu"),
	0b101111: narrowing("vnclip"),
}

var opiviTable = map[uint8]MnemonicEntry{
	0b000000: regular("vadd"),
	0b000011: regular("vrsub"),
	0b001001: regular("vand"),
	0b001010: regular("vor"),
	0b001011: regular("vxor"),
	0b001100: unsignedImm("vrgather"),
	0b001110: unsignedImm("vslideup"),
	0b001111: unsignedImm("vslidedown"),
	0b010000: withSuffix("vadc", SuffixCarry),
	0b010001: withSuffix("vmadc", SuffixCarry),
	0b010111: withSuffix("vmerge", SuffixMerge),
	0b011000: regular("vmseq"),
	0b011001: regular("vmsne"),
	0b011100: regular("vmsleu"),
	0b011101: regular("vmsle"),
	0b011110: regular("vmsgtu"),
	0b011111: regular("vmsgt"),
	0b100000: regular("vsaddu"),
	0b100001: regular("vsadd"),
	0b100101: unsignedImm("vsll"),
	0b100111: {Name: "vmv", Shape: ShapeWholeMove, Suffix: SuffixNone, UnsignedImm: true},
	0b101000: unsignedImm("vsrl"),
	0b101001: unsignedImm("vsra"),
	0b101010: unsignedImm("vssrl"),
	0b101011: unsignedImm("vssra"),
	0b101100: narrowing("vnsrl"),
	0b101101: narrowing("vnsra"),
	0b101110: narrowing("vnclipu"),
	0b101111: narrowing("vnclip"),
}

var opmvvTable = map[uint8]MnemonicEntry{
	0b000000: withSuffix("vredsum", SuffixReduction),
	0b000001: withSuffix("vredand", SuffixReduction),
	0b000010: withSuffix("vredor", SuffixReduction),
	0b000011: withSuffix("vredxor", SuffixReduction),
	0b000100: withSuffix("vredminu", SuffixReduction),
	0b000101: withSuffix("vredmin", SuffixReduction),
	0b000110: withSuffix("vredmaxu", SuffixReduction),
	0b000111: withSuffix("vredmax", SuffixReduction),
	0b001000: regular("vaaddu"),
	0b001001: regular("vaadd"),
	0b001010: regular("vasubu"),
	0b001011: regular("vasub"),
	// 0b010000, 0b010010, 0b010100 are unary groups; see unary.go.
	0b010111: withSuffix("vcompress", SuffixCompress),
	0b011000: withSuffix("vmandn", SuffixMaskLogical),
	0b011001: withSuffix("vmand", SuffixMaskLogical),
	0b011010: withSuffix("vmor", SuffixMaskLogical),
	0b011011: withSuffix("vmxor", SuffixMaskLogical),
	0b011100: withSuffix("vmorn", SuffixMaskLogical),
	0b011101: withSuffix("vmnand", SuffixMaskLogical),
	0b011110: withSuffix("vmnor", SuffixMaskLogical),
	0b011111: withSuffix("vmxnor", SuffixMaskLogical),
	0b100000: regular("vdivu"),
	0b100001: regular("vdiv"),
	0b100010: regular("vremu"),
	0b100011: regular("vrem"),
	0b100100: regular("vmulhu"),
	0b100101: regular("vmul"),
	0b100110: regular("vmulhsu"),
	0b100111: regular("vmulh"),
	0b101001: regular("vmadd"),
	0b101011: regular("vnmsub"),
	0b101101: regular("vmacc"),
	0b101111: regular("vnmsac"),
	0b110000: regular("vwaddu"),
	0b110001: regular("vwadd"),
	0b110010: regular("vwsubu"),
	0b110011: regular("vwsub"),
	0b110100: withSuffix("vwaddu", SuffixWide),
	0b110101: withSuffix("vwadd", SuffixWide),
	0b110110: withSuffix("vwsubu", SuffixWide),
	0b110111: withSuffix("vwsub", SuffixWide),
	0b111000: regular("vwmulu"),
	0b111010: regular("vwmulsu"),
	0b111011: regular("vwmul"),
	0b111100: regular("vwmaccu"),
	0b111101: regular("vwmacc"),
	0b111111: regular("vwmaccsu"),
}

var opmvxTable = map[uint8]MnemonicEntry{
	0b001000: regular("vaaddu"),
	0b001001: regular("vaadd"),
	0b001010: regular("vasubu"),
	0b001011: regular("vasub"),
	0b001110: regular("vslide1up"),
	0b001111: regular("vslide1down"),
	// 0b010000 is the VRXUNARY0 group; see unary.go.
	0b100000: regular("vdivu"),
	0b100001: regular("vdiv"),
	0b100010: regular("vremu"),
	0b100011: regular("vrem"),
	0b100100: regular("vmulhu"),
	0b100101: regular("vmul"),
	0b100110: regular("vmulhsu"),
	0b100111: regular("vmulh"),
	0b101001: regular("vmadd"),
	0b101011: regular("vnmsub"),
	0b101101: regular("vmacc"),
	0b101111: regular("vnmsac"),
	0b110000: regular("vwaddu"),
	0b110001: regular("vwadd"),
	0b110010: regular("vwsubu"),
	0b110011: regular("vwsub"),
	0b110100: withSuffix("vwaddu", SuffixWide),
	0b110101: withSuffix("vwadd", SuffixWide),
	0b110110: withSuffix("vwsubu", SuffixWide),
	0b110111: withSuffix("vwsub", SuffixWide),
	0b111000: regular("vwmulu"),
	0b111010: regular("vwmulsu"),
	0b111011: regular("vwmul"),
	0b111100: regular("vwmaccu"),
	0b111101: regular("vwmacc"),
	0b111110: regular("vwmaccus"),
	0b111111: regular("vwmaccsu"),
}

var opfvvTable = map[uint8]MnemonicEntry{
	0b000000: regular("vfadd"),
	0b000001: withSuffix("vfredusum", SuffixReduction),
	0b000010: regular("vfsub"),
	0b000011: withSuffix("vfredosum", SuffixReduction),
	0b000100: regular("vfmin"),
	0b000101: withSuffix("vfredmin", SuffixReduction),
	0b000110: regular("vfmax"),
	0b000111: withSuffix("vfredmax", SuffixReduction),
	0b001000: regular("vfsgnj"),
	0b001001: regular("vfsgnjn"),
	0b001010: regular("vfsgnjx"),
	// 0b010000, 0b010010, 0b010011 are unary groups; see unary.go.
	0b011000: regular("vmfeq"),
	0b011001: regular("vmfle"),
	0b011011: regular("vmflt"),
	0b011100: regular("vmfne"),
	0b100000: regular("vfdiv"),
	0b100100: regular("vfmul"),
	0b101000: regular("vfmadd"),
	0b101001: regular("vfnmadd"),
	0b101010: regular("vfmsub"),
	0b101011: regular("vfnmsub"),
	0b101100: regular("vfmacc"),
	0b101101: regular("vfnmacc"),
	0b101110: regular("vfmsac"),
	0b101111: regular("vfnmsac"),
	0b110000: regular("vfwadd"),
	0b110001: withSuffix("vfwredusum", SuffixReduction),
	0b110010: regular("vfwsub"),
	0b110011: withSuffix("vfwredosum", SuffixReduction),
	0b110100: withSuffix("vfwadd", SuffixWide),
	0b110110: withSuffix("vfwsub", SuffixWide),
	0b111000: regular("vfwmul"),
	0b111100: regular("vfwmacc"),
	0b111101: regular("vfwnmacc"),
	0b111110: regular("vfwmsac"),
	0b111111: regular("vfwnmsac"),
}

var opfvfTable = map[uint8]MnemonicEntry{
	0b000000: regular("vfadd"),
	0b000010: regular("vfsub"),
	0b000100: regular("vfmin"),
	0b000110: regular("vfmax"),
	0b001000: regular("vfsgnj"),
	0b001001: regular("vfsgnjn"),
	0b001010: regular("vfsgnjx"),
	0b001110: regular("vfslide1up"),
	0b001111: regular("vfslide1down"),
	// 0b010000 is the VRFUNARY0 group; see unary.go.
	0b010111: withSuffix("vfmerge", SuffixMerge),
	0b011000: regular("vmfeq"),
	0b011001: regular("vmfle"),
	0b011011: regular("vmflt"),
	0b011100: regular("vmfne"),
	0b011101: regular("vmfgt"),
	0b011111: regular("vmfge"),
	0b100000: regular("vfdiv"),
	0b100001: regular("vfrdiv"),
	0b100100: regular("vfmul"),
	0b100111: regular("vfrsub"),
	0b101000: regular("vfmadd"),
	0b101001: regular("vfnmadd"),
	0b101010: regular("vfmsub"),
	0b101011: regular("vfnmsub"),
	0b101100: regular("vfmacc"),
	0b101101: regular("vfnmacc"),
	0b101110: regular("vfmsac"),
	0b101111: regular("vfnmsac"),
	0b110000: regular("vfwadd"),
	0b110010: regular("vfwsub"),
	0b110100: withSuffix("vfwadd", SuffixWide),
	0b110110: withSuffix("vfwsub", SuffixWide),
	0b111000: regular("vfwmul"),
	0b111100: regular("vfwmacc"),
	0b111101: regular("vfwnmacc"),
	0b111110: regular("vfwmsac"),
	0b111111: regular("vfwnmsac"),
}

var opTables = map[OperandCategory]map[uint8]MnemonicEntry{
	CatIVV: opivvTable,
	CatIVX: opivxTable,
	CatIVI: opiviTable,
	CatMVV: opmvvTable,
	CatMVX: opmvxTable,
	CatFVV: opfvvTable,
	CatFVF: opfvfTable,
}

// LookupMnemonic resolves the mnemonic entry for a (category, funct6) pair,
// consulting the unary sub-opcode groups before the regular tables. For a
// funct6 value reserved by a unary group, the vs1 (or vs2, for the
// scalar-insert groups) field is a sub-opcode: an unlisted sub-opcode fails
// the lookup even though the funct6 slot itself is recognized.
func LookupMnemonic(cat OperandCategory, f FieldSet) (MnemonicEntry, bool) {
	if group, ok := unaryGroups[unaryKey{cat, f.Funct6}]; ok {
		key := f.VS1
		if group.keyOnVS2 {
			key = f.VS2
		}
		entry, ok := group.entries[key]
		return entry, ok
	}

	table, ok := opTables[cat]
	if !ok {
		return MnemonicEntry{}, false
	}
	entry, ok := table[f.Funct6]
	return entry, ok
}
