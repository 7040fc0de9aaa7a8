package insts

// The unary instruction families each occupy a single funct6 slot and use
// the vs1 field (vs2 for the scalar-insert groups, whose rs1 slot carries
// the live scalar operand) as a sub-opcode. Entries carry their complete
// mnemonic text; the formatter only appends operands.

type unaryKey struct {
	cat    OperandCategory
	funct6 uint8
}

type unaryGroup struct {
	keyOnVS2 bool
	entries  map[uint8]MnemonicEntry
}

func unary(name string, shape OperandShape) MnemonicEntry {
	return MnemonicEntry{Name: name, Shape: shape, Suffix: SuffixNone}
}

var unaryGroups = map[unaryKey]unaryGroup{
	// VWXUNARY0: integer scalar extraction and mask population/scan.
	{CatMVV, 0b010000}: {entries: map[uint8]MnemonicEntry{
		0b00000: unary("vmv.x.s", ShapeScalarExtract),
		0b10000: unary("vcpop.m", ShapeScalarExtract),
		0b10001: unary("vfirst.m", ShapeScalarExtract),
	}},
	// VRXUNARY0: integer scalar insertion.
	{CatMVX, 0b010000}: {keyOnVS2: true, entries: map[uint8]MnemonicEntry{
		0b00000: unary("vmv.s.x", ShapeScalarInsert),
	}},
	// VXUNARY0: sign/zero extension.
	{CatMVV, 0b010010}: {entries: map[uint8]MnemonicEntry{
		0b00010: unary("vzext.vf8", ShapeUnary),
		0b00011: unary("vsext.vf8", ShapeUnary),
		0b00100: unary("vzext.vf4", ShapeUnary),
		0b00101: unary("vsext.vf4", ShapeUnary),
		0b00110: unary("vzext.vf2", ShapeUnary),
		0b00111: unary("vsext.vf2", ShapeUnary),
	}},
	// VMUNARY0: mask-bit scans, iota, element index.
	{CatMVV, 0b010100}: {entries: map[uint8]MnemonicEntry{
		0b00001: unary("vmsbf.m", ShapeUnary),
		0b00010: unary("vmsof.m", ShapeUnary),
		0b00011: unary("vmsif.m", ShapeUnary),
		0b10000: unary("viota.m", ShapeUnary),
		0b10001: unary("vid.v", ShapeNullary),
	}},
	// VWFUNARY0: float scalar extraction.
	{CatFVV, 0b010000}: {entries: map[uint8]MnemonicEntry{
		0b00000: unary("vfmv.f.s", ShapeScalarExtract),
	}},
	// VRFUNARY0: float scalar insertion.
	{CatFVF, 0b010000}: {keyOnVS2: true, entries: map[uint8]MnemonicEntry{
		0b00000: unary("vfmv.s.f", ShapeScalarInsert),
	}},
	// VFUNARY0: single-width, widening and narrowing conversions.
	{CatFVV, 0b010010}: {entries: map[uint8]MnemonicEntry{
		0b00000: unary("vfcvt.xu.f.v", ShapeUnary),
		0b00001: unary("vfcvt.x.f.v", ShapeUnary),
		0b00010: unary("vfcvt.f.xu.v", ShapeUnary),
		0b00011: unary("vfcvt.f.x.v", ShapeUnary),
		0b00110: unary("vfcvt.rtz.xu.f.v", ShapeUnary),
		0b00111: unary("vfcvt.rtz.x.f.v", ShapeUnary),
		0b01000: unary("vfwcvt.xu.f.v", ShapeUnary),
		0b01001: unary("vfwcvt.x.f.v", ShapeUnary),
		0b01010: unary("vfwcvt.f.xu.v", ShapeUnary),
		0b01011: unary("vfwcvt.f.x.v", ShapeUnary),
		0b01100: unary("vfwcvt.f.f.v", ShapeUnary),
		0b01110: unary("vfwcvt.rtz.xu.f.v", ShapeUnary),
		0b01111: unary("vfwcvt.rtz.x.f.v", ShapeUnary),
		0b10000: unary("vfncvt.xu.f.w", ShapeUnary),
		0b10001: unary("vfncvt.x.f.w", ShapeUnary),
		0b10010: unary("vfncvt.f.xu.w", ShapeUnary),
		0b10011: unary("vfncvt.f.x.w", ShapeUnary),
		0b10100: unary("vfncvt.f.f.w", ShapeUnary),
		0b10101: unary("vfncvt.rod.f.f.w", ShapeUnary),
		0b10110: unary("vfncvt.rtz.xu.f.w", ShapeUnary),
		0b10111: unary("vfncvt.rtz.x.f.w", ShapeUnary),
	}},
	// VFUNARY1: square root, reciprocal estimates, classification.
	{CatFVV, 0b010011}: {entries: map[uint8]MnemonicEntry{
		0b00000: unary("vfsqrt.v", ShapeUnary),
		0b00100: unary("vfrsqrt7.v", ShapeUnary),
		0b00101: unary("vfrec7.v", ShapeUnary),
		0b10000: unary("vfclass.v", ShapeUnary),
	}},
}
