package insts

import (
	"fmt"
	"strconv"
)

// categorySuffix is the default mnemonic suffix per operand category.
var categorySuffix = map[OperandCategory]string{
	CatIVV: ".vv",
	CatFVV: ".vv",
	CatMVV: ".vv",
	CatIVI: ".vi",
	CatIVX: ".vx",
	CatMVX: ".vx",
	CatFVF: ".vf",
}

// suffixLetter is the operand-kind letter of a category: v for vector,
// x for integer scalar, i for immediate, f for float scalar.
func suffixLetter(cat OperandCategory) string {
	switch cat {
	case CatIVX, CatMVX:
		return "x"
	case CatIVI:
		return "i"
	case CatFVF:
		return "f"
	default:
		return "v"
	}
}

// sourceOperand renders the vs1/rs1/imm5 operand of a regular-shape
// instruction for the given category.
func sourceOperand(cat OperandCategory, entry MnemonicEntry, f FieldSet) string {
	switch cat {
	case CatIVI:
		if entry.UnsignedImm {
			return strconv.FormatUint(uint64(f.VS1), 10)
		}
		return strconv.FormatInt(int64(f.Imm5()), 10)
	case CatIVX, CatMVX:
		return fmt.Sprintf("x%d", f.VS1)
	case CatFVF:
		return fmt.Sprintf("f%d", f.VS1)
	default:
		return fmt.Sprintf("v%d", f.VS1)
	}
}

// scalarReg renders the rd/rs1 register of a scalar-extract or
// scalar-insert instruction: float registers for the float categories,
// integer registers otherwise.
func scalarReg(cat OperandCategory, n uint8) string {
	if cat == CatFVV || cat == CatFVF {
		return fmt.Sprintf("f%d", n)
	}
	return fmt.Sprintf("x%d", n)
}

// formatArith renders a resolved OP-V arithmetic instruction.
func formatArith(cat OperandCategory, entry MnemonicEntry, f FieldSet) string {
	switch entry.Shape {
	case ShapeUnary:
		s := fmt.Sprintf("%s v%d, v%d", entry.Name, f.VD, f.VS2)
		if f.Masked() {
			s += ", v0.t"
		}
		return s

	case ShapeNullary:
		s := fmt.Sprintf("%s v%d", entry.Name, f.VD)
		if f.Masked() {
			s += ", v0.t"
		}
		return s

	case ShapeScalarExtract:
		s := fmt.Sprintf("%s %s, v%d", entry.Name, scalarReg(cat, f.VD), f.VS2)
		if f.Masked() {
			s += ", v0.t"
		}
		return s

	case ShapeScalarInsert:
		return fmt.Sprintf("%s v%d, %s", entry.Name, f.VD, scalarReg(cat, f.VS1))

	case ShapeWholeMove:
		// vmv<nr>r.v: imm5 encodes nr-1; only 1/2/4/8 register groups exist.
		nr := uint32(f.VS1) + 1
		if nr != 1 && nr != 2 && nr != 4 && nr != 8 {
			return Unknown
		}
		return fmt.Sprintf("vmv%dr.v v%d, v%d", nr, f.VD, f.VS2)
	}

	return formatRegular(cat, entry, f)
}

// formatRegular renders the vd, vs2, vs1 triple shapes, applying the
// suffix rules.
func formatRegular(cat OperandCategory, entry MnemonicEntry, f FieldSet) string {
	src := sourceOperand(cat, entry, f)
	letter := suffixLetter(cat)

	switch entry.Suffix {
	case SuffixCarry:
		// vadc.vvm vd, vs2, vs1, v0 when masked; plain when vm=1 (vmadc/vmsbc
		// have a legal carry-free form, vadc/vsbc do not, but the rendering
		// rule is uniform).
		if f.Masked() {
			return fmt.Sprintf("%s.v%sm v%d, v%d, %s, v0", entry.Name, letter, f.VD, f.VS2, src)
		}
		return fmt.Sprintf("%s.v%s v%d, v%d, %s", entry.Name, letter, f.VD, f.VS2, src)

	case SuffixMerge:
		if f.Masked() {
			return fmt.Sprintf("%s.v%sm v%d, v%d, %s, v0", entry.Name, letter, f.VD, f.VS2, src)
		}
		// Unmasked, the encoding is the whole-vector move; vs2 is dropped.
		if cat == CatFVF {
			return fmt.Sprintf("vfmv.v.f v%d, %s", f.VD, src)
		}
		return fmt.Sprintf("vmv.v.%s v%d, %s", letter, f.VD, src)

	case SuffixMaskLogical:
		return maskable(fmt.Sprintf("%s.mm v%d, v%d, v%d", entry.Name, f.VD, f.VS2, f.VS1), f)

	case SuffixCompress:
		return fmt.Sprintf("%s.vm v%d, v%d, v%d", entry.Name, f.VD, f.VS2, f.VS1)

	case SuffixReduction:
		return maskable(fmt.Sprintf("%s.vs v%d, v%d, v%d", entry.Name, f.VD, f.VS2, f.VS1), f)

	case SuffixNarrow, SuffixWide:
		// Narrowing ops read a wide vs2 and write narrow; the .w* variants
		// of the widening adds read a wide vs2 and write wide. Both spell
		// the suffix with w in place of the vs2 operand kind.
		return maskable(fmt.Sprintf("%s.w%s v%d, v%d, %s", entry.Name, letter, f.VD, f.VS2, src), f)
	}

	suffix := categorySuffix[cat]
	return maskable(fmt.Sprintf("%s%s v%d, v%d, %s", entry.Name, suffix, f.VD, f.VS2, src), f)
}

// maskable appends the trailing mask-register qualifier for the masked form.
func maskable(s string, f FieldSet) string {
	if f.Masked() {
		return s + ", v0.t"
	}
	return s
}
