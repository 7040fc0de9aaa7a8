package insts

import "fmt"

// LMUL is the vector register group length multiplier.
type LMUL uint8

// LMUL codes, in vlmul field order.
const (
	LMUL1        LMUL = 0
	LMUL2        LMUL = 1
	LMUL4        LMUL = 2
	LMUL8        LMUL = 3
	LMULReserved LMUL = 4
	LMULF8       LMUL = 5
	LMULF4       LMUL = 6
	LMULF2       LMUL = 7
)

var lmulNames = [8]string{"m1", "m2", "m4", "m8", "reserved", "mf8", "mf4", "mf2"}

func (l LMUL) String() string {
	if int(l) < len(lmulNames) {
		return lmulNames[l]
	}
	return "reserved"
}

// VType is the decoded vtype immediate of a configuration instruction.
// When Illegal is set the remaining fields are architecturally unspecified
// and are not populated.
type VType struct {
	Illegal      bool
	SEW          uint32
	LMUL         LMUL
	TailAgnostic bool
	MaskAgnostic bool
}

// DecodeVType decodes a vsetvli/vsetivli vtype immediate.
//
// This uses the ratified RVV v1.0 packing, LMUL in the low bits:
//
//	vlmul[2:0] | vsew[5:3] | vta[6] | vma[7] | reserved[10:8]
//
// The historical SEW-low packing is incompatible and deliberately not
// supported. Any reserved bit set above bit 7, or a reserved vsew code
// (>= 4), marks the whole vtype illegal.
func DecodeVType(zimm uint32) VType {
	vsew := (zimm >> 3) & 0x7
	if zimm>>8 != 0 || vsew > 3 {
		return VType{Illegal: true}
	}

	return VType{
		SEW:          8 << vsew,
		LMUL:         LMUL(zimm & 0x7),
		TailAgnostic: (zimm>>6)&0x1 == 1,
		MaskAgnostic: (zimm>>7)&0x1 == 1,
	}
}

// String renders the vtype in vsetvli operand order, or the bare token
// ILLEGAL when the encoding is reserved.
func (v VType) String() string {
	if v.Illegal {
		return Illegal
	}
	ta, ma := "tu", "mu"
	if v.TailAgnostic {
		ta = "ta"
	}
	if v.MaskAgnostic {
		ma = "ma"
	}
	return fmt.Sprintf("e%d, %s, %s, %s", v.SEW, v.LMUL, ta, ma)
}
