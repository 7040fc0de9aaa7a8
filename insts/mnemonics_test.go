package insts_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/rvvdasm/insts"
)

var _ = Describe("LookupMnemonic", func() {
	lookup := func(cat insts.OperandCategory, funct6, vs1, vs2 uint8) (insts.MnemonicEntry, bool) {
		return insts.LookupMnemonic(cat, insts.FieldSet{Funct6: funct6, VS1: vs1, VS2: vs2})
	}

	It("should resolve vadd across the integer categories", func() {
		for _, cat := range []insts.OperandCategory{insts.CatIVV, insts.CatIVX, insts.CatIVI} {
			entry, ok := lookup(cat, 0b000000, 0, 0)
			Expect(ok).To(BeTrue())
			Expect(entry.Name).To(Equal("vadd"))
		}
	})

	It("should keep the historical funct6 conflicts split by category", func() {
		// Each pair collided in a naive combined table; the real ISA places
		// the two sides in different categories.
		type half struct {
			cat    insts.OperandCategory
			funct6 uint8
			name   string
		}
		pairs := [][2]half{
			// arithmetic vs reduction
			{{insts.CatIVV, 0b000000, "vadd"}, {insts.CatMVV, 0b000000, "vredsum"}},
			{{insts.CatIVV, 0b000111, "vmax"}, {insts.CatMVV, 0b000111, "vredmax"}},
			// saturating arithmetic vs divide/multiply
			{{insts.CatIVV, 0b100000, "vsaddu"}, {insts.CatMVV, 0b100000, "vdivu"}},
			{{insts.CatIVX, 0b100111, "vsmul"}, {insts.CatMVX, 0b100111, "vmulh"}},
			// scaling shift vs multiply-accumulate
			{{insts.CatIVV, 0b101011, "vssra"}, {insts.CatMVV, 0b101011, "vnmsub"}},
			// widening reduction vs widening add
			{{insts.CatIVV, 0b110000, "vwredsumu"}, {insts.CatMVV, 0b110000, "vwaddu"}},
		}
		for _, pair := range pairs {
			for _, h := range pair {
				entry, ok := lookup(h.cat, h.funct6, 0, 0)
				Expect(ok).To(BeTrue())
				Expect(entry.Name).To(Equal(h.name))
			}
		}
	})

	It("should report unassigned funct6 values as not found", func() {
		// OPIVV 0b000001 is unassigned (vredand lives in OPMVV).
		_, ok := lookup(insts.CatIVV, 0b000001, 0, 0)
		Expect(ok).To(BeFalse())
	})

	It("should resolve the unary families through vs1", func() {
		entry, ok := lookup(insts.CatMVV, 0b010000, 0b10000, 3)
		Expect(ok).To(BeTrue())
		Expect(entry.Name).To(Equal("vcpop.m"))
		Expect(entry.Shape).To(Equal(insts.ShapeScalarExtract))

		entry, ok = lookup(insts.CatMVV, 0b010010, 0b00110, 3)
		Expect(ok).To(BeTrue())
		Expect(entry.Name).To(Equal("vzext.vf2"))
		Expect(entry.Shape).To(Equal(insts.ShapeUnary))
	})

	It("should resolve the scalar-insert families through vs2", func() {
		entry, ok := lookup(insts.CatMVX, 0b010000, 7, 0)
		Expect(ok).To(BeTrue())
		Expect(entry.Name).To(Equal("vmv.s.x"))
		Expect(entry.Shape).To(Equal(insts.ShapeScalarInsert))

		_, ok = lookup(insts.CatMVX, 0b010000, 7, 1)
		Expect(ok).To(BeFalse())
	})

	It("should fail a recognized unary funct6 with an unlisted sub-opcode", func() {
		// VXUNARY0 exists, but vs1=0 is not an assigned extension code.
		_, ok := lookup(insts.CatMVV, 0b010010, 0b00000, 3)
		Expect(ok).To(BeFalse())
	})
})
