package insts_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/rvvdasm/insts"
)

var _ = Describe("DecodeVType", func() {
	// Packing: vlmul[2:0] | vsew[5:3] | vta[6] | vma[7]

	It("should decode e32, m1, ta, ma", func() {
		vt := insts.DecodeVType(0x0D0)

		Expect(vt.Illegal).To(BeFalse())
		Expect(vt.SEW).To(Equal(uint32(32)))
		Expect(vt.LMUL).To(Equal(insts.LMUL1))
		Expect(vt.TailAgnostic).To(BeTrue())
		Expect(vt.MaskAgnostic).To(BeTrue())
		Expect(vt.String()).To(Equal("e32, m1, ta, ma"))
	})

	It("should decode e8, m2, tu, mu", func() {
		vt := insts.DecodeVType(0x001)

		Expect(vt.SEW).To(Equal(uint32(8)))
		Expect(vt.LMUL).To(Equal(insts.LMUL2))
		Expect(vt.String()).To(Equal("e8, m2, tu, mu"))
	})

	It("should decode the fractional multipliers", func() {
		Expect(insts.DecodeVType(5).LMUL).To(Equal(insts.LMULF8))
		Expect(insts.DecodeVType(6).LMUL).To(Equal(insts.LMULF4))
		Expect(insts.DecodeVType(7).LMUL).To(Equal(insts.LMULF2))
	})

	It("should name the reserved LMUL code", func() {
		vt := insts.DecodeVType(4)
		Expect(vt.Illegal).To(BeFalse())
		Expect(vt.String()).To(Equal("e8, reserved, tu, mu"))
	})

	It("should report reserved high bits as illegal", func() {
		vt := insts.DecodeVType(0x100)

		Expect(vt.Illegal).To(BeTrue())
		Expect(vt.String()).To(Equal(insts.Illegal))
	})

	It("should report a reserved vsew code as illegal", func() {
		Expect(insts.DecodeVType(0x020).Illegal).To(BeTrue())
	})

	It("should not report subfields when illegal", func() {
		vt := insts.DecodeVType(0x7FF)

		Expect(vt.Illegal).To(BeTrue())
		Expect(vt.SEW).To(BeZero())
		Expect(vt.TailAgnostic).To(BeFalse())
		Expect(vt.MaskAgnostic).To(BeFalse())
	})
})
