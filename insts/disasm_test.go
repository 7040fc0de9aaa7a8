package insts_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/rvvdasm/insts"
)

var _ = Describe("Disassemble", func() {
	var decoder *insts.Decoder

	BeforeEach(func() {
		decoder = insts.NewDecoder()
	})

	Describe("integer arithmetic", func() {
		// vadd.vv v1, v2, v3
		// Encoding: funct6=000000, vm=1, vs2=2, vs1=3, funct3=000, vd=1
		It("should decode vadd.vv", func() {
			Expect(decoder.Disassemble(0x022180D7)).To(Equal("vadd.vv v1, v2, v3"))
		})

		// Same word with vm=0
		It("should differ from the unmasked form only in the mask qualifier", func() {
			unmasked := decoder.Disassemble(0x022180D7)
			masked := decoder.Disassemble(0x002180D7)
			Expect(masked).To(Equal(unmasked + ", v0.t"))
		})

		// vadd.vi v1, v2, -1 -> funct3=011, imm5=0b11111
		It("should sign-extend the vector immediate", func() {
			Expect(decoder.Disassemble(0x022FB0D7)).To(Equal("vadd.vi v1, v2, -1"))
		})

		// vadd.vi v1, v2, 15 -> imm5=0b01111
		It("should keep a positive immediate as-is", func() {
			Expect(decoder.Disassemble(0x0227B0D7)).To(Equal("vadd.vi v1, v2, 15"))
		})

		// vnclip.wv v6, v4, v5 -> funct6=101111, funct3=000
		It("should spell narrowing clips with the wide suffix", func() {
			Expect(decoder.Disassemble(0xBE428357)).To(Equal("vnclip.wv v6, v4, v5"))
			Expect(decoder.Disassemble(0xBC428357)).To(Equal("vnclip.wv v6, v4, v5, v0.t"))
		})

		// vredsum.vs v1, v2, v3 -> OPMVV funct6=000000
		It("should force the reduction suffix", func() {
			Expect(decoder.Disassemble(0x0221A0D7)).To(Equal("vredsum.vs v1, v2, v3"))
		})

		// vmand.mm v1, v2, v3 -> OPMVV funct6=011001
		It("should force the mask-logical suffix", func() {
			Expect(decoder.Disassemble(0x6621A0D7)).To(Equal("vmand.mm v1, v2, v3"))
		})

		// vcompress.vm v1, v2, v3 -> OPMVV funct6=010111
		It("should force the compress suffix", func() {
			Expect(decoder.Disassemble(0x5E21A0D7)).To(Equal("vcompress.vm v1, v2, v3"))
		})

		// vwaddu.wv v1, v2, v3 -> OPMVV funct6=110100
		It("should spell the wide-operand add variants with .w", func() {
			Expect(decoder.Disassemble(0xD221A0D7)).To(Equal("vwaddu.wv v1, v2, v3"))
		})
	})

	Describe("carry and merge forms", func() {
		// vadc.vvm v1, v2, v3, v0 -> funct6=010000, vm=0
		It("should decode the carry form with the v0 operand", func() {
			Expect(decoder.Disassemble(0x402180D7)).To(Equal("vadc.vvm v1, v2, v3, v0"))
		})

		// vmadc.vv v1, v2, v3 -> funct6=010001, vm=1
		It("should drop the m when the carry-out form is unmasked", func() {
			Expect(decoder.Disassemble(0x462180D7)).To(Equal("vmadc.vv v1, v2, v3"))
		})

		// vmerge.vvm v1, v2, v3, v0 -> funct6=010111, vm=0
		It("should decode vmerge when masked", func() {
			Expect(decoder.Disassemble(0x5C2180D7)).To(Equal("vmerge.vvm v1, v2, v3, v0"))
		})

		// vmv.v.v v1, v3 -> same funct6, vm=1
		It("should decode the whole-vector move when unmasked", func() {
			Expect(decoder.Disassemble(0x5E0180D7)).To(Equal("vmv.v.v v1, v3"))
		})

		// vmv.v.x v0, x29
		It("should decode vmv.v.x", func() {
			Expect(decoder.Disassemble(0x5E0EC057)).To(Equal("vmv.v.x v0, x29"))
		})
	})

	Describe("unary families", func() {
		// vcpop.m x5, v3 -> OPMVV funct6=010000, vs1=10000
		It("should decode vcpop.m as a scalar extract", func() {
			Expect(decoder.Disassemble(0x423822D7)).To(Equal("vcpop.m x5, v3"))
		})

		// vmv.x.s x5, v3 -> vs1=00000
		It("should decode vmv.x.s", func() {
			Expect(decoder.Disassemble(0x423022D7)).To(Equal("vmv.x.s x5, v3"))
		})

		// vmv.s.x v1, x2 -> OPMVX funct6=010000, vs2=0
		It("should decode vmv.s.x as a scalar insert", func() {
			Expect(decoder.Disassemble(0x420160D7)).To(Equal("vmv.s.x v1, x2"))
		})

		// vzext.vf2 v1, v2 -> OPMVV funct6=010010, vs1=00110
		It("should decode the extension family", func() {
			Expect(decoder.Disassemble(0x4A2320D7)).To(Equal("vzext.vf2 v1, v2"))
		})

		// vid.v v4 -> OPMVV funct6=010100, vs1=10001
		It("should decode vid.v with no source operand", func() {
			Expect(decoder.Disassemble(0x5208A257)).To(Equal("vid.v v4"))
		})

		// vfsqrt.v v1, v2 -> OPFVV funct6=010011, vs1=00000
		It("should decode the float unary family", func() {
			Expect(decoder.Disassemble(0x4E2010D7)).To(Equal("vfsqrt.v v1, v2"))
		})

		// vfmv.f.s f1, v2 / vfmv.s.f v1, f2
		It("should use float registers for the float scalar moves", func() {
			Expect(decoder.Disassemble(0x422010D7)).To(Equal("vfmv.f.s f1, v2"))
			Expect(decoder.Disassemble(0x420150D7)).To(Equal("vfmv.s.f v1, f2"))
		})
	})

	Describe("floating-point arithmetic", func() {
		// vfadd.vf v1, v2, f3 -> OPFVF funct6=000000
		It("should decode vfadd.vf with a float scalar", func() {
			Expect(decoder.Disassemble(0x0221D0D7)).To(Equal("vfadd.vf v1, v2, f3"))
		})
	})

	Describe("whole-register moves", func() {
		// vmv2r.v v2, v4 -> OPIVI funct6=100111, imm5=1
		It("should decode vmv2r.v", func() {
			Expect(decoder.Disassemble(0x9E40B157)).To(Equal("vmv2r.v v2, v4"))
		})

		// imm5=2 would be a 3-register group
		It("should reject a group size that is not 1/2/4/8", func() {
			Expect(decoder.Disassemble(0x9E413157)).To(Equal(insts.Unknown))
		})
	})

	Describe("configuration instructions", func() {
		// vsetvli x1, x2, e32, m1, ta, ma -> zimm=0x0D0
		It("should decode vsetvli with the vtype spelled out", func() {
			Expect(decoder.Disassemble(0x0D0170D7)).To(Equal("vsetvli x1, x2, e32, m1, ta, ma"))
		})

		// Same with a reserved zimm bit set
		It("should render a reserved vtype as ILLEGAL alone", func() {
			Expect(decoder.Disassemble(0x4D0170D7)).To(Equal(insts.Illegal))
		})

		// vsetivli x1, 5, e8, m2, ta, ma -> bits 31:30 = 11, zimm=0x0C1
		It("should decode vsetivli", func() {
			Expect(decoder.Disassemble(0xCC12F0D7)).To(Equal("vsetivli x1, 5, e8, m2, ta, ma"))
		})

		// vsetvl x1, x2, x3 -> funct7=1000000
		It("should decode vsetvl", func() {
			Expect(decoder.Disassemble(0x803170D7)).To(Equal("vsetvl x1, x2, x3"))
		})

		// funct7=1010000 matches none of the three forms
		It("should report other configuration shapes as unknown", func() {
			Expect(decoder.Disassemble(0xA00170D7)).To(Equal(insts.Unknown))
		})
	})

	Describe("unknown encodings", func() {
		It("should reject opcodes outside the vector set", func() {
			Expect(decoder.Disassemble(0x00000000)).To(Equal(insts.Unknown))
			Expect(decoder.Disassemble(0x00000013)).To(Equal(insts.Unknown)) // scalar addi
		})

		// OPIVV funct6=000001 is unassigned
		It("should report unassigned funct6 values as unknown", func() {
			Expect(decoder.Disassemble(0x062180D7)).To(Equal(insts.Unknown))
		})
	})

	Describe("totality", func() {
		It("should return a string for every sampled word", func() {
			word := uint32(0x9E3779B9)
			for i := 0; i < 10000; i++ {
				Expect(decoder.Disassemble(word)).ToNot(BeEmpty())
				word = word*1664525 + 1013904223
			}
		})
	})
})
