package insts

// OperandCategory identifies which RVV operand class the funct3 field
// selects for an OP-V instruction.
type OperandCategory uint8

// Operand categories, in funct3 order.
const (
	CatIVV OperandCategory = iota // OPIVV: vector-vector integer
	CatFVV                        // OPFVV: vector-vector floating-point
	CatMVV                        // OPMVV: vector-vector mask/multiply family
	CatIVI                        // OPIVI: vector-immediate integer
	CatIVX                        // OPIVX: vector-scalar integer
	CatFVF                        // OPFVF: vector-scalar floating-point
	CatMVX                        // OPMVX: vector-scalar mask/multiply family
	CatCfg                        // OPCFG: configuration (vsetvli family)
)

var categoryNames = [8]string{
	"OPIVV", "OPFVV", "OPMVV", "OPIVI", "OPIVX", "OPFVF", "OPMVX", "OPCFG",
}

func (c OperandCategory) String() string {
	if int(c) < len(categoryNames) {
		return categoryNames[c]
	}
	return "OP???"
}

// CategoryOf maps funct3 to its operand category. The mapping is total over
// the 3-bit space.
func CategoryOf(funct3 uint8) OperandCategory {
	return OperandCategory(funct3 & 0x7)
}
