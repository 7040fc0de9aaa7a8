package insts

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// Decode result sentinels. Disassemble is total over the 32-bit space:
// unassigned encodings come back as Unknown, reserved configuration
// encodings as Illegal.
const (
	Unknown = "UNKNOWN"
	Illegal = "ILLEGAL"
)

// Decoder disassembles RVV instruction words. The zero value is usable; all
// lookup tables are package-level and immutable, so a single Decoder is safe
// for concurrent use.
type Decoder struct {
	log logrus.FieldLogger
}

// DecoderOption configures a Decoder.
type DecoderOption func(*Decoder)

// WithLogger attaches a diagnostic logger. The decoder traces extracted
// fields and routing decisions at debug level; without a logger it stays
// silent.
func WithLogger(log logrus.FieldLogger) DecoderOption {
	return func(d *Decoder) {
		d.log = log
	}
}

// NewDecoder creates an RVV instruction decoder.
func NewDecoder(opts ...DecoderOption) *Decoder {
	d := &Decoder{}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Disassemble decodes one 32-bit instruction word into assembly text.
func (d *Decoder) Disassemble(word uint32) string {
	f := ExtractFields(word)

	var result string
	switch f.Opcode {
	case OpcodeLoadFP, OpcodeStoreFP:
		result = formatLoadStore(word, f)
	case OpcodeVector:
		cat := CategoryOf(f.Funct3)
		if cat == CatCfg {
			result = d.formatConfig(word, f)
		} else {
			result = d.formatOpV(cat, f)
		}
	default:
		result = Unknown
	}

	d.trace(word, f, result)
	return result
}

func (d *Decoder) formatOpV(cat OperandCategory, f FieldSet) string {
	entry, ok := LookupMnemonic(cat, f)
	if !ok {
		return Unknown
	}
	return formatArith(cat, entry, f)
}

// formatConfig renders the vsetvli/vsetivli/vsetvl family. A reserved vtype
// renders the bare Illegal token with no other subfield reported.
func (d *Decoder) formatConfig(word uint32, f FieldSet) string {
	switch {
	case word>>31 == 0:
		// vsetvli: zimm[10:0] in bits [30:20].
		vt := DecodeVType((word >> 20) & 0x7FF)
		if vt.Illegal {
			return Illegal
		}
		return fmt.Sprintf("vsetvli x%d, x%d, %s", f.VD, f.VS1, vt)

	case word>>30 == 0b11:
		// vsetivli: zimm[9:0] in bits [29:20], uimm in the rs1 slot.
		vt := DecodeVType((word >> 20) & 0x3FF)
		if vt.Illegal {
			return Illegal
		}
		return fmt.Sprintf("vsetivli x%d, %d, %s", f.VD, f.VS1, vt)

	case f.Funct6 == 0b100000 && f.VM == 0:
		// vsetvl: funct7 = 1000000, rs2 in the vs2 slot.
		return fmt.Sprintf("vsetvl x%d, x%d, x%d", f.VD, f.VS1, f.VS2)
	}

	return Unknown
}

func (d *Decoder) trace(word uint32, f FieldSet, result string) {
	if d.log == nil {
		return
	}
	d.log.WithFields(logrus.Fields{
		"word":   fmt.Sprintf("0x%08X", word),
		"opcode": fmt.Sprintf("0x%02X", f.Opcode),
		"funct3": f.Funct3,
		"funct6": fmt.Sprintf("0b%06b", f.Funct6),
		"vm":     f.VM,
		"result": result,
	}).Debug("decoded instruction word")
}
