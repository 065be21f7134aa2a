package insts

import "fmt"

type compiledEncoding struct {
	Encoding
	pattern Pattern
}

// Decoder classifies words against the in-scope encodings.
// The first matching encoding wins.
type Decoder struct {
	encodings []compiledEncoding
}

// NewDecoder creates a decoder for the in-scope encodings.
func NewDecoder() *Decoder {
	d := &Decoder{}
	for _, e := range encodings {
		d.encodings = append(d.encodings, compiledEncoding{
			Encoding: e,
			pattern:  MustCompilePattern(e.Pattern),
		})
	}
	return d
}

// Decode decodes a 32-bit instruction word. Unrecognized words decode to
// an Instruction with Op set to OpUnknown.
func (d *Decoder) Decode(word uint32) *Instruction {
	inst := &Instruction{Op: OpUnknown, Format: FormatUnknown, Word: Word(word)}

	for _, e := range d.encodings {
		if !e.pattern.Match(word) {
			continue
		}

		inst.Op = e.Op
		inst.Format = e.Format
		d.decodeFields(inst)
		break
	}

	return inst
}

func (d *Decoder) decodeFields(inst *Instruction) {
	w := inst.Word

	switch inst.Format {
	case FormatR:
		inst.Rd = w.Rd()
		inst.Rs1 = w.Src1()
		inst.Rs2 = w.Src2()
	case FormatI:
		inst.Rd = w.Rd()
		inst.Rs1 = w.Src1()
		inst.Imm = w.ImmI()
	case FormatS:
		inst.Rs1 = w.Src1()
		inst.Rs2 = w.Src2()
		inst.Imm = w.Funct7()<<5 | w.ImmS()
	case FormatU:
		inst.Rd = w.Rd()
		inst.Imm = w.ImmU()
	}
}

// String disassembles the instruction, e.g. "addi x1, x0, 4".
func (inst *Instruction) String() string {
	switch inst.Format {
	case FormatR:
		return fmt.Sprintf("%v x%d, x%d, x%d", inst.Op, inst.Rd, inst.Rs1, inst.Rs2)
	case FormatI:
		return fmt.Sprintf("%v x%d, x%d, %d", inst.Op, inst.Rd, inst.Rs1, inst.Imm)
	case FormatU:
		return fmt.Sprintf("%v x%d, 0x%x", inst.Op, inst.Rd, inst.Imm)
	default:
		return fmt.Sprintf("unknown %v", inst.Word)
	}
}
