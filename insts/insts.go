package insts

// Op represents an RV32 operation.
type Op uint16

// RV32 operations recognized by the decoder.
const (
	OpUnknown Op = iota
	OpAUIPC
	OpADD
	OpADDI
)

var opNames = map[Op]string{
	OpAUIPC: "auipc",
	OpADD:   "add",
	OpADDI:  "addi",
}

// String returns the assembler mnemonic of the operation.
func (op Op) String() string {
	if name, ok := opNames[op]; ok {
		return name
	}
	return "unknown"
}

// Format represents an instruction encoding format.
type Format uint8

// Instruction formats.
const (
	FormatUnknown Format = iota
	FormatR              // funct7 | rs2 | rs1 | funct3 | rd | opcode
	FormatI              // imm[11:0] | rs1 | funct3 | rd | opcode
	FormatS              // imm[11:5] | rs2 | rs1 | funct3 | imm[4:0] | opcode
	FormatU              // imm[31:12] | rd | opcode
)

// String returns the one-letter name of the format.
func (f Format) String() string {
	switch f {
	case FormatR:
		return "R"
	case FormatI:
		return "I"
	case FormatS:
		return "S"
	case FormatU:
		return "U"
	default:
		return "?"
	}
}

// Major opcodes, bits [6:0].
const (
	OpcodeOpImm uint32 = 0b0010011
	OpcodeAUIPC uint32 = 0b0010111
	OpcodeOp    uint32 = 0b0110011
)

// Encoding describes how one operation is laid out in a word.
type Encoding struct {
	Op      Op
	Format  Format
	Pattern string
}

// Name returns the mnemonic of the encoded operation.
func (e Encoding) Name() string {
	return e.Op.String()
}

// Bit patterns of the in-scope instruction set. Fields are grouped
// 7/5/5/3/5/5+2 to mirror the R-type layout.
const (
	PatternAUIPC = "??????? ????? ????? ??? ????? 00101 11"
	PatternADD   = "0000000 ????? ????? 000 ????? 01100 11"
	PatternADDI  = "??????? ????? ????? 000 ????? 00100 11"
)

var encodings = []Encoding{
	{Op: OpAUIPC, Format: FormatU, Pattern: PatternAUIPC},
	{Op: OpADD, Format: FormatR, Pattern: PatternADD},
	{Op: OpADDI, Format: FormatI, Pattern: PatternADDI},
}

// Encodings returns the in-scope encodings in dispatch order.
func Encodings() []Encoding {
	out := make([]Encoding, len(encodings))
	copy(out, encodings)
	return out
}

// Instruction represents a decoded instruction.
type Instruction struct {
	Op     Op     // Operation
	Format Format // Encoding format
	Word   Word   // Raw word

	Rd  int    // Destination register
	Rs1 int    // First source register
	Rs2 int    // Second source register (R-type)
	Imm uint32 // Immediate field as extracted (ImmI or ImmU)
}
