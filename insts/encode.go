package insts

// EncodeR builds an R-type word.
func EncodeR(opcode, funct3, funct7 uint32, rd, rs1, rs2 int) uint32 {
	return (funct7&0x7F)<<25 |
		(uint32(rs2)&0x1F)<<20 |
		(uint32(rs1)&0x1F)<<15 |
		(funct3&0x7)<<12 |
		(uint32(rd)&0x1F)<<7 |
		opcode&0x7F
}

// EncodeI builds an I-type word. Only the low 12 bits of imm are used.
func EncodeI(opcode, funct3 uint32, rd, rs1 int, imm uint32) uint32 {
	return (imm&0xFFF)<<20 |
		(uint32(rs1)&0x1F)<<15 |
		(funct3&0x7)<<12 |
		(uint32(rd)&0x1F)<<7 |
		opcode&0x7F
}

// EncodeU builds a U-type word from the raw 20-bit immediate field.
func EncodeU(opcode uint32, rd int, imm uint32) uint32 {
	return (imm&0xFFFFF)<<12 |
		(uint32(rd)&0x1F)<<7 |
		opcode&0x7F
}

// EncodeADD encodes add rd, rs1, rs2.
func EncodeADD(rd, rs1, rs2 int) uint32 {
	return EncodeR(OpcodeOp, 0, 0, rd, rs1, rs2)
}

// EncodeADDI encodes addi rd, rs1, imm.
func EncodeADDI(rd, rs1 int, imm uint32) uint32 {
	return EncodeI(OpcodeOpImm, 0, rd, rs1, imm)
}

// EncodeAUIPC encodes auipc rd, imm.
func EncodeAUIPC(rd int, imm uint32) uint32 {
	return EncodeU(OpcodeAUIPC, rd, imm)
}
