// Package insts provides RV32 instruction word definitions and decoding.
//
// This package implements the bit-level side of the decode engine:
//   - Bitfield extraction and named operand accessors (Bits, Word)
//   - Textual bit patterns over {0,1,?} and their compiled mask form
//   - The in-scope encodings: AUIPC (U-type), ADD (R-type), ADDI (I-type)
//
// Usage:
//
//	decoder := insts.NewDecoder()
//	inst := decoder.Decode(0x00400093) // addi x1, x0, 4
//	fmt.Printf("Op: %v, Rd: %d, Rs1: %d, Imm: %d\n", inst.Op, inst.Rd, inst.Rs1, inst.Imm)
package insts
