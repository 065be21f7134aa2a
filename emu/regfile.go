// Package emu provides functional RV32 emulation.
package emu

import (
	"fmt"

	"github.com/davecgh/go-spew/spew"
)

// NumRegs is the number of general-purpose registers.
const NumRegs = 32

// RegFile represents the CPU state: 32 general-purpose registers and the
// program counter. The zero value is a reset machine.
type RegFile struct {
	// PC is the program counter.
	PC uint32

	// X holds general-purpose registers x0-x31.
	// x0 is an ordinary register and keeps whatever is written to it.
	X [NumRegs]uint32
}

// ReadPC returns the program counter.
func (r *RegFile) ReadPC() uint32 {
	return r.PC
}

// ReadReg reads a register value. It panics if idx is not in 0-31.
func (r *RegFile) ReadReg(idx int) uint32 {
	checkRegIndex(idx)
	return r.X[idx]
}

// WriteReg writes a register value. It panics if idx is not in 0-31.
func (r *RegFile) WriteReg(idx int, value uint32) {
	checkRegIndex(idx)
	r.X[idx] = value
}

// Dump renders the register file for debugging.
func (r *RegFile) Dump() string {
	cfg := spew.ConfigState{Indent: "  ", DisablePointerAddresses: true}
	return cfg.Sdump(r)
}

func checkRegIndex(idx int) {
	if idx < 0 || idx >= NumRegs {
		panic(fmt.Sprintf("emu: register index %d out of range", idx))
	}
}
