package emu

import (
	"errors"
	"fmt"

	"github.com/sarchlab/rv32sim/insts"
)

var (
	// ErrUnrecognizedInstruction matches any UnrecognizedInstructionError.
	ErrUnrecognizedInstruction = errors.New("unrecognized instruction")

	// ErrMaxInstructions is returned once the instruction limit is reached.
	ErrMaxInstructions = errors.New("max instructions reached")

	// ErrAddressOutOfRange matches any AddressError.
	ErrAddressOutOfRange = errors.New("address out of range")

	// ErrNilAction is returned when a table entry has no action.
	ErrNilAction = errors.New("nil action")
)

// UnrecognizedInstructionError reports a word that no table entry matched.
type UnrecognizedInstructionError struct {
	Word insts.Word
}

func (e *UnrecognizedInstructionError) Error() string {
	return fmt.Sprintf("%v %v", ErrUnrecognizedInstruction, e.Word)
}

// Is lets errors.Is match ErrUnrecognizedInstruction.
func (e *UnrecognizedInstructionError) Is(target error) bool {
	return target == ErrUnrecognizedInstruction
}

// AddressError reports a memory access past the end of the address space.
type AddressError struct {
	Addr uint32
	Len  uint64
}

func (e *AddressError) Error() string {
	return fmt.Sprintf("%v: %d bytes at 0x%08x", ErrAddressOutOfRange, e.Len, e.Addr)
}

// Is lets errors.Is match ErrAddressOutOfRange.
func (e *AddressError) Is(target error) bool {
	return target == ErrAddressOutOfRange
}
