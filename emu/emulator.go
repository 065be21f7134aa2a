package emu

import (
	"fmt"
	"io"

	"github.com/sarchlab/rv32sim/insts"
)

// InstructionSize is the width of an instruction in bytes. The program
// counter advances by this much on every decode.
const InstructionSize = 4

// StepResult represents the result of executing a single instruction.
type StepResult struct {
	// Name is the table entry that executed, empty if none matched.
	Name string

	// Err is set if the word could not be executed.
	Err error
}

// Emulator decodes instruction words against a dispatch table and executes
// them on its register file and memory. It is not safe for concurrent use;
// run one Emulator per goroutine and share only the Table.
type Emulator struct {
	regFile *RegFile
	memory  *Memory
	table   *Table
	decoder *insts.Decoder

	// trace receives one line per executed instruction when set.
	trace io.Writer

	// Execution state
	instructionCount uint64
	maxInstructions  uint64 // 0 means no limit
}

// EmulatorOption is a functional option for configuring the Emulator.
type EmulatorOption func(*Emulator)

// WithTable sets the dispatch table. A nil table selects DefaultTable().
func WithTable(t *Table) EmulatorOption {
	return func(e *Emulator) {
		if t == nil {
			t = DefaultTable()
		}
		e.table = t
	}
}

// WithRegFile uses an existing register file instead of a zeroed one.
func WithRegFile(r *RegFile) EmulatorOption {
	return func(e *Emulator) {
		e.regFile = r
	}
}

// WithMemory uses an existing memory instead of an empty one.
func WithMemory(m *Memory) EmulatorOption {
	return func(e *Emulator) {
		e.memory = m
	}
}

// WithTrace writes a line per executed instruction to w.
func WithTrace(w io.Writer) EmulatorOption {
	return func(e *Emulator) {
		e.trace = w
	}
}

// WithMaxInstructions sets the maximum number of instructions Step and
// Execute will run. DecodeAndExecute is not limited. A value of 0 means no
// limit.
func WithMaxInstructions(max uint64) EmulatorOption {
	return func(e *Emulator) {
		e.maxInstructions = max
	}
}

// NewEmulator creates an emulator with all registers and the PC at zero.
func NewEmulator(opts ...EmulatorOption) *Emulator {
	e := &Emulator{
		regFile: &RegFile{},
		memory:  NewMemory(),
		table:   DefaultTable(),
		decoder: insts.NewDecoder(),
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// RegFile returns the emulator's register file.
func (e *Emulator) RegFile() *RegFile {
	return e.regFile
}

// Memory returns the emulator's memory.
func (e *Emulator) Memory() *Memory {
	return e.memory
}

// Table returns the dispatch table.
func (e *Emulator) Table() *Table {
	return e.table
}

// PC returns the program counter.
func (e *Emulator) PC() uint32 {
	return e.regFile.PC
}

// Reg returns register idx. It panics if idx is not in 0-31.
func (e *Emulator) Reg(idx int) uint32 {
	return e.regFile.ReadReg(idx)
}

// InstructionCount returns the number of instructions executed
// successfully, whether through DecodeAndExecute, Step or Execute.
func (e *Emulator) InstructionCount() uint64 {
	return e.instructionCount
}

// Reset zeroes the register file, replaces the memory and clears the
// instruction count. The table is kept.
func (e *Emulator) Reset() {
	e.regFile = &RegFile{}
	e.memory = NewMemory()
	e.instructionCount = 0
}

// DecodeAndExecute decodes one word and runs it. The PC is advanced by
// InstructionSize before the table is searched, so it moves even when the
// word is not recognized. Unmatched words return an
// *UnrecognizedInstructionError and leave registers and memory untouched.
func (e *Emulator) DecodeAndExecute(word uint32) error {
	_, err := e.decodeAndExecute(word)
	return err
}

func (e *Emulator) decodeAndExecute(word uint32) (string, error) {
	pc := e.regFile.PC
	e.regFile.PC += InstructionSize

	entry, ok := e.table.Lookup(word)
	if !ok {
		e.traceFault(pc, word)
		return "", &UnrecognizedInstructionError{Word: insts.Word(word)}
	}

	entry.Action(e.regFile, e.memory, insts.Word(word))
	e.instructionCount++
	e.traceExec(pc, word, entry.Name)

	return entry.Name, nil
}

// Step executes a single word and counts it.
func (e *Emulator) Step(word uint32) StepResult {
	// Check instruction limit before executing
	if e.maxInstructions > 0 && e.instructionCount >= e.maxInstructions {
		return StepResult{Err: ErrMaxInstructions}
	}

	name, err := e.decodeAndExecute(word)
	if err != nil {
		return StepResult{Err: err}
	}

	return StepResult{Name: name}
}

// Execute steps through words in order until one fails. It returns the
// number of words executed successfully.
func (e *Emulator) Execute(words []uint32) (int, error) {
	for i, w := range words {
		pc := e.regFile.PC
		result := e.Step(w)
		if result.Err != nil {
			return i, fmt.Errorf("word %d at PC=0x%08X: %w", i, pc, result.Err)
		}
	}
	return len(words), nil
}

func (e *Emulator) traceExec(pc, word uint32, name string) {
	if e.trace == nil {
		return
	}

	text := name
	if inst := e.decoder.Decode(word); inst.Op.String() == name {
		text = inst.String()
	}
	_, _ = fmt.Fprintf(e.trace, "%08x: %08x  %s\n", pc, word, text)
}

func (e *Emulator) traceFault(pc, word uint32) {
	if e.trace == nil {
		return
	}
	_, _ = fmt.Fprintf(e.trace, "%08x: %08x  <unrecognized>\n", pc, word)
}
