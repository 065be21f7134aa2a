package emu

import (
	"encoding/binary"

	"github.com/sarchlab/akita/v4/mem/mem"
)

// AddressSpaceSize is the size of the flat 32-bit address space.
const AddressSpaceSize uint64 = 1 << 32

// Memory is a flat, byte-addressable store over the 32-bit address space.
// Storage is allocated lazily by the akita backing store; Size reports how
// far the store has grown. Bytes never written read as zero.
type Memory struct {
	storage *mem.Storage
	size    uint64
}

// NewMemory creates an empty memory.
func NewMemory() *Memory {
	return &Memory{storage: mem.NewStorage(AddressSpaceSize)}
}

// Size returns one past the highest address written so far.
func (m *Memory) Size() uint64 {
	return m.size
}

func checkRange(addr uint32, n uint64) error {
	if uint64(addr)+n > AddressSpaceSize {
		return &AddressError{Addr: addr, Len: n}
	}
	return nil
}

// ReadBytes reads n bytes starting at addr.
func (m *Memory) ReadBytes(addr uint32, n uint64) ([]byte, error) {
	if err := checkRange(addr, n); err != nil {
		return nil, err
	}
	if n == 0 {
		return []byte{}, nil
	}
	return m.storage.Read(uint64(addr), n)
}

// WriteBytes stores data starting at addr and grows the memory to cover it.
func (m *Memory) WriteBytes(addr uint32, data []byte) error {
	n := uint64(len(data))
	if err := checkRange(addr, n); err != nil {
		return err
	}
	if n == 0 {
		return nil
	}
	if err := m.storage.Write(uint64(addr), data); err != nil {
		return err
	}
	if end := uint64(addr) + n; end > m.size {
		m.size = end
	}
	return nil
}

// LoadProgram copies program bytes into memory at addr.
func (m *Memory) LoadProgram(addr uint32, program []byte) error {
	return m.WriteBytes(addr, program)
}

// Read8 reads a byte.
func (m *Memory) Read8(addr uint32) (uint8, error) {
	b, err := m.ReadBytes(addr, 1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

// Read16 reads a little-endian halfword.
func (m *Memory) Read16(addr uint32) (uint16, error) {
	b, err := m.ReadBytes(addr, 2)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(b), nil
}

// Read32 reads a little-endian word.
func (m *Memory) Read32(addr uint32) (uint32, error) {
	b, err := m.ReadBytes(addr, 4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

// Write8 writes a byte.
func (m *Memory) Write8(addr uint32, value uint8) error {
	return m.WriteBytes(addr, []byte{value})
}

// Write16 writes a little-endian halfword.
func (m *Memory) Write16(addr uint32, value uint16) error {
	return m.WriteBytes(addr, binary.LittleEndian.AppendUint16(nil, value))
}

// Write32 writes a little-endian word.
func (m *Memory) Write32(addr uint32, value uint32) error {
	return m.WriteBytes(addr, binary.LittleEndian.AppendUint32(nil, value))
}
