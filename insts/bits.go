package insts

import "fmt"

// WordBits is the width of an instruction word.
const WordBits = 32

// Bits returns bits start..end (inclusive) of word, shifted down to bit 0.
// Bit 0 is the least significant bit. It panics unless start <= end <= 31.
func Bits(word uint32, start, end uint) uint32 {
	if start > end || end >= WordBits {
		panic(fmt.Sprintf("insts: invalid bit range [%d:%d]", end, start))
	}

	// Build the mask in 64 bits so a full 32-bit field does not overflow.
	mask := uint64(1)<<(end-start+1) - 1
	return uint32((uint64(word) >> start) & mask)
}

// Word is a raw 32-bit instruction word.
type Word uint32

// Bits returns bits start..end (inclusive) of the word.
func (w Word) Bits(start, end uint) uint32 {
	return Bits(uint32(w), start, end)
}

// Opcode returns bits [6:0].
func (w Word) Opcode() uint32 {
	return w.Bits(0, 6)
}

// Rd returns the destination register index, bits [11:7].
func (w Word) Rd() int {
	return int(w.Bits(7, 11))
}

// Funct3 returns bits [14:12].
func (w Word) Funct3() uint32 {
	return w.Bits(12, 14)
}

// Src1 returns the first source register index, bits [19:15].
func (w Word) Src1() int {
	return int(w.Bits(15, 19))
}

// Src2 returns the second source register index, bits [24:20].
func (w Word) Src2() int {
	return int(w.Bits(20, 24))
}

// Funct7 returns bits [31:25].
func (w Word) Funct7() uint32 {
	return w.Bits(25, 31)
}

// ImmI returns the I-type immediate, bits [31:20]. The field is
// zero-extended, not sign-extended.
func (w Word) ImmI() uint32 {
	return w.Bits(20, 31)
}

// ImmU returns the raw 20-bit U-type immediate field, bits [31:12].
func (w Word) ImmU() uint32 {
	return w.Bits(12, 31)
}

// ImmS returns bits [11:7], the low half of an S-type immediate.
// It shares its bit range with Rd.
func (w Word) ImmS() uint32 {
	return w.Bits(7, 11)
}

// String renders the word as 8 hex digits.
func (w Word) String() string {
	return fmt.Sprintf("%08x", uint32(w))
}

// Binary renders the word as 32 binary digits, most significant bit first.
func (w Word) Binary() string {
	return fmt.Sprintf("%032b", uint32(w))
}
