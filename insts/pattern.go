package insts

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// Pattern errors.
var (
	// ErrPatternLength is returned when a pattern does not have exactly
	// 32 bit positions once whitespace is removed.
	ErrPatternLength = errors.New("pattern must have 32 bit positions")

	// ErrPatternChar is returned when a pattern contains a character other
	// than '0', '1', '?' or whitespace.
	ErrPatternChar = errors.New("pattern character must be 0, 1 or ?")
)

// Pattern is a bit pattern compiled into a mask and the value the masked
// bits must equal. Wildcard positions are clear in Mask.
type Pattern struct {
	Mask  uint32
	Value uint32
	Text  string
}

// CleanPattern removes layout whitespace from a textual pattern.
func CleanPattern(pattern string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, pattern)
}

// CompilePattern parses a 32-position template over {0,1,?}, most
// significant bit first. Whitespace is ignored.
func CompilePattern(pattern string) (Pattern, error) {
	clean := CleanPattern(pattern)
	if len(clean) != WordBits {
		return Pattern{}, fmt.Errorf("%w: %q has %d", ErrPatternLength, pattern, len(clean))
	}

	p := Pattern{Text: pattern}
	for i := 0; i < WordBits; i++ {
		bit := uint32(1) << (WordBits - 1 - i)
		switch clean[i] {
		case '0':
			p.Mask |= bit
		case '1':
			p.Mask |= bit
			p.Value |= bit
		case '?':
		default:
			return Pattern{}, fmt.Errorf("%w: %q at position %d", ErrPatternChar, clean[i], i)
		}
	}

	return p, nil
}

// MustCompilePattern is like CompilePattern but panics on error.
func MustCompilePattern(pattern string) Pattern {
	p, err := CompilePattern(pattern)
	if err != nil {
		panic(err)
	}
	return p
}

// Match reports whether word agrees with every fixed bit of the pattern.
func (p Pattern) Match(word uint32) bool {
	return word&p.Mask == p.Value
}

// String returns the pattern text as written.
func (p Pattern) String() string {
	return p.Text
}

// Matches compares word, rendered MSB first, against a textual pattern
// character by character. A malformed pattern never matches.
func Matches(word uint32, pattern string) bool {
	clean := CleanPattern(pattern)
	bits := Word(word).Binary()
	if len(clean) != len(bits) {
		return false
	}

	for i := range bits {
		switch clean[i] {
		case '?':
		case '0', '1':
			if clean[i] != bits[i] {
				return false
			}
		default:
			return false
		}
	}

	return true
}
