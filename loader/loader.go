// Package loader reads instruction-word listings for the RV32 emulator.
package loader

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Program is a sequence of instruction words to be fed to the emulator
// one at a time.
type Program struct {
	// Words holds the instruction words in execution order.
	Words []uint32

	// Origin is the address of the first word. Listings set it with an
	// "@address" directive; it defaults to 0.
	Origin uint32
}

// Load reads a listing from path. Files ending in ".bin" are read as raw
// little-endian words; everything else is parsed as a hex listing.
func Load(path string) (*Program, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read program file: %w", err)
	}

	if strings.EqualFold(filepath.Ext(path), ".bin") {
		return ParseBinary(data)
	}
	return ParseHex(bytes.NewReader(data))
}

// ParseBinary splits data into little-endian 32-bit words.
func ParseBinary(data []byte) (*Program, error) {
	if len(data)%4 != 0 {
		return nil, fmt.Errorf("binary program length %d is not a multiple of 4", len(data))
	}

	prog := &Program{Words: make([]uint32, 0, len(data)/4)}
	for i := 0; i < len(data); i += 4 {
		prog.Words = append(prog.Words, binary.LittleEndian.Uint32(data[i:]))
	}
	return prog, nil
}

// ParseHex parses a text listing of hex words. A line may hold several
// whitespace-separated words, each with an optional 0x prefix. Text after
// '#' or "//" is a comment. A single "@address" directive (hex, 4-byte
// aligned) may appear before the first word to set the program origin.
func ParseHex(r io.Reader) (*Program, error) {
	prog := &Program{}
	scanner := bufio.NewScanner(r)

	lineNo := 0
	seenOrigin := false
	for scanner.Scan() {
		lineNo++
		line := stripComment(scanner.Text())

		for _, field := range strings.Fields(line) {
			if addr, ok := strings.CutPrefix(field, "@"); ok {
				if seenOrigin || len(prog.Words) > 0 {
					return nil, fmt.Errorf("line %d: origin must be set once, before the first word", lineNo)
				}
				origin, err := parseOrigin(addr)
				if err != nil {
					return nil, fmt.Errorf("line %d: %w", lineNo, err)
				}
				prog.Origin = origin
				seenOrigin = true
				continue
			}

			word, err := parseWord(field)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			prog.Words = append(prog.Words, word)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read listing: %w", err)
	}

	return prog, nil
}

func stripComment(line string) string {
	if i := strings.Index(line, "#"); i >= 0 {
		line = line[:i]
	}
	if i := strings.Index(line, "//"); i >= 0 {
		line = line[:i]
	}
	return line
}

func parseWord(field string) (uint32, error) {
	digits := strings.TrimPrefix(strings.TrimPrefix(field, "0x"), "0X")
	v, err := strconv.ParseUint(digits, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid instruction word %q", field)
	}
	return uint32(v), nil
}

func parseOrigin(field string) (uint32, error) {
	origin, err := parseWord(field)
	if err != nil {
		return 0, fmt.Errorf("invalid origin %q", "@"+field)
	}
	if origin%4 != 0 {
		return 0, fmt.Errorf("origin 0x%08x is not 4-byte aligned", origin)
	}
	return origin, nil
}
