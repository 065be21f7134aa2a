package emu

import (
	"errors"
	"fmt"

	"github.com/sarchlab/rv32sim/insts"
)

// Action applies the semantics of one instruction. The program counter has
// already been advanced past the instruction when Action runs.
type Action func(regFile *RegFile, memory *Memory, word insts.Word)

// Entry pairs a compiled bit pattern with the action it dispatches to.
type Entry struct {
	Name    string
	Pattern insts.Pattern
	Action  Action
}

// Table is an ordered, immutable dispatch table. Lookup returns the first
// entry whose pattern matches; later overlapping entries never fire.
// A Table may be shared read-only by any number of emulators.
type Table struct {
	entries []Entry
}

// Len returns the number of entries.
func (t *Table) Len() int {
	return len(t.entries)
}

// Entries returns a copy of the entries in dispatch order.
func (t *Table) Entries() []Entry {
	out := make([]Entry, len(t.entries))
	copy(out, t.entries)
	return out
}

// Lookup finds the first entry matching word.
func (t *Table) Lookup(word uint32) (Entry, bool) {
	for _, e := range t.entries {
		if e.Pattern.Match(word) {
			return e, true
		}
	}
	return Entry{}, false
}

// Extend returns a builder seeded with this table's entries, so new
// instructions can be appended after the existing ones.
func (t *Table) Extend() *TableBuilder {
	b := NewTableBuilder()
	for _, e := range t.entries {
		b.pending = append(b.pending, pendingEntry{
			name:    e.Name,
			pattern: e.Pattern.Text,
			action:  e.Action,
		})
	}
	return b
}

type pendingEntry struct {
	name    string
	pattern string
	action  Action
}

// TableBuilder collects (pattern, action) pairs in declaration order.
type TableBuilder struct {
	pending []pendingEntry
}

// NewTableBuilder creates an empty builder.
func NewTableBuilder() *TableBuilder {
	return &TableBuilder{}
}

// Add appends an entry. Patterns are validated by Build.
func (b *TableBuilder) Add(name, pattern string, action Action) *TableBuilder {
	b.pending = append(b.pending, pendingEntry{name: name, pattern: pattern, action: action})
	return b
}

// Build compiles every pattern and returns the table. Malformed patterns
// and missing actions are configuration errors; all of them are reported.
func (b *TableBuilder) Build() (*Table, error) {
	t := &Table{entries: make([]Entry, 0, len(b.pending))}

	var errs []error
	for _, p := range b.pending {
		pattern, err := insts.CompilePattern(p.pattern)
		if err != nil {
			errs = append(errs, fmt.Errorf("entry %s: %w", p.name, err))
			continue
		}
		if p.action == nil {
			errs = append(errs, fmt.Errorf("entry %s: %w", p.name, ErrNilAction))
			continue
		}
		t.entries = append(t.entries, Entry{Name: p.name, Pattern: pattern, Action: p.action})
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return t, nil
}

// MustBuild is like Build but panics on error.
func (b *TableBuilder) MustBuild() *Table {
	t, err := b.Build()
	if err != nil {
		panic(err)
	}
	return t
}

var defaultTable = newRV32Table()

// DefaultTable returns the shared RV32 table: auipc, add, addi.
func DefaultTable() *Table {
	return defaultTable
}

func newRV32Table() *Table {
	b := NewTableBuilder()
	for _, enc := range insts.Encodings() {
		b.Add(enc.Name(), enc.Pattern, rv32Actions[enc.Op])
	}
	return b.MustBuild()
}
