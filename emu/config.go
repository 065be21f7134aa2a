package emu

import (
	"encoding/json"
	"fmt"
	"os"
)

// MachineConfig holds the initial machine state and run limits.
type MachineConfig struct {
	// InitialPC is the program counter before the first instruction.
	InitialPC uint32 `json:"initial_pc"`

	// Registers maps register indices to initial values.
	Registers map[int]uint32 `json:"registers,omitempty"`

	// MaxInstructions stops execution after this many instructions.
	// 0 means no limit.
	MaxInstructions uint64 `json:"max_instructions"`
}

// DefaultMachineConfig returns a config for a zeroed machine with no limit.
func DefaultMachineConfig() *MachineConfig {
	return &MachineConfig{
		Registers: map[int]uint32{},
	}
}

// LoadMachineConfig loads a MachineConfig from a JSON file.
func LoadMachineConfig(path string) (*MachineConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read machine config file: %w", err)
	}

	config := DefaultMachineConfig()
	if err := json.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse machine config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid machine config: %w", err)
	}

	return config, nil
}

// SaveMachineConfig writes a MachineConfig to a JSON file.
func (c *MachineConfig) SaveMachineConfig(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize machine config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write machine config file: %w", err)
	}

	return nil
}

// Validate checks register indices and PC alignment.
func (c *MachineConfig) Validate() error {
	if c.InitialPC%InstructionSize != 0 {
		return fmt.Errorf("initial_pc 0x%x is not %d-byte aligned", c.InitialPC, InstructionSize)
	}
	for idx := range c.Registers {
		if idx < 0 || idx >= NumRegs {
			return fmt.Errorf("register index %d out of range", idx)
		}
	}
	return nil
}

// NewRegFile builds the initial register file described by the config.
func (c *MachineConfig) NewRegFile() *RegFile {
	r := &RegFile{PC: c.InitialPC}
	for idx, v := range c.Registers {
		r.WriteReg(idx, v)
	}
	return r
}

// Options returns emulator options that apply the config.
func (c *MachineConfig) Options() []EmulatorOption {
	return []EmulatorOption{
		WithRegFile(c.NewRegFile()),
		WithMaxInstructions(c.MaxInstructions),
	}
}
