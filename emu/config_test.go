package emu_test

import (
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/rv32sim/emu"
)

var _ = Describe("MachineConfig", func() {
	var tempDir string

	BeforeEach(func() {
		var err error
		tempDir, err = os.MkdirTemp("", "machine-config-test")
		Expect(err).NotTo(HaveOccurred())
	})

	AfterEach(func() {
		_ = os.RemoveAll(tempDir)
	})

	writeConfig := func(content string) string {
		path := filepath.Join(tempDir, "machine.json")
		Expect(os.WriteFile(path, []byte(content), 0644)).To(Succeed())
		return path
	}

	It("should default to a zeroed machine with no limit", func() {
		c := emu.DefaultMachineConfig()

		Expect(c.InitialPC).To(Equal(uint32(0)))
		Expect(c.MaxInstructions).To(Equal(uint64(0)))
		Expect(c.Validate()).To(Succeed())
	})

	It("should load a config from JSON", func() {
		path := writeConfig(`{"initial_pc": 4096, "registers": {"1": 10, "31": 4294967295}, "max_instructions": 3}`)

		c, err := emu.LoadMachineConfig(path)

		Expect(err).NotTo(HaveOccurred())
		Expect(c.InitialPC).To(Equal(uint32(0x1000)))
		Expect(c.Registers).To(HaveKeyWithValue(1, uint32(10)))
		Expect(c.Registers).To(HaveKeyWithValue(31, uint32(0xFFFFFFFF)))
		Expect(c.MaxInstructions).To(Equal(uint64(3)))
	})

	It("should reject a register index out of range", func() {
		path := writeConfig(`{"registers": {"32": 1}}`)

		_, err := emu.LoadMachineConfig(path)
		Expect(err).To(MatchError(ContainSubstring("register index 32 out of range")))
	})

	It("should reject a misaligned PC", func() {
		c := emu.DefaultMachineConfig()
		c.InitialPC = 2
		Expect(c.Validate()).NotTo(Succeed())
	})

	It("should report malformed JSON", func() {
		path := writeConfig(`{"initial_pc":`)

		_, err := emu.LoadMachineConfig(path)
		Expect(err).To(MatchError(ContainSubstring("failed to parse machine config")))
	})

	It("should report a missing file", func() {
		_, err := emu.LoadMachineConfig(filepath.Join(tempDir, "missing.json"))
		Expect(err).To(MatchError(ContainSubstring("failed to read machine config file")))
	})

	It("should round trip through SaveMachineConfig", func() {
		c := emu.DefaultMachineConfig()
		c.InitialPC = 0x40
		c.Registers[2] = 99
		path := filepath.Join(tempDir, "saved.json")

		Expect(c.SaveMachineConfig(path)).To(Succeed())
		loaded, err := emu.LoadMachineConfig(path)

		Expect(err).NotTo(HaveOccurred())
		Expect(loaded).To(Equal(c))
	})

	It("should configure an emulator", func() {
		c := emu.DefaultMachineConfig()
		c.InitialPC = 0x100
		c.Registers[1] = 0xFFFFFFFF
		c.MaxInstructions = 1

		e := emu.NewEmulator(c.Options()...)

		Expect(e.PC()).To(Equal(uint32(0x100)))
		Expect(e.DecodeAndExecute(0x00108093)).To(Succeed()) // addi x1, x1, 1
		Expect(e.Reg(1)).To(Equal(uint32(0)))
		Expect(e.PC()).To(Equal(uint32(0x104)))

		Expect(e.InstructionCount()).To(Equal(uint64(1)))
		Expect(e.Step(0x00108093).Err).To(MatchError(emu.ErrMaxInstructions))
	})
})
