// Package main provides the entry point for rv32sim.
// rv32sim feeds a listing of RV32 instruction words to the decode engine.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/sarchlab/rv32sim/emu"
	"github.com/sarchlab/rv32sim/loader"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the CLI and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("rv32sim", flag.ContinueOnError)
	fs.SetOutput(stderr)

	configPath := fs.String("config", "", "Path to machine configuration JSON file")
	trace := fs.Bool("trace", false, "Print each executed instruction")
	verbose := fs.Bool("v", false, "Verbose output")

	if err := fs.Parse(args); err != nil {
		return 2
	}

	if fs.NArg() < 1 {
		fmt.Fprintf(stderr, "Usage: rv32sim [options] <program.hex|program.bin>\n")
		fmt.Fprintf(stderr, "\nOptions:\n")
		fs.PrintDefaults()
		return 2
	}

	programPath := fs.Arg(0)

	prog, err := loader.Load(programPath)
	if err != nil {
		fmt.Fprintf(stderr, "Error loading program: %v\n", err)
		return 1
	}

	config := emu.DefaultMachineConfig()
	if *configPath != "" {
		config, err = emu.LoadMachineConfig(*configPath)
		if err != nil {
			fmt.Fprintf(stderr, "Error loading machine config: %v\n", err)
			return 1
		}
	}

	// A listing origin applies unless the config sets a nonzero initial_pc.
	if config.InitialPC == 0 {
		config.InitialPC = prog.Origin
	}

	opts := config.Options()
	if *trace {
		opts = append(opts, emu.WithTrace(stdout))
	}
	emulator := emu.NewEmulator(opts...)

	if *verbose {
		fmt.Fprintf(stdout, "Loaded: %s\n", programPath)
		fmt.Fprintf(stdout, "Words: %d\n", len(prog.Words))
		fmt.Fprintf(stdout, "Initial PC: 0x%08X\n", emulator.PC())
	}

	_, execErr := emulator.Execute(prog.Words)

	if *verbose {
		fmt.Fprintf(stdout, "\nInstructions executed: %d\n", emulator.InstructionCount())
		fmt.Fprintf(stdout, "Final state:\n%s", emulator.RegFile().Dump())
	}

	if execErr != nil {
		fmt.Fprintf(stderr, "Emulation error: %v\n", execErr)
		return 1
	}

	return 0
}
