// Command mos6502 loads a 6502 program image into a flat 64 KiB memory and
// runs it, printing a register/flag snapshot before and after.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/giusgal/mos6502/cpu"
	"github.com/giusgal/mos6502/mem"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "mos6502",
		Short: "MOS 6502 instruction-level emulator",
	}

	var (
		loadAddr   uint16
		startAddr  uint16
		endAddr    uint16
		breakpoint uint16
		binary     bool
		debug      bool
	)

	runCmd := &cobra.Command{
		Use:   "run [program file]",
		Short: "Load a program image and execute it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("opening program: %w", err)
			}
			defer f.Close()

			m := mem.NewFlatMemory()
			if binary {
				err = mem.LoadBinary(m, loadAddr, f)
			} else {
				err = mem.LoadHex(m, loadAddr, f)
			}
			if err != nil {
				return fmt.Errorf("loading program: %w", err)
			}

			c := cpu.New(m)
			if cmd.Flags().Changed("breakpoint") {
				c.SetBreakpoint(breakpoint)
			}

			if debug {
				if binary {
					return fmt.Errorf("debug mode requires a hex-text program, not --binary")
				}
				body, err := os.ReadFile(args[0])
				if err != nil {
					return err
				}
				c.Debug(string(body), loadAddr)
				return nil
			}

			fmt.Print(c.Info())
			c.Execute(startAddr, endAddr)
			fmt.Print(c.Info())
			return nil
		},
	}

	runCmd.Flags().Uint16Var(&loadAddr, "load", 0x8000, "address to load the program at")
	runCmd.Flags().Uint16Var(&startAddr, "start", 0x8000, "initial program counter")
	runCmd.Flags().Uint16Var(&endAddr, "end", 0xFFFF, "upper program counter bound")
	runCmd.Flags().Uint16Var(&breakpoint, "breakpoint", 0, "single breakpoint address")
	runCmd.Flags().BoolVar(&binary, "binary", false, "treat the program file as raw binary instead of hex text")
	runCmd.Flags().BoolVar(&debug, "debug", false, "launch the interactive single-step debugger instead of running to completion")

	rootCmd.AddCommand(runCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
