package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/oisee/i8080run/pkg/conform"
	"github.com/oisee/i8080run/pkg/harness"
	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "i8080run",
		Short: "Intel 8080 emulator core — run CP/M .COM images and verify the ALU",
	}

	var trace bool
	var colorMode string

	runCmd := &cobra.Command{
		Use:   "run <file.com>",
		Short: "Load a .COM image at 0x0100 and run it to completion",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImage(args[0], trace, colorMode)
		},
	}
	runCmd.Flags().BoolVar(&trace, "trace", false, "log the PC and opcode byte retired each step")
	runCmd.Flags().StringVar(&colorMode, "color", "auto", "ANSI coloring: auto, always, never (unused here: console output is printed uncolored)")

	selftestCmd := &cobra.Command{
		Use:   "selftest <dir> [files...]",
		Short: "Run the canonical 8080 self-test ROMs (or named files) found under dir",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := args[0]
			files := args[1:]
			if len(files) == 0 {
				files = []string{"CPUTEST.COM", "8080EXM.COM", "TST8080.COM", "8080PRE.COM"}
			}
			for _, f := range files {
				path := filepath.Join(dir, f)
				fmt.Printf("== %s ==\n", f)
				if err := runImage(path, trace, colorMode); err != nil {
					fmt.Fprintf(os.Stderr, "%s: %v\n", f, err)
				}
				fmt.Println()
			}
			return nil
		},
	}
	selftestCmd.Flags().BoolVar(&trace, "trace", false, "log the PC and opcode byte retired each step")
	selftestCmd.Flags().StringVar(&colorMode, "color", "auto", "ANSI coloring: auto, always, never (unused here: console output is printed uncolored)")

	var workers int
	verifyCmd := &cobra.Command{
		Use:   "verify",
		Short: "Exhaustively check the ALU/flag tables against a bit-level reference",
		RunE: func(cmd *cobra.Command, args []string) error {
			report := conform.Run(workers)
			cs := newColorScheme(colorMode)
			if report.OK() {
				fmt.Println(cs.pass(fmt.Sprintf("PASS — %d combinations checked", report.Checked)))
				return nil
			}
			fmt.Println(cs.fail(fmt.Sprintf("FAIL — %d/%d combinations mismatched", len(report.Mismatches), report.Checked)))
			for _, m := range report.Mismatches {
				fmt.Println("  " + m.String())
			}
			return fmt.Errorf("verify: %d mismatches", len(report.Mismatches))
		},
	}
	verifyCmd.Flags().IntVar(&workers, "workers", 0, "worker goroutines (0 = runtime.NumCPU())")
	verifyCmd.Flags().StringVar(&colorMode, "color", "auto", "ANSI coloring: auto, always, never")

	rootCmd.AddCommand(runCmd, selftestCmd, verifyCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runImage(path string, trace bool, colorMode string) error {
	image, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("run: %w", err)
	}

	r, err := harness.Load(image, os.Stdout)
	if err != nil {
		return err
	}
	if trace {
		r.Trace = func(pc uint16, opcode byte) {
			fmt.Fprintf(os.Stderr, "%04X: %02X\n", pc, opcode)
		}
	}
	return r.Run()
}
