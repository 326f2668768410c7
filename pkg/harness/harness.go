// Package harness runs CP/M-style .COM test images against the cpu
// package, the external collaborator spec.md §6 describes: no real
// CP/M BDOS exists, so address 0x0005 is patched to return
// immediately and the two console calls the classic 8080 self-test
// ROMs (CPUTEST, 8080EXM, TST8080, 8080PRE) rely on are intercepted
// directly.
package harness

import (
	"fmt"
	"io"

	"github.com/oisee/i8080run/pkg/cpu"
)

const (
	loadAddr = 0x0100
	bdosAddr = 0x0005
)

// Trace is called before each instruction executes, given the PC it
// is about to fetch from and the opcode byte there. Logging, not
// disassembly: callers that want mnemonics can map the byte
// themselves; this package has no catalog to hand them one.
type Trace func(pc uint16, opcode byte)

// Runner drives a loaded .COM image to completion.
type Runner struct {
	CPU   *cpu.CPU
	Out   io.Writer
	Trace Trace

	// MaxSteps bounds runaway programs (a test ROM that never hits
	// the BDOS warm-boot path would otherwise loop forever). Zero
	// means unbounded.
	MaxSteps int
}

// Load builds a Runner with image placed at 0x0100 per CP/M
// convention, address 0x0005 patched to RET so a CALL 5 returns to
// the caller instead of jumping into unmapped BDOS code, and SP set
// just below the load address.
func Load(image []byte, out io.Writer) (*Runner, error) {
	if len(image) > 0x10000-loadAddr {
		return nil, fmt.Errorf("harness: image of %d bytes does not fit below 0x10000", len(image))
	}
	mem := make([]byte, 0x10000)
	copy(mem[loadAddr:], image)
	mem[bdosAddr] = 0xC9 // RET

	c := cpu.New(mem)
	c.PC = loadAddr
	c.SP = loadAddr - 2

	return &Runner{CPU: c, Out: out}, nil
}

// Run steps the CPU until PC reaches the CP/M warm-boot entry
// (address 0x0000, by any jump, call or return) or it halts, servicing the two BDOS console
// functions the self-test ROMs use along the way: C=2 prints the
// character in E, C=9 prints the '$'-terminated string at DE.
func (r *Runner) Run() error {
	steps := 0
	for {
		if r.CPU.Halted {
			return nil
		}
		if r.CPU.PC == 0x0000 {
			return nil
		}
		if r.MaxSteps > 0 && steps >= r.MaxSteps {
			return fmt.Errorf("harness: exceeded %d steps without halting", r.MaxSteps)
		}

		if r.CPU.PC == bdosAddr {
			r.serviceBdos()
		}

		if r.Trace != nil {
			r.Trace(r.CPU.PC, r.CPU.Memory[r.CPU.PC])
		}
		if err := r.CPU.Step(); err != nil {
			return err
		}
		steps++
	}
}

func (r *Runner) serviceBdos() {
	switch r.CPU.C {
	case 2:
		fmt.Fprintf(r.Out, "%c", r.CPU.E)
	case 9:
		addr := r.CPU.DE()
		for r.CPU.Memory[addr] != '$' {
			fmt.Fprintf(r.Out, "%c", r.CPU.Memory[addr])
			addr++
		}
	}
}
