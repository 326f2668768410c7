package cpu

// Field extraction helpers for the 8080's fixed one-byte opcode
// layout. Unlike the Z80 teacher's wide OpCode enum (needed there
// because Z80 opcodes span multiple prefix bytes and feed a program
// search), the 8080 byte IS the opcode: classification only needs to
// pull out the dst/src/rp/condition/rst-vector fields a given opcode
// shape carries. Field names follow original_source/src/cpu.rs's
// bit-extraction helpers, re-expressed as plain Go bit ops.

// destField returns bits 5-3 of an opcode (MOV/MVI/INR/DCR/ALU dest).
func destField(op uint8) uint8 { return (op >> 3) & 0x07 }

// srcField returns bits 2-0 of an opcode (MOV source, ALU operand).
func srcField(op uint8) uint8 { return op & 0x07 }

// rpField returns bits 5-4 of an opcode (register-pair selector).
func rpField(op uint8) uint8 { return (op >> 4) & 0x03 }

// condField returns bits 5-3 of an opcode used as a flag condition
// (conditional JMP/CALL/RET); numerically identical to destField but
// named separately since the two fields mean different things.
func condField(op uint8) uint8 { return (op >> 3) & 0x07 }

// rstField returns the 3-bit restart vector number from an RST opcode.
func rstField(op uint8) uint8 { return (op >> 3) & 0x07 }

// testCondition evaluates one of the 8 standard 8080 flag conditions
// against the current flags: 0=NZ 1=Z 2=NC 3=C 4=PO 5=PE 6=P 7=M.
func (c *CPU) testCondition(cc uint8) bool {
	switch cc {
	case 0:
		return !c.flagZ()
	case 1:
		return c.flagZ()
	case 2:
		return !c.flagC()
	case 3:
		return c.flagC()
	case 4:
		return !c.flagP()
	case 5:
		return c.flagP()
	case 6:
		return !c.flagS()
	case 7:
		return c.flagS()
	}
	panic("unreachable condition field")
}
