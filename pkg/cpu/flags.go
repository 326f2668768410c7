package cpu

// Intel 8080 flag bit positions in the F register. Bits 1, 3 and 5 are
// fixed (1, 0, 0 respectively); the 8080 has no undocumented-bit
// passthrough the way the Z80 does.
const (
	FlagC  uint8 = 0x01 // Carry
	flag1  uint8 = 0x02 // always 1
	FlagP  uint8 = 0x04 // Parity (even)
	flag3  uint8 = 0x08 // always 0
	FlagAC uint8 = 0x10 // Auxiliary carry (half-carry out of bit 3)
	flag5  uint8 = 0x20 // always 0
	FlagZ  uint8 = 0x40 // Zero
	FlagS  uint8 = 0x80 // Sign
)

// Precomputed flag tables, same technique the teacher builds its
// Sz53Table/ParityTable with, narrowed to the 8080's S/Z/P trio.
var (
	// SzTable: S and Z flags for each byte result.
	SzTable [256]uint8
	// SzpTable: SzTable with parity folded in, the combination every
	// 8-bit ALU/INR/DCR/DAA result needs.
	SzpTable [256]uint8
	// ParityTable: parity flag alone, for ops that don't touch S/Z.
	ParityTable [256]uint8

	// HalfcarryAddTable/HalfcarrySubTable: index by the 3-bit pattern
	// (bit3 of arg1, bit3 of arg2, bit3 of result); mirrors the
	// teacher's indexing scheme for 8-bit half-carry/borrow detection.
	HalfcarryAddTable = [8]uint8{0, FlagAC, FlagAC, FlagAC, 0, 0, 0, FlagAC}
	HalfcarrySubTable = [8]uint8{0, 0, FlagAC, 0, FlagAC, 0, FlagAC, FlagAC}
)

func init() {
	for i := 0; i < 256; i++ {
		// flag1 is baked in here rather than OR'd in at each call site,
		// so every F derived from these tables carries the fixed bit
		// without every exec.go helper having to remember to set it.
		SzTable[i] = uint8(i)&FlagS | flag1

		j := uint8(i)
		parity := uint8(0)
		for k := 0; k < 8; k++ {
			parity ^= j & 1
			j >>= 1
		}
		if parity == 0 {
			ParityTable[i] = FlagP
		}
		SzpTable[i] = SzTable[i] | ParityTable[i]
	}
	SzTable[0] |= FlagZ
	SzpTable[0] |= FlagZ
}

// packFlags builds a PSW byte from the five live flags plus the fixed
// bits, the representation PUSH PSW writes to the stack.
func packFlags(s, z, ac, p, c bool) uint8 {
	var f uint8 = flag1
	if s {
		f |= FlagS
	}
	if z {
		f |= FlagZ
	}
	if ac {
		f |= FlagAC
	}
	if p {
		f |= FlagP
	}
	if c {
		f |= FlagC
	}
	return f
}

// sanitizeF forces the fixed bits into their architectural values,
// used whenever F is loaded wholesale (POP PSW).
func sanitizeF(f uint8) uint8 {
	return (f | flag1) &^ (flag3 | flag5)
}
