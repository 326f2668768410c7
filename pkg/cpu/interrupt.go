package cpu

// Interrupt handling follows the split-representation resolution of
// spec.md §9 OQ4: InterruptsEnabled (toggled only by EI/DI) and a
// separate pending-vector slot, rather than conflating "enabled" and
// "pending" into one flag the way original_source/src/cpu.rs does.

// RequestInterrupt latches a pending interrupt carrying the given
// restart vector address (e.g. 0x08 for RST 1). A second request
// before the first is acknowledged overwrites the pending vector —
// the 8080 has no interrupt queue.
func (c *CPU) RequestInterrupt(vector uint16) {
	v := vector
	c.pending = &v
}

// PendingInterrupt reports whether an interrupt is latched and its
// vector, without consuming it.
func (c *CPU) PendingInterrupt() (vector uint16, ok bool) {
	if c.pending == nil {
		return 0, false
	}
	return *c.pending, true
}

// deliverInterrupt is called at the top of every Step(). If interrupts
// are enabled and one is pending, it pushes PC, jumps to the vector,
// clears the halt and enabled flags (matching a real RST-on-interrupt
// ack, which always runs with interrupts disabled until software
// re-enables them), and consumes the pending vector. It reports
// whether it fired so Step() can return without also fetching the
// vector's first instruction in the same call — acknowledging an
// interrupt and executing an instruction are two separate steps.
func (c *CPU) deliverInterrupt() bool {
	if !c.InterruptsEnabled || c.pending == nil {
		return false
	}
	vector := *c.pending
	c.pending = nil
	c.Halted = false
	c.InterruptsEnabled = false
	c.push16(c.PC)
	c.PC = vector
	return true
}
