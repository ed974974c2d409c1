package uxn

import "runtime/debug"

// ExecuteUntilBreak runs instructions starting at the CPU's current PC until
// an opcode 0x00 BRK is hit (inner loop, spec.md §4.6). It does not touch
// the device's event source — callers that need the outer vector/exit
// behavior should use ExecuteUntilExit or ExecuteVector instead.
func (c *CPU) ExecuteUntilBreak() {
	for {
		ins := c.fetchByte()
		if c.ExecuteOne(ins) == Break {
			return
		}
	}
}

// ExecuteVector sets PC to addr and runs ExecuteUntilBreak from there. This
// is what the outer loop does each time a device hands back an EventVector.
func (c *CPU) ExecuteVector(addr uint16) {
	c.PC = addr
	c.ExecuteUntilBreak()
}

// ExecuteUntilExit drives the full outer loop (spec.md §4.6): it runs
// ExecuteUntilBreak once from the CPU's current PC (the ROM's reset entry
// at 0x0100, on a fresh boot), then alternates the attached device's
// WaitForEvent with ExecuteVector, jumping to whatever vector the device
// hands back, until the device signals exit.
//
// The Go GC is disabled for the duration, mirroring the teacher's
// RunProgram: Uxn programs are expected to run short-lived and
// allocation-light, and a stop-the-world GC pause mid-instruction-stream is
// pure overhead here.
func (c *CPU) ExecuteUntilExit() {
	prevGC := debug.SetGCPercent(-1)
	defer debug.SetGCPercent(prevGC)

	c.ExecuteUntilBreak()
	for {
		event := c.Device.WaitForEvent()
		switch event.Kind {
		case EventExit:
			return
		case EventVector:
			c.ExecuteVector(event.Addr)
		}
	}
}
