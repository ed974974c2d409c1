// Package varvara implements a conforming host Device (spec.md §6): a
// 256-port page split into 16-port groups, one per sub-device, plus an
// event source the CPU's outer loop drains between ROM-vector runs.
package varvara

import (
	"io"

	"uxn"
	"uxn/internal/uxnlog"
)

// Port-group bases. Each sub-device owns a 16-port slice of the full
// 256-port page; ReadMemory/WriteMemory route on the high nibble and hand
// the sub-device only its own low nibble (SPEC_FULL.md §5).
const (
	sysGroup = 0x00
	conGroup = 0x10
	clkGroup = 0x20
)

// Varvara combines System, Console, and Clock into the single 256-port
// Device the CPU talks to (spec.md §4.4), the way
// core-emulator/src/device/varvara.rs's VarvaraDevice combines its own
// sub-devices behind one `impl Memory for VarvaraDevice` (minus the
// screen, a spec Non-goal — see SPEC_FULL.md §5).
type Varvara struct {
	System  *System
	Console *Console
	Clock   *Clock
}

// NewVarvara constructs a Varvara writing console output to out and
// logging device-level events through logger (logger may be nil).
func NewVarvara(out io.Writer, logger *uxnlog.Logger) *Varvara {
	return &Varvara{
		System:  NewSystem(),
		Console: NewConsole(out, logger),
		Clock:   NewClock(logger),
	}
}

// ReadMemory dispatches a DEI to the sub-device owning port's high nibble.
// Ports in groups this host doesn't define always read back as zero; unlike
// an EmptyDevice's scratchpad, nothing written to them is stored.
func (v *Varvara) ReadMemory(port uint8, size uxn.ItemSize) uxn.Item {
	switch port & 0xF0 {
	case sysGroup:
		return v.System.ReadMemory(port&0x0F, size)
	case conGroup:
		return v.Console.ReadMemory(port&0x0F, size)
	case clkGroup:
		return v.Clock.ReadMemory(port&0x0F, size)
	default:
		return uxn.ReadMemory(zeroPage{}, 0, size)
	}
}

// WriteMemory dispatches a DEO to the sub-device owning port's high nibble.
// Writes to unmapped ports are discarded.
func (v *Varvara) WriteMemory(port uint8, item uxn.Item) {
	switch port & 0xF0 {
	case sysGroup:
		v.System.WriteMemory(port&0x0F, item)
	case conGroup:
		v.Console.WriteMemory(port&0x0F, item)
	case clkGroup:
		v.Clock.WriteMemory(port&0x0F, item)
	}
}

// WaitForEvent implements the CPU's outer-loop event source (spec.md §4.6):
// System/state takes priority (an exit request raised during the ROM's own
// run should end things before any pending console or clock vector fires),
// otherwise it blocks until the Console or Clock has a vector to deliver.
func (v *Varvara) WaitForEvent() uxn.DeviceEvent {
	if v.System.ExitRequested() {
		return uxn.Exit()
	}
	select {
	case vec := <-v.Console.vectorCh:
		return uxn.Vector(vec)
	case vec := <-v.Clock.vectorCh:
		return uxn.Vector(vec)
	}
}

// Close releases the Clock's background goroutine. Safe to call even if
// the Varvara was never fully driven.
func (v *Varvara) Close() {
	v.Clock.Close()
}

// zeroPage is a Memory backing a single address that always reads zero,
// used only to route an unmapped port read through the shared
// uxn.ReadMemory dispatch instead of duplicating its byte/short switch here.
type zeroPage struct{}

func (zeroPage) ReadByte(uint16) uint8   { return 0 }
func (zeroPage) WriteByte(uint16, uint8) {}
