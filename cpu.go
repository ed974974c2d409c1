package uxn

import "errors"

// ErrROMTooLarge is returned by LoadROMStrict when a ROM does not fit; plain
// LoadROM never returns it and silently truncates instead.
var ErrROMTooLarge = errors.New("uxn: rom exceeds 0xff00 bytes")

// CPU holds the program counter, both stacks, the 64KiB address space, and
// the device reference — the entirety of uxn's mutable state (spec.md §3).
// A CPU exclusively owns all of it; nothing outside the package mutates
// these fields directly.
type CPU struct {
	PC      uint16
	Working Stack
	Return  Stack
	mem     cpuMemory
	Device  Device
}

// New returns a CPU in its reset state: PC at 0x0100, both stacks empty,
// memory zeroed, and the default EmptyDevice attached.
func New() *CPU {
	c := &CPU{}
	c.reset()
	return c
}

// NewWithROM returns a CPU with rom already loaded at 0x0100.
func NewWithROM(rom []byte) *CPU {
	c := New()
	c.LoadROM(rom)
	return c
}

func (c *CPU) reset() {
	c.PC = romBase
	c.Working = Stack{}
	c.Return = Stack{}
	c.mem.clear()
	c.Device = NewEmptyDevice()
}

// ClearMemory zeroes the CPU's 64KiB address space. Per uxn convention this
// does not touch the stacks, PC, or device (spec.md §4.3's "soft reboot").
func (c *CPU) ClearMemory() {
	c.mem.clear()
}

// LoadROM clears memory and copies rom into it starting at 0x0100. ROMs
// longer than fit (0xff00 bytes) are silently truncated (spec.md §6).
func (c *CPU) LoadROM(rom []byte) {
	c.mem.loadROM(rom)
}

// LoadROMStrict behaves like LoadROM but returns ErrROMTooLarge instead of
// truncating when rom does not fit. This is a host-boundary convenience
// (spec.md §6 permits either behavior); the core itself never errors.
func (c *CPU) LoadROMStrict(rom []byte) error {
	if len(rom) > maxROMBytes {
		return ErrROMTooLarge
	}
	c.LoadROM(rom)
	return nil
}

// SetDevice replaces the CPU's device reference.
func (c *CPU) SetDevice(d Device) {
	c.Device = d
}

// ReadByte/WriteByte/ReadShort/WriteShort/ReadMemory/WriteMemory give direct
// access to the CPU's address space, satisfying the Memory interface.
func (c *CPU) ReadByte(addr uint16) uint8     { return c.mem.ReadByte(addr) }
func (c *CPU) WriteByte(addr uint16, b uint8) { c.mem.WriteByte(addr, b) }

func (c *CPU) ReadShort(addr uint16) uint16        { return ReadShort(c, addr) }
func (c *CPU) WriteShort(addr uint16, v uint16)     { WriteShort(c, addr, v) }
func (c *CPU) ReadMemory(addr uint16, size ItemSize) Item {
	return ReadMemory(c, addr, size)
}
func (c *CPU) WriteMemory(addr uint16, item Item) {
	WriteMemory(c, addr, item)
}
