package varvara

import "uxn"

// System port offsets within the device's 16-byte range (relative to
// sysGroup in device.go).
const (
	sysVectorOffset = 0x00 // short
	sysStateOffset  = 0x0F // byte; non-zero terminates the run
)

// System implements the .System port group: a vector address and the
// exit-on-write-state byte (SPEC_FULL.md §5, grounded on
// original_source/core-emulator/src/device/varvara.rs's 0x0f match arm).
type System struct {
	page          [16]byte
	exitRequested bool
	exitCode      uint8
}

// NewSystem returns a System with no exit requested yet.
func NewSystem() *System {
	return &System{}
}

func (s *System) ReadByte(addr uint16) uint8 { return s.page[addr] }

func (s *System) WriteByte(addr uint16, b uint8) {
	s.page[addr] = b
	if addr == sysStateOffset && b != 0 {
		s.exitRequested = true
		s.exitCode = b & 0x7F
	}
}

func (s *System) ReadMemory(port uint8, size uxn.ItemSize) uxn.Item {
	return uxn.ReadMemory(s, uint16(port), size)
}

func (s *System) WriteMemory(port uint8, item uxn.Item) {
	uxn.WriteMemory(s, uint16(port), item)
}

// Vector returns the address stored in the System/vector port.
func (s *System) Vector() uint16 {
	return uxn.ReadShort(s, sysVectorOffset)
}

// ExitRequested reports whether .System/state has been written non-zero.
func (s *System) ExitRequested() bool {
	return s.exitRequested
}

// ExitCode returns the low 7 bits of the byte written to .System/state.
// Only meaningful once ExitRequested reports true.
func (s *System) ExitCode() uint8 {
	return s.exitCode
}
