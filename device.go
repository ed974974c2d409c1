package uxn

// EventKind distinguishes the two things a Device's WaitForEvent can ask the
// CPU to do (spec.md §4.4, §4.6).
type EventKind int

const (
	// EventVector asks the CPU to jump to Addr and keep running.
	EventVector EventKind = iota
	// EventExit asks the outer execute loop to terminate.
	EventExit
)

// DeviceEvent is what a Device's WaitForEvent returns between runs of the
// inner execute-to-break loop.
type DeviceEvent struct {
	Kind EventKind
	Addr uint16 // only meaningful when Kind == EventVector
}

// Vector constructs a DeviceEvent asking the CPU to jump to addr.
func Vector(addr uint16) DeviceEvent {
	return DeviceEvent{Kind: EventVector, Addr: addr}
}

// Exit constructs a DeviceEvent asking the outer loop to terminate.
func Exit() DeviceEvent {
	return DeviceEvent{Kind: EventExit}
}

// Device is the abstract 256-byte memory-mapped I/O page the CPU's DEI/DEO
// opcodes address, plus the event source driving the outer execute loop
// (spec.md §4.4). The CPU never interprets ports itself — their meaning is
// entirely the concrete Device's concern (spec.md §6).
type Device interface {
	ReadMemory(port uint8, size ItemSize) Item
	WriteMemory(port uint8, item Item)
	WaitForEvent() DeviceEvent
}

// EmptyDevice is a pure 256-byte scratchpad: reads and writes behave like
// ordinary memory with no side effects, and WaitForEvent always exits
// immediately. It is the CPU's default device before SetDevice is called.
type EmptyDevice struct {
	page [256]byte
}

// NewEmptyDevice constructs an EmptyDevice.
func NewEmptyDevice() *EmptyDevice {
	return &EmptyDevice{}
}

func (d *EmptyDevice) ReadByte(addr uint16) uint8    { return d.page[uint8(addr)] }
func (d *EmptyDevice) WriteByte(addr uint16, b uint8) { d.page[uint8(addr)] = b }

func (d *EmptyDevice) ReadMemory(port uint8, size ItemSize) Item {
	return ReadMemory(d, uint16(port), size)
}

func (d *EmptyDevice) WriteMemory(port uint8, item Item) {
	WriteMemory(d, uint16(port), item)
}

func (d *EmptyDevice) WaitForEvent() DeviceEvent {
	return Exit()
}
