package varvara

import (
	"io"

	"uxn"
	"uxn/internal/uxnlog"
)

// Console port offsets within the device's 16-byte range, matching the
// `@Console &vector $2 &read $1 &pad $5 &write $1 &error $1` layout comment
// in original_source/main/src/main.rs (SPEC_FULL.md §5).
const (
	conVectorOffset = 0x00 // short
	conReadOffset   = 0x02 // byte, written by the host, read by ROM code
	conWriteOffset  = 0x08 // byte, written by ROM code, consumed by the host
)

// Console implements .Console/write, .Console/read, and .Console/vector.
// Writes to conWriteOffset go to out; a host feeding stdin pushes bytes in
// via PushInput, which also signals Vector over vectorCh so the CPU's event
// loop has something to wake up for (SPEC_FULL.md §5).
type Console struct {
	page     [16]byte
	out      io.Writer
	vectorCh chan uint16
	logger   *uxnlog.Logger
}

// NewConsole returns a Console writing to out.
func NewConsole(out io.Writer, logger *uxnlog.Logger) *Console {
	return &Console{out: out, vectorCh: make(chan uint16, 1), logger: logger}
}

func (c *Console) ReadByte(addr uint16) uint8 { return c.page[addr] }

func (c *Console) WriteByte(addr uint16, b uint8) {
	c.page[addr] = b
	if addr == conWriteOffset {
		c.out.Write([]byte{b})
		if c.logger != nil {
			c.logger.Debugw("console write", "byte", b)
		}
	}
}

func (c *Console) ReadMemory(port uint8, size uxn.ItemSize) uxn.Item {
	return uxn.ReadMemory(c, uint16(port), size)
}

func (c *Console) WriteMemory(port uint8, item uxn.Item) {
	uxn.WriteMemory(c, uint16(port), item)
}

// Vector returns the address stored in the Console/vector port.
func (c *Console) Vector() uint16 {
	return uxn.ReadShort(c, conVectorOffset)
}

// PushInput places b in the Console/read port and, if a vector is set,
// signals it on vectorCh for WaitForEvent to pick up. A full channel (an
// event already pending) drops the signal rather than blocking — the ROM
// will see the latest byte on its next vector fire regardless.
func (c *Console) PushInput(b byte) {
	c.page[conReadOffset] = b
	vec := c.Vector()
	if vec == 0 {
		return
	}
	select {
	case c.vectorCh <- vec:
	default:
	}
}
