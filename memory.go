package uxn

// Memory is anything addressable by a 16-bit address with byte and
// big-endian-short accessors. The CPU's own 64KiB address space implements
// it directly; the Device port space (addressed by uint8 instead) implements
// the same read/write-item shape through the Device interface in device.go.
type Memory interface {
	ReadByte(addr uint16) uint8
	WriteByte(addr uint16, b uint8)
}

// ReadShort reads a big-endian 16-bit value at addr, addr+1 (both mod 2^16 —
// a short spanning 0xFFFF wraps its low byte to address 0x0000).
func ReadShort(m Memory, addr uint16) uint16 {
	hi := m.ReadByte(addr)
	lo := m.ReadByte(addr + 1)
	return uint16(hi)<<8 | uint16(lo)
}

// WriteShort writes a big-endian 16-bit value at addr, addr+1 (mod 2^16).
func WriteShort(m Memory, addr uint16, v uint16) {
	m.WriteByte(addr, uint8(v>>8))
	m.WriteByte(addr+1, uint8(v))
}

// ReadMemory reads an Item of the given size at addr.
func ReadMemory(m Memory, addr uint16, size ItemSize) Item {
	if size == SizeByte {
		return ByteItem(m.ReadByte(addr))
	}
	return ShortItem(ReadShort(m, addr))
}

// WriteMemory writes an Item at addr, dispatching on its width.
func WriteMemory(m Memory, addr uint16, item Item) {
	if item.Size() == SizeByte {
		m.WriteByte(addr, item.Byte())
	} else {
		WriteShort(m, addr, item.Short())
	}
}

// romBase is the address ROMs are loaded at; bytes below it stay zero on a
// fresh boot (spec.md §3).
const romBase = 0x0100

// cpuMemory is the CPU's flat 64KiB address space.
type cpuMemory struct {
	data [1 << 16]byte
}

func (m *cpuMemory) ReadByte(addr uint16) uint8 {
	return m.data[addr]
}

func (m *cpuMemory) WriteByte(addr uint16, b uint8) {
	m.data[addr] = b
}

func (m *cpuMemory) clear() {
	for i := range m.data {
		m.data[i] = 0
	}
}

// maxROMBytes is how much of a ROM fits between romBase and the top of the
// 64KiB address space; longer ROMs are truncated to this many bytes
// (spec.md §6).
const maxROMBytes = (1 << 16) - romBase

func (m *cpuMemory) loadROM(rom []byte) {
	m.clear()
	if len(rom) > maxROMBytes {
		rom = rom[:maxROMBytes]
	}
	copy(m.data[romBase:], rom)
}
