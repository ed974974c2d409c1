package uxn

import "testing"

func TestStackPushByte(t *testing.T) {
	var s Stack
	s.PushByte(0x01)
	s.PushByte(0x02)
	assertEqual(t, s.Pointer(), uint8(2), "pointer after two byte pushes")
	assertEqual(t, string(s.Bytes()), string([]byte{0x01, 0x02}), "bytes bottom-up")
}

func TestStackPushShortBigEndian(t *testing.T) {
	var s Stack
	s.PushShort(0x1234)
	assertEqual(t, string(s.Bytes()), string([]byte{0x12, 0x34}), "short push is big-endian, high byte first")
}

func TestStackPointerWraps(t *testing.T) {
	var s Stack
	for i := 0; i < 256; i++ {
		s.PushByte(uint8(i))
	}
	assertEqual(t, s.Pointer(), uint8(0), "pointer wraps back to 0 after 256 pushes")
	// one more push wraps around and overwrites index 0
	s.PushByte(0xAA)
	assertEqual(t, s.data[0], uint8(0xAA), "256th+1 push overwrites the oldest slot")
}

func TestStackAccessorPopCommits(t *testing.T) {
	var s Stack
	s.PushByte(0x10)
	s.PushByte(0x20)

	op := s.TakeOperands(Pop, SizeByte)
	top := op.Byte()
	second := op.Byte()
	op.Done()

	assertEqual(t, top, uint8(0x20), "first read is topmost")
	assertEqual(t, second, uint8(0x10), "second read is next down")
	assertEqual(t, s.Pointer(), uint8(0), "pop mode retracts the real pointer")
}

func TestStackAccessorKeepLeavesStack(t *testing.T) {
	var s Stack
	s.PushByte(0x10)
	s.PushByte(0x20)

	op := s.TakeOperands(Keep, SizeByte)
	_ = op.Byte()
	_ = op.Byte()
	op.Done()

	assertEqual(t, s.Pointer(), uint8(2), "keep mode leaves the real pointer untouched")
	assertEqual(t, string(s.Bytes()), string([]byte{0x10, 0x20}), "keep mode leaves stack contents untouched")
}

func TestStackAccessorItemShort(t *testing.T) {
	var s Stack
	s.PushShort(0xBEEF)

	op := s.TakeOperands(Pop, SizeShort)
	item := op.Item()
	op.Done()

	assertEqual(t, item.Short(), uint16(0xBEEF), "short item read back")
	assertEqual(t, s.Pointer(), uint8(0), "short pop retracts by 2")
}
