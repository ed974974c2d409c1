package varvara

import (
	"bytes"
	"testing"

	"uxn"
)

func TestConsoleWriteGoesToOut(t *testing.T) {
	var out bytes.Buffer
	c := NewConsole(&out, nil)

	c.WriteMemory(conWriteOffset, uxn.ByteItem('H'))
	c.WriteMemory(conWriteOffset, uxn.ByteItem('i'))

	if got := out.String(); got != "Hi" {
		t.Fatalf("console output: got %q, want %q", got, "Hi")
	}
}

func TestConsolePushInputSignalsVector(t *testing.T) {
	var out bytes.Buffer
	c := NewConsole(&out, nil)
	c.WriteMemory(conVectorOffset, uxn.ShortItem(0x0120))

	c.PushInput('x')

	if got := c.ReadMemory(conReadOffset, uxn.SizeByte); got.Byte() != 'x' {
		t.Fatalf("read port should see pushed input, got %#x", got.Byte())
	}

	select {
	case vec := <-c.vectorCh:
		if vec != 0x0120 {
			t.Fatalf("signaled vector: got %#x, want 0x0120", vec)
		}
	default:
		t.Fatal("PushInput should have signaled vectorCh")
	}
}

func TestConsolePushInputDoesNotBlockWhenVectorChFull(t *testing.T) {
	var out bytes.Buffer
	c := NewConsole(&out, nil)
	c.WriteMemory(conVectorOffset, uxn.ShortItem(0x0100))

	c.PushInput('a')
	c.PushInput('b') // vectorCh already has a pending signal; must not block
}
