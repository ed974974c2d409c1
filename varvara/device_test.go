package varvara

import (
	"bytes"
	"testing"

	"uxn"
)

func TestVarvaraRoutesPortsByGroup(t *testing.T) {
	var out bytes.Buffer
	v := NewVarvara(&out, nil)
	defer v.Close()

	v.WriteMemory(sysGroup|sysStateOffset, uxn.ByteItem(0x01))
	if !v.System.ExitRequested() {
		t.Fatal("write to sysGroup|sysStateOffset should reach the System sub-device")
	}

	v.WriteMemory(conGroup|conWriteOffset, uxn.ByteItem('Q'))
	if out.String() != "Q" {
		t.Fatalf("write to conGroup|conWriteOffset should reach Console: got %q", out.String())
	}

	v.WriteMemory(clkGroup|clkVectorOffset, uxn.ShortItem(0x0400))
	if v.Clock.Vector() != 0x0400 {
		t.Fatal("write to clkGroup|clkVectorOffset should reach Clock")
	}
}

func TestVarvaraUnmappedPortReadsZero(t *testing.T) {
	v := NewVarvara(&bytes.Buffer{}, nil)
	defer v.Close()

	if got := v.ReadMemory(0xF0, uxn.SizeByte); got.Byte() != 0 {
		t.Fatalf("unmapped port should read zero, got %#x", got.Byte())
	}
	if got := v.ReadMemory(0xF0, uxn.SizeShort); got.Short() != 0 {
		t.Fatalf("unmapped port (short) should read zero, got %#x", got.Short())
	}
}

func TestVarvaraWaitForEventPrioritizesExit(t *testing.T) {
	v := NewVarvara(&bytes.Buffer{}, nil)
	defer v.Close()

	v.Console.WriteMemory(conVectorOffset&0x0F, uxn.ShortItem(0x0500))
	v.Console.PushInput('z') // queues a vector on Console.vectorCh

	v.System.WriteMemory(sysStateOffset, uxn.ByteItem(0x02))

	ev := v.WaitForEvent()
	if ev.Kind != uxn.EventExit {
		t.Fatalf("a pending exit request must win over a queued console vector, got %+v", ev)
	}
}

func TestVarvaraWaitForEventDeliversConsoleVector(t *testing.T) {
	v := NewVarvara(&bytes.Buffer{}, nil)
	defer v.Close()

	v.Console.WriteMemory(conVectorOffset&0x0F, uxn.ShortItem(0x0600))
	v.Console.PushInput('z')

	ev := v.WaitForEvent()
	if ev.Kind != uxn.EventVector || ev.Addr != 0x0600 {
		t.Fatalf("expected console vector 0x0600, got %+v", ev)
	}
}
