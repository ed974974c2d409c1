package varvara

import (
	"testing"

	"uxn"
)

func TestSystemExitRequestedOnNonZeroWrite(t *testing.T) {
	s := NewSystem()
	if s.ExitRequested() {
		t.Fatal("fresh System should not request exit")
	}

	s.WriteMemory(sysStateOffset, uxn.ByteItem(0x00))
	if s.ExitRequested() {
		t.Fatal("writing zero to state should not request exit")
	}

	s.WriteMemory(sysStateOffset, uxn.ByteItem(0x81))
	if !s.ExitRequested() {
		t.Fatal("writing non-zero to state should request exit")
	}
	if s.ExitCode() != 0x01 {
		t.Fatalf("exit code should be low 7 bits: got %#x", s.ExitCode())
	}
}

func TestSystemVectorRoundTrip(t *testing.T) {
	s := NewSystem()
	s.WriteMemory(sysVectorOffset, uxn.ShortItem(0x0234))
	if got := s.Vector(); got != 0x0234 {
		t.Fatalf("vector round trip: got %#x", got)
	}
}
