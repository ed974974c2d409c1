package varvara

import (
	"bytes"
	"testing"

	"uxn"
)

// ins mirrors the uxn package's own test helper (unexported there, so
// rebuilt here) for assembling raw instruction bytes without a real
// uxntal assembler (spec.md §1, §6 keep that out of scope).
func ins(op uxn.Opcode, keep, ret, short bool) uint8 {
	b := uint8(op)
	if keep {
		b |= 0x80
	}
	if ret {
		b |= 0x40
	}
	if short {
		b |= 0x20
	}
	return b
}

func TestVarvaraHelloWorldAndExit(t *testing.T) {
	const consolePort = conGroup | conWriteOffset
	const systemPort = sysGroup | sysStateOffset

	message := "Hi!"
	var program []byte
	for _, c := range message {
		program = append(program,
			ins(uxn.OpBRK, true, false, false), byte(c),
			ins(uxn.OpBRK, true, false, false), consolePort,
			ins(uxn.OpDEO, false, false, false),
		)
	}
	program = append(program,
		ins(uxn.OpBRK, true, false, false), 0x01, // exit code 1
		ins(uxn.OpBRK, true, false, false), systemPort,
		ins(uxn.OpDEO, false, false, false),
		ins(uxn.OpBRK, false, false, false),
	)

	var out bytes.Buffer
	cpu := uxn.NewWithROM(program)
	device := NewVarvara(&out, nil)
	defer device.Close()
	cpu.SetDevice(device)

	cpu.ExecuteUntilExit()

	if got := out.String(); got != message {
		t.Fatalf("console output: got %q, want %q", got, message)
	}
	if !device.System.ExitRequested() {
		t.Fatal("expected System/state to have requested exit")
	}
	if device.System.ExitCode() != 1 {
		t.Fatalf("exit code: got %d, want 1", device.System.ExitCode())
	}
}
