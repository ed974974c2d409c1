package uxn

// Opcode is the 5-bit instruction selector carried in the low bits of an
// instruction byte (spec.md §4.5).
type Opcode uint8

const (
	OpBRK Opcode = 0x00 // multiplexed with JCI/JMI/JSI/LIT/LIT2 by mode, see exec.go
	OpINC Opcode = 0x01
	OpPOP Opcode = 0x02
	OpNIP Opcode = 0x03
	OpSWP Opcode = 0x04
	OpROT Opcode = 0x05
	OpDUP Opcode = 0x06
	OpOVR Opcode = 0x07
	OpEQU Opcode = 0x08
	OpNEQ Opcode = 0x09
	OpGTH Opcode = 0x0A
	OpLTH Opcode = 0x0B
	OpJMP Opcode = 0x0C
	OpJCN Opcode = 0x0D
	OpJSR Opcode = 0x0E
	OpSTH Opcode = 0x0F
	OpLDZ Opcode = 0x10
	OpSTZ Opcode = 0x11
	OpLDR Opcode = 0x12
	OpSTR Opcode = 0x13
	OpLDA Opcode = 0x14
	OpSTA Opcode = 0x15
	OpDEI Opcode = 0x16
	OpDEO Opcode = 0x17
	OpADD Opcode = 0x18
	OpSUB Opcode = 0x19
	OpMUL Opcode = 0x1A
	OpDIV Opcode = 0x1B
	OpAND Opcode = 0x1C
	OpORA Opcode = 0x1D
	OpEOR Opcode = 0x1E
	OpSFT Opcode = 0x1F
)

// Mode flag bits carried in the high 3 bits of an instruction byte.
const (
	flagKeep   uint8 = 0x80
	flagReturn uint8 = 0x40
	flagShort  uint8 = 0x20
	opcodeMask uint8 = 0x1F
)

var opcodeNames = map[Opcode]string{
	OpBRK: "BRK", OpINC: "INC", OpPOP: "POP", OpNIP: "NIP",
	OpSWP: "SWP", OpROT: "ROT", OpDUP: "DUP", OpOVR: "OVR",
	OpEQU: "EQU", OpNEQ: "NEQ", OpGTH: "GTH", OpLTH: "LTH",
	OpJMP: "JMP", OpJCN: "JCN", OpJSR: "JSR", OpSTH: "STH",
	OpLDZ: "LDZ", OpSTZ: "STZ", OpLDR: "LDR", OpSTR: "STR",
	OpLDA: "LDA", OpSTA: "STA", OpDEI: "DEI", OpDEO: "DEO",
	OpADD: "ADD", OpSUB: "SUB", OpMUL: "MUL", OpDIV: "DIV",
	OpAND: "AND", OpORA: "ORA", OpEOR: "EOR", OpSFT: "SFT",
}

// String renders the opcode mnemonic, e.g. "ADD". It does not reflect the
// mode flags — use Instruction.String for the full decoded form.
func (o Opcode) String() string {
	if name, ok := opcodeNames[o]; ok {
		return name
	}
	return "?unknown?"
}

// Instruction is a decoded instruction byte, split into its opcode and mode
// flags (spec.md §4.5).
type Instruction struct {
	Opcode Opcode
	Keep   bool
	Return bool
	Short  bool
}

// DecodeInstruction splits a raw instruction byte into opcode + mode flags.
func DecodeInstruction(ins uint8) Instruction {
	return Instruction{
		Opcode: Opcode(ins & opcodeMask),
		Keep:   ins&flagKeep != 0,
		Return: ins&flagReturn != 0,
		Short:  ins&flagShort != 0,
	}
}

func (i Instruction) String() string {
	suffix := ""
	if i.Short {
		suffix += "2"
	}
	if i.Return {
		suffix += "r"
	}
	if i.Keep {
		suffix += "k"
	}
	return i.Opcode.String() + suffix
}

// mode returns the operand AccessMode implied by the instruction's keep flag.
func (i Instruction) mode() AccessMode {
	if i.Keep {
		return Keep
	}
	return Pop
}

// itemSize returns the operand ItemSize implied by the instruction's short flag.
func (i Instruction) itemSize() ItemSize {
	if i.Short {
		return SizeShort
	}
	return SizeByte
}
