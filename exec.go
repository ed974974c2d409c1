package uxn

// ExecResult tells the inner execute loop whether to keep going or stop
// (spec.md §4.6).
type ExecResult int

const (
	Continue ExecResult = iota
	Break
)

// stackFor returns the stack an instruction targets, per its return flag.
func (c *CPU) stackFor(useReturn bool) *Stack {
	if useReturn {
		return &c.Return
	}
	return &c.Working
}

// otherStackFor returns the stack opposite the one an instruction targets.
func (c *CPU) otherStackFor(useReturn bool) *Stack {
	if useReturn {
		return &c.Working
	}
	return &c.Return
}

// fetchByte reads the byte at PC and advances PC by one.
func (c *CPU) fetchByte() uint8 {
	b := c.ReadByte(c.PC)
	c.PC++
	return b
}

// fetchShort reads the big-endian short at PC and advances PC by two.
func (c *CPU) fetchShort() uint16 {
	v := c.ReadShort(c.PC)
	c.PC += 2
	return v
}

// ExecuteOne fetches, decodes, and runs a single instruction. The caller is
// responsible for the fetch-PC-advance step already having happened for ins
// — ExecuteOne is handed the raw instruction byte and the PC already pointing
// just past it, matching spec.md §4.5 ("the handler fetches one instruction,
// advances PC by 1, then selects behavior per opcode").
func (c *CPU) ExecuteOne(ins uint8) ExecResult {
	instr := DecodeInstruction(ins)

	target := c.stackFor(instr.Return)
	other := c.otherStackFor(instr.Return)
	size := instr.itemSize()
	mode := instr.mode()

	if instr.Opcode == OpBRK {
		return c.execOpcode00(instr, target)
	}

	op := target.TakeOperands(mode, size)

	switch instr.Opcode {
	case OpINC:
		item := op.Item()
		op.Done()
		target.PushItem(item.Increment())

	case OpPOP:
		op.Item()
		op.Done()

	case OpNIP:
		b := op.Item()
		op.Item() // a, discarded
		op.Done()
		target.PushItem(b)

	case OpSWP:
		first := op.Item()
		second := op.Item()
		op.Done()
		target.PushItem(first)
		target.PushItem(second)

	case OpROT:
		c := op.Item()
		b := op.Item()
		a := op.Item()
		op.Done()
		target.PushItem(b)
		target.PushItem(c)
		target.PushItem(a)

	case OpDUP:
		item := op.Item()
		op.Done()
		target.PushItem(item)
		target.PushItem(item)

	case OpOVR:
		a := op.Item()
		b := op.Item()
		op.Done()
		target.PushItem(b)
		target.PushItem(a)
		target.PushItem(b)

	case OpEQU:
		a := op.Item()
		b := op.Item()
		op.Done()
		target.PushByte(boolByte(a.Equal(b)))

	case OpNEQ:
		a := op.Item()
		b := op.Item()
		op.Done()
		target.PushByte(boolByte(!a.Equal(b)))

	case OpGTH:
		a := op.Item()
		b := op.Item()
		op.Done()
		target.PushByte(boolByte(b.Uint() > a.Uint()))

	case OpLTH:
		a := op.Item()
		b := op.Item()
		op.Done()
		target.PushByte(boolByte(b.Uint() < a.Uint()))

	case OpJMP:
		dest := op.Item()
		op.Done()
		c.jump(dest)

	case OpJCN:
		dest := op.Item()
		cond := op.Byte()
		op.Done()
		if cond != 0 {
			c.jump(dest)
		}

	case OpJSR:
		dest := op.Item()
		op.Done()
		c.Return.PushShort(c.PC)
		c.jump(dest)

	case OpSTH:
		item := op.Item()
		op.Done()
		other.PushItem(item)

	case OpLDZ:
		addr := op.Byte()
		op.Done()
		target.PushItem(c.ReadMemory(uint16(addr), size))

	case OpSTZ:
		addr := op.Byte()
		value := op.Item()
		op.Done()
		c.WriteMemory(uint16(addr), value)

	case OpLDR:
		addr := op.Byte()
		op.Done()
		target.PushItem(c.ReadMemory(c.relativeAddr(addr), size))

	case OpSTR:
		addr := op.Byte()
		value := op.Item()
		op.Done()
		c.WriteMemory(c.relativeAddr(addr), value)

	case OpLDA:
		addr := op.Short()
		op.Done()
		target.PushItem(c.ReadMemory(addr, size))

	case OpSTA:
		addr := op.Short()
		value := op.Item()
		op.Done()
		c.WriteMemory(addr, value)

	case OpDEI:
		port := op.Byte()
		op.Done()
		target.PushItem(c.Device.ReadMemory(port, size))

	case OpDEO:
		port := op.Byte()
		value := op.Item()
		op.Done()
		c.Device.WriteMemory(port, value)

	case OpADD:
		b := op.Item()
		a := op.Item()
		op.Done()
		target.PushItem(a.Add(b))

	case OpSUB:
		b := op.Item()
		a := op.Item()
		op.Done()
		target.PushItem(a.Sub(b))

	case OpMUL:
		b := op.Item()
		a := op.Item()
		op.Done()
		target.PushItem(a.Mul(b))

	case OpDIV:
		b := op.Item()
		a := op.Item()
		op.Done()
		target.PushItem(a.Div(b))

	case OpAND:
		b := op.Item()
		a := op.Item()
		op.Done()
		target.PushItem(a.And(b))

	case OpORA:
		b := op.Item()
		a := op.Item()
		op.Done()
		target.PushItem(a.Or(b))

	case OpEOR:
		b := op.Item()
		a := op.Item()
		op.Done()
		target.PushItem(a.Xor(b))

	case OpSFT:
		shift := op.Byte()
		a := op.Item()
		op.Done()
		left := (shift & 0xF0) >> 4
		right := shift & 0x0F
		target.PushItem(a.Shift(left, right))

	default:
		panic("uxn: unreachable opcode")
	}

	return Continue
}

// execOpcode00 implements the six distinct behaviors multiplexed onto
// opcode 0x00 by (stack, size, mode) — there is no shared implementation to
// extract between them (spec.md §4.5, §9).
func (c *CPU) execOpcode00(instr Instruction, target *Stack) ExecResult {
	if instr.Keep {
		// LIT / LIT2: fetch an immediate and push it, regardless of stack flag.
		if instr.Short {
			target.PushShort(c.fetchShort())
		} else {
			target.PushByte(c.fetchByte())
		}
		return Continue
	}

	if !instr.Return {
		if !instr.Short {
			// BRK
			return Break
		}
		// JCI: pop a cond byte from the working stack, then a relative
		// jump, taken only if cond != 0.
		op := target.TakeOperands(Pop, SizeByte)
		cond := op.Byte()
		op.Done()
		rel := c.fetchShort()
		if cond != 0 {
			c.PC += rel
		}
		return Continue
	}

	if !instr.Short {
		// JMI: unconditional relative jump, no stack operand.
		rel := c.fetchShort()
		c.PC += rel
		return Continue
	}

	// JSI: push the return address, then perform JMI's jump.
	retAddr := c.PC + 2
	target.PushShort(retAddr)
	rel := c.fetchShort()
	c.PC += rel
	return Continue
}

// jump implements the JMP/JCN/JSR addressing rule: a Byte operand is a
// signed-relative offset from PC, a Short operand is an absolute address
// (spec.md §4.5's jump(d) definition).
func (c *CPU) jump(dest Item) {
	if dest.Size() == SizeByte {
		c.PC = c.PC + uint16(int16(int8(dest.Byte())))
	} else {
		c.PC = dest.Short()
	}
}

// relativeAddr implements LDR/STR addressing: sign-extend the 8-bit offset
// to 16 bits and add to PC with 16-bit wraparound (spec.md §9's resolution
// of the LDR/STR offset-width open question).
func (c *CPU) relativeAddr(offset uint8) uint16 {
	return c.PC + uint16(int16(int8(offset)))
}

func boolByte(b bool) uint8 {
	if b {
		return 1
	}
	return 0
}
