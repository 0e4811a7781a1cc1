package msp430

import "fmt"

// AddrMode names which addressing mode an operand resolved through, used
// by the disassembler and by the CALL edge case in the Format II
// executor (§4.4: CALL's operand value is the symbolic/absolute
// *address*, not the memory word at that address).
type AddrMode int

const (
	ModeRegister AddrMode = iota
	ModeConstant
	ModeSymbolic
	ModeAbsolute
	ModeIndexed
	ModeIndirect
	ModeImmediate
	ModeIndirectAutoInc
)

// Operand is a resolved operand target: either a register (IsMemory
// false, RegIndex set) or a virtual memory address (IsMemory true, Addr
// set). It carries no value of its own — callers use readOperand /
// writeOperand, so that MOV can skip the destination pre-read the way
// §4.4 requires.
type Operand struct {
	IsMemory bool
	Addr     uint16
	RegIndex uint8
	Text     string
}

func registerOperand(reg uint8) Operand {
	return Operand{RegIndex: reg, Text: RegNumToName(reg)}
}

func memoryOperand(addr uint16, text string) Operand {
	return Operand{IsMemory: true, Addr: addr, Text: text}
}

// readOperand loads op's current value at the given width, notifying the
// Host of a register read when op targets a register.
func readOperand(core *Core, op Operand, bw BW) uint16 {
	if op.IsMemory {
		return readAccess(core.host, op.Addr, bw)
	}
	core.host.NotifyRegisterRead(1)
	return core.regs.Get(op.RegIndex)
}

// writeOperand stores value into op. Byte-width register writes clear the
// high byte (§9's resolved byte-write-to-register ambiguity).
func writeOperand(core *Core, op Operand, value uint16, bw BW) {
	if op.IsMemory {
		writeAccess(core.host, op.Addr, value, bw)
		return
	}
	core.host.NotifyRegisterWrite(1)
	if bw == Byte {
		core.regs.Set(op.RegIndex, value&0xFF)
	} else {
		core.regs.Set(op.RegIndex, value)
	}
}

// resolveSourceOperand resolves a source operand for as in 0..3. It
// returns the operand target, its current value, and the addressing mode
// used (needed by CALL's symbolic/absolute-as-address rule). Constant
// generator combinations never fetch an extension word and never read
// the named register.
func resolveSourceOperand(core *Core, reg uint8, asFlag uint8, bw BW) (Operand, uint16, AddrMode, error) {
	if ConstantGeneratorActive(reg, asFlag) {
		v, err := RunConstantGenerator(reg, asFlag)
		if err != nil {
			return Operand{}, 0, ModeConstant, err
		}
		uv := uint16(v)
		return memoryOperand(0, fmt.Sprintf("#0x%04X", uv)), uv, ModeConstant, nil
	}

	switch asFlag {
	case 0b00: // Register direct
		op := registerOperand(reg)
		return op, readOperand(core, op, bw), ModeRegister, nil

	case 0b01:
		switch reg {
		case RegPC: // Symbolic
			x := core.fetchWord()
			addr := core.regs.PC() + x - 2
			op := memoryOperand(addr, fmt.Sprintf("0x%04X", addr))
			return op, readOperand(core, op, bw), ModeSymbolic, nil
		case RegSR: // Absolute
			x := core.fetchWord()
			op := memoryOperand(x, fmt.Sprintf("&0x%04X", x))
			return op, readOperand(core, op, bw), ModeAbsolute, nil
		default: // Indexed
			x := core.fetchWord()
			core.host.NotifyRegisterRead(1)
			base := core.regs.Get(reg)
			addr := base + x
			op := memoryOperand(addr, fmt.Sprintf("0x%04X(%s)", x, RegNumToName(reg)))
			return op, readOperand(core, op, bw), ModeIndexed, nil
		}

	case 0b10: // Indirect
		core.host.NotifyRegisterRead(1)
		addr := core.regs.Get(reg)
		op := memoryOperand(addr, "@"+RegNumToName(reg))
		return op, readOperand(core, op, bw), ModeIndirect, nil

	default: // as == 0b11
		if reg == RegPC { // Immediate
			x := core.fetchWord()
			return memoryOperand(0, fmt.Sprintf("#0x%04X", x)), x, ModeImmediate, nil
		}
		// Indirect auto-increment: read, then advance the source
		// register, even when reg is PC in other addressing slots.
		core.host.NotifyRegisterRead(1)
		addr := core.regs.Get(reg)
		val := readAccess(core.host, addr, bw)
		inc := uint16(2)
		if bw == Byte {
			inc = 1
		}
		core.regs.Set(reg, addr+inc)
		core.host.NotifyRegisterWrite(1)
		op := memoryOperand(addr, "@"+RegNumToName(reg)+"+")
		return op, val, ModeIndirectAutoInc, nil
	}
}

// resolveDestinationOperand resolves a Format I destination for ad in
// {0, 1}. It never triggers the constant generator and never reads the
// target's current value — callers decide whether to pre-read (§4.4:
// every opcode except MOV).
func resolveDestinationOperand(core *Core, reg uint8, adFlag uint8) (Operand, AddrMode) {
	if adFlag == 0 {
		return registerOperand(reg), ModeRegister
	}

	switch reg {
	case RegPC: // Symbolic
		x := core.fetchWord()
		addr := core.regs.PC() + x - 2
		return memoryOperand(addr, fmt.Sprintf("0x%04X", addr)), ModeSymbolic
	case RegSR: // Absolute
		x := core.fetchWord()
		return memoryOperand(x, fmt.Sprintf("&0x%04X", x)), ModeAbsolute
	default: // Indexed
		x := core.fetchWord()
		core.host.NotifyRegisterRead(1)
		base := core.regs.Get(reg)
		addr := base + x
		return memoryOperand(addr, fmt.Sprintf("0x%04X(%s)", x, RegNumToName(reg))), ModeIndexed
	}
}
