package msp430

import "fmt"

var format3Mnemonics = map[uint8]string{
	0: "JNZ", 1: "JZ", 2: "JNC", 3: "JC",
	4: "JN", 5: "JGE", 6: "JL", 7: "JMP",
}

// executeFormatIII decodes and executes a conditional or unconditional
// jump (§4.3, §4.7). Field layout: [001][C:3][O:10]. The 10-bit offset is
// doubled and sign-extended, then added to PC when the condition holds.
// Every jump, taken or not, costs one cycle.
func (c *Core) executeFormatIII(instr uint16, disas *Disassembly) (Decoded, error) {
	condition := uint8((instr & 0x1C00) >> 10)
	offsetField := instr & 0x03FF

	signedOffset := int32(offsetField) * 2
	if offsetField&0x0200 != 0 {
		signedOffset |= ^int32(0x7FF)
	}

	mnemonic, ok := format3Mnemonics[condition]
	if !ok {
		return Decoded{}, &ErrInvalidOpcode{Format: "III", Opcode: condition}
	}

	c.host.ConsumeCycles(1)

	taken := false
	switch mnemonic {
	case "JNZ":
		taken = !c.regs.GetZero()
	case "JZ":
		taken = c.regs.GetZero()
	case "JNC":
		taken = !c.regs.GetCarry()
	case "JC":
		taken = c.regs.GetCarry()
	case "JN":
		taken = c.regs.GetNegative()
	case "JGE":
		taken = c.regs.GetNegative() == c.regs.GetOverflow()
	case "JL":
		taken = c.regs.GetNegative() != c.regs.GetOverflow()
	case "JMP":
		taken = true
	}

	target := uint16(int32(c.regs.PC()) + signedOffset)
	if disas != nil {
		disas.Mnemonic = mnemonic
		disas.Dest = fmt.Sprintf("0x%04X", target)
	}

	if taken {
		c.regs.SetPC(target)
	}

	return Decoded{Format: FormatIII, Mnemonic: mnemonic, Instruction: instr}, nil
}
