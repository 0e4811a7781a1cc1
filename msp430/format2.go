package msp430

var format2Mnemonics = map[uint8]string{
	0x0: "RRC", 0x1: "SWPB", 0x2: "RRA", 0x3: "SXT",
	0x4: "PUSH", 0x5: "CALL", 0x6: "RETI",
}

// executeFormatII decodes and executes a single-operand instruction
// (§4.3, §4.6). Field layout: [0001][000][C:3][BW:1][As:2][S:4]. The
// fields straddle the byte boundary, so they're pulled out with plain
// shifts rather than mask, unlike Format I.
func (c *Core) executeFormatII(instr uint16, disas *Disassembly) (Decoded, error) {
	opcode := uint8((instr & 0x0380) >> 7)
	bw := Word
	if instr&0x0040 != 0 {
		bw = Byte
	}
	asFlag := uint8((instr & 0x0030) >> 4)
	srcReg := uint8(instr & 0x000F)

	mnemonic, ok := format2Mnemonics[opcode]
	if !ok {
		return Decoded{}, &ErrInvalidOpcode{Format: "II", Opcode: opcode}
	}

	// RETI takes no operand; every other Format II opcode resolves one.
	if mnemonic == "RETI" {
		if disas != nil {
			disas.Mnemonic = mnemonic
		}
		sp := c.regs.SP()
		sr := readAccess(c.host, sp, Word)
		sp += 2
		pc := readAccess(c.host, sp, Word)
		sp += 2
		c.regs.SetSP(sp)
		c.regs.SetSR(sr)
		c.regs.SetPC(pc)
		c.host.ConsumeCycles(2)
		return Decoded{Format: FormatII, Mnemonic: mnemonic, Instruction: instr}, nil
	}

	srcOp, srcVal, srcMode, err := resolveSourceOperand(c, srcReg, asFlag, bw)
	if err != nil {
		return Decoded{}, err
	}

	if disas != nil {
		suffix := ""
		if bw == Byte {
			suffix = ".B"
		}
		disas.Mnemonic = mnemonic + suffix
		disas.Dest = srcOp.Text
	}

	switch mnemonic {
	case "RRC":
		masked := srcVal & uint16(widthMask(bw))
		carryIn := uint16(0)
		if c.regs.GetCarry() {
			carryIn = 1
		}
		newCarry := masked&1 != 0
		result := (masked >> 1) | (carryIn << uint(signBitIndex(bw)))
		c.regs.SetFlags(newCarry, IsZero(result, bw), IsNegative(result, bw), false)
		writeOperand(c, srcOp, result, bw)

	case "SWPB":
		result := (srcVal>>8)&0xFF | (srcVal&0xFF)<<8
		writeOperand(c, srcOp, result, Word)

	case "RRA":
		masked := srcVal & uint16(widthMask(bw))
		carryOut := masked&1 != 0
		signMask := uint16(0)
		if IsNegative(masked, bw) {
			signMask = uint16(signBit(bw))
		}
		result := (masked >> 1) | signMask
		c.regs.SetFlags(carryOut, IsZero(result, bw), IsNegative(result, bw), false)
		writeOperand(c, srcOp, result, bw)

	case "SXT":
		result := uint16(TruncateByte(srcVal))
		c.regs.SetFlags(!IsZero(result, Word), IsZero(result, Word), IsNegative(result, Word), false)
		writeOperand(c, srcOp, result, Word)

	case "PUSH":
		// SP always drops by 2, even for PUSH.B, but the write itself is
		// bw-wide: a byte push only touches mem[SP], leaving mem[SP+1]
		// alone.
		sp := c.regs.SP() - 2
		c.regs.SetSP(sp)
		writeAccess(c.host, sp, srcVal, bw)
		if !srcOp.IsMemory {
			c.host.ConsumeCycles(1)
		}

	case "CALL":
		callTarget := srcVal
		if srcMode == ModeSymbolic || srcMode == ModeAbsolute {
			callTarget = srcOp.Addr
		}
		sp := c.regs.SP() - 2
		c.regs.SetSP(sp)
		writeAccess(c.host, sp, c.regs.PC(), Word)
		c.regs.SetPC(callTarget)
		c.host.ConsumeCycles(1)

	default:
		return Decoded{}, &ErrInvalidOpcode{Format: "II", Opcode: opcode}
	}

	if srcMode == ModeIndirectAutoInc && srcReg == RegPC {
		c.host.ConsumeCycles(1)
	}

	return Decoded{Format: FormatII, Mnemonic: mnemonic, Instruction: instr}, nil
}

func signBitIndex(bw BW) int {
	if bw == Byte {
		return 7
	}
	return 15
}
