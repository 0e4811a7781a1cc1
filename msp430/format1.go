package msp430

import "github.com/rgeosits-msp430/msp430-emulator-core/mask"

var format1Mnemonics = map[uint8]string{
	0x4: "MOV", 0x5: "ADD", 0x6: "ADDC", 0x7: "SUBC",
	0x8: "SUB", 0x9: "CMP", 0xA: "DADD", 0xB: "BIT",
	0xC: "BIC", 0xD: "BIS", 0xE: "XOR", 0xF: "AND",
}

// executeFormatI decodes and executes a two-operand instruction (§4.3-4.5).
// Field layout: [C:4][S:4][Ad:1][BW:1][As:2][D:4].
func (c *Core) executeFormatI(instr uint16, disas *Disassembly) (Decoded, error) {
	hi := byte(instr >> 8)
	lo := byte(instr)

	opcode := mask.First(hi, mask.I4)
	srcReg := mask.Last(hi, mask.I4)
	adFlag := uint8(0)
	if mask.IsSet(lo, mask.I1) {
		adFlag = 1
	}
	bw := Word
	if mask.IsSet(lo, mask.I2) {
		bw = Byte
	}
	asFlag := mask.Range(lo, mask.I3, mask.I4)
	dstReg := mask.Last(lo, mask.I4)

	mnemonic, ok := format1Mnemonics[opcode]
	if !ok {
		return Decoded{}, &ErrInvalidOpcode{Format: "I", Opcode: opcode}
	}

	srcOp, srcVal, srcMode, err := resolveSourceOperand(c, srcReg, asFlag, bw)
	if err != nil {
		return Decoded{}, err
	}

	dstOp, _ := resolveDestinationOperand(c, dstReg, adFlag)
	destIsPC := !dstOp.IsMemory && dstOp.RegIndex == RegPC

	if disas != nil {
		suffix := ""
		if bw == Byte {
			suffix = ".B"
		}
		disas.Mnemonic = mnemonic + suffix
		disas.Source = srcOp.Text
		disas.Dest = dstOp.Text
	}

	if mnemonic == "DADD" {
		return Decoded{Format: FormatI, Mnemonic: mnemonic, DestIsPC: destIsPC, Instruction: instr},
			&ErrNotImplemented{Instruction: instr, Mnemonic: mnemonic}
	}

	// Every opcode but MOV pre-reads the destination (§4.4).
	var dstVal uint16
	if mnemonic != "MOV" {
		dstVal = readOperand(c, dstOp, bw)
	}

	carryIn := c.regs.GetCarry()
	var result uint16
	writeResult := true

	switch mnemonic {
	case "MOV":
		result = srcVal

	case "ADD":
		result = dstVal + srcVal
		c.regs.SetFlags(
			IsAddCarry(dstVal, srcVal, false, bw),
			IsZero(result, bw),
			IsNegative(result, bw),
			IsAddOverflow(dstVal, srcVal, false, bw),
		)

	case "ADDC":
		result = dstVal + srcVal + boolToWord(carryIn)
		c.regs.SetFlags(
			IsAddCarry(dstVal, srcVal, carryIn, bw),
			IsZero(result, bw),
			IsNegative(result, bw),
			IsAddOverflow(dstVal, srcVal, carryIn, bw),
		)

	case "SUBC":
		// dst + ^src + C_in, per the CPU manual's definition (not the
		// original source's dst-(src-1)+C form).
		result = dstVal + ^srcVal + boolToWord(carryIn)
		c.regs.SetFlags(
			IsSubCarry(dstVal, srcVal, carryIn, bw),
			IsZero(result, bw),
			IsNegative(result, bw),
			IsSubOverflow(dstVal, srcVal, carryIn, bw),
		)

	case "SUB":
		result = dstVal + ^srcVal + 1
		c.regs.SetFlags(
			IsSubCarry(dstVal, srcVal, true, bw),
			IsZero(result, bw),
			IsNegative(result, bw),
			IsSubOverflow(dstVal, srcVal, true, bw),
		)

	case "CMP":
		result = dstVal + ^srcVal + 1
		c.regs.SetFlags(
			IsSubCarry(dstVal, srcVal, true, bw),
			IsZero(result, bw),
			IsNegative(result, bw),
			IsSubOverflow(dstVal, srcVal, true, bw),
		)
		writeResult = false

	case "BIT":
		result = dstVal & srcVal
		c.regs.SetFlags(
			!IsZero(result, bw),
			IsZero(result, bw),
			IsNegative(result, bw),
			false,
		)
		writeResult = false

	case "BIC":
		result = dstVal &^ srcVal

	case "BIS":
		result = dstVal | srcVal

	case "XOR":
		result = dstVal ^ srcVal
		c.regs.SetFlags(
			!IsZero(result, bw),
			IsZero(result, bw),
			IsNegative(result, bw),
			IsNegative(dstVal, bw) && IsNegative(srcVal, bw),
		)

	case "AND":
		result = dstVal & srcVal
		c.regs.SetFlags(
			!IsZero(result, bw),
			IsZero(result, bw),
			IsNegative(result, bw),
			false,
		)

	default:
		return Decoded{}, &ErrInvalidOpcode{Format: "I", Opcode: opcode}
	}

	if writeResult {
		writeOperand(c, dstOp, result, bw)
	}

	// PC-destination extra cycle charge (§4.5): 1 when the source is a
	// constant generator, 2 otherwise.
	if destIsPC {
		if srcMode == ModeConstant {
			c.host.ConsumeCycles(1)
		} else {
			c.host.ConsumeCycles(2)
		}
	}

	return Decoded{Format: FormatI, Mnemonic: mnemonic, DestIsPC: destIsPC, Instruction: instr}, nil
}

func boolToWord(b bool) uint16 {
	if b {
		return 1
	}
	return 0
}
