package msp430

import "fmt"

// Core is the fetch-decode-execute pipeline. It holds the register file
// and the running latch; everything else (memory, peripherals, cycle and
// register-activity observers) lives behind Host.
type Core struct {
	regs    Registers
	host    Host
	running bool
}

// NewCore constructs a Core bound to host with all registers zeroed and
// running set to false, matching initialize_registers().
func NewCore(host Host) *Core {
	c := &Core{host: host}
	c.Initialize()
	return c
}

// Initialize zeroes every register and halts the CPU.
func (c *Core) Initialize() {
	c.regs.Reset()
	c.running = false
}

// Registers exposes the register bank for callers (tests, the inspector)
// that need to seed or inspect CPU state directly.
func (c *Core) Registers() *Registers { return &c.regs }

// Running reports whether the CPU is executing.
func (c *Core) Running() bool { return c.running }

// SetRunning lets a caller (the outer run loop, out of scope here) start
// or stop the CPU.
func (c *Core) SetRunning(v bool) { c.running = v }

// fetchWord reads a 16-bit word at PC and advances PC by 2. It is used
// both for the instruction word itself and for every extension word a
// resolver needs.
func (c *Core) fetchWord() uint16 {
	w := readAccess(c.host, c.regs.PC(), Word)
	c.regs.SetPC(c.regs.PC() + 2)
	return w
}

// Fetch is the public form of fetchWord (§4.1).
func (c *Core) Fetch() uint16 {
	return c.fetchWord()
}

// Step fetches, decodes, and executes a single instruction. When disas is
// non-nil it is populated with the mnemonic and operand text alongside
// execution, on the same decode path (§4.2). Step never calls os.Exit;
// invalid-opcode and not-implemented conditions are returned as errors
// (§7, §9).
func (c *Core) Step(disas *Disassembly) (Decoded, error) {
	instr := c.fetchWord()
	return c.decode(instr, disas)
}

func (c *Core) decode(instr uint16, disas *Disassembly) (Decoded, error) {
	formatID := uint8(instr >> 12)

	switch {
	case formatID == 0x1:
		return c.executeFormatII(instr, disas)
	case formatID >= 0x2 && formatID <= 0x3:
		return c.executeFormatIII(instr, disas)
	case formatID >= 0x4:
		return c.executeFormatI(instr, disas)
	default:
		// Invalid top nibble. Not fatal: halt and rewind PC so the
		// instruction can be re-inspected by a caller.
		c.regs.SetPC(c.regs.PC() - 2)
		c.running = false
		if disas != nil {
			disas.Mnemonic = "[INVALID INSTRUCTION]"
		}
		return Decoded{Format: FormatInvalid, Instruction: instr}, nil
	}
}

// errorf is a tiny helper kept for symmetry with hejops-gone's fetch,
// which builds its illegal-opcode error with fmt.Errorf rather than a
// wrapped-errors library.
func errorf(format string, args ...any) error {
	return fmt.Errorf(format, args...)
}
