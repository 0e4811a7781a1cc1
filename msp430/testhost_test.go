package msp430

// fakeHost is a minimal in-package Host used by the msp430 package's own
// unit tests; it avoids importing mem (which itself imports msp430) and
// just tallies notifications for assertions that need them.
type fakeHost struct {
	ram [64 * 1024]byte

	cycles         uint16
	registerReads  uint16
	registerWrites uint16
}

func newFakeHost() *fakeHost { return &fakeHost{} }

func (h *fakeHost) ReadMemory(addr uint16, out []byte) {
	for i := range out {
		out[i] = h.ram[(int(addr)+i)&0xFFFF]
	}
}

func (h *fakeHost) WriteMemory(addr uint16, data []byte) {
	for i, d := range data {
		h.ram[(int(addr)+i)&0xFFFF] = d
	}
}

func (h *fakeHost) ConsumeCycles(n uint16)       { h.cycles += n }
func (h *fakeHost) NotifyRegisterRead(n uint16)  { h.registerReads += n }
func (h *fakeHost) NotifyRegisterWrite(n uint16) { h.registerWrites += n }

// loadWords writes a sequence of little-endian words starting at addr,
// the way a tiny assembled program image would be laid out.
func (h *fakeHost) loadWords(addr uint16, words ...uint16) {
	for _, w := range words {
		h.ram[addr] = byte(w)
		h.ram[addr+1] = byte(w >> 8)
		addr += 2
	}
}
