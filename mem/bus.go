// Package mem provides the default in-process Host the msp430 core talks
// to when no other peripheral model is plugged in: one flat 64 KiB
// address space, with no memory-mapped I/O and no mirroring.
package mem

import "github.com/rgeosits-msp430/msp430-emulator-core/msp430"

// A Bus is the central object that backs the CPU's entire address space.
// It also tallies cycle counts and register traffic the core reports
// through the Host interface, for use by the inspector and by tests.
type Bus struct {
	Ram [64 * 1024]byte // 64 KiB, zeroed on init

	Cycles         uint64
	RegisterReads  uint64
	RegisterWrites uint64
}

var _ msp430.Host = (*Bus)(nil)

// NewBus returns a Bus with a zeroed address space.
func NewBus() *Bus {
	return &Bus{}
}

// LoadImage copies data into the bus starting at addr, for bootstrapping
// a program image before the CPU runs (out of range data is dropped
// rather than wrapping or panicking).
func (b *Bus) LoadImage(addr uint16, data []byte) {
	for i, d := range data {
		off := int(addr) + i
		if off >= len(b.Ram) {
			break
		}
		b.Ram[off] = d
	}
}

func (b *Bus) ReadMemory(addr uint16, out []byte) {
	for i := range out {
		out[i] = b.Ram[(int(addr)+i)&0xFFFF]
	}
}

func (b *Bus) WriteMemory(addr uint16, data []byte) {
	for i, d := range data {
		b.Ram[(int(addr)+i)&0xFFFF] = d
	}
}

func (b *Bus) ConsumeCycles(n uint16) { b.Cycles += uint64(n) }

func (b *Bus) NotifyRegisterRead(n uint16) { b.RegisterReads += uint64(n) }

func (b *Bus) NotifyRegisterWrite(n uint16) { b.RegisterWrites += uint64(n) }
