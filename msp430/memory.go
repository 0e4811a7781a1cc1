package msp430

import "encoding/binary"

// BW selects byte or word width for a memory access, a register write, or
// a flag computation. It is carried end to end through the resolver,
// the executors, and the flag engine.
type BW int

const (
	Word BW = iota
	Byte
)

// Len reports how many bytes a is wide.
func (a BW) Len() int {
	if a == Byte {
		return 1
	}
	return 2
}

// Host is the external collaborator the core is given at construction.
// It owns the 64 KiB address space (and whatever peripherals are mapped
// into it) and observes cycle/register activity. The core never holds a
// pointer into whatever backs Host; it only calls through the interface.
type Host interface {
	// ReadMemory reads len(out) bytes (1 or 2) starting at addr into out.
	ReadMemory(addr uint16, out []byte)
	// WriteMemory writes data (1 or 2 bytes) starting at addr.
	WriteMemory(addr uint16, data []byte)
	// ConsumeCycles reports n additional cycles spent beyond the base fetch.
	ConsumeCycles(n uint16)
	// NotifyRegisterRead reports n register reads, for tracing/power models.
	NotifyRegisterRead(n uint16)
	// NotifyRegisterWrite reports n register writes.
	NotifyRegisterWrite(n uint16)
}

// readAccess reads a byte- or word-wide value from host memory, handling
// little-endian wire order.
func readAccess(h Host, addr uint16, bw BW) uint16 {
	var buf [2]byte
	n := bw.Len()
	h.ReadMemory(addr, buf[:n])
	if bw == Byte {
		return uint16(buf[0])
	}
	return binary.LittleEndian.Uint16(buf[:2])
}

// writeAccess writes a byte- or word-wide value to host memory.
func writeAccess(h Host, addr uint16, value uint16, bw BW) {
	var buf [2]byte
	n := bw.Len()
	if bw == Byte {
		buf[0] = byte(value)
	} else {
		binary.LittleEndian.PutUint16(buf[:2], value)
	}
	h.WriteMemory(addr, buf[:n])
}
