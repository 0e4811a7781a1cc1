package msp430

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveSourceRegisterDirect(t *testing.T) {
	h := newFakeHost()
	c := NewCore(h)
	c.Registers().Set(4, 0x55AA)

	op, val, mode, err := resolveSourceOperand(c, 4, 0b00, Word)
	assert.NoError(t, err)
	assert.Equal(t, ModeRegister, mode)
	assert.Equal(t, uint16(0x55AA), val)
	assert.False(t, op.IsMemory)
	assert.Equal(t, uint16(1), h.registerReads)
}

func TestResolveSourceSymbolicUsesPostFetchPC(t *testing.T) {
	h := newFakeHost()
	h.loadWords(0x0000, 0x0010) // extension word
	c := NewCore(h)

	op, _, mode, err := resolveSourceOperand(c, RegPC, 0b01, Word)
	assert.NoError(t, err)
	assert.Equal(t, ModeSymbolic, mode)
	// PC after fetching the extension word is 0x0002; addr = 0x0002+0x10-2.
	assert.Equal(t, uint16(0x0002+0x0010-2), op.Addr)
}

func TestResolveSourceAbsolute(t *testing.T) {
	h := newFakeHost()
	h.loadWords(0x0000, 0x9000)
	c := NewCore(h)

	op, _, mode, err := resolveSourceOperand(c, RegSR, 0b01, Word)
	assert.NoError(t, err)
	assert.Equal(t, ModeAbsolute, mode)
	assert.Equal(t, uint16(0x9000), op.Addr)
}

func TestResolveSourceIndirectAutoIncrementAdvancesByWidth(t *testing.T) {
	h := newFakeHost()
	c := NewCore(h)
	c.Registers().Set(5, 0x0100)

	_, _, mode, err := resolveSourceOperand(c, 5, 0b11, Byte)
	assert.NoError(t, err)
	assert.Equal(t, ModeIndirectAutoInc, mode)
	assert.Equal(t, uint16(0x0101), c.Registers().Get(5))

	c.Registers().Set(5, 0x0100)
	_, _, _, err = resolveSourceOperand(c, 5, 0b11, Word)
	assert.NoError(t, err)
	assert.Equal(t, uint16(0x0102), c.Registers().Get(5))
}

func TestResolveSourceImmediateViaPCAutoIncrements(t *testing.T) {
	h := newFakeHost()
	h.loadWords(0x0000, 0xBEEF)
	c := NewCore(h)

	_, val, mode, err := resolveSourceOperand(c, RegPC, 0b11, Word)
	assert.NoError(t, err)
	assert.Equal(t, ModeImmediate, mode)
	assert.Equal(t, uint16(0xBEEF), val)
	assert.Equal(t, uint16(0x0002), c.Registers().PC())
}

func TestResolveSourceConstantGeneratorSkipsExtensionWord(t *testing.T) {
	h := newFakeHost()
	h.loadWords(0x0000, 0xFFFF) // would be misread as an extension word if fetched
	c := NewCore(h)

	_, val, mode, err := resolveSourceOperand(c, RegCG2, 0b11, Word)
	assert.NoError(t, err)
	assert.Equal(t, ModeConstant, mode)
	assert.Equal(t, uint16(0xFFFF), val) // -1 sign-extended
	assert.Equal(t, uint16(0x0000), c.Registers().PC())
}

func TestResolveDestinationIndexed(t *testing.T) {
	h := newFakeHost()
	h.loadWords(0x0000, 0x0020)
	c := NewCore(h)
	c.Registers().Set(6, 0x0100)

	op, mode := resolveDestinationOperand(c, 6, 1)
	assert.Equal(t, ModeIndexed, mode)
	assert.Equal(t, uint16(0x0120), op.Addr)
}

func TestResolveDestinationRegisterDirect(t *testing.T) {
	h := newFakeHost()
	c := NewCore(h)

	op, mode := resolveDestinationOperand(c, 7, 0)
	assert.Equal(t, ModeRegister, mode)
	assert.False(t, op.IsMemory)
	assert.Equal(t, uint8(7), op.RegIndex)
}
