package msp430

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegNumToName(t *testing.T) {
	assert.Equal(t, "PC", RegNumToName(0))
	assert.Equal(t, "SP", RegNumToName(1))
	assert.Equal(t, "SR", RegNumToName(2))
	assert.Equal(t, "CG2", RegNumToName(3))
	assert.Equal(t, "R4", RegNumToName(4))
	assert.Equal(t, "R15", RegNumToName(15))
}

func TestRegNameToNumAliasesCaseInsensitive(t *testing.T) {
	cases := map[string]uint8{
		"pc": 0, "PC": 0, "R0": 0,
		"sp": 1, "SP": 1, "R1": 1,
		"sr": 2, "SR": 2, "R2": 2,
		"cg2": 3, "CG2": 3, "R3": 3,
		"r5": 5, "R5": 5, "%R5": 5,
		"R15": 15, "%r15": 15,
	}
	for s, want := range cases {
		got, ok := RegNameToNum(s)
		assert.True(t, ok, s)
		assert.Equal(t, want, got, s)
	}
}

func TestRegNameToNumRejectsGarbage(t *testing.T) {
	for _, s := range []string{"", "R", "R16", "RX", "SRR", "XYZ"} {
		_, ok := RegNameToNum(s)
		assert.False(t, ok, s)
	}
}
