package mask

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMask(t *testing.T) {
	assert.Equal(t, Last(0b0000_1111, I1), byte(0b0000_0001))
	assert.Equal(t, Last(0b0000_1111, I2), byte(0b0000_0011))
	assert.Equal(t, Last(0b0000_1111, I3), byte(0b0000_0111))
	assert.Equal(t, Last(0b0000_1111, I4), byte(0b0000_1111))

	assert.Equal(t, Last(0b1000_1111, I1), byte(0b0000_0001))
	assert.Equal(t, Last(0b1000_1111, I2), byte(0b0000_0011))
	assert.Equal(t, Last(0b1000_1111, I3), byte(0b0000_0111))
	assert.Equal(t, Last(0b1000_1111, I4), byte(0b0000_1111))

	assert.Equal(t, Last(0b0000_1010, I1), byte(0b0000_0000))
	assert.Equal(t, Last(0b0000_1010, I2), byte(0b0000_0010))
	assert.Equal(t, Last(0b0000_1010, I3), byte(0b0000_0010))
	assert.Equal(t, Last(0b0000_1010, I4), byte(0b0000_1010))

	assert.Equal(t, First(0b1111_1111, 1), byte(0b0000_0001))
	assert.Equal(t, First(0b1010_1111, 4), byte(0b0000_1010))

	assert.Equal(t, Range(0b1101_1000, I1, I2), byte(0b0000_0011))
	assert.Equal(t, Range(0b1101_1000, I2, I4), byte(0b0000_0101))
	assert.Equal(t, Range(0b1101_1000, I4, I5), byte(0b0000_0011))
	assert.Equal(t, Range(0b1101_1000, I5, I8), byte(0b0000_1000))

	assert.True(t, IsSet(0b1101_1000, 1))
	assert.True(t, IsSet(0b1101_1000, 2))
	assert.False(t, IsSet(0b1101_1000, 3))
	assert.True(t, IsSet(0b1101_1000, 4))

	// assert.Panics(t, func() { _ = Last(byte(0), 10) })
	// assert.Panics(t, func() { _ = Range(byte(0), 0, 9) })
}

func BenchmarkLast(b *testing.B) {
	Last(0b1000_1111, 4)
}

func BenchmarkLastLoop(b *testing.B) {
	lastLoop(0b1000_1111, 4)
}

func BenchmarkFirst(b *testing.B) {
	First(0b1000_1111, 4)
}
