package bitops

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_CountBytesWide_Agrees_With_Portable_Oracle(t *testing.T) {
	t.Parallel()

	r := rand.New(rand.NewSource(1))

	for _, size := range []int{0, 1, 7, 8, 9, 16, 17, 256, 1000} {
		data := make([]byte, size)
		r.Read(data)

		want := countBytesPortable(data)
		got := countBytesWide(data)
		assert.Equal(t, want, got, "kernel mismatch for size %d", size)
	}
}

func Test_CountBytes_Uses_Selected_Kernel(t *testing.T) {
	t.Parallel()

	data := []byte{0xff, 0x00, 0x0f, 0xf0}
	assert.Equal(t, int64(16), CountBytes(data))
}

func Test_CountRange_Empty_When_Start_After_End(t *testing.T) {
	t.Parallel()

	assert.Equal(t, int64(0), countRange([]byte{0xff, 0xff}, 1, 0))
}

func Test_CountBitRange_Masks_Boundary_Bytes(t *testing.T) {
	t.Parallel()

	data := []byte{0b11111111, 0b11111111}
	// bits [4, 11] span the low nibble of byte 0 and the high nibble of byte 1.
	assert.Equal(t, int64(8), countBitRange(data, 4, 11))
}

func Test_MaskByteRange(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name         string
		b            byte
		loBit, hiBit int
		want         byte
	}{
		{name: "WholeByte", b: 0xff, loBit: 0, hiBit: 7, want: 0xff},
		{name: "HighNibble", b: 0xff, loBit: 0, hiBit: 3, want: 0b11110000},
		{name: "LowNibble", b: 0xff, loBit: 4, hiBit: 7, want: 0b00001111},
		{name: "SingleBit", b: 0xff, loBit: 2, hiBit: 2, want: 0b00100000},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, testCase.want, maskByteRange(testCase.b, testCase.loBit, testCase.hiBit))
		})
	}
}
