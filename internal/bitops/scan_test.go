package bitops

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_BitCount_Counts_Whole_Value_When_No_Range_Given(t *testing.T) {
	t.Parallel()

	data := []byte("foobar")
	assert.Equal(t, int64(26), BitCount(data, false, 0, 0, UnitByte))
}

func Test_BitCount_Byte_Range(t *testing.T) {
	t.Parallel()

	data := []byte("foobar")

	testCases := []struct {
		name       string
		start, end int64
		want       int64
	}{
		{name: "FirstByte", start: 0, end: 0, want: 4},
		{name: "ByteOneToOne", start: 1, end: 1, want: 6},
		{name: "NegativeIndices", start: -2, end: -1, want: 7},
		{name: "OutOfRangeStart", start: 10, end: 20, want: 0},
		{name: "CrossedRange", start: 4, end: 1, want: 0},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()
			got := BitCount(data, true, testCase.start, testCase.end, UnitByte)
			assert.Equal(t, testCase.want, got)
		})
	}
}

func Test_BitCount_Bit_Range(t *testing.T) {
	t.Parallel()

	data := []byte{0xff, 0x00}
	assert.Equal(t, int64(5), BitCount(data, true, 0, 4, UnitBit))
}

func Test_BitPos_Finds_First_Set_Bit(t *testing.T) {
	t.Parallel()

	data := []byte{0x00, 0xff}
	assert.Equal(t, int64(8), BitPos(data, 1, nil, nil, UnitByte))
}

func Test_BitPos_Zero_Bit_With_Defaulted_End_Falls_Through_To_Trailing_Extension(t *testing.T) {
	t.Parallel()

	data := []byte{0xff}
	assert.Equal(t, int64(8), BitPos(data, 0, nil, nil, UnitByte), "no explicit end: trailing zero-extension counts")
}

func Test_BitPos_Zero_Bit_With_Explicit_End_Does_Not_Extend(t *testing.T) {
	t.Parallel()

	data := []byte{0xff}
	end := int64(0)
	assert.Equal(t, int64(-1), BitPos(data, 0, nil, &end, UnitByte), "explicit end confines the search to stored bytes")
}

func Test_BitPos_Returns_Minus_One_When_Not_Found_In_Range(t *testing.T) {
	t.Parallel()

	data := []byte{0xff, 0xff}
	start, end := int64(0), int64(1)
	assert.Equal(t, int64(-1), BitPos(data, 0, &start, &end, UnitByte))
}

func Test_BitPos_Empty_Data(t *testing.T) {
	t.Parallel()

	assert.Equal(t, int64(0), BitPos(nil, 0, nil, nil, UnitByte), "searching for 0 in an empty value with no explicit end returns 0")
	assert.Equal(t, int64(-1), BitPos(nil, 1, nil, nil, UnitByte), "searching for 1 in an empty value never matches")
}

func Test_NormalizeRange_Negative_Indices(t *testing.T) {
	t.Parallel()

	start, end, empty := normalizeRange(-2, -1, 10)
	assert.False(t, empty)
	assert.Equal(t, int64(8), start)
	assert.Equal(t, int64(9), end)
}

func Test_NormalizeRange_Clamps_Start_To_Zero(t *testing.T) {
	t.Parallel()

	start, _, empty := normalizeRange(-100, 5, 10)
	assert.False(t, empty)
	assert.Equal(t, int64(0), start)
}
