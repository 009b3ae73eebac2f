package bitops

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_ParseFieldType_Signed_And_Unsigned(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name string
		tok  string
		want FieldType
		ok   bool
	}{
		{name: "SignedByte", tok: "i8", want: FieldType{Signed: true, Width: 8}, ok: true},
		{name: "UnsignedByte", tok: "u8", want: FieldType{Signed: false, Width: 8}, ok: true},
		{name: "SignedMax", tok: "i64", want: FieldType{Signed: true, Width: 64}, ok: true},
		{name: "UnsignedMax", tok: "u63", want: FieldType{Signed: false, Width: 63}, ok: true},
		{name: "UnsignedSixtyFourRejected", tok: "u64", ok: false},
		{name: "SignedTooWide", tok: "i65", ok: false},
		{name: "BadPrefix", tok: "x8", ok: false},
		{name: "ZeroWidth", tok: "i0", ok: false},
		{name: "NotANumber", tok: "iabc", ok: false},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			got, ok := ParseFieldType(testCase.tok)
			require.Equal(t, testCase.ok, ok)
			if testCase.ok {
				assert.Equal(t, testCase.want, got)
			}
		})
	}
}

func Test_ParseFieldOffset_Absolute_And_Hash_Modes(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name  string
		tok   string
		width uint
		want  int64
		ok    bool
	}{
		{name: "Absolute", tok: "100", width: 8, want: 100, ok: true},
		{name: "HashMultipliesByWidth", tok: "#3", width: 8, want: 24, ok: true},
		{name: "NegativeAbsoluteRejected", tok: "-1", width: 8, ok: false},
		{name: "NegativeHashRejected", tok: "#-1", width: 8, ok: false},
		{name: "Garbage", tok: "abc", width: 8, ok: false},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			got, ok := ParseFieldOffset(testCase.tok, testCase.width)
			require.Equal(t, testCase.ok, ok)
			if testCase.ok {
				assert.Equal(t, testCase.want, got)
			}
		})
	}
}

func Test_Execute_Get_Reads_Zero_Beyond_Stored_Data(t *testing.T) {
	t.Parallel()

	ty, ok := ParseFieldType("u8")
	require.True(t, ok)

	_, results := Execute(nil, []FieldOp{{Kind: "GET", Type: ty, Offset: 0}})
	require.Len(t, results, 1)
	assert.Equal(t, int64(0), results[0].Value)
	assert.False(t, results[0].Null)
}

func Test_Execute_Set_Returns_Prior_Value_And_Writes_New(t *testing.T) {
	t.Parallel()

	ty, ok := ParseFieldType("u8")
	require.True(t, ok)

	data, results := Execute(nil, []FieldOp{{Kind: "SET", Type: ty, Offset: 0, Arg: 200}})
	require.Len(t, results, 1)
	assert.Equal(t, int64(0), results[0].Value, "prior value of an absent field is 0")

	_, results = Execute(data, []FieldOp{{Kind: "GET", Type: ty, Offset: 0}})
	assert.Equal(t, int64(200), results[0].Value)
}

func Test_Execute_Set_Prior_Value_Reads_Through_Partially_Stored_Field(t *testing.T) {
	t.Parallel()

	u16, ok := ParseFieldType("u16")
	require.True(t, ok)

	// one stored byte (0x80) covers only the high half of a 2-byte field
	// starting at offset 0; the low byte is implicit zero-extension.
	data := []byte{0x80}
	_, results := Execute(data, []FieldOp{{Kind: "SET", Type: u16, Offset: 0, Arg: 0}})
	require.Len(t, results, 1)
	assert.Equal(t, int64(0x8000), results[0].Value, "prior value must read through the implicit zero-extended low byte")
}

func Test_Execute_Incrby_Reads_Through_Partially_Stored_Field(t *testing.T) {
	t.Parallel()

	u16, ok := ParseFieldType("u16")
	require.True(t, ok)

	data := []byte{0x80}
	_, results := Execute(data, []FieldOp{{Kind: "INCRBY", Type: u16, Offset: 0, Arg: 1}})
	require.Len(t, results, 1)
	assert.Equal(t, int64(0x8001), results[0].Value, "INCRBY must add to the zero-extended prior value, not 0")
}

func Test_Execute_Incrby_Wraps_By_Default(t *testing.T) {
	t.Parallel()

	ty, ok := ParseFieldType("u8")
	require.True(t, ok)

	data, _ := Execute(nil, []FieldOp{{Kind: "SET", Type: ty, Offset: 0, Arg: 255}})
	_, results := Execute(data, []FieldOp{{Kind: "INCRBY", Type: ty, Offset: 0, Arg: 1}})
	require.Len(t, results, 1)
	assert.Equal(t, int64(0), results[0].Value, "u8 255+1 wraps to 0 under WRAP")
}

func Test_Execute_Incrby_Saturates_Under_Sat_Policy(t *testing.T) {
	t.Parallel()

	ty, ok := ParseFieldType("u8")
	require.True(t, ok)

	data, _ := Execute(nil, []FieldOp{{Kind: "SET", Type: ty, Offset: 0, Arg: 255}})
	_, results := Execute(data, []FieldOp{
		{Kind: "OVERFLOW", Overflow: OverflowSat},
		{Kind: "INCRBY", Type: ty, Offset: 0, Arg: 1},
	})
	require.Len(t, results, 1)
	assert.Equal(t, int64(255), results[0].Value, "u8 saturates at 255")
}

func Test_Execute_Incrby_Fails_Leaving_Value_Unchanged(t *testing.T) {
	t.Parallel()

	ty, ok := ParseFieldType("u8")
	require.True(t, ok)

	data, _ := Execute(nil, []FieldOp{{Kind: "SET", Type: ty, Offset: 0, Arg: 255}})
	newData, results := Execute(data, []FieldOp{
		{Kind: "OVERFLOW", Overflow: OverflowFail},
		{Kind: "INCRBY", Type: ty, Offset: 0, Arg: 1},
	})
	require.Len(t, results, 1)
	assert.True(t, results[0].Null, "FAIL policy on overflow returns a null reply")

	_, getResult := Execute(newData, []FieldOp{{Kind: "GET", Type: ty, Offset: 0}})
	assert.Equal(t, int64(255), getResult[0].Value, "FAIL must not mutate the stored value")
}

func Test_Execute_Overflow_Policy_Only_Affects_Later_Ops(t *testing.T) {
	t.Parallel()

	ty, ok := ParseFieldType("u8")
	require.True(t, ok)

	data, _ := Execute(nil, []FieldOp{{Kind: "SET", Type: ty, Offset: 0, Arg: 255}})
	_, results := Execute(data, []FieldOp{
		{Kind: "INCRBY", Type: ty, Offset: 0, Arg: 1}, // still WRAP here
		{Kind: "OVERFLOW", Overflow: OverflowSat},
	})
	require.Len(t, results, 1)
	assert.Equal(t, int64(0), results[0].Value, "policy change takes effect only for subsequent sub-ops")
}

func Test_ApplyOverflow_Signed_Width_64_Avoids_Add_Overflow(t *testing.T) {
	t.Parallel()

	ty := FieldType{Signed: true, Width: 64}
	maxS := int64(1<<63 - 1)

	_, ok := applyOverflow(ty, maxS, 1, OverflowFail)
	assert.False(t, ok, "i64 overflow must be detected without relying on old+incr wraparound")

	result, ok := applyOverflow(ty, maxS, 1, OverflowSat)
	require.True(t, ok)
	assert.Equal(t, maxS, result)
}

func Test_ApplyOverflow_Unsigned_Underflow_Saturates_To_Zero(t *testing.T) {
	t.Parallel()

	ty, ok := ParseFieldType("u8")
	require.True(t, ok)

	result, ok := applyOverflow(ty, 0, -1, OverflowSat)
	require.True(t, ok)
	assert.Equal(t, int64(0), result)
}

func Test_WrapSigned_Truncates_And_Sign_Extends(t *testing.T) {
	t.Parallel()

	assert.Equal(t, int64(-1), wrapSigned(0xff, 8), "0xff truncated to i8 is -1")
	assert.Equal(t, int64(127), wrapSigned(0x7f, 8))
}

func Test_WrapUnsigned_Truncates(t *testing.T) {
	t.Parallel()

	assert.Equal(t, uint64(0xff), wrapUnsigned(0x1ff, 8))
}

func Test_ReadField_And_WriteField_Round_Trip_Signed(t *testing.T) {
	t.Parallel()

	ty := FieldType{Signed: true, Width: 8}
	data := writeField(nil, 0, ty, -5)
	assert.Equal(t, int64(-5), readField(data, 0, ty))
}
