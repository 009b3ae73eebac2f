package bitops

import (
	"encoding/binary"
	"math/bits"
)

var popcountTable [256]byte

func init() {
	for i := range popcountTable {
		popcountTable[i] = byte(bits.OnesCount8(uint8(i)))
	}
}

// countBytesPortable is the 256-byte lookup-table popcount: the oracle every
// faster kernel must agree with bit-for-bit.
func countBytesPortable(data []byte) int64 {
	var n int64
	for _, b := range data {
		n += int64(popcountTable[b])
	}
	return n
}

// countBytesWide counts set bits 8 bytes at a time via bits.OnesCount64,
// which the compiler lowers to a single hardware population-count
// instruction (POPCNT on amd64, CNT on arm64) when the target supports it.
func countBytesWide(data []byte) int64 {
	var n int64
	i := 0
	for ; i+8 <= len(data); i += 8 {
		n += int64(bits.OnesCount64(binary.BigEndian.Uint64(data[i : i+8])))
	}
	for ; i < len(data); i++ {
		n += int64(popcountTable[data[i]])
	}
	return n
}

// CountBytes returns the total population count of data using whichever
// kernel capability selection chose at process start.
func CountBytes(data []byte) int64 {
	return popcountKernel(data)
}

// countRange counts set bits over the inclusive byte range [start, end] of
// data per BITCOUNT's BYTE unit.
func countRange(data []byte, start, end int64) int64 {
	if start > end {
		return 0
	}
	return CountBytes(data[start : end+1])
}

// countBitRange counts set bits over the inclusive bit range [start, end]
// per BITCOUNT's BIT unit: full interior bytes use the fast popcount path,
// the two boundary bytes are masked before counting.
func countBitRange(data []byte, start, end int64) int64 {
	if start > end {
		return 0
	}
	startByte, startBit := start/8, start%8
	endByte, endBit := end/8, end%8

	if startByte == endByte {
		return int64(popcountTable[maskByteRange(byteAt(data, startByte), int(startBit), int(endBit))])
	}

	var n int64
	n += int64(popcountTable[maskByteRange(byteAt(data, startByte), int(startBit), 7)])
	if endByte > startByte+1 {
		n += countRange(data, startByte+1, endByte-1)
	}
	n += int64(popcountTable[maskByteRange(byteAt(data, endByte), 0, int(endBit))])
	return n
}

// byteAt returns data[i], or 0 if i is beyond data's length (zero-extension
// past the stored value).
func byteAt(data []byte, i int64) byte {
	if i < 0 || i >= int64(len(data)) {
		return 0
	}
	return data[i]
}

// maskByteRange zeroes every bit of b outside [loBit, hiBit] (MSB-first,
// 0 = most significant bit).
func maskByteRange(b byte, loBit, hiBit int) byte {
	var mask byte = 0xff
	mask >>= uint(loBit)
	mask &^= 0xff >> uint(hiBit+1)
	return b & mask
}
