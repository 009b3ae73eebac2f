package bitops

// Unit selects whether BITCOUNT/BITPOS range arguments index bytes or bits.
type Unit int

const (
	UnitByte Unit = iota
	UnitBit
)

// normalizeRange applies BITCOUNT/BITPOS's shared range-normalization rule:
// negative indices count from the end, start clamps to 0, and the range is
// empty if start exceeds the usable length or start > end.
//
// lenUnits is len(data) for UnitByte or len(data)*8 for UnitBit.
func normalizeRange(start, end, lenUnits int64) (normStart, normEnd int64, empty bool) {
	if start < 0 {
		start += lenUnits
	}
	if end < 0 {
		end += lenUnits
	}
	if start < 0 {
		start = 0
	}
	if start >= lenUnits || start > end {
		return 0, 0, true
	}
	if end > lenUnits-1 {
		end = lenUnits - 1
	}
	return start, end, false
}

// BitCount implements BITCOUNT(key, start?, end?, unit): population count
// over the inclusive range [start, end], honoring unit and Redis-style
// negative indexing. hasRange is false for the bare BITCOUNT key form, in
// which case the whole value is counted.
func BitCount(data []byte, hasRange bool, start, end int64, unit Unit) int64 {
	if !hasRange {
		return CountBytes(data)
	}

	var lenUnits int64
	if unit == UnitByte {
		lenUnits = int64(len(data))
	} else {
		lenUnits = int64(len(data)) * 8
	}

	s, e, empty := normalizeRange(start, end, lenUnits)
	if empty {
		return 0
	}
	if unit == UnitByte {
		return countRange(data, s, e)
	}
	return countBitRange(data, s, e)
}

// BitPos implements BITPOS(key, bit, start?, end?, unit): the position of
// the first bit equal to bit within [start, end], scanning MSB-first within
// each byte.
//
// start and end are nil when the caller omitted them (BITPOS defaults start
// to 0 and end to -1, i.e. "to the end of the value"). The distinction
// between an omitted end and one explicitly equal to -1 matters only when
// bit == 0: per spec, a defaulted end lets the scan fall through the
// value's implicit zero-extension and return lenBits, while an explicit end
// confines the search strictly to stored bytes and returns -1 on exhaustion.
func BitPos(data []byte, bit int, start *int64, end *int64, unit Unit) int64 {
	lenBits := int64(len(data)) * 8
	endDefaulted := end == nil

	if len(data) == 0 {
		if bit == 0 && endDefaulted {
			return 0
		}
		return -1
	}

	var lenUnits int64
	if unit == UnitByte {
		lenUnits = int64(len(data))
	} else {
		lenUnits = lenBits
	}

	s0 := int64(0)
	if start != nil {
		s0 = *start
	}
	e0 := int64(-1)
	if end != nil {
		e0 = *end
	}

	s, e, empty := normalizeRange(s0, e0, lenUnits)
	if empty {
		if bit == 0 && endDefaulted {
			return lenBits
		}
		return -1
	}

	var startBit, endBit int64
	if unit == UnitByte {
		startBit, endBit = s*8, e*8+7
	} else {
		startBit, endBit = s, e
	}

	for i := startBit; i <= endBit; i++ {
		if GetBit(data, i) == bit {
			return i
		}
	}

	if bit == 0 && endDefaulted {
		return lenBits
	}
	return -1
}
