/*
author: akashmaji
email: akashmaji@iisc.ac.in
file: go-redis/internal/handlers/handler_bitmap.go

Bitmap Implementation for go-redis
Bitmaps are not a separate data type, but rather a set of bit-oriented
operations defined on the String type. Since strings are binary safe blobs,
they are suitable for holding arbitrarily long bit arrays.

Bit operations are divided into two groups:
 1. Constant-time single bit operations (SETBIT, GETBIT)
 2. Operations on groups of bits (BITCOUNT, BITOP, BITPOS, BITFIELD)

Every handler in this file is a thin adapter: it parses arguments, resolves
the key under the right lock(s), hands the raw bytes to internal/bitops for
the actual bit arithmetic, and writes the (possibly modified) bytes back.
internal/bitops itself never touches the database or the lock registry.
*/
package handlers

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/anirudh-k/bitredis/internal/bitops"
	"github.com/anirudh-k/bitredis/internal/common"
	"github.com/anirudh-k/bitredis/internal/database"
)

// readBytes returns the raw bytes stored at key, or nil if the key is
// absent. It returns a WRONGTYPE error if key holds a non-string value
// (unreachable today since every Item is STRING_TYPE, but kept as the same
// defensive check the rest of the string surface makes).
func readBytes(key string) ([]byte, *common.Value) {
	item, ok := database.DB.Store[key]
	if !ok {
		return nil, nil
	}
	if item.Type != common.STRING_TYPE && item.Type != "" {
		return nil, common.NewErrorValue("WRONGTYPE Operation against a key holding the wrong kind of value")
	}
	return []byte(item.Str), nil
}

// storeBytes writes data back under key, creating the item if absent and
// keeping the database's memory accounting current. Callers must hold
// database.DB.Mu for writing.
func storeBytes(key string, data []byte) {
	var oldMemory int64
	item, existed := database.DB.Store[key]
	if existed {
		oldMemory = item.ApproxMemoryUsage(key)
		item.Str = string(data)
		item.Type = common.STRING_TYPE
	} else {
		item = common.NewStringItem(string(data))
		database.DB.Store[key] = item
	}
	newMemory := item.ApproxMemoryUsage(key)
	database.DB.Mem += newMemory - oldMemory
	if database.DB.Mem > database.DB.Mempeak {
		database.DB.Mempeak = database.DB.Mem
	}
}

// logWrite appends v to the AOF, honoring the configured fsync policy.
func logWrite(state *common.AppState, v *common.Value) {
	if state.Config.AofEnabled {
		database.DB.Aof.W.Write(v)
		if state.Config.AofFsync == common.Always {
			database.DB.Aof.W.Flush()
		}
	}
}

// SetBit handles the SETBIT command.
//
// Syntax: SETBIT <key> <offset> <value>
//
// Sets or clears the bit at offset (0-based, MSB-first within each byte) in
// the string at key, growing and zero-padding the string as needed. Returns
// the bit's prior value.
func SetBit(c *common.Client, v *common.Value, state *common.AppState) *common.Value {
	args := v.Arr[1:]
	if len(args) != 3 {
		return common.NewErrorValue("ERR wrong number of arguments for 'setbit' command")
	}

	key := args[0].Blk
	offset, err := strconv.ParseInt(args[1].Blk, 10, 64)
	if err != nil || offset < 0 || offset > bitops.MaxBitOffset {
		return common.NewErrorValue("ERR " + bitops.ErrBitOffsetRange.Error())
	}
	bitValue, err := strconv.Atoi(args[2].Blk)
	if err != nil || (bitValue != 0 && bitValue != 1) {
		return common.NewErrorValue("ERR " + bitops.ErrBitValueRange.Error())
	}

	lock := database.DB.KeyLock(key)
	lock.Lock()
	defer lock.Unlock()

	database.DB.Mu.Lock()
	defer database.DB.Mu.Unlock()

	data, errVal := readBytes(key)
	if errVal != nil {
		return errVal
	}

	newData, prevBit := bitops.SetBit(data, offset, bitValue)
	storeBytes(key, newData)

	logWrite(state, v)
	return common.NewIntegerValue(int64(prevBit))
}

// GetBit handles the GETBIT command.
//
// Syntax: GETBIT <key> <offset>
//
// Returns the bit at offset, treating any offset beyond the stored string
// (or a missing key) as 0. Never grows the key.
func GetBit(c *common.Client, v *common.Value, state *common.AppState) *common.Value {
	args := v.Arr[1:]
	if len(args) != 2 {
		return common.NewErrorValue("ERR wrong number of arguments for 'getbit' command")
	}

	key := args[0].Blk
	offset, err := strconv.ParseInt(args[1].Blk, 10, 64)
	if err != nil || offset < 0 || offset > bitops.MaxBitOffset {
		return common.NewErrorValue("ERR " + bitops.ErrBitOffsetRange.Error())
	}

	lock := database.DB.KeyLock(key)
	lock.RLock()
	defer lock.RUnlock()

	database.DB.Mu.RLock()
	defer database.DB.Mu.RUnlock()

	data, errVal := readBytes(key)
	if errVal != nil {
		return errVal
	}

	return common.NewIntegerValue(int64(bitops.GetBit(data, offset)))
}

// parseUnit parses the optional BYTE|BIT unit token of BITCOUNT/BITPOS,
// case-insensitively. Any other token yields bitops.ErrSyntax.
func parseUnit(tok string) (bitops.Unit, error) {
	switch strings.ToUpper(tok) {
	case "BYTE":
		return bitops.UnitByte, nil
	case "BIT":
		return bitops.UnitBit, nil
	}
	return bitops.UnitByte, bitops.ErrSyntax
}

// BitCount handles the BITCOUNT command.
//
// Syntax: BITCOUNT <key> [start end [BYTE|BIT]]
//
// Counts set bits across the whole value, or over an inclusive start/end
// range addressed in bytes (default) or bits.
func BitCount(c *common.Client, v *common.Value, state *common.AppState) *common.Value {
	args := v.Arr[1:]
	if len(args) != 1 && len(args) != 3 && len(args) != 4 {
		return common.NewErrorValue("ERR syntax error")
	}

	key := args[0].Blk
	hasRange := len(args) >= 3
	var start, end int64
	unit := bitops.UnitByte

	if hasRange {
		var err error
		start, err = strconv.ParseInt(args[1].Blk, 10, 64)
		if err != nil {
			return common.NewErrorValue("ERR " + bitops.ErrValueRange.Error())
		}
		end, err = strconv.ParseInt(args[2].Blk, 10, 64)
		if err != nil {
			return common.NewErrorValue("ERR " + bitops.ErrValueRange.Error())
		}
		if len(args) == 4 {
			u, err := parseUnit(args[3].Blk)
			if err != nil {
				return common.NewErrorValue("ERR syntax error")
			}
			unit = u
		}
	}

	lock := database.DB.KeyLock(key)
	lock.RLock()
	defer lock.RUnlock()

	database.DB.Mu.RLock()
	defer database.DB.Mu.RUnlock()

	data, errVal := readBytes(key)
	if errVal != nil {
		return errVal
	}

	return common.NewIntegerValue(bitops.BitCount(data, hasRange, start, end, unit))
}

// BitPos handles the BITPOS command.
//
// Syntax: BITPOS <key> <bit> [start [end [BYTE|BIT]]]
//
// Returns the position of the first bit equal to bit within the optional
// range, or -1 if none is found (except that searching for a 0 bit with no
// explicit end also matches the value's implicit trailing zero-extension).
func BitPos(c *common.Client, v *common.Value, state *common.AppState) *common.Value {
	args := v.Arr[1:]
	if len(args) < 2 || len(args) > 5 {
		return common.NewErrorValue("ERR wrong number of arguments for 'bitpos' command")
	}

	key := args[0].Blk
	bit, err := strconv.Atoi(args[1].Blk)
	if err != nil || (bit != 0 && bit != 1) {
		return common.NewErrorValue("ERR " + bitops.ErrBitValueRange.Error())
	}

	var start, end *int64
	unit := bitops.UnitByte

	if len(args) >= 3 {
		s, err := strconv.ParseInt(args[2].Blk, 10, 64)
		if err != nil {
			return common.NewErrorValue("ERR " + bitops.ErrValueRange.Error())
		}
		start = &s
	}
	if len(args) >= 4 {
		e, err := strconv.ParseInt(args[3].Blk, 10, 64)
		if err != nil {
			return common.NewErrorValue("ERR " + bitops.ErrValueRange.Error())
		}
		end = &e
	}
	if len(args) == 5 {
		u, err := parseUnit(args[4].Blk)
		if err != nil {
			return common.NewErrorValue("ERR syntax error")
		}
		unit = u
	}

	lock := database.DB.KeyLock(key)
	lock.RLock()
	defer lock.RUnlock()

	database.DB.Mu.RLock()
	defer database.DB.Mu.RUnlock()

	data, errVal := readBytes(key)
	if errVal != nil {
		return errVal
	}

	return common.NewIntegerValue(bitops.BitPos(data, bit, start, end, unit))
}

// BitOp handles the BITOP command.
//
// Syntax: BITOP <AND|OR|XOR|NOT|DIFF|DIFF1|ANDOR|ONE> <destkey> <key> [key ...]
//
// Every source key (plus destkey) is locked in byte-lexicographic order
// before any reads happen, so two concurrent BITOPs over overlapping key
// sets can never deadlock against each other. Shorter sources are treated
// as zero-padded to the length of the longest; if every source is empty,
// destkey is left untouched (no key is created) and 0 is returned.
func BitOp(c *common.Client, v *common.Value, state *common.AppState) *common.Value {
	args := v.Arr[1:]
	if len(args) < 3 {
		return common.NewErrorValue("ERR wrong number of arguments for 'bitop' command")
	}

	op, ok := bitops.ParseOperator(args[0].Blk)
	if !ok {
		return common.NewErrorValue("ERR " + bitops.ErrUnknownBitOp.Error())
	}
	destKey := args[1].Blk
	sourceArgs := args[2:]

	if op == bitops.OpNot && len(sourceArgs) != 1 {
		return common.NewErrorValue("ERR " + bitops.ErrBitOpNotOneKey.Error())
	}
	if len(sourceArgs) > bitops.MaxBitOpSources {
		return common.NewErrorValue("ERR " + bitops.ErrBitOpTooManyKeys.Error())
	}

	allKeys := map[string]struct{}{destKey: {}}
	sourceKeys := make([]string, len(sourceArgs))
	for i, a := range sourceArgs {
		sourceKeys[i] = a.Blk
		allKeys[a.Blk] = struct{}{}
	}

	ordered := make([]string, 0, len(allKeys))
	for k := range allKeys {
		ordered = append(ordered, k)
	}
	sort.Strings(ordered)

	for _, k := range ordered {
		database.DB.KeyLock(k).Lock()
	}
	defer func() {
		for _, k := range ordered {
			database.DB.KeyLock(k).Unlock()
		}
	}()

	database.DB.Mu.Lock()
	defer database.DB.Mu.Unlock()

	sources := make([][]byte, len(sourceKeys))
	for i, key := range sourceKeys {
		data, errVal := readBytes(key)
		if errVal != nil {
			return errVal
		}
		sources[i] = data
	}

	result := bitops.BitOp(op, sources)
	if result == nil {
		return common.NewIntegerValue(0)
	}

	storeBytes(destKey, result)
	logWrite(state, v)
	return common.NewIntegerValue(int64(len(result)))
}

// BitField handles the BITFIELD command.
//
// Syntax:
//
//	BITFIELD <key> [GET <type> <offset>] [SET <type> <offset> <value>]
//	              [INCRBY <type> <offset> <increment>] [OVERFLOW <WRAP|SAT|FAIL>]
//
// Runs each sub-operation in order against the value at key, returning one
// array element per GET/SET/INCRBY sub-op. OVERFLOW changes the policy used
// by subsequent INCRBY sub-ops within this same call; it produces no reply
// element of its own.
func BitField(c *common.Client, v *common.Value, state *common.AppState) *common.Value {
	return bitField(c, v, state, false)
}

// BitFieldRO handles the BITFIELD_RO command: the same argument grammar as
// BITFIELD, but only GET sub-operations are permitted.
func BitFieldRO(c *common.Client, v *common.Value, state *common.AppState) *common.Value {
	return bitField(c, v, state, true)
}

func bitField(c *common.Client, v *common.Value, state *common.AppState, readOnly bool) *common.Value {
	args := v.Arr[1:]
	if len(args) < 1 {
		return common.NewErrorValue("ERR wrong number of arguments for 'bitfield' command")
	}
	key := args[0].Blk
	tokens := args[1:]

	ops, errVal := parseFieldOps(tokens, readOnly)
	if errVal != nil {
		return errVal
	}

	lock := database.DB.KeyLock(key)
	lock.Lock()
	defer lock.Unlock()

	database.DB.Mu.Lock()
	defer database.DB.Mu.Unlock()

	data, errVal := readBytes(key)
	if errVal != nil {
		return errVal
	}

	newData, results := bitops.Execute(data, ops)

	modified := false
	for _, op := range ops {
		if op.Kind == "SET" || op.Kind == "INCRBY" {
			modified = true
			break
		}
	}
	if modified {
		storeBytes(key, newData)
		logWrite(state, v)
	}

	replies := make([]common.Value, len(results))
	for i, r := range results {
		if r.Null {
			replies[i] = common.Value{Typ: common.NULL}
		} else {
			replies[i] = *common.NewIntegerValue(r.Value)
		}
	}
	return common.NewArrayValue(replies)
}

// parseFieldOps parses a BITFIELD/BITFIELD_RO sub-operation token stream
// into a sequence of bitops.FieldOp. readOnly rejects every sub-op but GET.
func parseFieldOps(tokens []common.Value, readOnly bool) ([]bitops.FieldOp, *common.Value) {
	var ops []bitops.FieldOp
	i := 0
	for i < len(tokens) {
		sub := strings.ToUpper(tokens[i].Blk)

		switch sub {
		case "GET":
			if i+2 >= len(tokens) {
				return nil, common.NewErrorValue("ERR " + bitops.ErrSyntax.Error())
			}
			t, off, errVal := parseTypeAndOffset(tokens[i+1].Blk, tokens[i+2].Blk)
			if errVal != nil {
				return nil, errVal
			}
			ops = append(ops, bitops.FieldOp{Kind: "GET", Type: t, Offset: off})
			i += 3

		case "SET":
			if readOnly {
				return nil, common.NewErrorValue("ERR BITFIELD_RO only supports the GET subcommand")
			}
			if i+3 >= len(tokens) {
				return nil, common.NewErrorValue("ERR " + bitops.ErrSyntax.Error())
			}
			t, off, errVal := parseTypeAndOffset(tokens[i+1].Blk, tokens[i+2].Blk)
			if errVal != nil {
				return nil, errVal
			}
			val, err := strconv.ParseInt(tokens[i+3].Blk, 10, 64)
			if err != nil {
				return nil, common.NewErrorValue("ERR " + bitops.ErrValueRange.Error())
			}
			ops = append(ops, bitops.FieldOp{Kind: "SET", Type: t, Offset: off, Arg: val})
			i += 4

		case "INCRBY":
			if readOnly {
				return nil, common.NewErrorValue("ERR BITFIELD_RO only supports the GET subcommand")
			}
			if i+3 >= len(tokens) {
				return nil, common.NewErrorValue("ERR " + bitops.ErrSyntax.Error())
			}
			t, off, errVal := parseTypeAndOffset(tokens[i+1].Blk, tokens[i+2].Blk)
			if errVal != nil {
				return nil, errVal
			}
			incr, err := strconv.ParseInt(tokens[i+3].Blk, 10, 64)
			if err != nil {
				return nil, common.NewErrorValue("ERR " + bitops.ErrValueRange.Error())
			}
			ops = append(ops, bitops.FieldOp{Kind: "INCRBY", Type: t, Offset: off, Arg: incr})
			i += 4

		case "OVERFLOW":
			if readOnly {
				return nil, common.NewErrorValue("ERR BITFIELD_RO only supports the GET subcommand")
			}
			if i+1 >= len(tokens) {
				return nil, common.NewErrorValue("ERR " + bitops.ErrSyntax.Error())
			}
			policy := strings.ToUpper(tokens[i+1].Blk)
			if policy != string(bitops.OverflowWrap) && policy != string(bitops.OverflowSat) && policy != string(bitops.OverflowFail) {
				return nil, common.NewErrorValue("ERR " + bitops.ErrInvalidOverflow.Error())
			}
			ops = append(ops, bitops.FieldOp{Kind: "OVERFLOW", Overflow: bitops.OverflowPolicy(policy)})
			i += 2

		default:
			return nil, common.NewErrorValue(fmt.Sprintf("ERR unknown BITFIELD subcommand '%s'", sub))
		}
	}
	return ops, nil
}

func parseTypeAndOffset(typeTok, offsetTok string) (bitops.FieldType, int64, *common.Value) {
	t, ok := bitops.ParseFieldType(typeTok)
	if !ok {
		return bitops.FieldType{}, 0, common.NewErrorValue("ERR " + bitops.ErrInvalidBitfield.Error())
	}
	off, ok := bitops.ParseFieldOffset(offsetTok, t.Width)
	if !ok {
		return bitops.FieldType{}, 0, common.NewErrorValue("ERR " + bitops.ErrBitOffsetRange.Error())
	}
	if off > bitops.MaxBitOffset-int64(t.Width) {
		return bitops.FieldType{}, 0, common.NewErrorValue("ERR " + bitops.ErrOutOfRange.Error())
	}
	return t, off, nil
}
