// Package bitops implements the bitmap value engine: bit-level access,
// population counting and bit scanning, multi-source bitwise combination,
// and the typed bitfield codec. Every kernel here operates on plain byte
// slices; persistence and key resolution belong to the caller (the
// handlers package, backed by internal/database).
package bitops

import "errors"

// Sentinel errors carry the exact wire text the command dispatcher echoes
// back to clients (prefixed with "ERR " or "WRONGTYPE " as appropriate).
var (
	ErrBitOffsetRange   = errors.New("bit offset is not an integer or out of range")
	ErrBitValueRange    = errors.New("bit is not an integer or out of range")
	ErrValueRange       = errors.New("value is not an integer or out of range.")
	ErrSyntax           = errors.New("syntax error")
	ErrInvalidOverflow  = errors.New("Invalid OVERFLOW type specified")
	ErrInvalidBitfield  = errors.New("Invalid bitfield type. Use something like i16 u8. Note that u64 is not supported but i64 is")
	ErrBitOpNotOneKey   = errors.New("BITOP NOT must be called with a single source key.")
	ErrBitOpTooManyKeys = errors.New("Bitop source key limit (64) exceeded")
	ErrUnknownBitOp     = errors.New("syntax error")
	ErrOutOfRange       = errors.New("The bitfield type and offset interact to produce an invalid range.")
)
