package cbitset

import (
	"errors"
	"fmt"
)

var (
	// ErrSlotNotHeld is returned when releasing a pool slot that is not in use.
	ErrSlotNotHeld = errors.New("slot not held")
)

// ErrInvalidLength indicates a bitset length that is not a positive multiple
// of 8.
type ErrInvalidLength struct {
	Length int
}

func (e *ErrInvalidLength) Error() string {
	return fmt.Sprintf("invalid bitset length %d: must be a positive multiple of 8", e.Length)
}

// ErrInvalidPattern indicates a character other than '0' or '1' in a parsed
// bit pattern.
type ErrInvalidPattern struct {
	Pos  int
	Char byte
}

func (e *ErrInvalidPattern) Error() string {
	return fmt.Sprintf("invalid bit pattern: unexpected %q at position %d", e.Char, e.Pos)
}

// ErrOutOfRange indicates an index outside [0, Size).
type ErrOutOfRange struct {
	Index int
	Size  int
}

func (e *ErrOutOfRange) Error() string {
	return fmt.Sprintf("index %d out of range [0, %d)", e.Index, e.Size)
}
