package conv

import (
	"fmt"
	"math"
)

// ErrOverflow reports a value that does not fit the target type.
type ErrOverflow struct {
	Value  string
	Target string
}

func (e *ErrOverflow) Error() string {
	return fmt.Sprintf("integer overflow: %s cannot be converted to %s", e.Value, e.Target)
}

// IntToUint32 converts int to uint32 safely.
func IntToUint32(v int) (uint32, error) {
	// On 64-bit systems, int can exceed uint32 max; on 32-bit, this is always false
	if v < 0 || uint64(v) > math.MaxUint32 {
		return 0, &ErrOverflow{Value: fmt.Sprint(v), Target: "uint32"}
	}
	return uint32(v), nil
}

// Uint32ToInt converts uint32 to int safely.
func Uint32ToInt(v uint32) (int, error) {
	if uint64(v) > uint64(math.MaxInt) {
		return 0, &ErrOverflow{Value: fmt.Sprint(v), Target: "int"}
	}
	return int(v), nil
}

// IntToUint converts int to uint safely.
func IntToUint(v int) (uint, error) {
	if v < 0 {
		return 0, &ErrOverflow{Value: fmt.Sprint(v), Target: "uint"}
	}
	return uint(v), nil
}

// UintToInt converts uint to int safely.
func UintToInt(v uint) (int, error) {
	if v > uint(math.MaxInt) {
		return 0, &ErrOverflow{Value: fmt.Sprint(v), Target: "int"}
	}
	return int(v), nil
}
