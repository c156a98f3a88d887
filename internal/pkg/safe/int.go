// Package safe provides numeric conversions with overflow checks.
// Chain quantities arrive as unsigned values while Postgres BIGINT and
// INTEGER columns are signed.
package safe

import (
	"errors"
	"fmt"
	"math"
)

// ErrOutOfRange is returned when a value does not fit the target type.
var ErrOutOfRange = errors.New("value out of range")

// Int64 converts an unsigned value to int64.
func Int64[T ~uint | ~uint32 | ~uint64](v T) (int64, error) {
	if uint64(v) > math.MaxInt64 {
		return 0, fmt.Errorf("%w: %d does not fit int64", ErrOutOfRange, v)
	}

	return int64(v), nil
}

// Int32 converts a signed or unsigned value to int32.
func Int32[T ~int | ~int64 | ~uint | ~uint32 | ~uint64](v T) (int32, error) {
	switch value := any(v).(type) {
	case int:
		if value < math.MinInt32 || value > math.MaxInt32 {
			return 0, fmt.Errorf("%w: %d does not fit int32", ErrOutOfRange, v)
		}
	case int64:
		if value < math.MinInt32 || value > math.MaxInt32 {
			return 0, fmt.Errorf("%w: %d does not fit int32", ErrOutOfRange, v)
		}
	case uint:
		if uint64(value) > math.MaxInt32 {
			return 0, fmt.Errorf("%w: %d does not fit int32", ErrOutOfRange, v)
		}
	case uint32:
		if value > math.MaxInt32 {
			return 0, fmt.Errorf("%w: %d does not fit int32", ErrOutOfRange, v)
		}
	case uint64:
		if value > math.MaxInt32 {
			return 0, fmt.Errorf("%w: %d does not fit int32", ErrOutOfRange, v)
		}
	default:
		return 0, fmt.Errorf("unsupported type %T", v)
	}

	return int32(v), nil
}

// Uint64 converts a signed value read back from the database to uint64.
func Uint64[T ~int | ~int32 | ~int64](v T) (uint64, error) {
	if v < 0 {
		return 0, fmt.Errorf("%w: %d does not fit uint64", ErrOutOfRange, v)
	}

	return uint64(v), nil
}
