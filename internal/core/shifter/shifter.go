package shifter

import (
	"errors"
	"fmt"
	"runtime"
)

// DefaultOffset is the offset applied by the benchmark.
const DefaultOffset byte = 3

// MaxLen is the largest input TryShift will allocate for.
const MaxLen = 1 << 30

var (
	// ErrOutOfMemory is returned when the output buffer cannot be allocated.
	ErrOutOfMemory = errors.New("shifter: out of memory")

	// ErrShortBuffer is returned by ShiftInto when dst is smaller than src.
	ErrShortBuffer = errors.New("shifter: destination buffer too short")
)

// Func is the signature the benchmark driver calls through.
type Func func(src []byte, offset byte) ([]byte, error)

// Shift returns a new slice where each byte of src is incremented by offset,
// wrapping modulo 256. src is not modified and the result has len(src) bytes.
func Shift(src []byte, offset byte) []byte {
	dst := make([]byte, len(src))
	for i, b := range src {
		dst[i] = b + offset
	}
	return dst
}

// TryShift is Shift with a checked allocation.
//
// Inputs larger than MaxLen are rejected before allocating. Allocation panics
// raised by the runtime are recovered and reported as ErrOutOfMemory. A
// process that has exhausted its heap still dies with a fatal runtime error,
// which cannot be intercepted.
func TryShift(src []byte, offset byte) ([]byte, error) {
	return tryShift(src, offset, MaxLen)
}

func tryShift(src []byte, offset byte, limit int) (dst []byte, err error) {
	if len(src) > limit {
		return nil, fmt.Errorf("%w: input of %d bytes exceeds %d", ErrOutOfMemory, len(src), limit)
	}

	defer func() {
		if r := recover(); r != nil {
			rerr, ok := r.(runtime.Error)
			if !ok {
				panic(r)
			}
			dst = nil
			err = fmt.Errorf("%w: %v", ErrOutOfMemory, rerr)
		}
	}()

	return Shift(src, offset), nil
}

// ShiftInto writes the shifted bytes of src into dst and returns the number
// of bytes written. dst may alias src.
func ShiftInto(dst, src []byte, offset byte) (int, error) {
	if len(dst) < len(src) {
		return 0, ErrShortBuffer
	}
	dst = dst[:len(src)]
	for i, b := range src {
		dst[i] = b + offset
	}
	return len(src), nil
}
