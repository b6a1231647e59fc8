// Package shifter implements the byte shift transform measured by encodebench.
//
// Every byte of the input is incremented by a fixed offset using uint8
// arithmetic, so values wrap around at 256:
//
//	Shift([]byte("Hello, World!"), 3) // "Khoor/#Zruog$"
//	Shift([]byte{253, 254, 255}, 3)   // {0, 1, 2}
//
// The transform is not character-set aware; it is not a rotation cipher.
//
// Three entry points are provided:
//
//   - Shift: allocates and returns a new slice of the same length
//   - TryShift: like Shift, but reports allocation failures as ErrOutOfMemory
//   - ShiftInto: writes into a caller-owned buffer without allocating
//
// Results are explicit-length byte slices. No terminator is appended.
package shifter
