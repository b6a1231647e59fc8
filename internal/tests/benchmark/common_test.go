package benchmark

import (
	"bytes"
	"fmt"
)

// InputSizes defines the input lengths for benchmarking.
var InputSizes = []int{13, 64, 1024, 64 * 1024}

// newInput builds an input of n bytes by repeating the reference string.
func newInput(n int) []byte {
	const ref = "Hello, World!"
	return bytes.Repeat([]byte(ref), n/len(ref)+1)[:n]
}

func sizeName(n int) string {
	return fmt.Sprintf("len=%d", n)
}
