// Package bitvec decomposes fixed-width big-endian buffers into ordered bit
// sequences. Every double-and-add and square-and-multiply loop in the
// arithmetic engines scans one of these sequences most-significant bit first.
package bitvec

// FromBytes32 expands a 32-byte big-endian buffer into its 256 bits,
// most-significant bit first.
func FromBytes32(buf [32]byte) []bool {
	bits := make([]bool, 0, 256)
	for _, b := range buf {
		for i := 7; i >= 0; i-- {
			bits = append(bits, (b>>uint(i))&1 == 1)
		}
	}
	return bits
}
