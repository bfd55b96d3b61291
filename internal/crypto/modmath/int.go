// Package modmath implements 256-bit modular-integer arithmetic from first
// principles: overflow-safe modular addition, double-and-add multiplication,
// square-and-multiply exponentiation, and Fermat-based modular division.
//
// The Int type carries a raw 256-bit magnitude only. It is never implicitly
// reduced; the modulus is supplied to each operation, and each operation
// returns a canonical residue in [0, p). The underlying fixed-width limbs
// come from holiman/uint256, which provides the raw add-with-carry,
// subtract, compare, and full-width remainder primitives. The modular
// operators themselves are built here and never delegate to the library's
// own modular arithmetic.
package modmath

import (
	"errors"
	"fmt"

	"github.com/holiman/uint256"

	"github.com/smallyu/go-ecc-derive/internal/encoding/hexutil"
)

var (
	// ErrHexTooLong reports scalar input longer than 64 hex nibbles.
	ErrHexTooLong = errors.New("modmath: hex string exceeds 256 bits")

	// ErrDivModulus reports a division modulus below 2. Fermat inversion
	// needs a prime modulus, and no prime is smaller than 2.
	ErrDivModulus = errors.New("modmath: division modulus must be at least 2")
)

// Int is an immutable 256-bit unsigned magnitude. The zero value is the
// number zero. Two Ints are equal iff their raw magnitudes are equal,
// regardless of any modulus they may be congruent under.
type Int struct {
	v uint256.Int
}

// Zero returns the Int with value 0.
func Zero() Int {
	return Int{}
}

// One returns the Int with value 1.
func One() Int {
	return FromUint64(1)
}

// FromUint64 returns the Int holding n.
func FromUint64(n uint64) Int {
	var x Int
	x.v.SetUint64(n)
	return x
}

// FromHex parses a big-endian base-16 magnitude. An optional "0x" prefix is
// accepted, leading zero nibbles are allowed, and anything longer than 64
// nibbles (256 bits) is rejected with ErrHexTooLong.
func FromHex(s string) (Int, error) {
	b, err := hexutil.Decode(s)
	if err != nil {
		return Int{}, fmt.Errorf("modmath: %w", err)
	}
	if len(b) > 32 {
		return Int{}, fmt.Errorf("%w: %q", ErrHexTooLong, s)
	}
	var x Int
	x.v.SetBytes(b)
	return x, nil
}

// FromBytes32 builds an Int from a fixed 32-byte big-endian buffer.
func FromBytes32(buf [32]byte) Int {
	var x Int
	x.v.SetBytes(buf[:])
	return x
}

// Bytes32 returns the fixed 32-byte big-endian serialization of x.
func (x Int) Bytes32() [32]byte {
	return x.v.Bytes32()
}

// Hex returns the full-width 64-nibble lowercase hex form of x.
func (x Int) Hex() string {
	b := x.v.Bytes32()
	return hexutil.Encode(b[:])
}

// String implements fmt.Stringer.
func (x Int) String() string {
	return x.Hex()
}

// Equal reports whether the raw magnitudes of x and y are identical.
func (x Int) Equal(y Int) bool {
	return x.v.Eq(&y.v)
}

// IsZero reports whether x is the number zero.
func (x Int) IsZero() bool {
	return x.v.IsZero()
}

// Cmp returns -1, 0 or 1 depending on whether x is less than, equal to, or
// greater than y as a raw magnitude.
func (x Int) Cmp(y Int) int {
	return x.v.Cmp(&y.v)
}

// Mod returns the raw remainder of x divided by p. A zero p yields zero,
// matching the fixed-width remainder primitive.
func (x Int) Mod(p Int) Int {
	var r Int
	r.v.Mod(&x.v, &p.v)
	return r
}
