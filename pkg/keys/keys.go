// Package keys is the public surface of the library: parse a private-key
// scalar, derive its public key on the from-scratch secp256k1 engine, and
// render the Ethereum address.
package keys

import (
	"errors"
	"fmt"

	"github.com/smallyu/go-ecc-derive/internal/crypto/curve"
	"github.com/smallyu/go-ecc-derive/internal/crypto/ethaddr"
	"github.com/smallyu/go-ecc-derive/internal/crypto/modmath"
)

// ErrInfinitePubKey reports a scalar whose public key is the point at
// infinity. Such a key has no coordinates to serialize and no address.
var ErrInfinitePubKey = errors.New("keys: scalar yields the point at infinity")

// PrivateKey holds a parsed private-key scalar. The scalar is kept exactly
// as parsed; it is not reduced modulo the group order.
type PrivateKey struct {
	d modmath.Int
}

// ParsePrivateKey parses a hex private key of at most 64 nibbles, with or
// without a 0x prefix.
func ParsePrivateKey(hexKey string) (PrivateKey, error) {
	d, err := modmath.FromHex(hexKey)
	if err != nil {
		return PrivateKey{}, fmt.Errorf("keys: invalid private key: %w", err)
	}
	return PrivateKey{d: d}, nil
}

// Scalar returns the raw private-key scalar.
func (k PrivateKey) Scalar() modmath.Int {
	return k.d
}

// PublicKey derives the public key by scalar-multiplying the generator with
// the private scalar on the from-scratch curve engine.
func (k PrivateKey) PublicKey() (PublicKey, error) {
	pt, err := curve.ScalarBaseMult(k.d)
	if err != nil {
		return PublicKey{}, fmt.Errorf("keys: derive public key: %w", err)
	}
	if pt.IsInfinity() {
		return PublicKey{}, ErrInfinitePubKey
	}
	return PublicKey{point: pt}, nil
}

// PublicKey is an affine secp256k1 point ready for serialization.
type PublicKey struct {
	point curve.Point
}

// Point returns the underlying affine point.
func (pk PublicKey) Point() curve.Point {
	return pk.point
}

// SerializeUncompressed returns the 65-byte SEC1 uncompressed encoding
// 0x04 ‖ X ‖ Y with 32-byte big-endian coordinates.
func (pk PublicKey) SerializeUncompressed() []byte {
	x := pk.point.X().Bytes32()
	y := pk.point.Y().Bytes32()

	out := make([]byte, 0, 65)
	out = append(out, 0x04)
	out = append(out, x[:]...)
	out = append(out, y[:]...)
	return out
}

// Address returns the EIP-55 checksummed Ethereum address for the key.
func (pk PublicKey) Address() string {
	return ethaddr.FromPubKey(pk.point.X().Bytes32(), pk.point.Y().Bytes32())
}
