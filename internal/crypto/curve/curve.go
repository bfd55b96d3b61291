// Package curve implements affine secp256k1 point arithmetic on top of the
// modmath engine: point addition, point doubling, and double-and-add scalar
// multiplication. The production curve library never appears here; it is
// used only by tests as a correctness oracle.
package curve

import (
	"errors"

	"github.com/smallyu/go-ecc-derive/internal/crypto/modmath"
	"github.com/smallyu/go-ecc-derive/internal/encoding/bitvec"
)

// ErrEqualX reports point addition of two affine points sharing an
// x-coordinate. That covers the doubling case, which callers must route to
// Double, and the negation case P + (-P), which the chord-slope formula
// cannot express (the chord is vertical).
var ErrEqualX = errors.New("curve: point addition requires distinct x-coordinates")

// Point is a secp256k1 group element: either the identity (point at
// infinity) or an affine coordinate pair. The identity is an explicit
// variant rather than a magic coordinate sentinel, so it can never collide
// with a genuine point.
type Point struct {
	x, y modmath.Int
	inf  bool
}

// Infinity returns the identity element.
func Infinity() Point {
	return Point{inf: true}
}

// NewPoint returns the affine point (x, y). Coordinates are taken as given;
// no curve-membership check is performed.
func NewPoint(x, y modmath.Int) Point {
	return Point{x: x, y: y}
}

// IsInfinity reports whether p is the identity element.
func (p Point) IsInfinity() bool {
	return p.inf
}

// X returns the affine x-coordinate. Meaningless for the identity.
func (p Point) X() modmath.Int {
	return p.x
}

// Y returns the affine y-coordinate. Meaningless for the identity.
func (p Point) Y() modmath.Int {
	return p.y
}

// Equal reports whether p and q are the same group element.
func (p Point) Equal(q Point) bool {
	if p.inf || q.inf {
		return p.inf == q.inf
	}
	return p.x.Equal(q.x) && p.y.Equal(q.y)
}

// Fixed secp256k1 parameters: the field prime P, the group order N, and the
// generator G. Read-only after package init; safe to share without locking.
var (
	P = mustInt("FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFEFFFFFC2F")
	N = mustInt("FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFEBAAEDCE6AF48A03BBFD25E8CD0364141")
	G = NewPoint(
		mustInt("79BE667EF9DCBBAC55A06295CE870B07029BFCDB2DCE28D959F2815B16F81798"),
		mustInt("483ADA7726A3C4655DA4FBFC0E1108A8FD17B448A68554199C47D08FFB10D4B8"),
	)
)

func mustInt(s string) modmath.Int {
	x, err := modmath.FromHex(s)
	if err != nil {
		panic(err)
	}
	return x
}

// Add computes p1 + p2 with the chord rule. The identity short-circuits to
// the other operand. Two affine operands sharing an x-coordinate are
// rejected with ErrEqualX; see the error's doc for why that includes the
// negation case.
//
// For distinct x-coordinates the chord slope is
//
//	λ = (y1 - y2) / (x1 - x2)  mod P
//
// and the sum is x3 = λ² - x1 - x2, y3 = (x1 - x3)·λ - y1.
func Add(p1, p2 Point) (Point, error) {
	if p1.inf {
		return p2, nil
	}
	if p2.inf {
		return p1, nil
	}
	if p1.x.Equal(p2.x) {
		return Point{}, ErrEqualX
	}

	yDiff := p1.y.SubMod(p2.y, P)
	xDiff := p1.x.SubMod(p2.x, P)
	lambda, err := yDiff.DivMod(xDiff, P)
	if err != nil {
		return Point{}, err
	}

	x3 := lambda.MulMod(lambda, P).SubMod(p1.x, P).SubMod(p2.x, P)
	y3 := p1.x.SubMod(x3, P).MulMod(lambda, P).SubMod(p1.y, P)
	return NewPoint(x3, y3), nil
}

// Double computes 2p with the tangent rule. Doubling the identity yields
// the identity, as does doubling any point with y = 0: there the tangent is
// vertical and 2p has no affine form.
//
// Otherwise the tangent slope is
//
//	λ = 3x² / 2y  mod P
//
// and the double is x3 = λ² - 2x, y3 = (x - x3)·λ - y.
func Double(p Point) Point {
	if p.inf || p.y.IsZero() {
		return Infinity()
	}

	twoY := p.y.MulMod(modmath.FromUint64(2), P)
	threeXSq := p.x.MulMod(p.x, P).MulMod(modmath.FromUint64(3), P)
	// P is the fixed field prime, so the modulus precondition always holds.
	lambda, _ := threeXSq.DivMod(twoY, P)

	x3 := lambda.MulMod(lambda, P).SubMod(p.x, P).SubMod(p.x, P)
	y3 := p.x.SubMod(x3, P).MulMod(lambda, P).SubMod(p.y, P)
	return NewPoint(x3, y3)
}

// ScalarMult computes k·q by double-and-add over the bits of k, most
// significant first. The accumulator starts at the identity; leading zero
// bits are skipped via the started flag, after which every step doubles the
// accumulator and every set bit adds q.
//
// The scalar is processed bit-for-bit as given: it is not reduced modulo N
// and no range check is applied. For the generator the result is still the
// correct multiple, since the generator's order divides N.
func ScalarMult(k modmath.Int, q Point) (Point, error) {
	acc := Infinity()
	started := false
	for _, bit := range bitvec.FromBytes32(k.Bytes32()) {
		if started {
			acc = Double(acc)
		}
		if bit {
			started = true
			var err error
			acc, err = Add(acc, q)
			if err != nil {
				return Point{}, err
			}
		}
	}
	return acc, nil
}

// ScalarBaseMult computes k·G.
func ScalarBaseMult(k modmath.Int) (Point, error) {
	return ScalarMult(k, G)
}
