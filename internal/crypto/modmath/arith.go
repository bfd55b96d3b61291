package modmath

import (
	"github.com/holiman/uint256"

	"github.com/smallyu/go-ecc-derive/internal/encoding/bitvec"
)

// AddMod returns (x + y) mod p as a canonical residue in [0, p).
//
// Both operands are reduced first, so each is below p, but their sum can
// still exceed the 256-bit range when p is close to 2^256. In that case the
// raw addition wraps and the truncated result is short by exactly
// 2^256 - p ≡ 2^256 mod p, which is added back before the final reduction.
func (x Int) AddMod(y, p Int) Int {
	var a, b uint256.Int
	a.Mod(&x.v, &p.v)
	b.Mod(&y.v, &p.v)

	var sum uint256.Int
	_, wrapped := sum.AddOverflow(&a, &b)
	if wrapped {
		var back uint256.Int
		back.Neg(&p.v) // 2^256 - p
		sum.Add(&sum, &back)
	}

	var r Int
	r.v.Mod(&sum, &p.v)
	return r
}

// SubMod returns (x - y) mod p as a canonical residue in [0, p).
//
// Rather than risking unsigned underflow, the subtraction is rewritten as
// (x mod p) + (p - (y mod p)) and handed to AddMod.
func (x Int) SubMod(y, p Int) Int {
	var a, b uint256.Int
	a.Mod(&x.v, &p.v)
	b.Mod(&y.v, &p.v)
	b.Sub(&p.v, &b)
	return Int{v: a}.AddMod(Int{v: b}, p)
}

// MulMod returns (x * y) mod p via double-and-add, treating multiplication
// as repeated modular addition.
//
// Both operands are reduced, the smaller drives the bit scan and the larger
// becomes the constant addend. The scan runs over the driver's bits from the
// most significant end; leading zero bits are skipped via the started flag.
// Once a set bit is seen, every subsequent step doubles the accumulator, and
// each set bit additionally folds in the addend. Every step is an AddMod, so
// the accumulator never leaves [0, p).
func (x Int) MulMod(y, p Int) Int {
	a := x.Mod(p)
	b := y.Mod(p)

	driver, addend := a, b
	if b.Cmp(a) < 0 {
		driver, addend = b, a
	}

	acc := Zero()
	started := false
	for _, bit := range bitvec.FromBytes32(driver.Bytes32()) {
		if started {
			acc = acc.AddMod(acc, p)
		}
		if bit {
			started = true
			acc = acc.AddMod(addend, p)
		}
	}
	return acc
}

// ExpMod returns x^e mod p via square-and-multiply: the same bit scan as
// MulMod, with squaring in place of doubling and multiplication by the
// reduced base in place of the constant addend. The exponent is scanned
// raw, not reduced. An all-zero exponent leaves the accumulator at 1.
func (x Int) ExpMod(e, p Int) Int {
	base := x.Mod(p)

	acc := One()
	started := false
	for _, bit := range bitvec.FromBytes32(e.Bytes32()) {
		if started {
			acc = acc.MulMod(acc, p)
		}
		if bit {
			started = true
			acc = acc.MulMod(base, p)
		}
	}
	return acc
}

// DivMod returns (x / y) mod p using Fermat's little theorem: for prime p
// and y not divisible by p, y^(p-1) ≡ 1, so the inverse of y is y^(p-2) and
// the quotient is x * y^(p-2) mod p. The theorem needs a prime modulus;
// anything below 2 is rejected with ErrDivModulus.
func (x Int) DivMod(y, p Int) (Int, error) {
	if p.v.LtUint64(2) {
		return Int{}, ErrDivModulus
	}
	var pm2 Int
	pm2.v.SubUint64(&p.v, 2)
	return x.MulMod(y.ExpMod(pm2, p), p), nil
}
