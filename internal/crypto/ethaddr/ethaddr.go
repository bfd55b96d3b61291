// Package ethaddr derives Ethereum addresses from secp256k1 public-key
// coordinates: Keccak-256 of the 64-byte X‖Y pair, low 20 bytes, then the
// EIP-55 mixed-case checksum.
package ethaddr

import (
	"errors"
	"strings"

	"golang.org/x/crypto/sha3"

	"github.com/smallyu/go-ecc-derive/internal/encoding/hexutil"
)

// ErrInvalidAddress reports checksum input that is not a 0x-prefixed
// 40-nibble address.
var ErrInvalidAddress = errors.New("ethaddr: address must be 0x followed by 40 hex nibbles")

// Keccak256 returns the legacy (pre-NIST) Keccak-256 digest of the
// concatenated chunks. Ethereum uses this variant, not standard SHA3-256.
func Keccak256(chunks ...[]byte) []byte {
	h := sha3.NewLegacyKeccak256()
	for _, c := range chunks {
		h.Write(c)
	}
	return h.Sum(nil)
}

// FromPubKey derives the checksummed address for the public key with the
// given 32-byte big-endian coordinates: the low 20 bytes of Keccak256(X‖Y),
// hex-encoded and EIP-55 cased.
func FromPubKey(x, y [32]byte) string {
	digest := Keccak256(x[:], y[:])
	addr, err := Checksum("0x" + hexutil.Encode(digest[12:]))
	if err != nil {
		// Unreachable: the input above is always 40 nibbles.
		panic(err)
	}
	return addr
}

// Checksum applies EIP-55 casing to a 0x-prefixed address. Each nibble of
// the lowercase address is upper-cased iff it is alphabetic and the nibble
// at the same offset in Keccak256(lowercase address without "0x") is
// greater than 8.
func Checksum(address string) (string, error) {
	if len(address) != 42 || !strings.HasPrefix(address, "0x") {
		return "", ErrInvalidAddress
	}
	lower := strings.ToLower(address[2:])
	digest := hexutil.Encode(Keccak256([]byte(lower)))

	out := make([]byte, len(lower))
	for i := 0; i < len(lower); i++ {
		c := lower[i]
		if c >= 'a' && c <= 'f' && nibbleValue(digest[i]) > 8 {
			c = c - 'a' + 'A'
		}
		out[i] = c
	}
	return "0x" + string(out), nil
}

// nibbleValue maps a lowercase hex digit to its numeric value.
func nibbleValue(c byte) uint8 {
	if c >= 'a' {
		return c - 'a' + 10
	}
	return c - '0'
}
