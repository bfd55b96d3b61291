// Package hexutil converts between byte buffers and hex strings.
//
// Unlike encoding/hex it tolerates the optional "0x" prefix and odd-length
// input commonly seen in key material and address fixtures.
package hexutil

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// Decode parses a hex string into bytes. An optional "0x"/"0X" prefix is
// stripped, and odd-length input is left-padded with a zero nibble so that
// "f" decodes to 0x0f.
func Decode(s string) ([]byte, error) {
	t := s
	if strings.HasPrefix(t, "0x") || strings.HasPrefix(t, "0X") {
		t = t[2:]
	}
	if t == "" {
		return nil, fmt.Errorf("hexutil: empty hex string %q", s)
	}
	if len(t)%2 != 0 {
		t = "0" + t
	}
	b, err := hex.DecodeString(t)
	if err != nil {
		return nil, fmt.Errorf("hexutil: invalid hex string %q: %w", s, err)
	}
	return b, nil
}

// Encode returns the lowercase, unprefixed hex representation of b.
func Encode(b []byte) string {
	return hex.EncodeToString(b)
}
