package modmath

import (
	"math/big"
	"strings"
	"testing"
)

func FuzzFromHex(f *testing.F) {
	// Seed corpus
	f.Add("0xBD")
	f.Add("51bb0a7f49284110c62e4268baa3cfad4a81edcd6e6ec3b2a8ef97f1e3754491")
	f.Add(strings.Repeat("f", 64))
	f.Add(strings.Repeat("f", 65))
	f.Add(strings.Repeat("0", 100))
	f.Add("")
	f.Add("0x")
	f.Add("0xzz")
	f.Add("-1")

	f.Fuzz(func(t *testing.T, s string) {
		x, err := FromHex(s)
		if err != nil {
			return
		}

		// Anything accepted must agree with math/big on the magnitude.
		trimmed := s
		if strings.HasPrefix(trimmed, "0x") || strings.HasPrefix(trimmed, "0X") {
			trimmed = trimmed[2:]
		}
		want, ok := new(big.Int).SetString(trimmed, 16)
		if !ok {
			t.Fatalf("FromHex accepted %q but math/big rejected it", s)
		}

		buf := x.Bytes32()
		got := new(big.Int).SetBytes(buf[:])
		if want.Cmp(got) != 0 {
			t.Errorf("FromHex(%q) = %s, math/big parsed %s", s, got.Text(16), want.Text(16))
		}
	})
}
