package e2e

import (
	"bytes"
	"crypto/rand"
	"testing"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"

	"github.com/smallyu/go-ecc-derive/internal/encoding/hexutil"
	"github.com/smallyu/go-ecc-derive/pkg/keys"
)

// TestDeriveMatchesProductionLibrary derives public keys for random 256-bit
// scalars on the from-scratch engine and requires byte-for-byte agreement
// with the production curve library's uncompressed serialization.
func TestDeriveMatchesProductionLibrary(t *testing.T) {
	iterations := 4
	if testing.Short() {
		iterations = 1
	}

	for i := 0; i < iterations; i++ {
		var raw [32]byte
		if _, err := rand.Read(raw[:]); err != nil {
			t.Fatalf("read random scalar: %v", err)
		}
		keyHex := hexutil.Encode(raw[:])

		// From-scratch engine.
		priv, err := keys.ParsePrivateKey(keyHex)
		if err != nil {
			t.Fatalf("parse %s: %v", keyHex, err)
		}
		pub, err := priv.PublicKey()
		if err != nil {
			t.Fatalf("derive %s: %v", keyHex, err)
		}
		got := pub.SerializeUncompressed()

		// Production oracle.
		want := secp256k1.PrivKeyFromBytes(raw[:]).PubKey().SerializeUncompressed()

		if !bytes.Equal(got, want) {
			t.Errorf("key %s:\n got %x\nwant %x", keyHex, got, want)
		}
	}
}

// TestAddressVector walks the full pipeline for the fixed reference key.
func TestAddressVector(t *testing.T) {
	priv, err := keys.ParsePrivateKey("51bb0a7f49284110c62e4268baa3cfad4a81edcd6e6ec3b2a8ef97f1e3754491")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	pub, err := priv.PublicKey()
	if err != nil {
		t.Fatalf("derive: %v", err)
	}

	if got, want := pub.Address(), "0x7aa6D878Ac2d1271fCD010802f7e09fAcd8528bf"; got != want {
		t.Errorf("address = %s, want %s", got, want)
	}
}
