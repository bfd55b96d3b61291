//go:build js && wasm

package main

import (
	"fmt"
	"syscall/js"

	"github.com/smallyu/go-ecc-derive/pkg/keys"
)

func main() {
	c := make(chan struct{}, 0)

	fmt.Println("Go ECC-Derive WASM Initialized")

	// Expose Go functions to JS
	js.Global().Set("GoECCDerive", map[string]interface{}{
		"DerivePublicKey": js.FuncOf(DerivePublicKey),
		"DeriveAddress":   js.FuncOf(DeriveAddress),
	})

	<-c
}

// DerivePublicKey derives the uncompressed public key for a hex scalar.
// Arguments:
// 0: private key hex string
// Returns:
// Hex-encoded 65-byte public key (string) or an "error: ..." string.
func DerivePublicKey(this js.Value, args []js.Value) interface{} {
	pub, errMsg := derive(args)
	if errMsg != "" {
		return errMsg
	}
	return fmt.Sprintf("%x", pub.SerializeUncompressed())
}

// DeriveAddress derives the EIP-55 checksummed address for a hex scalar.
// Arguments:
// 0: private key hex string
// Returns:
// Address (string) or an "error: ..." string.
func DeriveAddress(this js.Value, args []js.Value) interface{} {
	pub, errMsg := derive(args)
	if errMsg != "" {
		return errMsg
	}
	return pub.Address()
}

func derive(args []js.Value) (keys.PublicKey, string) {
	if len(args) != 1 {
		return keys.PublicKey{}, "error: expected 1 argument (privateKeyHex)"
	}

	priv, err := keys.ParsePrivateKey(args[0].String())
	if err != nil {
		return keys.PublicKey{}, fmt.Sprintf("error: %v", err)
	}

	pub, err := priv.PublicKey()
	if err != nil {
		return keys.PublicKey{}, fmt.Sprintf("error: %v", err)
	}
	return pub, ""
}
