// Command keyaddr derives the uncompressed secp256k1 public key and the
// EIP-55 checksummed Ethereum address for a private-key scalar, using the
// from-scratch arithmetic engines rather than a curve library.
package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/smallyu/go-ecc-derive/pkg/keys"
)

func main() {
	keyHex := flag.String("key", "", "private key as a hex scalar, 0x prefix optional")
	flag.Parse()

	if *keyHex == "" {
		log.Fatal("keyaddr: -key is required")
	}

	priv, err := keys.ParsePrivateKey(*keyHex)
	if err != nil {
		log.Fatalf("keyaddr: %v", err)
	}

	pub, err := priv.PublicKey()
	if err != nil {
		log.Fatalf("keyaddr: %v", err)
	}

	fmt.Printf("public key: 0x%x\n", pub.SerializeUncompressed())
	fmt.Printf("address:    %s\n", pub.Address())
}
