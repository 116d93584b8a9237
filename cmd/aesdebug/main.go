// Command aesdebug encrypts or decrypts a single 16-byte block for manual
// inspection of the aes package against the FIPS-197 test vectors. It is
// an external collaborator, not part of the library's contract: it does
// no chaining of blocks and implements no mode of operation.
package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/corvid-labs/fips197aes"
)

func main() {
	flag.Parse()

	keyHex := os.Getenv("AES_KEY_HEX")
	if keyHex == "" {
		log.Fatal("AES_KEY_HEX must be set to a 32, 48, or 64 hex-character key")
	}

	keyBytes, err := hex.DecodeString(keyHex)
	if err != nil {
		log.Fatal("decoding AES_KEY_HEX: ", err)
	}

	key, err := aes.NewKey(keyBytes)
	if err != nil {
		log.Fatal("building key: ", err)
	}

	cipher, err := aes.NewCipher(key)
	if err != nil {
		log.Fatal("building cipher: ", err)
	}

	var op func(aes.Block) aes.Block
	switch a := flag.Arg(0); a {
	case "encrypt":
		op = cipher.Encrypt
	case "decrypt":
		op = cipher.Decrypt
	default:
		log.Fatal("invalid op (want encrypt or decrypt): ", a)
	}

	blockHex := flag.Arg(1)
	blockBytes, err := hex.DecodeString(blockHex)
	if err != nil {
		log.Fatal("decoding block argument: ", err)
	}

	block, err := aes.NewBlock(blockBytes)
	if err != nil {
		log.Fatal(err)
	}

	out := op(block)
	fmt.Println(hex.EncodeToString(out[:]))
}
