package aes_test

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corvid-labs/fips197aes"
)

// fipsVector is one of the end-to-end scenarios from FIPS-197's appendices,
// reproduced in spec scenario order.
type fipsVector struct {
	name       string
	key        string
	plaintext  string
	ciphertext string
}

var fipsVectors = []fipsVector{
	{
		name:       "AES-128 appendix B",
		key:        "2b7e151628aed2a6abf7158809cf4f3c",
		plaintext:  "3243f6a8885a308d313198a2e0370734",
		ciphertext: "3925841d02dc09fbdc118597196a0b32",
	},
	{
		name:       "AES-128 appendix C.1",
		key:        "000102030405060708090a0b0c0d0e0f",
		plaintext:  "00112233445566778899aabbccddeeff",
		ciphertext: "69c4e0d86a7b0430d8cdb78070b4c55a",
	},
	{
		name:       "AES-192 appendix C.2",
		key:        "000102030405060708090a0b0c0d0e0f1011121314151617",
		plaintext:  "00112233445566778899aabbccddeeff",
		ciphertext: "dda97ca4864cdfe06eaf70a0ec0d7191",
	},
	{
		name:       "AES-256 appendix C.3",
		key:        "000102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f",
		plaintext:  "00112233445566778899aabbccddeeff",
		ciphertext: "8ea2b7ca516745bfeafc49904b496089",
	},
}

func TestCipherEncrypt(t *testing.T) {
	for _, v := range fipsVectors {
		t.Run(v.name, func(t *testing.T) {
			key, err := aes.NewKey(decodeHex(t, v.key))
			require.NoError(t, err)

			cipher, err := aes.NewCipher(key)
			require.NoError(t, err)

			block, err := aes.NewBlock(decodeHex(t, v.plaintext))
			require.NoError(t, err)

			got := cipher.Encrypt(block)
			assert.Equal(t, v.ciphertext, hex.EncodeToString(got[:]))
		})
	}
}

func TestCipherDecrypt(t *testing.T) {
	for _, v := range fipsVectors {
		t.Run(v.name, func(t *testing.T) {
			key, err := aes.NewKey(decodeHex(t, v.key))
			require.NoError(t, err)

			cipher, err := aes.NewCipher(key)
			require.NoError(t, err)

			block, err := aes.NewBlock(decodeHex(t, v.ciphertext))
			require.NoError(t, err)

			got := cipher.Decrypt(block)
			assert.Equal(t, v.plaintext, hex.EncodeToString(got[:]))
		})
	}
}

func TestCipherRoundTrip(t *testing.T) {
	for _, v := range fipsVectors {
		t.Run(v.name, func(t *testing.T) {
			key, err := aes.NewKey(decodeHex(t, v.key))
			require.NoError(t, err)

			cipher, err := aes.NewCipher(key)
			require.NoError(t, err)

			plaintext, err := aes.NewBlock(decodeHex(t, v.plaintext))
			require.NoError(t, err)

			roundTripped := cipher.Decrypt(cipher.Encrypt(plaintext))
			assert.Equal(t, plaintext, roundTripped)
		})
	}
}

// TestAvalanche checks that flipping a single bit of the plaintext, or a
// single bit of the key, changes the ciphertext (a coarse avalanche smoke
// test, not a statistical one).
func TestAvalanche(t *testing.T) {
	keyBytes := decodeHex(t, "000102030405060708090a0b0c0d0e0f")
	plainBytes := decodeHex(t, "00112233445566778899aabbccddeeff")

	baseline := encryptOrFail(t, keyBytes, plainBytes)

	t.Run("plaintext bit flip", func(t *testing.T) {
		flipped := append([]byte(nil), plainBytes...)
		flipped[0] ^= 0x01
		got := encryptOrFail(t, keyBytes, flipped)
		assert.NotEqual(t, baseline, got)
	})

	t.Run("key bit flip", func(t *testing.T) {
		flipped := append([]byte(nil), keyBytes...)
		flipped[0] ^= 0x01
		got := encryptOrFail(t, flipped, plainBytes)
		assert.NotEqual(t, baseline, got)
	})
}

func TestNewKeyInvalidSize(t *testing.T) {
	for _, n := range []int{0, 1, 15, 17, 23, 25, 31, 33} {
		_, err := aes.NewKey(make([]byte, n))
		assert.ErrorIs(t, err, aes.ErrInvalidKeySize, "byte count %d", n)
	}
}

func TestNewKeyFromWordsInvalidSize(t *testing.T) {
	for _, n := range []int{0, 1, 3, 5, 7, 9} {
		_, err := aes.NewKeyFromWords(make([]aes.Word, n))
		assert.ErrorIs(t, err, aes.ErrInvalidKeySize, "word count %d", n)
	}
}

func TestNewBlockInvalidSize(t *testing.T) {
	for _, n := range []int{0, 15, 17, 32} {
		_, err := aes.NewBlock(make([]byte, n))
		assert.ErrorIs(t, err, aes.ErrInvalidBlockSize, "byte count %d", n)
	}
}

func decodeHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	require.NoError(t, err)
	return b
}

func encryptOrFail(t *testing.T, keyBytes, plainBytes []byte) [16]byte {
	t.Helper()
	key, err := aes.NewKey(keyBytes)
	require.NoError(t, err)
	cipher, err := aes.NewCipher(key)
	require.NoError(t, err)
	block, err := aes.NewBlock(plainBytes)
	require.NoError(t, err)
	return cipher.Encrypt(block)
}
