package aes

import "errors"

// ErrInvalidKeySize is returned when a key is built from a word or byte
// count that AES does not define a round count for.
//
// Valid sizes are 4, 6, or 8 32-bit words (16, 24, or 32 bytes), giving
// Nr = 10, 12, or 14 rounds respectively. See FIPS-197 Section 5, Table 4.
var ErrInvalidKeySize = errors.New("aes: invalid key size")

// ErrInvalidBlockSize is returned when a block is not exactly 16 bytes.
// AES always operates on 128-bit blocks, regardless of key size.
var ErrInvalidBlockSize = errors.New("aes: invalid block size")
