// Package aes contains a from-scratch implementation of the Rijndael
// encryption algorithm as described in the FIPS 197 AES paper.
// See https://nvlpubs.nist.gov/nistpubs/fips/nist.fips.197.pdf
//
// Although the public API of this package adheres to common Go patterns,
// the internals strive to closely implement the details of the FIPS paper,
// so you should be able to easily use this package and the paper alongside one another.
//
// Only the core block cipher is in scope here: key expansion, the four
// round transformations and their inverses, and the encrypt/decrypt
// drivers for a single 128-bit block. Modes of operation (ECB, CBC, CTR,
// GCM), padding, and key derivation are external collaborators; see the
// blockcipher package for the interface a mode would be built against.
//
// This package aims to be clear and easy to read, rather than efficient,
// and may contain bugs. Do not use this package for real cryptography.
package aes
