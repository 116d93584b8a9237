// Package blockcipher defines the interface a mode-of-operation package
// (ECB, CBC, CTR, GCM, ...) builds against. No mode is implemented in this
// module — modes, padding, and key provenance are external collaborators
// per the core cipher's spec — but the seam is kept here so one can be
// added without reaching back into the aes package's internals.
package blockcipher

import "github.com/corvid-labs/fips197aes"

// Block is the 128-bit unit every AES mode of operation chains together.
// It is an alias of aes.Block so that an aes.Cipher already satisfies
// Cipher without any adapter.
type Block = aes.Block
