package aes

import (
	"fmt"
	"math/bits"

	"github.com/corvid-labs/fips197aes/internal/matrix"
)

// poly is the irreducible polynomial for GF(2⁸) fixed by AES:
// x⁸ + x⁴ + x³ + x + 1. See FIPS-197 Section 4.2.
const poly = 1<<8 | 1<<4 | 1<<3 | 1<<1 | 1<<0

// Add returns a ⊕ b, addition in GF(2⁸). It is its own inverse:
// Add(Add(a, b), b) == a for all a, b.
func Add(a, b byte) byte {
	return a ^ b
}

// XTime multiplies a by the polynomial x, reducing modulo poly if the
// shift would overflow a byte. Every other GF(2⁸) multiplication in this
// package is built from repeated XTime.
func XTime(a byte) byte {
	const highBit = 0b1000_0000
	shifted := uint16(a) << 1
	if a&highBit != 0 {
		shifted ^= poly
	}
	return byte(shifted)
}

// Multiply returns a·b in GF(2⁸) via the shift-and-add algorithm of
// FIPS-197 Section 4.2: walk the bits of b from the low end, adding in a
// successively xtime'd copy of a wherever a bit of b is set.
func Multiply(a, b byte) byte {
	var product byte
	multiplicand := a
	for i := 0; i < 8; i++ {
		if b&(1<<uint(i)) != 0 {
			product = Add(product, multiplicand)
		}
		multiplicand = XTime(multiplicand)
	}
	return product
}

// DotProduct computes the GF(2⁸) dot product of two equal-length byte
// vectors. mixColumns uses it to combine a row of the MixColumns (or
// InvMixColumns) matrix with a column of the state.
func DotProduct(a, b matrix.Vector[byte]) byte {
	if len(a) != len(b) {
		panic(fmt.Sprintf("aes: dot product operands have different lengths: %d vs %d", len(a), len(b)))
	}

	var out byte
	for i := range a {
		out = Add(out, Multiply(a[i], b[i]))
	}
	return out
}

// mod reduces dividend modulo divisor as GF(2) polynomials: repeatedly XOR
// in the shifted divisor until the remainder's degree is below the
// divisor's. Rcon uses this to compute successive powers of x modulo
// poly without a lookup table.
func mod(dividend, divisor int) int {
	remainder := dividend

	for remainder != 0 && degree(remainder) >= degree(divisor) {
		distance := degree(remainder) - degree(divisor)
		remainder ^= divisor << distance
	}

	return remainder
}

// degree returns the position of the highest set bit, i.e. the degree of
// the GF(2) polynomial a represents. degree(0) is -1 by convention.
func degree(a int) int {
	if a == 0 {
		return -1
	}
	return bits.Len(uint(a)) - 1
}
