package aes

import (
	"fmt"

	"github.com/corvid-labs/fips197aes/internal/matrix"
)

// Cipher consists of a parsed key and its derived schedule.
// Depending on key size, it performs a different number of rounds during
// encryption and decryption.
type Cipher struct {
	key       Key
	schedule  []Word
	numRounds int
}

// NewCipher derives a Cipher's key schedule from key. key must have been
// built by NewKey or NewKeyFromWords; a key assembled by any other means
// that does not hold 4, 6, or 8 words is rejected with ErrInvalidKeySize.
func NewCipher(key Key) (Cipher, error) {
	wordsInKey := len(key)

	switch wordsInKey {
	case 4, 6, 8:
	default:
		return Cipher{}, ErrInvalidKeySize
	}

	// How many rounds we do is always dependent on how large the key is.
	// Check 'Nr' parameter in FIPS-197 Section 2.2.
	numRounds := 6 + wordsInKey

	return Cipher{
		key:       key,
		schedule:  expandKey(key, numRounds, wordsInKey),
		numRounds: numRounds,
	}, nil
}

// Block is a 128-bit AES block.
// AES is a 128-bit symmetric block cipher, which means that it takes 128
// bits as input, and returns 128 bits of encrypted output (and vice-versa
// during decryption).
type Block [16]byte

// NewBlock validates that bytes is exactly 16 bytes long and returns it as
// a Block; otherwise it returns ErrInvalidBlockSize.
func NewBlock(bytes []byte) (Block, error) {
	var block Block
	if len(bytes) != len(block) {
		return Block{}, ErrInvalidBlockSize
	}
	copy(block[:], bytes)
	return block, nil
}

func (b Block) String() string {
	return fmt.Sprintf("%x", b[:])
}

// Word is four bytes represented as a single uint32.
type Word uint32

// String returns a Word as four hex bytes.
func (w Word) String() string {
	return fmt.Sprintf("%02x %02x %02x %02x", w.Byte(0), w.Byte(1), w.Byte(2), w.Byte(3))
}

// Vector returns a Word as a four-byte Vector, most significant byte first.
func (w Word) Vector() matrix.Vector[byte] {
	return matrix.Vector[byte]{w.Byte(0), w.Byte(1), w.Byte(2), w.Byte(3)}
}

// Byte returns byte i of a Word, where byte 0 is the most significant.
func (w Word) Byte(i int) byte {
	shift := 24 - 8*i
	return byte(w >> shift)
}

func bytesToWord(b3, b2, b1, b0 byte) Word {
	return Word(b3)<<24 | Word(b2)<<16 | Word(b1)<<8 | Word(b0)
}

// Encrypt implements the AES flavour of the Rijndael algorithm. block is
// always 16 bytes, so this cannot fail; see EncryptBytes for the boundary
// check a variable-length caller needs.
// See FIPS-197 Section 5.1.
func (c Cipher) Encrypt(block Block) Block {
	state := parse(block)

	// The zeroth round only consists of adding the round key.
	state = addRoundKey(state, c.schedule, 0)

	// The intermediate rounds consist of all four steps: byte substitution,
	// row shifting, column mixing, and adding the round key.
	for round := 1; round < c.numRounds; round++ {
		state = subBytes(state)
		state = shiftRows(state)
		state = mixColumns(state, mixColumnPolynomials)
		state = addRoundKey(state, c.schedule, round)
	}

	// The last round excludes column mixing.
	state = subBytes(state)
	state = shiftRows(state)
	state = addRoundKey(state, c.schedule, c.numRounds)

	return toBytes(state)
}

// Decrypt is an implementation of the InvCipher function. It is effectively
// the inverse of Encrypt; the round transformations run in the order that
// matches Encrypt's inverse, not a symmetric mirror of it — InvSubBytes
// always follows InvShiftRows, and the round key for round r is added
// before InvMixColumns undoes round r's column mixing.
// See FIPS-197 Section 5.3.
func (c Cipher) Decrypt(block Block) Block {
	state := parse(block)

	state = addRoundKey(state, c.schedule, c.numRounds)

	for round := c.numRounds - 1; round >= 1; round-- {
		state = shiftRowsInverse(state)
		state = subBytesInverse(state)
		state = addRoundKey(state, c.schedule, round)
		state = mixColumns(state, mixColumnPolynomialsInverse)
	}

	state = shiftRowsInverse(state)
	state = subBytesInverse(state)
	state = addRoundKey(state, c.schedule, 0)

	return toBytes(state)
}

// EncryptBytes validates that block is exactly 16 bytes before encrypting
// it, for callers working with byte slices rather than the fixed-size
// Block type.
func (c Cipher) EncryptBytes(block []byte) ([]byte, error) {
	b, err := NewBlock(block)
	if err != nil {
		return nil, err
	}
	out := c.Encrypt(b)
	return out[:], nil
}

// DecryptBytes is EncryptBytes' decryption counterpart.
func (c Cipher) DecryptBytes(block []byte) ([]byte, error) {
	b, err := NewBlock(block)
	if err != nil {
		return nil, err
	}
	out := c.Decrypt(b)
	return out[:], nil
}

// parse reads a 16-byte block into the 4x4 state matrix using AES's
// column-major convention: byte index 4*col+row maps to state[row][col].
func parse(block Block) matrix.Matrix[byte] {
	out := matrix.EmptyMatrix[byte](4, 4)
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			out[row][col] = block[4*col+row]
		}
	}

	return out
}

// toBytes is the inverse of parse: it serializes the state matrix back to
// a 16-byte block in column-major order.
func toBytes(state matrix.Matrix[byte]) Block {
	var out Block
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			out[4*col+row] = state[row][col]
		}
	}

	return out
}

func addRoundKey(state matrix.Matrix[byte], schedule []Word, round int) matrix.Matrix[byte] {
	const numColumns = 4
	out := matrix.EmptyMatrix[byte](4, 4)

	for i := 0; i < numColumns; i++ {
		stateColumn := matrix.ColumnVector(state, i)
		wordVector := schedule[round*numColumns+i].Vector()
		out.SetColumn(matrix.XOR(stateColumn, wordVector), i)
	}

	return out
}

func subBytes(state matrix.Matrix[byte]) matrix.Matrix[byte] {
	out := matrix.EmptyMatrix[byte](4, 4)

	for row := range state {
		for col := range state[row] {
			out[row][col] = SubByte(state[row][col])
		}
	}

	return out
}

func subBytesInverse(state matrix.Matrix[byte]) matrix.Matrix[byte] {
	out := matrix.EmptyMatrix[byte](4, 4)

	for row := range state {
		for col := range state[row] {
			out[row][col] = InvSubByte(state[row][col])
		}
	}

	return out
}

// shiftRows cyclically left-rotates row i by i positions.
func shiftRows(state matrix.Matrix[byte]) matrix.Matrix[byte] {
	out := matrix.EmptyMatrix[byte](4, 4)
	for i := 0; i < 4; i++ {
		out[i] = append(append(matrix.Vector[byte]{}, state[i][i:]...), state[i][:i]...)
	}

	return out
}

// shiftRowsInverse cyclically right-rotates row i by i positions, i.e.
// left-rotates by (4-i) mod 4.
func shiftRowsInverse(state matrix.Matrix[byte]) matrix.Matrix[byte] {
	out := matrix.EmptyMatrix[byte](4, 4)
	for i := 0; i < 4; i++ {
		pivot := (4 - i) % 4
		out[i] = append(append(matrix.Vector[byte]{}, state[i][pivot:]...), state[i][:pivot]...)
	}

	return out
}

// mixColumns multiplies each column of state by the given 4x4 polynomial
// matrix in GF(2⁸) (mixColumnPolynomials for the forward transform,
// mixColumnPolynomialsInverse for its inverse). Every output byte is
// computed from the untouched input column held in state — out is a
// separate matrix, so a column is never partially overwritten while it is
// still being read, which is the aliasing bug a naive in-place rewrite
// would introduce.
func mixColumns(state, polynomials matrix.Matrix[byte]) matrix.Matrix[byte] {
	out := matrix.EmptyMatrix[byte](4, 4)
	for row := 0; row < len(state); row++ {
		for col := 0; col < len(state[row]); col++ {
			out[row][col] = DotProduct(matrix.RowVector(polynomials, row), matrix.ColumnVector(state, col))
		}
	}

	return out
}

// mixColumnPolynomials is the MixColumns matrix of FIPS-197 Section 5.1.3.
var mixColumnPolynomials = matrix.Matrix[byte]{
	{0x02, 0x03, 0x01, 0x01},
	{0x01, 0x02, 0x03, 0x01},
	{0x01, 0x01, 0x02, 0x03},
	{0x03, 0x01, 0x01, 0x02},
}

// mixColumnPolynomialsInverse is the InvMixColumns matrix of FIPS-197
// Section 5.3.3.
var mixColumnPolynomialsInverse = matrix.Matrix[byte]{
	{0x0e, 0x0b, 0x0d, 0x09},
	{0x09, 0x0e, 0x0b, 0x0d},
	{0x0d, 0x09, 0x0e, 0x0b},
	{0x0b, 0x0d, 0x09, 0x0e},
}
