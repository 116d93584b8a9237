package aes

// Key is a group of 32-bit words that is used to generate a key schedule,
// which is in turn used to encrypt the state during successive rounds.
//
// Valid keys hold 4, 6, or 8 words (128, 192, or 256 bits); see FIPS-197
// Section 5, Table 4 for the Nk/Nr relationship this implies.
type Key []Word

// NewKey builds a Key from raw key bytes. len(bytes) must be 16, 24, or 32;
// otherwise ErrInvalidKeySize is returned. Bytes are packed big-endian into
// words, per FIPS-197 Section 6.1.
func NewKey(bytes []byte) (Key, error) {
	switch len(bytes) {
	case 16, 24, 32:
	default:
		return nil, ErrInvalidKeySize
	}

	return Key(wordsFromBytes(bytes)), nil
}

// NewKeyFromWords builds a Key directly from 32-bit words. len(words) must
// be 4, 6, or 8; otherwise ErrInvalidKeySize is returned.
func NewKeyFromWords(words []Word) (Key, error) {
	switch len(words) {
	case 4, 6, 8:
	default:
		return nil, ErrInvalidKeySize
	}

	key := make(Key, len(words))
	copy(key, words)
	return key, nil
}

// wordsFromBytes packs a byte slice into big-endian 32-bit words. len(bytes)
// must be a multiple of 4.
func wordsFromBytes(bytes []byte) []Word {
	words := make([]Word, len(bytes)/4)
	for i := range words {
		words[i] = bytesToWord(
			bytes[4*i],
			bytes[4*i+1],
			bytes[4*i+2],
			bytes[4*i+3],
		)
	}
	return words
}

// expandKey runs the FIPS-197 Section 5.2 key expansion, producing
// numColumns*(numRounds+1) words of round-key material from wordsInKey
// words of cipher key.
//
// The schedule length is defensively checked with a panic rather than an
// error: a schedule of the wrong length can only
// happen from a programmer bug in this function, not from caller input,
// since wordsInKey is already validated by the time expandKey runs.
func expandKey(key Key, numRounds, wordsInKey int) []Word {
	const numColumns = 4

	out := make([]Word, numColumns*(numRounds+1))
	copy(out, key)

	for i := wordsInKey; i < len(out); i++ {
		temp := out[i-1]

		switch {
		case i%wordsInKey == 0:
			temp = SubstituteWord(RotateWord(temp)) ^ Rcon(i/wordsInKey)
		case wordsInKey > 6 && i%wordsInKey == 4:
			temp = SubstituteWord(temp)
		}

		out[i] = out[i-wordsInKey] ^ temp
	}

	if len(out) != numColumns*(numRounds+1) {
		panic("aes: key schedule has the wrong length")
	}

	return out
}

// RotateWord cyclically rotates a word one byte to the left: if
// w = (b3, b2, b1, b0) then RotateWord(w) = (b2, b1, b0, b3).
func RotateWord(w Word) Word {
	return w<<8 | w>>24
}

// Rcon returns the round constant for the given 1-based round: RC[round]
// in the top byte, zero elsewhere. RC[1] = 1 and RC[i] = xtime(RC[i-1]) in
// GF(2⁸); computed here via polynomial reduction of x^(round-1) modulo
// poly rather than a lookup table, since xtime(a) and "multiply by x mod
// poly" are the same operation.
func Rcon(round int) Word {
	return Word(mod(1<<uint(round-1), poly)) << 24
}
