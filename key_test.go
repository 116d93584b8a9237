package aes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestKeyScheduleCheckpoint pins W[4..8] and W[40..44] of the AES-128
// schedule for the FIPS-197 appendix A.1 key, the same key used by the
// encryption test vectors in aes_test.go.
func TestKeyScheduleCheckpoint(t *testing.T) {
	key, err := NewKey([]byte{
		0x2b, 0x7e, 0x15, 0x16, 0x28, 0xae, 0xd2, 0xa6,
		0xab, 0xf7, 0x15, 0x88, 0x09, 0xcf, 0x4f, 0x3c,
	})
	require.NoError(t, err)

	schedule := expandKey(key, 10, len(key))
	require.Len(t, schedule, 44)

	assert.Equal(t, []Word{0xa0fafe17, 0x88542cb1, 0x23a33939, 0x2a6c7605}, schedule[4:8])
	assert.Equal(t, []Word{0xd014f9a8, 0xc9ee2589, 0xe13f0cc8, 0xb6630ca6}, schedule[40:44])
}

// TestRotateWord checks RotateWord's one-byte left rotation against its
// definition: (b3, b2, b1, b0) -> (b2, b1, b0, b3).
func TestRotateWord(t *testing.T) {
	got := RotateWord(bytesToWord(0x09, 0xcf, 0x4f, 0x3c))
	assert.Equal(t, bytesToWord(0xcf, 0x4f, 0x3c, 0x09), got)
}

// TestRcon checks the first several entries of the round-constant table
// against FIPS-197's published RC values.
func TestRcon(t *testing.T) {
	cases := []struct {
		round int
		want  Word
	}{
		{1, 0x01000000},
		{2, 0x02000000},
		{3, 0x04000000},
		{8, 0x80000000},
		{9, 0x1b000000},
		{10, 0x36000000},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, Rcon(c.round), "round %d", c.round)
	}
}

// TestExpandKeyAES256UsesExtraSubstitution checks the Nk=8 special case
// (FIPS-197 Section 5.2 step 3): when wordsInKey > 6, every word at an
// offset of 4 within its group gets an extra SubstituteWord pass, not just
// the first word of the group.
func TestExpandKeyAES256UsesExtraSubstitution(t *testing.T) {
	key, err := NewKey(make([]byte, 32))
	require.NoError(t, err)

	schedule := expandKey(key, 14, len(key))
	require.Len(t, schedule, 60)

	// Word 12 sits at offset 4 within the second 8-word group (i=12,
	// i%8==4), so it must differ from a naive XOR of the two words eight
	// positions apart without the substitution step.
	plain := schedule[12-8] ^ schedule[12-1]
	assert.NotEqual(t, plain, schedule[12])
	assert.Equal(t, schedule[12-8]^SubstituteWord(schedule[12-1]), schedule[12])
}
