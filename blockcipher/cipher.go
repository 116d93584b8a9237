package blockcipher

// Cipher is satisfied by any 128-bit block cipher, encrypt and decrypt
// alike. aes.Cipher implements it directly, since Block is an alias of
// aes.Block.
type Cipher interface {
	Encrypt(block Block) Block
	Decrypt(block Block) Block
}
