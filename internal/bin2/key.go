package bin2

import "encoding/binary"

// KeySize is the size in bytes of one keystream block.
const KeySize = 16

// xorshift advances a 32-bit xorshift generator by one round.
// All shifts are logical and all arithmetic wraps modulo 2^32,
// which uint32 gives us natively.
func xorshift(x uint32) uint32 {
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5

	return x
}

// DeriveKey derives the four key words for a payload of the given byte
// length: four rounds of the xorshift generator seeded with the length,
// capturing the state after each round. The key depends on the length
// only — never on content, never on randomness — so recomputing it for
// the same length always yields the same words.
func DeriveKey(length uint32) [4]uint32 {
	a := xorshift(length)
	b := xorshift(a)
	c := xorshift(b)
	d := xorshift(c)

	return [4]uint32{a, b, c, d}
}

// Keystream serializes the derived key words little-endian into a 16-byte
// block. Content byte i is XORed against block byte i mod 16.
func Keystream(length uint32) [KeySize]byte {
	words := DeriveKey(length)

	var key [KeySize]byte

	for i, word := range words {
		binary.LittleEndian.PutUint32(key[i*4:], word)
	}

	return key
}
