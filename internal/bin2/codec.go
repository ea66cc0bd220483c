package bin2

import (
	"unicode/utf8"
)

// Header marks a buffer as transformed with the Bin2.0 scheme.
const Header = "%BIN_2.0"

// HeaderSize is the length of Header in bytes.
const HeaderSize = len(Header)

// HasHeader reports whether data begins with the exact 8-byte Bin2.0
// header. Anything shorter than the header is not encrypted.
func HasHeader(data []byte) bool {
	return len(data) >= HeaderSize && string(data[:HeaderSize]) == Header
}

// Encrypt transforms plain into a Bin2.0 buffer: content XORed against the
// length-derived keystream, the first 8 XORed bytes rotated to the tail,
// and the header prepended. The output is always len(plain)+8 bytes.
//
// Input that already carries the header is rejected with
// ErrAlreadyEncrypted rather than encrypted twice.
func Encrypt(plain []byte) ([]byte, error) {
	if HasHeader(plain) {
		return nil, ErrAlreadyEncrypted
	}

	length := len(plain)
	key := Keystream(uint32(length)) //nolint:gosec // the scheme keys off the low 32 bits of the length

	out := make([]byte, HeaderSize+length)
	copy(out, Header)

	body := out[HeaderSize:]

	if length < HeaderSize {
		// Fewer content bytes than the rotation window: the rotation
		// degenerates to a no-op (the zero-length case in particular
		// copies the header onto itself), so only the XOR applies.
		for i, b := range plain {
			body[i] = b ^ key[i%KeySize]
		}

		return out, nil
	}

	// XOR and rotate in a single pass over a fixed buffer: XORed byte i
	// lands at (i+length-8) mod length, which sends bytes 0..7 to the
	// tail and shifts the rest 8 positions toward the front.
	for i, b := range plain {
		body[(i+length-HeaderSize)%length] = b ^ key[i%KeySize]
	}

	return out, nil
}

// Decrypt reverses Encrypt. The input must carry the header; callers gate
// on HasHeader or IsEncrypted first and pass plain buffers through
// untouched at the orchestration layer. The output is always len(data)-8
// bytes.
func Decrypt(data []byte) ([]byte, error) {
	if len(data) < HeaderSize {
		return nil, ErrTruncated
	}

	if !HasHeader(data) {
		return nil, ErrNotEncrypted
	}

	length := len(data) - HeaderSize
	key := Keystream(uint32(length)) //nolint:gosec // the scheme keys off the low 32 bits of the length

	body := data[HeaderSize:]
	out := make([]byte, length)

	if length < HeaderSize {
		for i, b := range body {
			out[i] = b ^ key[i%KeySize]
		}

		return out, nil
	}

	// Inverse of the encryption pass: plain byte i was stored at
	// (i+length-8) mod length, i.e. bytes 0..7 come from the tail.
	for i := range out {
		out[i] = body[(i+length-HeaderSize)%length] ^ key[i%KeySize]
	}

	return out, nil
}

// DecryptText decrypts data and interprets the result as UTF-8 text.
// Invalid text surfaces as ErrInvalidText instead of being lossily
// replaced.
func DecryptText(data []byte) (string, error) {
	plain, err := Decrypt(data)
	if err != nil {
		return "", err
	}

	if !utf8.Valid(plain) {
		return "", ErrInvalidText
	}

	return string(plain), nil
}
