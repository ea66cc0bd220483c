package bin2

import "errors"

var (
	// ErrAlreadyEncrypted is returned when encrypting data that already
	// carries the Bin2.0 header. The input is never double-encrypted.
	ErrAlreadyEncrypted = errors.New("data already carries the Bin2.0 header")
	// ErrNotEncrypted is returned when decrypting data without the header.
	ErrNotEncrypted = errors.New("data does not carry the Bin2.0 header")
	// ErrTruncated is returned when data is too short to hold the header.
	ErrTruncated = errors.New("data shorter than the Bin2.0 header")
	// ErrInvalidText is returned when decrypted data is required to be
	// text but is not valid UTF-8.
	ErrInvalidText = errors.New("decrypted data is not valid UTF-8")
)
