package bin2

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Source supplies bytes to the codec. The file path and the archive-entry
// path both satisfy it, so detection and transform logic exists once.
type Source interface {
	// Peek returns up to n leading bytes without consuming anything a
	// later ReadAll would return. Sources shorter than n return what
	// they have, without error.
	Peek(n int) ([]byte, error)

	// ReadAll returns the full content.
	ReadAll() ([]byte, error)
}

// Sink consumes transformed bytes.
type Sink interface {
	WriteAll(data []byte) error
}

// IsEncrypted reports whether the source begins with the Bin2.0 header.
// It reads at most HeaderSize bytes and leaves the source reusable.
func IsEncrypted(src Source) (bool, error) {
	head, err := src.Peek(HeaderSize)
	if err != nil {
		return false, err
	}

	return HasHeader(head), nil
}

// FileSource reads a file on disk. Peek opens the file independently of
// ReadAll, so detection never disturbs a later full read.
type FileSource struct {
	path string
}

// NewFileSource returns a Source over the file at path.
func NewFileSource(path string) *FileSource {
	return &FileSource{path: filepath.Clean(path)}
}

// Peek implements Source.
func (f *FileSource) Peek(n int) ([]byte, error) {
	file, err := os.Open(f.path)
	if err != nil {
		return nil, fmt.Errorf("opening %q: %w", f.path, err)
	}
	defer file.Close()

	buf := make([]byte, n)

	read, err := io.ReadFull(file, buf)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		return nil, fmt.Errorf("reading %q: %w", f.path, err)
	}

	return buf[:read], nil
}

// ReadAll implements Source.
func (f *FileSource) ReadAll() ([]byte, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		return nil, fmt.Errorf("reading %q: %w", f.path, err)
	}

	return data, nil
}

// FileSink writes a file on disk with owner read/write permissions.
type FileSink struct {
	path string
}

// NewFileSink returns a Sink over the file at path.
func NewFileSink(path string) *FileSink {
	return &FileSink{path: filepath.Clean(path)}
}

// WriteAll implements Sink.
func (f *FileSink) WriteAll(data []byte) error {
	const ownerReadWrite = 0o600

	if err := os.WriteFile(f.path, data, ownerReadWrite); err != nil {
		return fmt.Errorf("writing %q: %w", f.path, err)
	}

	return nil
}
