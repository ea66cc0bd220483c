// Package archive reads and rewrites the zip containers BTD Battles 2
// ships its assets in.
package archive

import (
	"archive/zip"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/hashicorp/go-hclog"
)

// ErrNoEntry is returned when a named entry does not exist in the archive.
var ErrNoEntry = errors.New("no such archive entry")

// IsArchive reports whether path looks like an asset container the game
// uses (plain zip or the renamed .jet variant).
func IsArchive(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".zip", ".jet":
		return true
	default:
		return false
	}
}

// Archive is an open zip container.
type Archive struct {
	path   string
	reader *zip.ReadCloser
	logger hclog.Logger
}

// Open opens the container at path for reading. A nil logger is replaced
// with a null logger.
func Open(path string, logger hclog.Logger) (*Archive, error) {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}

	reader, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("opening archive %q: %w", path, err)
	}

	return &Archive{
		path:   path,
		reader: reader,
		logger: logger.Named("archive"),
	}, nil
}

// Close releases the underlying file.
func (a *Archive) Close() error {
	return a.reader.Close()
}

// Entries returns the names of all file entries, excluding directories.
func (a *Archive) Entries() []string {
	var names []string

	for _, file := range a.reader.File {
		if file.FileInfo().IsDir() {
			continue
		}

		names = append(names, file.Name)
	}

	return names
}

// Entry returns a byte source over the named entry.
func (a *Archive) Entry(name string) (*EntrySource, error) {
	for _, file := range a.reader.File {
		if file.Name == name && !file.FileInfo().IsDir() {
			return &EntrySource{file: file}, nil
		}
	}

	return nil, fmt.Errorf("%w: %q in %q", ErrNoEntry, name, a.path)
}

// Rewrite writes a new zip to out with every file entry passed through
// transform. Entry names and modification times are preserved; directory
// entries are carried over unchanged. Rewritten entries are sized by the
// byte length of the transformed content, never by a character count.
func (a *Archive) Rewrite(out io.Writer, transform func(name string, data []byte) ([]byte, error)) error {
	writer := zip.NewWriter(out)

	for _, file := range a.reader.File {
		if file.FileInfo().IsDir() {
			if _, err := writer.CreateHeader(&zip.FileHeader{
				Name:     file.Name,
				Modified: file.Modified,
			}); err != nil {
				return fmt.Errorf("copying directory entry %q: %w", file.Name, err)
			}

			continue
		}

		data, err := readEntry(file)
		if err != nil {
			return err
		}

		transformed, err := transform(file.Name, data)
		if err != nil {
			return fmt.Errorf("transforming entry %q: %w", file.Name, err)
		}

		entryWriter, err := writer.CreateHeader(&zip.FileHeader{
			Name:     file.Name,
			Method:   zip.Deflate,
			Modified: file.Modified,
		})
		if err != nil {
			return fmt.Errorf("creating entry %q: %w", file.Name, err)
		}

		if _, err := entryWriter.Write(transformed); err != nil {
			return fmt.Errorf("writing entry %q: %w", file.Name, err)
		}

		a.logger.Debug("rewrote entry", "name", file.Name, "in", len(data), "out", len(transformed))
	}

	if err := writer.Close(); err != nil {
		return fmt.Errorf("finalizing archive: %w", err)
	}

	return nil
}

// readEntry fully reads one zip entry.
func readEntry(file *zip.File) ([]byte, error) {
	rc, err := file.Open()
	if err != nil {
		return nil, fmt.Errorf("opening entry %q: %w", file.Name, err)
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("reading entry %q: %w", file.Name, err)
	}

	return data, nil
}

// EntrySource adapts one zip entry to the codec's byte-source contract.
// Peek opens and discards a fresh entry reader, so detection never
// consumes bytes a later full read needs.
type EntrySource struct {
	file *zip.File
}

// Peek returns up to n leading bytes of the entry.
func (e *EntrySource) Peek(n int) ([]byte, error) {
	rc, err := e.file.Open()
	if err != nil {
		return nil, fmt.Errorf("opening entry %q: %w", e.file.Name, err)
	}
	defer rc.Close()

	buf := make([]byte, n)

	read, err := io.ReadFull(rc, buf)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		return nil, fmt.Errorf("reading entry %q: %w", e.file.Name, err)
	}

	return buf[:read], nil
}

// ReadAll returns the full entry content.
func (e *EntrySource) ReadAll() ([]byte, error) {
	return readEntry(e.file)
}
