package bin2_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gurrenm3/BTD-Battles-2-Decryptor/internal/bin2"
)

func writeFile(t *testing.T, dir, name string, data []byte) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, data, 0o600))

	return path
}

func TestFileSourcePeekDoesNotConsume(t *testing.T) {
	dir := t.TempDir()

	content := []byte("%BIN_2.0 plus the rest of the payload")
	path := writeFile(t, dir, "asset.bin", content)

	src := bin2.NewFileSource(path)

	head, err := src.Peek(bin2.HeaderSize)
	require.NoError(t, err)
	assert.Equal(t, content[:bin2.HeaderSize], head)

	// A full read after the peek still sees everything.
	all, err := src.ReadAll()
	require.NoError(t, err)
	assert.Equal(t, content, all)
}

func TestIsEncrypted(t *testing.T) {
	dir := t.TempDir()

	encrypted, err := bin2.Encrypt([]byte("tower definitions"))
	require.NoError(t, err)

	tests := []struct {
		name    string
		content []byte
		want    bool
	}{
		{name: "encrypted", content: encrypted, want: true},
		{name: "plain", content: []byte("plain json"), want: false},
		{name: "short", content: []byte("%BIN"), want: false},
		{name: "empty", content: nil, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, dir, tt.name, tt.content)

			got, err := bin2.IsEncrypted(bin2.NewFileSource(path))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFileSourceMissingFile(t *testing.T) {
	src := bin2.NewFileSource(filepath.Join(t.TempDir(), "does-not-exist"))

	_, err := src.Peek(bin2.HeaderSize)
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = src.ReadAll()
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestFileSinkRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.bin")

	require.NoError(t, bin2.NewFileSink(path).WriteAll([]byte("written back")))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []byte("written back"), data)
}
