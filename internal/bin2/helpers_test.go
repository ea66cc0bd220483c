package bin2_test

import (
	"archive/zip"
	"io"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeZip(t *testing.T, path string, entries map[string][]byte) {
	t.Helper()

	out, err := os.Create(path)
	require.NoError(t, err)

	writer := zip.NewWriter(out)

	for name, data := range entries {
		entry, err := writer.Create(name)
		require.NoError(t, err)

		_, err = entry.Write(data)
		require.NoError(t, err)
	}

	require.NoError(t, writer.Close())
	require.NoError(t, out.Close())
}

func readAll(t *testing.T, r io.Reader) []byte {
	t.Helper()

	data, err := io.ReadAll(r)
	require.NoError(t, err)

	return data
}
