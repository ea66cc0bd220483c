package bin2_test

import (
	"archive/zip"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gurrenm3/BTD-Battles-2-Decryptor/internal/bin2"
	"github.com/gurrenm3/BTD-Battles-2-Decryptor/internal/config"
)

func newTestConfig(files []string, decrypt bool) *config.Config {
	return &config.Config{
		Parallel: 2,
		Quiet:    true,
		LogLevel: "off",
		Suffixes: config.Suffixes{Encrypt: ".bin2"},
		Decrypt:  decrypt,
		Files:    files,
	}
}

func TestProcessorFileRoundTrip(t *testing.T) {
	dir := t.TempDir()

	contents := map[string][]byte{
		"towers.json": []byte(`{"dart":{"cost":200}}`),
		"empty.json":  {},
		"blob.dat":    {0x00, 0x01, 0xfe, 0xff, 0x80, 0x7f, 0x10, 0x20, 0x30},
	}

	var files []string
	for name, data := range contents {
		files = append(files, writeFile(t, dir, name, data))
	}

	processed, errored, _, err := bin2.NewProcessor(newTestConfig(files, false), nil).ProcessFiles()
	require.NoError(t, err)
	assert.Equal(t, len(files), processed)
	assert.Zero(t, errored)

	var encrypted []string

	for name, data := range contents {
		path := filepath.Join(dir, name+".bin2")
		encrypted = append(encrypted, path)

		got, err := os.ReadFile(path)
		require.NoError(t, err)
		require.True(t, bin2.HasHeader(got), "%s must carry the header", name)
		require.Len(t, got, len(data)+bin2.HeaderSize)
	}

	cfg := newTestConfig(encrypted, true)
	cfg.Suffixes.Decrypt = ".out"

	processed, errored, _, err = bin2.NewProcessor(cfg, nil).ProcessFiles()
	require.NoError(t, err)
	assert.Equal(t, len(encrypted), processed)
	assert.Zero(t, errored)

	for name, data := range contents {
		got, err := os.ReadFile(filepath.Join(dir, name+".out"))
		require.NoError(t, err)
		assert.Equal(t, data, got, name)
	}
}

func TestProcessorDecryptPassthrough(t *testing.T) {
	dir := t.TempDir()

	plain := []byte("never encrypted in the first place")
	path := writeFile(t, dir, "plain.json", plain)

	cfg := newTestConfig([]string{path}, true)
	cfg.Suffixes.Encrypt = ""
	cfg.Suffixes.Decrypt = ".out"

	processed, errored, _, err := bin2.NewProcessor(cfg, nil).ProcessFiles()
	require.NoError(t, err)
	assert.Equal(t, 1, processed)
	assert.Zero(t, errored)

	got, err := os.ReadFile(path + ".out")
	require.NoError(t, err)
	assert.Equal(t, plain, got, "headerless input passes through unchanged")
}

func TestProcessorRejectsDoubleEncrypt(t *testing.T) {
	dir := t.TempDir()

	encrypted, err := bin2.Encrypt([]byte("already done"))
	require.NoError(t, err)

	path := writeFile(t, dir, "done.bin2", encrypted)

	processed, errored, _, err := bin2.NewProcessor(newTestConfig([]string{path}, false), nil).ProcessFiles()
	require.Error(t, err)
	assert.Zero(t, processed)
	assert.Equal(t, 1, errored)

	// The failed transform must not leave an output behind.
	_, statErr := os.Stat(path + ".bin2")
	assert.ErrorIs(t, statErr, os.ErrNotExist)
}

func TestProcessorArchiveRoundTrip(t *testing.T) {
	dir := t.TempDir()

	entries := map[string][]byte{
		"assets/towers.json": []byte(`{"boomerang":{"cost":325}}`),
		"assets/notes.txt":   []byte("patch notes"),
	}

	zipPath := filepath.Join(dir, "assets.jet")
	writeZip(t, zipPath, entries)

	cfg := newTestConfig([]string{zipPath}, false)
	cfg.Suffixes.Encrypt = ".enc"

	processed, _, _, err := bin2.NewProcessor(cfg, nil).ProcessFiles()
	require.NoError(t, err)
	require.Equal(t, 1, processed)

	// Every entry in the rewritten container is encrypted.
	encReader, err := zip.OpenReader(zipPath + ".enc")
	require.NoError(t, err)

	require.Len(t, encReader.File, len(entries))

	for _, f := range encReader.File {
		rc, err := f.Open()
		require.NoError(t, err)

		data := readAll(t, rc)
		require.NoError(t, rc.Close())

		require.True(t, bin2.HasHeader(data), "entry %s", f.Name)
		assert.Len(t, data, len(entries[f.Name])+bin2.HeaderSize, "entry %s", f.Name)
	}

	require.NoError(t, encReader.Close())

	cfg = newTestConfig([]string{zipPath + ".enc"}, true)
	cfg.Suffixes.Encrypt = ".enc"
	cfg.Suffixes.Decrypt = ".dec"

	processed, _, _, err = bin2.NewProcessor(cfg, nil).ProcessFiles()
	require.NoError(t, err)
	require.Equal(t, 1, processed)

	decReader, err := zip.OpenReader(zipPath + ".dec")
	require.NoError(t, err)

	defer decReader.Close()

	for _, f := range decReader.File {
		rc, err := f.Open()
		require.NoError(t, err)

		data := readAll(t, rc)
		require.NoError(t, rc.Close())

		assert.Equal(t, entries[f.Name], data, "entry %s", f.Name)
	}
}
