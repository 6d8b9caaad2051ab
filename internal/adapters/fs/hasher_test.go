package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cespare/xxhash/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/hotloop/internal/adapters/fs"
)

func TestHasher_HashFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "game.so")
	content := []byte("\x7fELF module bytes")
	require.NoError(t, os.WriteFile(path, content, 0o600))

	got, err := fs.NewHasher().HashFile(path)

	require.NoError(t, err)
	assert.Len(t, got, 16)
	assert.Equal(t, xxhashHex(content), got)
}

func TestHasher_HashFile_ContentSensitive(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a")
	b := filepath.Join(dir, "b")
	require.NoError(t, os.WriteFile(a, []byte("one"), 0o600))
	require.NoError(t, os.WriteFile(b, []byte("two"), 0o600))
	h := fs.NewHasher()

	ha, err := h.HashFile(a)
	require.NoError(t, err)
	hb, err := h.HashFile(b)
	require.NoError(t, err)

	assert.NotEqual(t, ha, hb)
}

func TestHasher_HashFile_Missing(t *testing.T) {
	_, err := fs.NewHasher().HashFile(filepath.Join(t.TempDir(), "missing.so"))

	require.Error(t, err)
	assert.ErrorContains(t, err, "failed to open file")
}

func xxhashHex(b []byte) string {
	const digits = "0123456789abcdef"
	sum := xxhash.Sum64(b)
	out := make([]byte, 16)
	for i := 15; i >= 0; i-- {
		out[i] = digits[sum&0xf]
		sum >>= 4
	}
	return string(out)
}
