package crypto

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReadWalletAddress(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	t.Run("reads address without password", func(t *testing.T) {
		path := filepath.Join(dir, "owner.vlt")
		content := `{"network":"solana","address":"4Nd1mY5jN6nWjcwXHiqGHEuqsNnVrf7nSdLpT4G3pXem","QR":"","salt":"","nonce":"","cipherText":""}`
		require.NoError(t, os.WriteFile(path, []byte(content), 0600))

		address, err := ReadWalletAddress(path)
		require.NoError(t, err)
		require.Equal(t, "4Nd1mY5jN6nWjcwXHiqGHEuqsNnVrf7nSdLpT4G3pXem", address)
	})

	t.Run("skips UTF-8 BOM", func(t *testing.T) {
		path := filepath.Join(dir, "bom.vlt")
		content := append([]byte{0xEF, 0xBB, 0xBF}, []byte(`{"address":"abc"}`)...)
		require.NoError(t, os.WriteFile(path, content, 0600))

		address, err := ReadWalletAddress(path)
		require.NoError(t, err)
		require.Equal(t, "abc", address)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := ReadWalletAddress(filepath.Join(dir, "nope.vlt"))
		require.Error(t, err)
	})

	t.Run("empty file", func(t *testing.T) {
		path := filepath.Join(dir, "empty.vlt")
		require.NoError(t, os.WriteFile(path, nil, 0600))

		_, err := ReadWalletAddress(path)
		require.Error(t, err)
	})
}
