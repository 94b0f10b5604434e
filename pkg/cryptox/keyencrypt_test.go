package cryptox_test

import (
	"encoding/pem"
	"os"
	"path/filepath"
	"testing"

	"github.com/aussiebroadwan/memorylane/pkg/cryptox"
	"github.com/stretchr/testify/require"
)

func newSealer(t *testing.T, material string) *cryptox.KeySealer {
	t.Helper()
	s, err := cryptox.NewKeySealer([]byte(material))
	require.NoError(t, err)
	return s
}

func TestSealOpenRoundTrip(t *testing.T) {
	s := newSealer(t, "test-master-key-for-sealing-12345")

	key, err := cryptox.GenerateEd25519Key()
	require.NoError(t, err)

	sealed, err := s.Seal(key)
	require.NoError(t, err)
	require.True(t, cryptox.IsSealedKey(sealed))
	require.False(t, cryptox.IsSealedKey(key))
	require.NotContains(t, string(sealed), "PRIVATE KEY")

	opened, err := s.Open(sealed)
	require.NoError(t, err)
	require.Equal(t, key, opened)

	_, err = cryptox.ParseEd25519PrivateKey(opened)
	require.NoError(t, err)
}

func TestSealUsesFreshNonce(t *testing.T) {
	s := newSealer(t, "test-master-key-multiple-times-xyz")
	data := []byte("sensitive-private-key-data-12345")

	a, err := s.Seal(data)
	require.NoError(t, err)
	b, err := s.Seal(data)
	require.NoError(t, err)
	require.NotEqual(t, a, b)
}

func TestOpenRejects(t *testing.T) {
	s := newSealer(t, "test-master-key-rejects-0000")
	sealed, err := s.Seal([]byte("original-data"))
	require.NoError(t, err)

	t.Run("wrong master key", func(t *testing.T) {
		other := newSealer(t, "another-master-key-entirely-1111")
		_, err := other.Open(sealed)
		require.ErrorIs(t, err, cryptox.ErrUnseal)
	})

	t.Run("tampered", func(t *testing.T) {
		block, _ := pem.Decode(sealed)
		block.Bytes[len(block.Bytes)-1] ^= 0xFF
		_, err := s.Open(pem.EncodeToMemory(block))
		require.ErrorIs(t, err, cryptox.ErrUnseal)
	})

	t.Run("too short", func(t *testing.T) {
		short := pem.EncodeToMemory(&pem.Block{Type: cryptox.SealedKeyPEMType, Bytes: []byte("short")})
		_, err := s.Open(short)
		require.ErrorIs(t, err, cryptox.ErrUnseal)
		require.Contains(t, err.Error(), "too short")
	})

	t.Run("plain pem", func(t *testing.T) {
		key, err := cryptox.GenerateEd25519Key()
		require.NoError(t, err)
		_, err = s.Open(key)
		require.ErrorIs(t, err, cryptox.ErrNotSealed)
	})
}

func TestWeakMasterKey(t *testing.T) {
	_, err := cryptox.NewKeySealer([]byte("  short \n"))
	require.ErrorIs(t, err, cryptox.ErrWeakMasterKey)
}

func TestLoadKeySealerFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "master.key")
	require.NoError(t, os.WriteFile(path, []byte("file-based-master-key-content-xyz\n"), 0o600))

	fromFile, err := cryptox.LoadKeySealer(path)
	require.NoError(t, err)

	// Trailing whitespace in the file does not change the derived key.
	direct := newSealer(t, "file-based-master-key-content-xyz")
	sealed, err := direct.Seal([]byte("payload"))
	require.NoError(t, err)

	opened, err := fromFile.Open(sealed)
	require.NoError(t, err)
	require.Equal(t, []byte("payload"), opened)

	_, err = cryptox.LoadKeySealer(filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)
}
