package cryptox

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSealOpen_RoundTrip(t *testing.T) {
	key := DeriveVaultKey([]byte("device-secret"), []byte("0123456789abcdef"))
	require.Len(t, key, 32)

	blob, err := Seal([]byte("tok1"), key)
	require.NoError(t, err)
	require.NotEqual(t, []byte("tok1"), blob)

	plain, err := Open(blob, key)
	require.NoError(t, err)
	assert.Equal(t, []byte("tok1"), plain)
}

func TestSeal_FreshNoncePerCall(t *testing.T) {
	key := DeriveVaultKey([]byte("s"), []byte("salt-salt-salt-1"))

	a, err := Seal([]byte("same"), key)
	require.NoError(t, err)
	b, err := Seal([]byte("same"), key)
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}

func TestOpen_WrongKeyFails(t *testing.T) {
	key := DeriveVaultKey([]byte("right"), []byte("salt-salt-salt-1"))
	other := DeriveVaultKey([]byte("wrong"), []byte("salt-salt-salt-1"))

	blob, err := Seal([]byte("secret"), key)
	require.NoError(t, err)

	_, err = Open(blob, other)
	assert.Error(t, err)
}

func TestOpen_TruncatedBlobFails(t *testing.T) {
	key := DeriveVaultKey([]byte("s"), []byte("salt-salt-salt-1"))
	_, err := Open([]byte{1, 2, 3}, key)
	assert.Error(t, err)
}

func TestLoadOrCreateDeviceKey_CreatesAndReloads(t *testing.T) {
	path := filepath.Join(t.TempDir(), "device.key")

	secret1, salt1, err := LoadOrCreateDeviceKey(path)
	require.NoError(t, err)
	require.Len(t, secret1, 32)
	require.Len(t, salt1, 16)

	secret2, salt2, err := LoadOrCreateDeviceKey(path)
	require.NoError(t, err)
	assert.Equal(t, secret1, secret2)
	assert.Equal(t, salt1, salt2)
}
