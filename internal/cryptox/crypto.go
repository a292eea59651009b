// Package cryptox implements the encryption primitives behind the local
// secure store: argon2id key stretching of a per-device secret and AES-GCM
// sealing of stored values.
package cryptox

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"errors"
	"fmt"
	"os"

	"github.com/duckycart/companion/internal/common"
	"golang.org/x/crypto/argon2"
)

const (
	deviceSecretSize = 32
	deviceSaltSize   = 16
	nonceSize        = 12
)

// DeriveVaultKey stretches the device secret into a 256-bit AES key using
// argon2id. The same (secret, salt) pair always yields the same key.
func DeriveVaultKey(secret, salt []byte) []byte {
	return argon2.IDKey(secret, salt, 1, 64*1024, 4, 32)
}

// Seal encrypts plaintext with AES-GCM under key and returns nonce||ciphertext.
//
// The key must be a valid AES key length (16, 24, or 32 bytes). A fresh
// random 12-byte nonce is generated per call and prepended to the result so
// the blob is self-contained.
func Seal(plaintext, key []byte) ([]byte, error) {
	nonce := make([]byte, nonceSize)
	if _, err := rand.Read(nonce); err != nil {
		return nil, err
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	aesgcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}

	return append(nonce, aesgcm.Seal(nil, nonce, plaintext, nil)...), nil
}

// Open decrypts a blob produced by Seal and returns the plaintext.
// It fails if the blob is truncated, the key is wrong, or the ciphertext
// has been tampered with.
func Open(blob, key []byte) ([]byte, error) {
	if len(blob) < nonceSize {
		return nil, errors.New("sealed value too short")
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	aesgcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}

	return aesgcm.Open(nil, blob[:nonceSize], blob[nonceSize:], nil)
}

// LoadOrCreateDeviceKey reads the device key file at path, creating it with
// fresh random material on first run. The file holds the raw device secret
// followed by the argon2 salt and is written with 0600 permissions.
func LoadOrCreateDeviceKey(path string) (secret, salt []byte, err error) {
	data, err := os.ReadFile(path)
	if err == nil {
		if len(data) != deviceSecretSize+deviceSaltSize {
			return nil, nil, fmt.Errorf("device key file %s is corrupt", path)
		}
		return data[:deviceSecretSize], data[deviceSecretSize:], nil
	}
	if !errors.Is(err, os.ErrNotExist) {
		return nil, nil, err
	}

	secret = common.GenerateRandByteArray(deviceSecretSize)
	salt = common.GenerateRandByteArray(deviceSaltSize)
	if err := os.WriteFile(path, append(append([]byte(nil), secret...), salt...), 0o600); err != nil {
		return nil, nil, err
	}
	return secret, salt, nil
}
