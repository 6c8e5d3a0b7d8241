// Package secrets provides encrypted-at-rest storage for the CV data
// files. The candidate's facts, anchors and contacts live on disk as
// AEAD-sealed JSON; the core only ever sees the decrypted in-memory
// structures.
package secrets

import (
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"io"
	"os"

	"golang.org/x/crypto/chacha20poly1305"

	"github.com/tienn/cvbot"
)

// Vault seals and opens data files with a symmetric key.
type Vault struct {
	aead cipher.AEAD
}

// GenerateKey returns a new random key, base64-encoded for storage in
// an environment variable or secret manager.
func GenerateKey() (string, error) {
	key := make([]byte, chacha20poly1305.KeySize)
	if _, err := io.ReadFull(rand.Reader, key); err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(key), nil
}

// NewVault creates a Vault from a base64-encoded key as produced by
// GenerateKey.
func NewVault(encodedKey string) (*Vault, error) {
	key, err := base64.StdEncoding.DecodeString(encodedKey)
	if err != nil {
		return nil, cvbot.Errorf(cvbot.ECONFIG, "encryption key is not valid base64: %v", err)
	}
	aead, err := chacha20poly1305.NewX(key)
	if err != nil {
		return nil, cvbot.Errorf(cvbot.ECONFIG, "encryption key must be %d bytes, got %d", chacha20poly1305.KeySize, len(key))
	}
	return &Vault{aead: aead}, nil
}

// Seal encrypts plaintext and prepends the random nonce.
func (v *Vault) Seal(plaintext []byte) ([]byte, error) {
	nonce := make([]byte, v.aead.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, err
	}
	return v.aead.Seal(nonce, nonce, plaintext, nil), nil
}

// Open decrypts data produced by Seal. A wrong key or corrupted file
// fails with EINVALID.
func (v *Vault) Open(sealed []byte) ([]byte, error) {
	if len(sealed) < v.aead.NonceSize() {
		return nil, cvbot.Errorf(cvbot.EINVALID, "sealed data too short")
	}
	nonce, ciphertext := sealed[:v.aead.NonceSize()], sealed[v.aead.NonceSize():]
	plaintext, err := v.aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, cvbot.Errorf(cvbot.EINVALID, "cannot decrypt: wrong key or corrupted data")
	}
	return plaintext, nil
}

// SealFile encrypts the contents of src into dst.
func (v *Vault) SealFile(src, dst string) error {
	plaintext, err := os.ReadFile(src)
	if err != nil {
		return err
	}
	sealed, err := v.Seal(plaintext)
	if err != nil {
		return err
	}
	return os.WriteFile(dst, sealed, 0600)
}

// OpenFile decrypts the contents of an encrypted file.
func (v *Vault) OpenFile(path string) ([]byte, error) {
	sealed, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return v.Open(sealed)
}
