// Package secrets seals and opens integration credentials at rest.
//
// Tokens are encrypted with XChaCha20-Poly1305 under a single process-wide
// 32-byte key. The wire form is base64(nonce || ciphertext); the random
// 24-byte nonce makes sealing the same plaintext twice produce different
// ciphertexts.
package secrets

import (
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"

	"golang.org/x/crypto/chacha20poly1305"
)

var (
	// ErrKeySize indicates the configured key is not 32 bytes after decoding.
	ErrKeySize = errors.New("encryption key must be 32 bytes")

	// ErrCiphertext indicates a value could not be decrypted: truncated,
	// tampered with, or sealed under a different key.
	ErrCiphertext = errors.New("ciphertext is invalid")
)

// Decrypter opens sealed credential values. The credential assembler only
// needs this direction; Box is the full implementation.
type Decrypter interface {
	Decrypt(ciphertext string) (string, error)
}

// Box seals and opens strings under a fixed key.
type Box struct {
	aead cipher.AEAD
}

// NewBox creates a Box from a standard-base64-encoded 32-byte key.
func NewBox(encodedKey string) (*Box, error) {
	key, err := base64.StdEncoding.DecodeString(encodedKey)
	if err != nil {
		return nil, fmt.Errorf("decoding encryption key: %w", err)
	}
	return NewBoxFromKey(key)
}

// NewBoxFromKey creates a Box from a raw 32-byte key.
func NewBoxFromKey(key []byte) (*Box, error) {
	if len(key) != chacha20poly1305.KeySize {
		return nil, fmt.Errorf("%w, got %d", ErrKeySize, len(key))
	}
	aead, err := chacha20poly1305.NewX(key)
	if err != nil {
		return nil, fmt.Errorf("creating cipher: %w", err)
	}
	return &Box{aead: aead}, nil
}

// Encrypt seals plaintext and returns base64(nonce || ciphertext).
func (b *Box) Encrypt(plaintext string) (string, error) {
	nonce := make([]byte, chacha20poly1305.NonceSizeX)
	if _, err := rand.Read(nonce); err != nil {
		return "", fmt.Errorf("generating nonce: %w", err)
	}
	sealed := b.aead.Seal(nonce, nonce, []byte(plaintext), nil)
	return base64.StdEncoding.EncodeToString(sealed), nil
}

// Decrypt opens a value produced by Encrypt.
func (b *Box) Decrypt(ciphertext string) (string, error) {
	raw, err := base64.StdEncoding.DecodeString(ciphertext)
	if err != nil {
		return "", fmt.Errorf("%w: not base64", ErrCiphertext)
	}
	if len(raw) < chacha20poly1305.NonceSizeX {
		return "", fmt.Errorf("%w: too short", ErrCiphertext)
	}
	nonce, sealed := raw[:chacha20poly1305.NonceSizeX], raw[chacha20poly1305.NonceSizeX:]
	plain, err := b.aead.Open(nil, nonce, sealed, nil)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrCiphertext, err)
	}
	return string(plain), nil
}
