package encrypter

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/crypto/nacl/secretbox"
)

const (
	keySize   = 32
	nonceSize = 24
)

var (
	ErrInvalidKey        = errors.New("encryption key must be 32 bytes, base64 encoded")
	ErrInvalidCiphertext = errors.New("invalid ciphertext")
)

// Encrypter seals small secrets (OAuth tokens, session ids) into URL-safe strings.
type Encrypter interface {
	Encrypt(plaintext []byte) (string, error)
	Decrypt(ciphertext string) ([]byte, error)
	EncryptString(plaintext string) (string, error)
	DecryptString(ciphertext string) (string, error)
}

type implEncrypter struct {
	key [keySize]byte
}

// New creates an Encrypter from a base64 key (URL-safe or standard alphabet,
// padded or not) that decodes to 32 bytes.
func New(key string) (Encrypter, error) {
	raw, err := decodeKey(key)
	if err != nil {
		return nil, err
	}
	if len(raw) != keySize {
		return nil, ErrInvalidKey
	}

	e := &implEncrypter{}
	copy(e.key[:], raw)
	return e, nil
}

// GenerateKey returns a fresh random key in the format New accepts.
func GenerateKey() (string, error) {
	raw := make([]byte, keySize)
	if _, err := io.ReadFull(rand.Reader, raw); err != nil {
		return "", fmt.Errorf("generate key: %w", err)
	}
	return base64.URLEncoding.EncodeToString(raw), nil
}

func decodeKey(key string) ([]byte, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return nil, ErrInvalidKey
	}
	for _, enc := range []*base64.Encoding{base64.URLEncoding, base64.RawURLEncoding, base64.StdEncoding, base64.RawStdEncoding} {
		if raw, err := enc.DecodeString(key); err == nil {
			return raw, nil
		}
	}
	return nil, ErrInvalidKey
}

func (e *implEncrypter) Encrypt(plaintext []byte) (string, error) {
	var nonce [nonceSize]byte
	if _, err := io.ReadFull(rand.Reader, nonce[:]); err != nil {
		return "", fmt.Errorf("read nonce: %w", err)
	}

	sealed := secretbox.Seal(nonce[:], plaintext, &nonce, &e.key)
	return base64.RawURLEncoding.EncodeToString(sealed), nil
}

func (e *implEncrypter) Decrypt(ciphertext string) ([]byte, error) {
	sealed, err := base64.RawURLEncoding.DecodeString(ciphertext)
	if err != nil || len(sealed) < nonceSize+secretbox.Overhead {
		return nil, ErrInvalidCiphertext
	}

	var nonce [nonceSize]byte
	copy(nonce[:], sealed[:nonceSize])

	plaintext, ok := secretbox.Open(nil, sealed[nonceSize:], &nonce, &e.key)
	if !ok {
		return nil, ErrInvalidCiphertext
	}
	return plaintext, nil
}

func (e *implEncrypter) EncryptString(plaintext string) (string, error) {
	return e.Encrypt([]byte(plaintext))
}

func (e *implEncrypter) DecryptString(ciphertext string) (string, error) {
	plaintext, err := e.Decrypt(ciphertext)
	if err != nil {
		return "", err
	}
	return string(plaintext), nil
}
