package encrypter

import (
	"encoding/base64"
	"errors"
	"strings"
	"testing"
)

func TestNewValidatesKey(t *testing.T) {
	valid := base64.URLEncoding.EncodeToString([]byte(strings.Repeat("k", 32)))

	tests := []struct {
		name    string
		key     string
		wantErr bool
	}{
		{name: "url-safe padded", key: valid},
		{name: "standard", key: base64.StdEncoding.EncodeToString([]byte(strings.Repeat("s", 32)))},
		{name: "raw", key: base64.RawURLEncoding.EncodeToString([]byte(strings.Repeat("r", 32)))},
		{name: "empty", key: "", wantErr: true},
		{name: "short", key: base64.StdEncoding.EncodeToString([]byte("short")), wantErr: true},
		{name: "not base64", key: "***", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.key)
			if (err != nil) != tt.wantErr {
				t.Errorf("New() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestEncryptDecrypt(t *testing.T) {
	key, err := GenerateKey()
	if err != nil {
		t.Fatalf("GenerateKey() error: %v", err)
	}
	enc, err := New(key)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	sealed, err := enc.EncryptString(`{"refresh_token":"r-1"}`)
	if err != nil {
		t.Fatalf("EncryptString() error: %v", err)
	}
	if strings.Contains(sealed, "refresh_token") {
		t.Error("ciphertext leaks plaintext")
	}

	other, _ := enc.EncryptString(`{"refresh_token":"r-1"}`)
	if other == sealed {
		t.Error("expected random nonce per message")
	}

	got, err := enc.DecryptString(sealed)
	if err != nil || got != `{"refresh_token":"r-1"}` {
		t.Errorf("DecryptString() = %q, %v", got, err)
	}
}

func TestDecryptRejectsTampering(t *testing.T) {
	key, _ := GenerateKey()
	enc, _ := New(key)
	otherKey, _ := GenerateKey()
	other, _ := New(otherKey)

	sealed, _ := enc.EncryptString("user-1")

	if _, err := other.DecryptString(sealed); !errors.Is(err, ErrInvalidCiphertext) {
		t.Errorf("expected ErrInvalidCiphertext with wrong key, got %v", err)
	}
	if _, err := enc.DecryptString("not-a-token"); !errors.Is(err, ErrInvalidCiphertext) {
		t.Errorf("expected ErrInvalidCiphertext for garbage, got %v", err)
	}

	raw, _ := base64.RawURLEncoding.DecodeString(sealed)
	raw[len(raw)-1] ^= 0xff
	if _, err := enc.Decrypt(base64.RawURLEncoding.EncodeToString(raw)); !errors.Is(err, ErrInvalidCiphertext) {
		t.Errorf("expected ErrInvalidCiphertext for flipped byte, got %v", err)
	}
}
