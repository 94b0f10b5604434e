package cryptox

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/pem"
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/crypto/hkdf"
)

// SealedKeyPEMType is the PEM block type of a signing key sealed by KeySealer.
const SealedKeyPEMType = "MEMORYLANE SEALED KEY"

// MinMasterKeyLength is the shortest master key material accepted, in bytes.
const MinMasterKeyLength = 16

var (
	ErrWeakMasterKey = errors.New("cryptox: master key too short")
	ErrNotSealed     = errors.New("cryptox: not a sealed key")
	ErrUnseal        = errors.New("cryptox: sealed key cannot be opened")
)

// KeySealer encrypts PEM signing keys at rest with AES-256-GCM under a key
// derived from master key material with HKDF-SHA256.
type KeySealer struct {
	aead cipher.AEAD
}

// NewKeySealer derives the sealing key from material.
func NewKeySealer(material []byte) (*KeySealer, error) {
	material = bytes.TrimSpace(material)
	if len(material) < MinMasterKeyLength {
		return nil, ErrWeakMasterKey
	}

	key := make([]byte, 32)
	if _, err := io.ReadFull(hkdf.New(sha256.New, material, nil, []byte("memorylane signing key")), key); err != nil {
		return nil, fmt.Errorf("cryptox: derive sealing key: %w", err)
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("cryptox: create cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("cryptox: create GCM: %w", err)
	}
	return &KeySealer{aead: gcm}, nil
}

// LoadKeySealer reads master key material from path.
func LoadKeySealer(path string) (*KeySealer, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cryptox: read master key file: %w", err)
	}
	return NewKeySealer(data)
}

// Seal encrypts plain and wraps [nonce][ciphertext][tag] in a PEM block of
// type SealedKeyPEMType.
func (s *KeySealer) Seal(plain []byte) ([]byte, error) {
	nonce := make([]byte, s.aead.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, fmt.Errorf("cryptox: generate nonce: %w", err)
	}
	sealed := s.aead.Seal(nonce, nonce, plain, nil)
	return pem.EncodeToMemory(&pem.Block{Type: SealedKeyPEMType, Bytes: sealed}), nil
}

// Open reverses Seal. Tampered input and the wrong master key both fail
// with ErrUnseal.
func (s *KeySealer) Open(sealedPEM []byte) ([]byte, error) {
	block, _ := pem.Decode(sealedPEM)
	if block == nil || block.Type != SealedKeyPEMType {
		return nil, ErrNotSealed
	}

	ns := s.aead.NonceSize()
	if len(block.Bytes) < ns+s.aead.Overhead() {
		return nil, fmt.Errorf("%w: ciphertext too short", ErrUnseal)
	}
	plain, err := s.aead.Open(nil, block.Bytes[:ns], block.Bytes[ns:], nil)
	if err != nil {
		return nil, ErrUnseal
	}
	return plain, nil
}

// IsSealedKey reports whether data starts with a sealed key PEM block.
func IsSealedKey(data []byte) bool {
	block, _ := pem.Decode(data)
	return block != nil && block.Type == SealedKeyPEMType
}
