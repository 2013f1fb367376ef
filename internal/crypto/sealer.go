// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"io"

	"golang.org/x/crypto/chacha20poly1305"
	"golang.org/x/crypto/hkdf"
)

var (
	// ErrTokenTampered is returned by Open when the sealed value cannot be
	// authenticated.
	ErrTokenTampered = errors.New("sealed token is corrupted or was sealed with another key")

	// ErrEmptySessionKey is returned when constructing a sealer without a key.
	ErrEmptySessionKey = errors.New("empty session key")
)

const (
	sealedPrefix = "v1:"
	hkdfInfo     = "pronet session token"
)

// aeadSealer seals tokens with XChaCha20-Poly1305 under a key derived from the
// configured session key via HKDF-SHA256.
type aeadSealer struct {
	key []byte
}

// NewTokenSealer derives the sealing key from sessionKey.
func NewTokenSealer(sessionKey string) (TokenSealer, error) {
	if sessionKey == "" {
		return nil, ErrEmptySessionKey
	}

	key := make([]byte, chacha20poly1305.KeySize)
	if _, err := io.ReadFull(hkdf.New(sha256.New, []byte(sessionKey), nil, []byte(hkdfInfo)), key); err != nil {
		return nil, fmt.Errorf("derive session key: %w", err)
	}

	return &aeadSealer{key: key}, nil
}

// Seal implements [TokenSealer]. The output is "v1:" followed by the base64
// encoding of nonce||ciphertext.
func (s *aeadSealer) Seal(token string) (string, error) {
	aead, err := chacha20poly1305.NewX(s.key)
	if err != nil {
		return "", fmt.Errorf("init aead: %w", err)
	}

	nonce := make([]byte, aead.NonceSize(), aead.NonceSize()+len(token)+aead.Overhead())
	if _, err = io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("generate nonce: %w", err)
	}

	out := aead.Seal(nonce, nonce, []byte(token), nil)
	return sealedPrefix + base64.RawStdEncoding.EncodeToString(out), nil
}

// Open implements [TokenSealer].
func (s *aeadSealer) Open(sealed string) (string, error) {
	if len(sealed) < len(sealedPrefix) || sealed[:len(sealedPrefix)] != sealedPrefix {
		return "", ErrTokenTampered
	}

	raw, err := base64.RawStdEncoding.DecodeString(sealed[len(sealedPrefix):])
	if err != nil {
		return "", ErrTokenTampered
	}

	aead, err := chacha20poly1305.NewX(s.key)
	if err != nil {
		return "", fmt.Errorf("init aead: %w", err)
	}
	if len(raw) < aead.NonceSize() {
		return "", ErrTokenTampered
	}

	plain, err := aead.Open(nil, raw[:aead.NonceSize()], raw[aead.NonceSize():], nil)
	if err != nil {
		return "", ErrTokenTampered
	}

	return string(plain), nil
}

// plainSealer stores tokens as-is. Used when no session key is configured.
type plainSealer struct{}

// NewPlainSealer returns a [TokenSealer] that performs no transformation.
func NewPlainSealer() TokenSealer {
	return plainSealer{}
}

func (plainSealer) Seal(token string) (string, error) { return token, nil }

func (plainSealer) Open(sealed string) (string, error) { return sealed, nil }
