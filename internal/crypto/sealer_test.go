package crypto

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTokenSealer_EmptyKey(t *testing.T) {
	_, err := NewTokenSealer("")
	assert.ErrorIs(t, err, ErrEmptySessionKey)
}

func TestAEADSealer_RoundTrip(t *testing.T) {
	s, err := NewTokenSealer("local-secret")
	require.NoError(t, err)

	sealed, err := s.Seal("eyJhbGciOi.payload.sig")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(sealed, sealedPrefix))
	assert.NotContains(t, sealed, "payload")

	opened, err := s.Open(sealed)
	require.NoError(t, err)
	assert.Equal(t, "eyJhbGciOi.payload.sig", opened)
}

func TestAEADSealer_NonceIsRandom(t *testing.T) {
	s, err := NewTokenSealer("local-secret")
	require.NoError(t, err)

	a, err := s.Seal("abc")
	require.NoError(t, err)
	b, err := s.Seal("abc")
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}

func TestAEADSealer_OpenRejects(t *testing.T) {
	s, err := NewTokenSealer("key-one")
	require.NoError(t, err)
	other, err := NewTokenSealer("key-two")
	require.NoError(t, err)

	sealed, err := other.Seal("abc")
	require.NoError(t, err)

	tests := []struct {
		name  string
		input string
	}{
		{name: "foreign key", input: sealed},
		{name: "no prefix", input: "abc"},
		{name: "bad base64", input: sealedPrefix + "!!!"},
		{name: "too short", input: sealedPrefix + "AAAA"},
		{name: "flipped byte", input: flipChar(sealed, len(sealedPrefix)+10)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.Open(tt.input)
			assert.ErrorIs(t, err, ErrTokenTampered)
		})
	}
}

func TestPlainSealer(t *testing.T) {
	s := NewPlainSealer()

	sealed, err := s.Seal("abc")
	require.NoError(t, err)
	assert.Equal(t, "abc", sealed)

	opened, err := s.Open(sealed)
	require.NoError(t, err)
	assert.Equal(t, "abc", opened)
}

func flipChar(s string, i int) string {
	b := []byte(s)
	if b[i] == 'A' {
		b[i] = 'B'
	} else {
		b[i] = 'A'
	}
	return string(b)
}
