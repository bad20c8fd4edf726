package cryptox

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDeriveKey_Deterministic(t *testing.T) {
	secret := []byte("storage-secret")
	salt := []byte("fixed-salt-16byt")

	key1 := DeriveKey(secret, salt)
	key2 := DeriveKey(secret, salt)

	if !bytes.Equal(key1, key2) {
		t.Errorf("expected same result for same inputs, got different")
	}
	if len(key1) != 32 {
		t.Errorf("expected 32-byte key, got %d", len(key1))
	}
}

func TestDeriveKey_DifferentSalts(t *testing.T) {
	secret := []byte("storage-secret")
	if bytes.Equal(DeriveKey(secret, []byte("salt-1")), DeriveKey(secret, []byte("salt-2"))) {
		t.Errorf("expected different keys for different salts")
	}
}

func TestNewSalt(t *testing.T) {
	a, err := NewSalt()
	require.NoError(t, err)
	b, err := NewSalt()
	require.NoError(t, err)
	require.Len(t, a, SaltLen)
	if bytes.Equal(a, b) {
		t.Logf("warning: two salts are identical; extremely unlikely")
	}
}

func TestSealer_RoundTrip(t *testing.T) {
	salt, err := NewSalt()
	require.NoError(t, err)
	s, err := NewSealer([]byte("secret"), salt)
	require.NoError(t, err)

	sealed, err := s.Seal([]byte("eyJhbGciOiJIUzI1NiJ9.e30.sig"))
	require.NoError(t, err)
	require.NotContains(t, string(sealed), "eyJhbGci")

	plain, err := s.Open(sealed)
	require.NoError(t, err)
	require.Equal(t, "eyJhbGciOiJIUzI1NiJ9.e30.sig", string(plain))
}

func TestSealer_WrongSecretFails(t *testing.T) {
	salt := []byte("0123456789abcdef")
	s1, err := NewSealer([]byte("one"), salt)
	require.NoError(t, err)
	s2, err := NewSealer([]byte("two"), salt)
	require.NoError(t, err)

	sealed, err := s1.Seal([]byte("token"))
	require.NoError(t, err)

	_, err = s2.Open(sealed)
	require.Error(t, err)
}

func TestSealer_TooShort(t *testing.T) {
	s, err := NewSealer([]byte("x"), []byte("0123456789abcdef"))
	require.NoError(t, err)

	_, err = s.Open([]byte{1, 2, 3})
	require.ErrorIs(t, err, ErrSealedTooShort)
}
