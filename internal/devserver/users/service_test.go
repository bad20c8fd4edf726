package users

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateAndAuthenticate(t *testing.T) {
	s := NewService()

	u, err := s.Create("budi", "rahasia", "Supervisor")
	require.NoError(t, err)
	assert.Equal(t, int64(1), u.ID)

	got, err := s.Authenticate("budi", "rahasia")
	require.NoError(t, err)
	assert.Equal(t, "Supervisor", got.Role)

	_, err = s.Authenticate("budi", "salah")
	assert.ErrorIs(t, err, ErrInvalidLogin)

	_, err = s.Authenticate("nobody", "rahasia")
	assert.ErrorIs(t, err, ErrInvalidLogin)
}

func TestCreate_Validation(t *testing.T) {
	s := NewService()

	_, err := s.Create("", "x", "Admin")
	assert.ErrorIs(t, err, ErrValidation)

	_, err = s.Create("x", "x", "Kasir")
	assert.ErrorIs(t, err, ErrValidation)

	_, err = s.Create("x", "x", "Admin")
	require.NoError(t, err)
	_, err = s.Create("x", "y", "Mekanik")
	assert.ErrorIs(t, err, ErrAlreadyExists)
}

func TestSeed(t *testing.T) {
	s := NewService()
	require.NoError(t, s.Seed())

	list := s.List()
	require.Len(t, list, len(Roles))
	assert.Equal(t, "admin", list[0].Username)

	u, err := s.Authenticate("mekanik", "mekanik")
	require.NoError(t, err)
	assert.Equal(t, "Mekanik", u.Role)
}
