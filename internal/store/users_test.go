package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"driverpro-service/internal/model"
)

func TestFindUserByCPF_MatchesOnDigits(t *testing.T) {
	s := New()
	s.InsertUser(model.User{Name: "Ana", CPF: "026.711.533-41", Role: model.UserRoleSolicitor})

	found, err := s.FindUserByCPF("02671153341")
	require.NoError(t, err)
	assert.Equal(t, "Ana", found.Name)

	found, err = s.FindUserByCPF("026.711.533-41")
	require.NoError(t, err)
	assert.Equal(t, "Ana", found.Name)

	_, err = s.FindUserByCPF("00000000000")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = s.FindUserByCPF("")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUserCRUD(t *testing.T) {
	s := New()

	created := s.InsertUser(model.User{Name: "Ana", CPF: "111", Role: model.UserRoleDriver})
	require.NotEmpty(t, created.ID)

	updated, err := s.UpdateUser(created.ID, func(user *model.User) error {
		user.Name = "Ana Maria"
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, "Ana Maria", updated.Name)

	require.NoError(t, s.DeleteUser(created.ID))
	_, err = s.GetUser(created.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, s.DeleteUser(created.ID), ErrNotFound)
}
