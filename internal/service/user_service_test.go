package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"driverpro-service/internal/auth"
	"driverpro-service/internal/model"
	"driverpro-service/internal/store"
)

func TestAuthenticate(t *testing.T) {
	st := store.New()
	hash, err := auth.HashPassword("654321")
	require.NoError(t, err)
	st.InsertUser(model.User{Name: "Ana", CPF: "123.456.789-10", PasswordHash: hash, Role: model.UserRoleAdmin})

	svc := NewUserService(st)

	user, err := svc.Authenticate(context.Background(), "12345678910", "654321")
	require.NoError(t, err)
	assert.Equal(t, "Ana", user.Name)

	_, err = svc.Authenticate(context.Background(), "123.456.789-10", "wrong")
	assert.ErrorIs(t, err, ErrPermissionDenied)

	_, err = svc.Authenticate(context.Background(), "000", "654321")
	assert.ErrorIs(t, err, ErrPermissionDenied)
}

func TestUserCRUD_AdminGated(t *testing.T) {
	st := store.New()
	svc := NewUserService(st)

	admin := model.Principal{UserID: "a1", Role: model.UserRoleAdmin}
	driver := model.Principal{UserID: "d1", Role: model.UserRoleDriver}

	created, err := svc.Create(context.Background(), admin, CreateUserInput{
		Name:     "New Driver",
		CPF:      "999.888.777-66",
		Password: "secret",
		Role:     model.UserRoleDriver,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.NotEqual(t, "secret", created.PasswordHash)

	_, err = svc.Create(context.Background(), driver, CreateUserInput{
		Name:     "Nope",
		CPF:      "111",
		Password: "x",
		Role:     model.UserRoleDriver,
	})
	assert.ErrorIs(t, err, ErrPermissionDenied)

	// duplicate CPF
	_, err = svc.Create(context.Background(), admin, CreateUserInput{
		Name:     "Dup",
		CPF:      "99988877766",
		Password: "x",
		Role:     model.UserRoleDriver,
	})
	assert.ErrorIs(t, err, ErrConflict)

	// bogus role
	_, err = svc.Create(context.Background(), admin, CreateUserInput{
		Name:     "Bad Role",
		CPF:      "123",
		Password: "x",
		Role:     model.UserRole("SUPERVISOR"),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)

	newName := "Renamed Driver"
	updated, err := svc.Update(context.Background(), admin, created.ID, UpdateUserInput{Name: &newName})
	require.NoError(t, err)
	assert.Equal(t, "Renamed Driver", updated.Name)

	assert.ErrorIs(t, svc.Delete(context.Background(), driver, created.ID), ErrPermissionDenied)
	require.NoError(t, svc.Delete(context.Background(), admin, created.ID))
	assert.ErrorIs(t, svc.Delete(context.Background(), admin, created.ID), ErrNotFound)
}

func TestUserDelete_CannotDeleteSelf(t *testing.T) {
	st := store.New()
	svc := NewUserService(st)
	admin := st.InsertUser(model.User{Name: "Adm", CPF: "1", Role: model.UserRoleAdmin})
	principal := model.Principal{UserID: admin.ID, Role: admin.Role}

	assert.ErrorIs(t, svc.Delete(context.Background(), principal, admin.ID), ErrConflict)
}
