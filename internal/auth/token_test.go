package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"driverpro-service/internal/model"
)

func TestIssueAndParse(t *testing.T) {
	issuer := NewIssuer("test-secret", time.Hour)
	parser := NewParser("test-secret")

	token, err := issuer.Issue(model.User{ID: "u1", Name: "Ana", Role: model.UserRoleDriver})
	require.NoError(t, err)

	claims, err := parser.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "u1", claims.UserID)
	assert.Equal(t, "Ana", claims.Name)
	assert.Equal(t, model.UserRoleDriver, claims.Role)
}

func TestParse_WrongSecret(t *testing.T) {
	issuer := NewIssuer("test-secret", time.Hour)
	parser := NewParser("other-secret")

	token, err := issuer.Issue(model.User{ID: "u1", Role: model.UserRoleAdmin})
	require.NoError(t, err)

	_, err = parser.Parse(token)
	assert.Error(t, err)
}

func TestParse_ExpiredToken(t *testing.T) {
	issuer := NewIssuer("test-secret", -time.Minute)
	parser := NewParser("test-secret")

	token, err := issuer.Issue(model.User{ID: "u1", Role: model.UserRoleAdmin})
	require.NoError(t, err)

	_, err = parser.Parse(token)
	assert.Error(t, err)
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("654321")
	require.NoError(t, err)
	assert.NotEqual(t, "654321", hash)

	assert.True(t, CheckPassword(hash, "654321"))
	assert.False(t, CheckPassword(hash, "654322"))
}
