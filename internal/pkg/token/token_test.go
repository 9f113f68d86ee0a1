package token

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidate(t *testing.T) {
	signed, err := Generate("user-1", RoleAdmin, "secret", time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, signed)

	claims, err := Validate(signed, "secret")
	require.NoError(t, err)
	require.Equal(t, "user-1", claims.UserID)
	require.Equal(t, RoleAdmin, claims.Role)
	require.Equal(t, "user-1", claims.Subject)
}

func TestValidate_WrongSecret(t *testing.T) {
	signed, err := Generate("user-1", RoleUser, "secret", time.Hour)
	require.NoError(t, err)

	_, err = Validate(signed, "other-secret")
	require.Error(t, err)
}

func TestValidate_Expired(t *testing.T) {
	signed, err := Generate("user-1", RoleUser, "secret", -time.Minute)
	require.NoError(t, err)

	_, err = Validate(signed, "secret")
	require.ErrorIs(t, err, ErrExpiredToken)
}

func TestValidate_Garbage(t *testing.T) {
	_, err := Validate("not-a-token", "secret")
	require.Error(t, err)
}

func TestParseRole(t *testing.T) {
	require.Equal(t, RoleAdmin, ParseRole("admin"))
	require.Equal(t, RoleUser, ParseRole("user"))
	// unknown strings collapse to the least-privileged role
	require.Equal(t, RoleUser, ParseRole("superuser"))
	require.Equal(t, RoleUser, ParseRole(""))
}
