//go:build unit

package user_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"salon-reservas/internal/domain/user"
)

func mustDNI(t *testing.T, s string) user.DNI {
	t.Helper()
	d, err := user.NewDNI(s)
	require.NoError(t, err)
	return d
}

func mustEmail(t *testing.T, s string) user.Email {
	t.Helper()
	e, err := user.NewEmail(s)
	require.NoError(t, err)
	return e
}

func TestNewEmail(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{name: "valid address", input: "ana@example.com"},
		{name: "surrounding whitespace is trimmed", input: "  ana@example.com  "},
		{name: "missing at sign", input: "ana.example.com", wantErr: user.ErrInvalidEmail},
		{name: "missing domain", input: "ana@", wantErr: user.ErrInvalidEmail},
		{name: "empty", input: "", wantErr: user.ErrInvalidEmail},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, err := user.NewEmail(tt.input)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "ana@example.com", e.Value())
		})
	}
}

func TestNewDNI(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{name: "seven digits", input: "1234567"},
		{name: "eight digits", input: "12345678"},
		{name: "too short", input: "123456", wantErr: user.ErrInvalidDNI},
		{name: "too long", input: "123456789", wantErr: user.ErrInvalidDNI},
		{name: "letters", input: "12A45678", wantErr: user.ErrInvalidDNI},
		{name: "empty", input: "", wantErr: user.ErrInvalidDNI},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := user.NewDNI(tt.input)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestNewPassword(t *testing.T) {
	_, err := user.NewPassword("1234567")
	assert.ErrorIs(t, err, user.ErrPasswordTooWeak)

	p, err := user.NewPassword("12345678")
	require.NoError(t, err)
	assert.Equal(t, "12345678", p.Value())
}

func TestNewRole(t *testing.T) {
	admin, err := user.NewRole("administrador")
	require.NoError(t, err)
	assert.Equal(t, user.RoleAdmin, admin)

	client, err := user.NewRole("cliente")
	require.NoError(t, err)
	assert.Equal(t, user.RoleClient, client)

	_, err = user.NewRole("superadmin")
	assert.ErrorIs(t, err, user.ErrInvalidRole)
}

func TestNewUser(t *testing.T) {
	dni := mustDNI(t, "30123456")
	email := mustEmail(t, "ana@example.com")

	t.Run("trims names and keeps the client role", func(t *testing.T) {
		u, err := user.NewUser("  Ana ", " García ", dni, email, " 1155550000 ", "hash", user.RoleClient)

		require.NoError(t, err)
		assert.Equal(t, "Ana García", u.FullName())
		assert.Equal(t, "1155550000", u.Phone())
		assert.False(t, u.IsAdmin())
	})

	t.Run("rejects a blank first name", func(t *testing.T) {
		_, err := user.NewUser("   ", "García", dni, email, "", "hash", user.RoleClient)
		assert.ErrorIs(t, err, user.ErrEmptyName)
	})

	t.Run("rejects a blank last name", func(t *testing.T) {
		_, err := user.NewUser("Ana", "", dni, email, "", "hash", user.RoleClient)
		assert.ErrorIs(t, err, user.ErrEmptyName)
	})
}
