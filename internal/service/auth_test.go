package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/eventdeskhq/eventdesk-api/internal/config"
)

func TestAuthServiceAuthenticatePlaintext(t *testing.T) {
	svc := NewAuthService(&config.AdminConfig{
		Email:    "admin@example.com",
		Password: "hunter2",
	})

	email, err := svc.Authenticate("admin@example.com", "hunter2")
	require.NoError(t, err)
	assert.Equal(t, "admin@example.com", email)

	// Email comparison is case-insensitive.
	_, err = svc.Authenticate("Admin@Example.com", "hunter2")
	assert.NoError(t, err)
}

func TestAuthServiceAuthenticateBcrypt(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("hunter2"), bcrypt.MinCost)
	require.NoError(t, err)

	svc := NewAuthService(&config.AdminConfig{
		Email:    "admin@example.com",
		Password: string(hash),
	})

	_, err = svc.Authenticate("admin@example.com", "hunter2")
	assert.NoError(t, err)

	_, err = svc.Authenticate("admin@example.com", "hunter3")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthServiceAuthenticateRejects(t *testing.T) {
	svc := NewAuthService(&config.AdminConfig{
		Email:    "admin@example.com",
		Password: "hunter2",
	})

	tests := []struct {
		name     string
		email    string
		password string
	}{
		{"wrong password", "admin@example.com", "nope"},
		{"wrong email", "other@example.com", "hunter2"},
		{"both wrong", "other@example.com", "nope"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Authenticate(tt.email, tt.password)

			assert.ErrorIs(t, err, ErrInvalidCredentials)
		})
	}
}

func TestAuthServiceUnconfigured(t *testing.T) {
	for _, conf := range []*config.AdminConfig{nil, {}, {Email: "admin@example.com"}} {
		svc := NewAuthService(conf)

		_, err := svc.Authenticate("admin@example.com", "anything")

		assert.ErrorIs(t, err, ErrInvalidCredentials)
	}
}
