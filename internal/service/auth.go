package service

import (
	"crypto/subtle"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/eventdeskhq/eventdesk-api/internal/config"
)

var ErrInvalidCredentials = errors.New("invalid email or password")

// AuthService verifies the single admin identity configured through
// ADMIN_EMAIL / ADMIN_PASSWORD. The stored password may be a bcrypt
// hash or, for local setups, a plain value compared in constant time.
type AuthService struct {
	conf *config.AdminConfig
}

func NewAuthService(conf *config.AdminConfig) *AuthService {
	return &AuthService{
		conf: conf,
	}
}

// Authenticate returns the admin email on success.
func (s *AuthService) Authenticate(email, password string) (string, error) {
	if s.conf == nil || s.conf.Email == "" || s.conf.Password == "" {
		return "", ErrInvalidCredentials
	}

	emailOK := subtle.ConstantTimeCompare([]byte(strings.ToLower(email)), []byte(strings.ToLower(s.conf.Email))) == 1

	var passwordOK bool
	if strings.HasPrefix(s.conf.Password, "$2") {
		passwordOK = bcrypt.CompareHashAndPassword([]byte(s.conf.Password), []byte(password)) == nil
	} else {
		passwordOK = subtle.ConstantTimeCompare([]byte(password), []byte(s.conf.Password)) == 1
	}

	if !emailOK || !passwordOK {
		return "", ErrInvalidCredentials
	}

	return s.conf.Email, nil
}
