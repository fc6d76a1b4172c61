package admin

import (
	"strings"

	"golang.org/x/crypto/bcrypt"

	"brrrrleads/internal/middleware"
	jwtsvc "brrrrleads/internal/pkg/jwt"
)

// Service authenticates the single ops account configured through the
// environment.
type Service struct {
	email        string
	passwordHash string
	jwt          *jwtsvc.Service
}

func NewService(email, passwordHash string, jwt *jwtsvc.Service) *Service {
	return &Service{
		email:        strings.ToLower(strings.TrimSpace(email)),
		passwordHash: passwordHash,
		jwt:          jwt,
	}
}

// Login verifies the credentials against the configured account and
// issues an admin bearer token.
func (s *Service) Login(email, password string) (string, error) {
	if s.email == "" || s.passwordHash == "" {
		return "", ErrInvalidCredentials
	}
	if strings.ToLower(strings.TrimSpace(email)) != s.email {
		return "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(s.passwordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	return s.jwt.GenerateToken(s.email, middleware.RoleAdmin)
}
