package admin

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	jwtsvc "brrrrleads/internal/pkg/jwt"
)

func testService(t *testing.T, email, password string) (*Service, *jwtsvc.Service) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	jwt := jwtsvc.New("test-secret", time.Hour)
	return NewService(email, string(hash), jwt), jwt
}

func TestLoginSuccess(t *testing.T) {
	svc, jwt := testService(t, "ops@brrrr.com", "hunter2")

	token, err := svc.Login("ops@brrrr.com", "hunter2")
	require.NoError(t, err)

	claims, err := jwt.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Role)
	assert.Equal(t, "ops@brrrr.com", claims.SessionID)
}

func TestLoginEmailIsCaseInsensitive(t *testing.T) {
	svc, _ := testService(t, "Ops@Brrrr.com", "hunter2")

	_, err := svc.Login("  OPS@BRRRR.COM ", "hunter2")
	assert.NoError(t, err)
}

func TestLoginWrongPassword(t *testing.T) {
	svc, _ := testService(t, "ops@brrrr.com", "hunter2")

	_, err := svc.Login("ops@brrrr.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginWrongEmail(t *testing.T) {
	svc, _ := testService(t, "ops@brrrr.com", "hunter2")

	_, err := svc.Login("other@brrrr.com", "hunter2")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginUnconfiguredAccount(t *testing.T) {
	jwt := jwtsvc.New("test-secret", time.Hour)
	svc := NewService("", "", jwt)

	_, err := svc.Login("", "")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
