package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	jwtsvc "brrrrleads/internal/pkg/jwt"
)

type failingStore struct{}

func (failingStore) Put(context.Context, string, PersonalInfo, time.Duration) error {
	return errors.New("store down")
}

func (failingStore) Get(context.Context, string) (PersonalInfo, bool, error) {
	return PersonalInfo{}, false, errors.New("store down")
}

func (failingStore) Delete(context.Context, string) error {
	return errors.New("store down")
}

func testService(store Store) *Service {
	return NewService(store, jwtsvc.New("test-secret", time.Hour), 30*time.Minute)
}

func TestConfirmAndResolve(t *testing.T) {
	svc := testService(NewMemoryStore())
	ctx := context.Background()

	sessionID, token, err := svc.Confirm(ctx, PersonalInfo{
		FirstName: "  Ada ",
		LastName:  "Lovelace",
		Email:     "ada@example.com",
		Phone:     "(415) 555-1234",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, sessionID)
	assert.NotEmpty(t, token)

	info, ok := svc.Resolve(ctx, sessionID)
	assert.True(t, ok)
	assert.Equal(t, "Ada", info.FirstName)

	claims, err := jwtsvc.New("test-secret", time.Hour).ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, sessionID, claims.SessionID)
	assert.Equal(t, "visitor", claims.Role)
}

func TestConfirmRejectsInvalidInfo(t *testing.T) {
	svc := testService(NewMemoryStore())

	cases := []PersonalInfo{
		{},
		{FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com", Phone: "555-1234"},
		{FirstName: " ", LastName: "Lovelace", Email: "ada@example.com", Phone: "4155551234"},
		{FirstName: "Ada", LastName: "Lovelace", Email: "", Phone: "4155551234"},
	}

	for _, info := range cases {
		_, _, err := svc.Confirm(context.Background(), info)
		assert.ErrorIs(t, err, ErrInvalidPersonalInfo, "info %+v", info)
	}
}

func TestResolveUnknownSession(t *testing.T) {
	svc := testService(NewMemoryStore())

	_, ok := svc.Resolve(context.Background(), "nope")
	assert.False(t, ok)

	_, ok = svc.Resolve(context.Background(), "")
	assert.False(t, ok)
}

func TestStoreFailuresDegradeGracefully(t *testing.T) {
	svc := testService(failingStore{})
	ctx := context.Background()

	// Confirm still issues a token; the visitor is just re-prompted
	// next time.
	sessionID, token, err := svc.Confirm(ctx, PersonalInfo{
		FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com", Phone: "4155551234",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	_, ok := svc.Resolve(ctx, sessionID)
	assert.False(t, ok)
}

func TestRememberOverwrites(t *testing.T) {
	store := NewMemoryStore()
	svc := testService(store)
	ctx := context.Background()

	sessionID, _, err := svc.Confirm(ctx, PersonalInfo{
		FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com", Phone: "4155551234",
	})
	require.NoError(t, err)

	svc.Remember(ctx, sessionID, PersonalInfo{
		FirstName: "Grace", LastName: "Hopper", Email: "grace@example.com", Phone: "2025550000",
	})

	info, ok := svc.Resolve(ctx, sessionID)
	assert.True(t, ok)
	assert.Equal(t, "Grace", info.FirstName)
}
