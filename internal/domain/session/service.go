package session

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"

	jwtsvc "brrrrleads/internal/pkg/jwt"
)

const roleVisitor = "visitor"

// Service issues visitor session tokens once personal info has been
// confirmed, and resolves them back to the stored contact block.
type Service struct {
	store Store
	jwt   *jwtsvc.Service
	ttl   time.Duration
}

func NewService(store Store, jwt *jwtsvc.Service, ttl time.Duration) *Service {
	return &Service{store: store, jwt: jwt, ttl: ttl}
}

// Confirm validates and stores the personal info and returns the new
// session ID with its token for subsequent submissions. A store
// failure is logged but does not fail the call: the visitor is simply
// prompted again next time.
func (s *Service) Confirm(ctx context.Context, info PersonalInfo) (string, string, error) {
	info = info.Trimmed()
	if !info.Valid() {
		return "", "", ErrInvalidPersonalInfo
	}

	sessionID := uuid.NewString()
	if err := s.store.Put(ctx, sessionID, info, s.ttl); err != nil {
		log.Printf("session_store_error op=put session_id=%s err=%v", sessionID, err)
	}

	token, err := s.jwt.GenerateToken(sessionID, roleVisitor)
	if err != nil {
		return "", "", err
	}
	return sessionID, token, nil
}

// Resolve returns the personal info for a session ID. Any storage
// failure degrades to "not found" so the caller re-prompts instead of
// failing the form.
func (s *Service) Resolve(ctx context.Context, sessionID string) (PersonalInfo, bool) {
	if sessionID == "" {
		return PersonalInfo{}, false
	}

	info, ok, err := s.store.Get(ctx, sessionID)
	if err != nil {
		log.Printf("session_store_error op=get session_id=%s err=%v", sessionID, err)
		return PersonalInfo{}, false
	}
	if !ok || !info.Valid() {
		return PersonalInfo{}, false
	}
	return info, true
}

// Remember stores personal info under an existing session ID, used when
// a submission carries a fresh inline contact block.
func (s *Service) Remember(ctx context.Context, sessionID string, info PersonalInfo) {
	if err := s.store.Put(ctx, sessionID, info.Trimmed(), s.ttl); err != nil {
		log.Printf("session_store_error op=put session_id=%s err=%v", sessionID, err)
	}
}
