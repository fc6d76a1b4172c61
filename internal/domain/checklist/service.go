package checklist

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"brrrrleads/internal/pkg/validator"
)

// DefaultVariant tags contact captures that came through the checklist
// gate. The sign-up form reuses the same capture path with its own tag.
const DefaultVariant = "document-checklist"

// ContactPoster posts contact captures to the marketing webhook.
type ContactPoster interface {
	Post(ctx context.Context, payload any) ([]byte, error)
}

// UnlockStore persists the "contact already provided" flag.
type UnlockStore interface {
	Save(ctx context.Context, u *Unlock) error
	GetByVisitor(ctx context.Context, visitorID string) (*Unlock, error)
	Count(ctx context.Context) (int64, error)
}

// EventPublisher pushes unlock events to the ops feed.
type EventPublisher interface {
	Publish(eventType string, data any)
}

// Service gates the document-checklist download behind a one-time
// contact capture.
type Service struct {
	store      UnlockStore
	contacts   ContactPoster
	events     EventPublisher
	defaultURL string
}

func NewService(store UnlockStore, contacts ContactPoster, events EventPublisher, defaultURL string) *Service {
	return &Service{
		store:      store,
		contacts:   contacts,
		events:     events,
		defaultURL: defaultURL,
	}
}

// Unlock captures the visitor's contact details, notifies the contact
// webhook and marks the visitor unlocked. The webhook call is best
// effort: a capture failure never blocks the download.
func (s *Service) Unlock(ctx context.Context, req *UnlockRequest, visitorID, userAgent, override string) (*UnlockResponse, error) {
	if fields := validator.Validate(req); fields != nil {
		return nil, ErrInvalidContact
	}

	if visitorID == "" {
		visitorID = uuid.NewString()
	}

	variant := req.Variant
	if variant == "" {
		variant = DefaultVariant
	}

	capture := contactCapture{
		Variant:   variant,
		FirstName: strings.TrimSpace(req.FirstName),
		LastName:  strings.TrimSpace(req.LastName),
		Email:     strings.TrimSpace(req.Email),
		Phone:     strings.TrimSpace(req.Phone),
		Source:    req.Source,
		UserAgent: userAgent,
		TS:        time.Now().UnixMilli(),
	}
	if _, err := s.contacts.Post(ctx, capture); err != nil {
		log.Printf("contact_webhook_error visitor_id=%s err=%v", visitorID, err)
	}

	unlock := &Unlock{
		VisitorID: visitorID,
		FirstName: capture.FirstName,
		LastName:  capture.LastName,
		Email:     capture.Email,
		Phone:     capture.Phone,
		SourceURL: req.Source,
		UserAgent: userAgent,
		CreatedAt: time.Now(),
	}
	// Persisting the flag is also best effort: the visitor just traded
	// their contact for the file, so the download proceeds regardless.
	if err := s.store.Save(ctx, unlock); err != nil {
		log.Printf("unlock_store_error visitor_id=%s err=%v", visitorID, err)
	}

	if s.events != nil {
		s.events.Publish("checklist.unlocked", map[string]any{
			"visitor_id": visitorID,
			"variant":    variant,
			"email":      capture.Email,
		})
	}

	return &UnlockResponse{
		VisitorID:   visitorID,
		DownloadURL: s.resolveURL(override),
	}, nil
}

// DownloadURL resolves the asset URL for an unlocked visitor. The
// override comes from the form's `download` query parameter.
func (s *Service) DownloadURL(ctx context.Context, visitorID, override string) (string, error) {
	if visitorID == "" {
		return "", ErrContactRequired
	}

	unlock, err := s.store.GetByVisitor(ctx, visitorID)
	if err != nil {
		log.Printf("unlock_store_error visitor_id=%s err=%v", visitorID, err)
		return "", ErrContactRequired
	}
	if unlock == nil {
		return "", ErrContactRequired
	}

	return s.resolveURL(override), nil
}

// UnlockCount returns the number of unlocked visitors for the admin
// dashboard.
func (s *Service) UnlockCount(ctx context.Context) (int64, error) {
	return s.store.Count(ctx)
}

func (s *Service) resolveURL(override string) string {
	if override != "" {
		return override
	}
	return s.defaultURL
}
