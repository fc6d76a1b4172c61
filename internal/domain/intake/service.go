package intake

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"brrrrleads/internal/domain/session"
)

// successResetDelay returns the submit button to idle after a
// successful round trip, matching the form animation.
const successResetDelay = 1200 * time.Millisecond

// Service owns the loan-intake submission protocol: required-field
// validation, payload assembly, the single webhook POST and response
// classification.
type Service struct {
	store   SubmissionStore
	pricing PricingPoster
	events  EventPublisher

	tracker    *stateTracker
	resetDelay time.Duration
}

func NewService(store SubmissionStore, pricing PricingPoster, events EventPublisher) *Service {
	return &Service{
		store:      store,
		pricing:    pricing,
		events:     events,
		tracker:    newStateTracker(),
		resetDelay: successResetDelay,
	}
}

// Submit runs one submission for a visitor session: validates the
// required-field set, builds the payload, posts it to the pricing
// webhook and classifies the response into a verdict.
//
// Failure paths return the session to idle with no result stored; the
// caller may simply retry.
func (s *Service) Submit(ctx context.Context, sessionID string, req *SubmitRequest, personal session.PersonalInfo, ip, userAgent string) (*PricingVerdict, error) {
	loan := LoanType(strings.TrimSpace(req.LoanType))
	if !loan.Valid() {
		return nil, ErrInvalidLoanType
	}
	tx := TransactionType(strings.TrimSpace(req.TransactionType))
	if !tx.Valid() {
		return nil, ErrInvalidTransactionType
	}

	if !s.tracker.begin(sessionID) {
		return nil, ErrSubmitInFlight
	}
	defer s.tracker.finish(sessionID)

	if missing := s.missingFields(loan, tx, req); len(missing) > 0 {
		s.tracker.set(sessionID, StateIdle)
		return nil, &MissingFieldsError{Fields: missing}
	}

	// Loan type is captured here: the verdict shape must not change if
	// the live form is edited while the request is in flight.
	submittedLoanType := loan
	s.tracker.set(sessionID, StateLoading)

	payload := BuildPayload(req, personal)

	body, err := s.pricing.Post(ctx, payload)
	if err != nil {
		s.tracker.set(sessionID, StateIdle)
		return nil, fmt.Errorf("%w: %v", ErrPricingUnavailable, err)
	}

	outcome := ClassifyResponse(body)
	verdict := BuildVerdict(submittedLoanType, outcome)

	s.record(ctx, sessionID, submittedLoanType, tx, payload, outcome, ip, userAgent)

	if s.events != nil {
		s.events.Publish("intake.submitted", map[string]any{
			"session_id": sessionID,
			"loan_type":  submittedLoanType,
			"validated":  outcome.Validated,
		})
	}

	s.tracker.succeed(sessionID, s.resetDelay)
	return &verdict, nil
}

// State reports the submit-button state for a session.
func (s *Service) State(sessionID string) SubmitState {
	return s.tracker.get(sessionID)
}

// ListSubmissions returns stored submissions with optional loan-type
// and validated filters.
func (s *Service) ListSubmissions(ctx context.Context, filter ListFilter, limit, offset int) ([]*Submission, int64, error) {
	return s.store.List(ctx, filter, limit, offset)
}

// GetStats returns intake volume counters.
func (s *Service) GetStats(ctx context.Context) (SubmissionStats, error) {
	return s.store.Stats(ctx)
}

func (s *Service) missingFields(loan LoanType, tx TransactionType, req *SubmitRequest) []string {
	values := req.Fields()

	var missing []string
	for _, name := range RequiredFields(loan, tx) {
		if strings.TrimSpace(values[name]) == "" {
			missing = append(missing, name)
		}
	}
	return missing
}

// record persists the submission best-effort: a storage failure is
// logged, never surfaced to the visitor.
func (s *Service) record(ctx context.Context, sessionID string, loan LoanType, tx TransactionType, payload PricingRequest, outcome PricingOutcome, ip, userAgent string) {
	if s.store == nil {
		return
	}

	payloadJSON, _ := json.Marshal(payload)
	errorsJSON, _ := json.Marshal(outcome.Errors)
	rawJSON, _ := json.Marshal(outcome.Raw)

	sub := &Submission{
		ID:              uuid.NewString(),
		SessionID:       sessionID,
		LoanType:        loan,
		TransactionType: string(tx),
		Payload:         string(payloadJSON),
		Validated:       outcome.Validated,
		PricingErrors:   string(errorsJSON),
		RawResult:       string(rawJSON),
		IPAddress:       ip,
		UserAgent:       userAgent,
		CreatedAt:       time.Now(),
	}

	if err := s.store.Create(ctx, sub); err != nil {
		log.Printf("submission_store_error session_id=%s err=%v", sessionID, err)
	}
}
