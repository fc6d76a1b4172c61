package intake

import "context"

// PricingPoster posts the assembled payload to the pricing webhook and
// returns the raw response body.
type PricingPoster interface {
	Post(ctx context.Context, payload any) ([]byte, error)
}

// SubmissionStore persists priced submissions for the ops dashboard.
type SubmissionStore interface {
	Create(ctx context.Context, sub *Submission) error
	List(ctx context.Context, filter ListFilter, limit, offset int) ([]*Submission, int64, error)
	Stats(ctx context.Context) (SubmissionStats, error)
}

// ListFilter narrows the admin submission listing.
type ListFilter struct {
	LoanType  *LoanType
	Validated *bool
}

// EventPublisher pushes submission events to the ops feed. Best
// effort: publishing never fails a submission.
type EventPublisher interface {
	Publish(eventType string, data any)
}

// SubmissionStats summarizes intake volume for the dashboard.
type SubmissionStats struct {
	Total      int64              `json:"total"`
	Validated  int64              `json:"validated"`
	ByLoanType map[LoanType]int64 `json:"by_loan_type"`
}
