package checklist

import "time"

// Unlock records that a visitor traded contact details for the
// document checklist. The flag outlives the pricing session: once a
// device has unlocked the download it is never prompted again.
type Unlock struct {
	ID        int64     `json:"id"`
	VisitorID string    `json:"visitor_id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	SourceURL string    `json:"source_url,omitempty"`
	UserAgent string    `json:"-"`
	CreatedAt time.Time `json:"created_at"`
}
