package checklist

// UnlockRequest carries the contact modal fields plus the page the
// visitor was on.
type UnlockRequest struct {
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Phone     string `json:"phone" validate:"required,usphone"`
	Source    string `json:"source"`
	Variant   string `json:"variant"`
}

// UnlockResponse returns the visitor ID to persist client-side and the
// resolved download URL.
type UnlockResponse struct {
	VisitorID   string `json:"visitorId"`
	DownloadURL string `json:"downloadUrl"`
}

// DownloadResponse resolves the gated asset URL.
type DownloadResponse struct {
	URL string `json:"url"`
}

// contactCapture is the JSON body posted to the contact webhook.
type contactCapture struct {
	Variant   string `json:"variant"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Source    string `json:"source"`
	UserAgent string `json:"userAgent"`
	TS        int64  `json:"ts"`
}
