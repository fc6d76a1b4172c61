package session

import "strings"

// PersonalInfo is the contact block collected once per visitor session
// and embedded verbatim into every pricing payload.
type PersonalInfo struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

// Valid reports whether all four fields are filled and the phone number
// carries exactly 10 digits.
func (p PersonalInfo) Valid() bool {
	return strings.TrimSpace(p.FirstName) != "" &&
		strings.TrimSpace(p.LastName) != "" &&
		strings.TrimSpace(p.Email) != "" &&
		digitCount(p.Phone) == 10
}

// Trimmed returns a copy with surrounding whitespace removed from every
// field, matching what the form stores.
func (p PersonalInfo) Trimmed() PersonalInfo {
	return PersonalInfo{
		FirstName: strings.TrimSpace(p.FirstName),
		LastName:  strings.TrimSpace(p.LastName),
		Email:     strings.TrimSpace(p.Email),
		Phone:     strings.TrimSpace(p.Phone),
	}
}

func digitCount(s string) int {
	n := 0
	for _, r := range s {
		if r >= '0' && r <= '9' {
			n++
		}
	}
	return n
}
