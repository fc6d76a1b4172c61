package session

import "errors"

var (
	ErrInvalidPersonalInfo = errors.New("personal info incomplete or phone not 10 digits")
)
