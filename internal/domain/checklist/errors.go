package checklist

import "errors"

var (
	ErrContactRequired = errors.New("contact details required before download")
	ErrInvalidContact  = errors.New("contact details incomplete or phone not 10 digits")
)
