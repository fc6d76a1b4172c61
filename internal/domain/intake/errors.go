package intake

import (
	"errors"
	"strings"
)

var (
	ErrInvalidLoanType        = errors.New("unknown loan type")
	ErrInvalidTransactionType = errors.New("unknown transaction type")
	ErrSubmitInFlight         = errors.New("a submission is already in flight for this session")
	ErrPricingUnavailable     = errors.New("pricing webhook unreachable")
)

// MissingFieldsError lists the required fields that were blank for the
// submitted loan/transaction combination.
type MissingFieldsError struct {
	Fields []string
}

func (e *MissingFieldsError) Error() string {
	return "missing required fields: " + strings.Join(e.Fields, ", ")
}
