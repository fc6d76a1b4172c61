package intake

import "time"

// LoanType is the loan product selected on the form. Wire values are
// the display strings the form and the pricing webhook exchange.
type LoanType string

const (
	LoanTypeDSCR       LoanType = "DSCR"
	LoanTypeFixAndFlip LoanType = "Fix & Flip"
)

func (t LoanType) Valid() bool {
	return t == LoanTypeDSCR || t == LoanTypeFixAndFlip
}

// TransactionType is the transaction selected on the form.
type TransactionType string

const (
	TransactionPurchase          TransactionType = "Purchase"
	TransactionRefinanceCashOut  TransactionType = "Refinance Cash Out"
	TransactionRefinanceRateTerm TransactionType = "Refinance Rate/Term"
)

func (t TransactionType) Valid() bool {
	return t == TransactionPurchase || t == TransactionRefinanceCashOut || t == TransactionRefinanceRateTerm
}

func (t TransactionType) IsRefinance() bool {
	return t == TransactionRefinanceCashOut || t == TransactionRefinanceRateTerm
}

// PropertyTypes are the options offered by the form, in display order.
var PropertyTypes = []string{
	"Single Family",
	"Townhome/PUD",
	"Condominium",
	"Multifamily 2-4 Units",
	"Multifamily 5-8 Units",
}

// Submission is a priced (or attempted) intake, kept for the ops
// dashboard.
type Submission struct {
	ID              string    `json:"id"`
	SessionID       string    `json:"session_id"`
	LoanType        LoanType  `json:"loan_type"`
	TransactionType string    `json:"transaction_type"`
	Payload         string    `json:"payload"`
	Validated       bool      `json:"validated"`
	PricingErrors   string    `json:"pricing_errors,omitempty"`
	RawResult       string    `json:"raw_result,omitempty"`
	IPAddress       string    `json:"-"`
	UserAgent       string    `json:"-"`
	CreatedAt       time.Time `json:"created_at"`
}
