package intake

import "brrrrleads/internal/domain/session"

// SubmitRequest mirrors the loan-intake form fields verbatim. Every
// value arrives as the raw input string; normalization happens during
// payload assembly so a stray character never blocks a submission.
type SubmitRequest struct {
	LoanType              string `json:"loan-type"`
	MidFicoScore          string `json:"mid-fico-score"`
	Street                string `json:"street"`
	Apt                   string `json:"apt"`
	City                  string `json:"city"`
	State                 string `json:"state"`
	Zip                   string `json:"zip"`
	PropertyType          string `json:"property-type"`
	TransactionType       string `json:"transaction-type"`
	PurchasePrice         string `json:"purchase-price"`
	AsIsValue             string `json:"as-is-value"`
	PayoffAmount          string `json:"payoff-amount"`
	MonthlyIncome         string `json:"monthly-income"`
	MonthlyExpenses       string `json:"monthly-expenses"`
	ProjectsCompleted36Mo string `json:"projects-completed-36mo"`
	RehabBudget           string `json:"rehab-budget"`
	AfterRepairValue      string `json:"after-repair-value"`
	RequestedLTV          string `json:"requested-ltv"`

	// Personal optionally carries a just-confirmed contact block,
	// the API analog of submitting straight from the modal.
	Personal *session.PersonalInfo `json:"personal,omitempty"`
}

// Fields maps form field names to their raw values for the
// required-field presence check.
func (r *SubmitRequest) Fields() map[string]string {
	return map[string]string{
		FieldLoanType:              r.LoanType,
		FieldMidFicoScore:          r.MidFicoScore,
		FieldStreet:                r.Street,
		FieldApt:                   r.Apt,
		FieldCity:                  r.City,
		FieldState:                 r.State,
		FieldZip:                   r.Zip,
		FieldPropertyType:          r.PropertyType,
		FieldTransactionType:       r.TransactionType,
		FieldPurchasePrice:         r.PurchasePrice,
		FieldAsIsValue:             r.AsIsValue,
		FieldPayoffAmount:          r.PayoffAmount,
		FieldMonthlyIncome:         r.MonthlyIncome,
		FieldMonthlyExpenses:       r.MonthlyExpenses,
		FieldProjectsCompleted36Mo: r.ProjectsCompleted36Mo,
		FieldRehabBudget:           r.RehabBudget,
		FieldAfterRepairValue:      r.AfterRepairValue,
		FieldRequestedLTV:          r.RequestedLTV,
	}
}

// SubmissionListResponse is the admin list envelope.
type SubmissionListResponse struct {
	Submissions []Submission `json:"submissions"`
	Total       int64        `json:"total"`
}

// StateResponse reports the submit-button state for a session.
type StateResponse struct {
	State SubmitState `json:"state"`
}
