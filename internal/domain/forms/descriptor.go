package forms

import (
	"brrrrleads/internal/domain/intake"
)

// Variant names accepted by the descriptor endpoint. Anything else
// falls back to the loan-intake form.
const (
	VariantChecklist = "checklist"
	VariantSignUp    = "sow"
	VariantIntake    = "intake"
)

// FieldSpec describes one form field for the client renderer.
type FieldSpec struct {
	Name     string   `json:"name"`
	Label    string   `json:"label"`
	Required bool     `json:"required"`
	Options  []string `json:"options,omitempty"`
}

// Descriptor tells the client which form to mount and how to render it.
type Descriptor struct {
	Variant     string      `json:"variant"`
	SubmitPath  string      `json:"submitPath"`
	Fields      []FieldSpec `json:"fields,omitempty"`
	Rules       *IntakeRule `json:"rules,omitempty"`
	DownloadURL string      `json:"downloadUrl,omitempty"`
}

// IntakeRule is the server-side rule table for one
// (loanType, transactionType) pair, so conditional rendering matches
// the resolver exactly.
type IntakeRule struct {
	LoanType        intake.LoanType        `json:"loanType"`
	TransactionType intake.TransactionType `json:"transactionType"`
	RequiredFields  []string               `json:"requiredFields"`
	LTVMax          float64                `json:"ltvMax"`
	FicoMin         int                    `json:"ficoMin"`
	FicoMax         int                    `json:"ficoMax"`
}

var contactFields = []FieldSpec{
	{Name: "firstName", Label: "First Name", Required: true},
	{Name: "lastName", Label: "Last Name", Required: true},
	{Name: "email", Label: "Email", Required: true},
	{Name: "phone", Label: "Phone", Required: true},
}

// Resolve builds the descriptor for a variant. The intake descriptor
// optionally carries the rule table for a concrete selection when both
// enums are valid.
func Resolve(variant, downloadURL string, loan intake.LoanType, tx intake.TransactionType) Descriptor {
	switch variant {
	case VariantChecklist, "":
		return Descriptor{
			Variant:     VariantChecklist,
			SubmitPath:  "/api/v1/checklist/unlock",
			Fields:      contactFields,
			DownloadURL: downloadURL,
		}
	case VariantSignUp:
		return Descriptor{
			Variant:    VariantSignUp,
			SubmitPath: "/api/v1/checklist/unlock",
			Fields:     contactFields,
		}
	default:
		return intakeDescriptor(loan, tx)
	}
}

func intakeDescriptor(loan intake.LoanType, tx intake.TransactionType) Descriptor {
	d := Descriptor{
		Variant:    VariantIntake,
		SubmitPath: "/api/v1/intake/submit",
		Fields: []FieldSpec{
			{Name: intake.FieldLoanType, Label: "Loan Type", Required: true,
				Options: []string{string(intake.LoanTypeDSCR), string(intake.LoanTypeFixAndFlip)}},
			{Name: intake.FieldTransactionType, Label: "Transaction Type", Required: true,
				Options: []string{
					string(intake.TransactionPurchase),
					string(intake.TransactionRefinanceCashOut),
					string(intake.TransactionRefinanceRateTerm),
				}},
			{Name: intake.FieldPropertyType, Label: "Property Type", Required: true,
				Options: intake.PropertyTypes},
		},
	}

	if loan.Valid() && tx.Valid() {
		d.Rules = &IntakeRule{
			LoanType:        loan,
			TransactionType: tx,
			RequiredFields:  intake.RequiredFields(loan, tx),
			LTVMax:          intake.RequestedLTVMax(tx),
			FicoMin:         intake.FicoMin,
			FicoMax:         intake.FicoMax,
		}
	}
	return d
}
