package intake

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyResponseValidationTruthiness(t *testing.T) {
	cases := []struct {
		name string
		body string
		want bool
	}{
		{"bool true", `{"Validation": true}`, true},
		{"string true", `{"Validation": "true"}`, true},
		{"number one", `{"Validation": 1}`, true},
		{"string one", `{"Validation": "1"}`, true},
		{"lowercase key", `{"validation": true}`, true},
		{"bool false", `{"Validation": false}`, false},
		{"string TRUE", `{"Validation": "TRUE"}`, false},
		{"number two", `{"Validation": 2}`, false},
		{"absent", `{}`, false},
		{"null falls through to lowercase", `{"Validation": null, "validation": true}`, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			outcome := ClassifyResponse([]byte(tc.body))
			assert.Equal(t, tc.want, outcome.Validated)
		})
	}
}

func TestClassifyResponseParseFailure(t *testing.T) {
	for _, body := range []string{"", "not json", `[1,2,3]`, `"hello"`} {
		outcome := ClassifyResponse([]byte(body))
		assert.False(t, outcome.Validated, "body %q", body)
		assert.Empty(t, outcome.Errors, "body %q", body)
		assert.NotNil(t, outcome.Raw, "body %q", body)
		assert.Empty(t, outcome.Raw, "body %q", body)
	}
}

func TestClassifyResponseErrorCoercion(t *testing.T) {
	body := `{
		"Validation": false,
		"Errors": [
			"plain string",
			"",
			{"message": "from message"},
			{"message": "", "reason": "never reached"},
			{"reason": "from reason"},
			{"field": "zip"},
			{"field": 0},
			{"field": 42},
			{"other": "ignored"},
			null,
			7
		]
	}`

	outcome := ClassifyResponse([]byte(body))
	assert.Equal(t, []string{
		"plain string",
		"from message",
		"from reason",
		"zip",
		"42",
	}, outcome.Errors)
}

func TestBuildVerdictNotValidated(t *testing.T) {
	outcome := ClassifyResponse([]byte(`{"Validation": false, "Errors": ["FICO too low"], "Interest Rate": "9%"}`))
	verdict := BuildVerdict(LoanTypeDSCR, outcome)

	assert.False(t, verdict.Validated)
	assert.Equal(t, []string{"FICO too low"}, verdict.Errors)
	assert.Empty(t, verdict.InterestRate)
	assert.Empty(t, verdict.ExtraTerms)
	assert.Empty(t, verdict.MissingTerms)
}

func TestBuildVerdictDSCR(t *testing.T) {
	outcome := ClassifyResponse([]byte(`{
		"Validation": true,
		"Interest Rate": "7.25%",
		"DSCR Ratio": 1.21,
		"Notes": null
	}`))
	verdict := BuildVerdict(LoanTypeDSCR, outcome)

	assert.True(t, verdict.Validated)
	assert.Equal(t, "7.25%", verdict.InterestRate)
	assert.Empty(t, verdict.InitialLoanAmount)
	assert.Empty(t, verdict.RehabHoldback)
	assert.Empty(t, verdict.MissingTerms)

	assert.Equal(t, []Term{
		{Key: "DSCR Ratio", Value: "1.21"},
		{Key: "Interest Rate", Value: "7.25%"},
		{Key: "Notes", Value: "—"},
	}, verdict.ExtraTerms)
}

func TestBuildVerdictFixAndFlip(t *testing.T) {
	outcome := ClassifyResponse([]byte(`{
		"Validation": true,
		"interestRate": 8.5,
		"Initial Loan Amount": "250000",
		"rehab_holdback": 75000.5,
		"Term Months": 12
	}`))
	verdict := BuildVerdict(LoanTypeFixAndFlip, outcome)

	assert.True(t, verdict.Validated)
	assert.Equal(t, "8.5%", verdict.InterestRate)
	assert.Equal(t, "$250,000.00", verdict.InitialLoanAmount)
	assert.Equal(t, "$75,000.50", verdict.RehabHoldback)
	assert.Empty(t, verdict.MissingTerms)

	// interestRate is excluded by exact name; the other alias spellings
	// are not, so they remain listed.
	assert.Equal(t, []Term{
		{Key: "Initial Loan Amount", Value: "250000"},
		{Key: "Term Months", Value: "12"},
		{Key: "rehab_holdback", Value: "75000.5"},
	}, verdict.ExtraTerms)
}

func TestBuildVerdictMissingTerms(t *testing.T) {
	outcome := ClassifyResponse([]byte(`{"Validation": true, "Interest Rate": ""}`))
	verdict := BuildVerdict(LoanTypeFixAndFlip, outcome)

	assert.Equal(t, []string{"interestRate", "initialLoanAmount", "rehabHoldback"}, verdict.MissingTerms)
	assert.Empty(t, verdict.InterestRate)
}

func TestBuildVerdictCurrencyFallback(t *testing.T) {
	outcome := ClassifyResponse([]byte(`{"Validation": true, "Interest Rate": "7%", "Loan Amount": "--"}`))
	verdict := BuildVerdict(LoanTypeFixAndFlip, outcome)

	// "--" strips to a non-numeric remainder, so the raw value is shown
	// with a dollar prefix rather than formatted.
	assert.Equal(t, "$--", verdict.InitialLoanAmount)
}

func TestBuildVerdictObjectTermsRenderAsJSON(t *testing.T) {
	outcome := ClassifyResponse([]byte(`{"Validation": true, "Interest Rate": "7%", "Breakdown": {"points": 2}}`))
	verdict := BuildVerdict(LoanTypeDSCR, outcome)

	assert.Contains(t, verdict.ExtraTerms, Term{Key: "Breakdown", Value: `{"points":2}`})
}
