package intake

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"brrrrleads/internal/domain/session"
)

func TestBuildPayloadDSCRPurchase(t *testing.T) {
	req := &SubmitRequest{
		LoanType:        " DSCR ",
		MidFicoScore:    "720",
		Street:          " 123 Main St ",
		Apt:             "4B",
		City:            "Austin",
		State:           "texas",
		Zip:             "78701-1234",
		PropertyType:    "Single Family",
		TransactionType: "Purchase",
		PurchasePrice:   "$500,000",
		MonthlyIncome:   "4,500",
		MonthlyExpenses: "1,200.50",
		RequestedLTV:    "85",
	}
	personal := session.PersonalInfo{FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com", Phone: "(415) 555-1234"}

	payload := BuildPayload(req, personal)

	assert.Equal(t, "DSCR", payload.LoanType)
	assert.Equal(t, 720, payload.MidFicoScore)
	assert.Equal(t, Address{Street: "123 Main St", Apt: "4B", City: "Austin", State: "TX", Zip: "78701"}, payload.Address)
	assert.Equal(t, "Purchase", payload.TransactionType)
	assert.Equal(t, 500000.0, payload.PurchasePrice)
	assert.Equal(t, DSCRFields{MonthlyIncome: 4500, MonthlyExpenses: 1200.50}, payload.DSCR)
	assert.Equal(t, personal, payload.Personal)

	// 85 exceeds the purchase ceiling.
	assert.Equal(t, 80.0, payload.RequestedLtvPercent)

	// Unrequired groups are present with zero values, never omitted.
	assert.Equal(t, 0.0, payload.AsIsValue)
	assert.Equal(t, 0.0, payload.PayoffAmount)
	assert.Equal(t, FixAndFlipFields{}, payload.FixAndFlip)
}

func TestBuildPayloadFixAndFlipCashOut(t *testing.T) {
	req := &SubmitRequest{
		LoanType:              "Fix & Flip",
		MidFicoScore:          "950",
		TransactionType:       "Refinance Cash Out",
		AsIsValue:             "300,000",
		PayoffAmount:          "150,000",
		ProjectsCompleted36Mo: "-2",
		RehabBudget:           "$60,000",
		AfterRepairValue:      "450000",
		RequestedLTV:          "90",
	}

	payload := BuildPayload(req, session.PersonalInfo{})

	assert.Equal(t, FicoMax, payload.MidFicoScore)
	assert.Equal(t, 300000.0, payload.AsIsValue)
	assert.Equal(t, 150000.0, payload.PayoffAmount)
	assert.Equal(t, 75.0, payload.RequestedLtvPercent)
	assert.Equal(t, FixAndFlipFields{ProjectsCompleted36Mo: 0, RehabBudget: 60000, AfterRepairValue: 450000}, payload.FixAndFlip)
	assert.Equal(t, DSCRFields{}, payload.DSCR)
	assert.Equal(t, 0.0, payload.PurchasePrice)
}

func TestBuildPayloadGarbageNumericsDefaultToZero(t *testing.T) {
	req := &SubmitRequest{
		LoanType:        "DSCR",
		MidFicoScore:    "not a number",
		TransactionType: "Purchase",
		PurchasePrice:   "n/a",
	}

	payload := BuildPayload(req, session.PersonalInfo{})

	assert.Equal(t, FicoMin, payload.MidFicoScore)
	assert.Equal(t, 0.0, payload.PurchasePrice)
}
