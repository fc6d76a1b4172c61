package intake

import (
	"strconv"
	"strings"

	"brrrrleads/internal/domain/session"
)

// PricingRequest is the JSON body posted to the pricing webhook. The
// address, dscr and fixAndFlip groups are always present regardless of
// which fields the loan/transaction combination required; unrequired
// numerics default to 0 and unrequired strings to "".
type PricingRequest struct {
	LoanType            string               `json:"loanType"`
	MidFicoScore        int                  `json:"midFicoScore"`
	Address             Address              `json:"address"`
	PropertyType        string               `json:"propertyType"`
	TransactionType     string               `json:"transactionType"`
	PurchasePrice       float64              `json:"purchasePrice"`
	AsIsValue           float64              `json:"asIsValue"`
	PayoffAmount        float64              `json:"payoffAmount"`
	DSCR                DSCRFields           `json:"dscr"`
	FixAndFlip          FixAndFlipFields     `json:"fixAndFlip"`
	RequestedLtvPercent float64              `json:"requestedLtvPercent"`
	Personal            session.PersonalInfo `json:"personal"`
}

type Address struct {
	Street string `json:"street"`
	Apt    string `json:"apt"`
	City   string `json:"city"`
	State  string `json:"state"`
	Zip    string `json:"zip"`
}

type DSCRFields struct {
	MonthlyIncome   float64 `json:"monthlyIncome"`
	MonthlyExpenses float64 `json:"monthlyExpenses"`
}

type FixAndFlipFields struct {
	ProjectsCompleted36Mo int     `json:"projectsCompleted36Mo"`
	RehabBudget           float64 `json:"rehabBudget"`
	AfterRepairValue      float64 `json:"afterRepairValue"`
}

// BuildPayload assembles the normalized webhook payload from the raw
// form values and the session's personal info.
func BuildPayload(req *SubmitRequest, personal session.PersonalInfo) PricingRequest {
	tx := TransactionType(strings.TrimSpace(req.TransactionType))

	return PricingRequest{
		LoanType:     strings.TrimSpace(req.LoanType),
		MidFicoScore: ClampFico(parseInt(req.MidFicoScore)),
		Address: Address{
			Street: strings.TrimSpace(req.Street),
			Apt:    strings.TrimSpace(req.Apt),
			City:   strings.TrimSpace(req.City),
			State:  AbbreviateState(req.State),
			Zip:    NormalizeZip(req.Zip),
		},
		PropertyType:    strings.TrimSpace(req.PropertyType),
		TransactionType: string(tx),
		PurchasePrice:   ParseCurrency(req.PurchasePrice),
		AsIsValue:       ParseCurrency(req.AsIsValue),
		PayoffAmount:    ParseCurrency(req.PayoffAmount),
		DSCR: DSCRFields{
			MonthlyIncome:   ParseCurrency(req.MonthlyIncome),
			MonthlyExpenses: ParseCurrency(req.MonthlyExpenses),
		},
		FixAndFlip: FixAndFlipFields{
			ProjectsCompleted36Mo: maxInt(parseInt(req.ProjectsCompleted36Mo), 0),
			RehabBudget:           ParseCurrency(req.RehabBudget),
			AfterRepairValue:      ParseCurrency(req.AfterRepairValue),
		},
		RequestedLtvPercent: ClampLTV(ParseCurrency(req.RequestedLTV), tx),
		Personal:            personal,
	}
}

// parseInt coerces raw numeric input to an int, defaulting to 0 rather
// than failing.
func parseInt(raw string) int {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return 0
	}
	if n, err := strconv.Atoi(trimmed); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(trimmed, 64); err == nil {
		return int(f)
	}
	return 0
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
