package intake

// Form field names, as submitted by the browser form.
const (
	FieldLoanType              = "loan-type"
	FieldMidFicoScore          = "mid-fico-score"
	FieldStreet                = "street"
	FieldApt                   = "apt"
	FieldCity                  = "city"
	FieldState                 = "state"
	FieldZip                   = "zip"
	FieldPropertyType          = "property-type"
	FieldTransactionType       = "transaction-type"
	FieldPurchasePrice         = "purchase-price"
	FieldAsIsValue             = "as-is-value"
	FieldPayoffAmount          = "payoff-amount"
	FieldMonthlyIncome         = "monthly-income"
	FieldMonthlyExpenses       = "monthly-expenses"
	FieldProjectsCompleted36Mo = "projects-completed-36mo"
	FieldRehabBudget           = "rehab-budget"
	FieldAfterRepairValue      = "after-repair-value"
	FieldRequestedLTV          = "requested-ltv"
)

// FICO bounds enforced on input.
const (
	FicoMin = 300
	FicoMax = 850
)

// RequiredFields returns the ordered set of required field names for
// the given loan/transaction combination. Exactly one of
// purchase-price or {as-is-value, payoff-amount} is ever required.
func RequiredFields(loan LoanType, tx TransactionType) []string {
	fields := []string{
		FieldLoanType,
		FieldMidFicoScore,
		FieldStreet,
		FieldCity,
		FieldState,
		FieldZip,
		FieldPropertyType,
		FieldTransactionType,
	}

	if tx == TransactionPurchase {
		fields = append(fields, FieldPurchasePrice)
	}
	if tx.IsRefinance() {
		fields = append(fields, FieldAsIsValue, FieldPayoffAmount)
	}

	if loan == LoanTypeDSCR {
		fields = append(fields, FieldMonthlyIncome, FieldMonthlyExpenses)
	}
	if loan == LoanTypeFixAndFlip {
		fields = append(fields, FieldProjectsCompleted36Mo, FieldRehabBudget, FieldAfterRepairValue)
	}
	if loan != LoanTypeFixAndFlip {
		fields = append(fields, FieldRequestedLTV)
	}

	return fields
}

// RequestedLTVMax is 75 for cash-out refinances, 80 otherwise.
func RequestedLTVMax(tx TransactionType) float64 {
	if tx == TransactionRefinanceCashOut {
		return 75
	}
	return 80
}

// ClampLTV bounds the requested LTV to [0, max(tx)].
func ClampLTV(v float64, tx TransactionType) float64 {
	return clamp(v, 0, RequestedLTVMax(tx))
}

// ClampFico bounds a FICO score to [300, 850].
func ClampFico(v int) int {
	return int(clamp(float64(v), FicoMin, FicoMax))
}

func clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
