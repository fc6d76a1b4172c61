package intake

import (
	"encoding/json"
	"sort"
	"strconv"
	"strings"
)

// PricingOutcome is the classified webhook response: a validation flag,
// normalized error strings and the raw key/value result.
type PricingOutcome struct {
	Validated bool
	Errors    []string
	Raw       map[string]any
}

// ClassifyResponse parses the webhook body. A body that is not a JSON
// object is treated as an empty one: validation false, no errors.
//
// The validation flag is truthy for boolean true, "true", 1 or "1"
// under the Validation/validation key. Error entries are coerced to
// strings via the first of: raw string, .message, .reason, .field;
// null or unusable entries are dropped.
func ClassifyResponse(body []byte) PricingOutcome {
	raw := map[string]any{}
	if err := json.Unmarshal(body, &raw); err != nil {
		raw = map[string]any{}
	}

	outcome := PricingOutcome{
		Validated: truthyValidation(firstPresent(raw, "Validation", "validation")),
		Errors:    []string{},
		Raw:       raw,
	}

	if list, ok := firstPresent(raw, "Errors", "errors").([]any); ok {
		for _, entry := range list {
			if msg, ok := coerceError(entry); ok {
				outcome.Errors = append(outcome.Errors, msg)
			}
		}
	}

	return outcome
}

func firstPresent(raw map[string]any, keys ...string) any {
	for _, k := range keys {
		if v, ok := raw[k]; ok && v != nil {
			return v
		}
	}
	return nil
}

func truthyValidation(v any) bool {
	switch val := v.(type) {
	case bool:
		return val
	case string:
		return val == "true" || val == "1"
	case float64:
		return val == 1
	default:
		return false
	}
}

func coerceError(entry any) (string, bool) {
	switch v := entry.(type) {
	case string:
		return v, v != ""
	case map[string]any:
		if s, ok := v["message"].(string); ok {
			return s, s != ""
		}
		if s, ok := v["reason"].(string); ok {
			return s, s != ""
		}
		if field, ok := v["field"]; ok && jsTruthy(field) {
			return stringify(field), true
		}
	}
	return "", false
}

func jsTruthy(v any) bool {
	switch val := v.(type) {
	case nil:
		return false
	case bool:
		return val
	case string:
		return val != ""
	case float64:
		return val != 0
	default:
		return true
	}
}

// Term is one key/value pair of the collapsible raw-terms listing.
type Term struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// PricingVerdict is the typed display contract derived from the
// free-form webhook result, keyed by the loan type captured at submit
// time. Highlighted figures that cannot be resolved from the response
// are reported in MissingTerms instead of being rendered as
// placeholders.
type PricingVerdict struct {
	LoanType          LoanType `json:"loanType"`
	Validated         bool     `json:"validated"`
	Errors            []string `json:"errors"`
	InterestRate      string   `json:"interestRate,omitempty"`
	InitialLoanAmount string   `json:"initialLoanAmount,omitempty"`
	RehabHoldback     string   `json:"rehabHoldback,omitempty"`
	MissingTerms      []string `json:"missingTerms,omitempty"`
	ExtraTerms        []Term   `json:"extraTerms,omitempty"`
}

// Accepted spellings for the highlighted figures. The webhook is an
// external automation whose key casing has drifted before; lookups
// normalize both sides (lower-case, strip space/_/-).
var (
	interestRateAliases = []string{"interest rate", "Interest Rate", "interestRate", "InterestRate", "rate", "Rate"}
	loanAmountAliases   = []string{"initial loan amount", "Initial Loan Amount", "initialLoanAmount", "InitialLoanAmount", "loanAmount", "LoanAmount"}
	holdbackAliases     = []string{"rehab holdback", "Rehab Holdback", "rehabHoldback", "RehabHoldback", "holdback", "Holdback"}

	metaKeys = []string{"Validation", "validation", "Errors", "errors"}
)

// BuildVerdict maps a classified outcome onto the display contract for
// the submitted loan type: DSCR highlights the interest rate, Fix &
// Flip highlights loan amount, rehab holdback and interest rate. All
// remaining keys become ExtraTerms, with highlighted and meta keys
// excluded by exact name.
func BuildVerdict(loan LoanType, outcome PricingOutcome) PricingVerdict {
	verdict := PricingVerdict{
		LoanType:  loan,
		Validated: outcome.Validated,
		Errors:    outcome.Errors,
	}
	if !outcome.Validated {
		return verdict
	}

	excluded := append([]string{}, metaKeys...)
	excluded = append(excluded, "interestRate", "InterestRate", "rate", "Rate")

	if rate, ok := lookupAlias(outcome.Raw, interestRateAliases); ok {
		verdict.InterestRate = formatPercentTerm(rate)
	} else {
		verdict.MissingTerms = append(verdict.MissingTerms, "interestRate")
	}

	if loan == LoanTypeFixAndFlip {
		excluded = append(excluded,
			"initialLoanAmount", "InitialLoanAmount", "loanAmount", "LoanAmount",
			"rehabHoldback", "RehabHoldback", "holdback", "Holdback")

		if amount, ok := lookupAlias(outcome.Raw, loanAmountAliases); ok {
			verdict.InitialLoanAmount = formatCurrencyTerm(amount)
		} else {
			verdict.MissingTerms = append(verdict.MissingTerms, "initialLoanAmount")
		}
		if holdback, ok := lookupAlias(outcome.Raw, holdbackAliases); ok {
			verdict.RehabHoldback = formatCurrencyTerm(holdback)
		} else {
			verdict.MissingTerms = append(verdict.MissingTerms, "rehabHoldback")
		}
	}

	verdict.ExtraTerms = extraTerms(outcome.Raw, excluded)
	return verdict
}

// lookupAlias resolves a value by alias-insensitive key matching.
// Present-but-empty values count as missing so the caller reports them
// rather than rendering a placeholder.
func lookupAlias(raw map[string]any, aliases []string) (any, bool) {
	normalized := make(map[string]any, len(raw))
	for k, v := range raw {
		normalized[normalizeKey(k)] = v
	}
	for _, alias := range aliases {
		if v, ok := normalized[normalizeKey(alias)]; ok {
			if v == nil || v == "" {
				return nil, false
			}
			return v, true
		}
	}
	return nil, false
}

func normalizeKey(k string) string {
	return separators.ReplaceAllString(strings.ToLower(k), "")
}

func extraTerms(raw map[string]any, excluded []string) []Term {
	skip := make(map[string]bool, len(excluded))
	for _, k := range excluded {
		skip[k] = true
	}

	keys := make([]string, 0, len(raw))
	for k := range raw {
		if !skip[k] {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)

	terms := make([]Term, 0, len(keys))
	for _, k := range keys {
		terms = append(terms, Term{Key: k, Value: termValue(raw[k])})
	}
	return terms
}

func termValue(v any) string {
	switch v.(type) {
	case nil:
		return "—"
	case map[string]any, []any:
		raw, err := json.Marshal(v)
		if err != nil {
			return "—"
		}
		return string(raw)
	default:
		return stringify(v)
	}
}

func formatPercentTerm(v any) string {
	s := strings.TrimSpace(stringify(v))
	if strings.HasSuffix(s, "%") {
		return s
	}
	return s + "%"
}

func formatCurrencyTerm(v any) string {
	cleaned := nonNumeric.ReplaceAllString(stringify(v), "")
	n, ok := strictNumber(cleaned)
	if !ok {
		return "$" + stringify(v)
	}
	return formatUSD(n)
}

// strictNumber mimics Number(): empty input is 0, anything that is not
// a whole valid number fails.
func strictNumber(s string) (float64, bool) {
	if s == "" {
		return 0, true
	}
	n, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

func formatUSD(n float64) string {
	neg := n < 0
	if neg {
		n = -n
	}

	fixed := strconv.FormatFloat(n, 'f', 2, 64)
	intPart, frac, _ := strings.Cut(fixed, ".")
	out := "$" + groupThousands(intPart) + "." + frac
	if neg {
		return "-" + out
	}
	return out
}

// stringify matches how the form rendered arbitrary response values.
func stringify(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(val)
	case nil:
		return ""
	default:
		raw, err := json.Marshal(val)
		if err != nil {
			return ""
		}
		return string(raw)
	}
}
