package intake

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	nonDigitDot   = regexp.MustCompile(`[^0-9.]`)
	nonNumeric    = regexp.MustCompile(`[^0-9.\-]`)
	nonDigit      = regexp.MustCompile(`[^0-9]`)
	leadingNumber = regexp.MustCompile(`^-?(\d+(\.\d*)?|\.\d+)`)
	separators    = regexp.MustCompile(`[\s\-_]+`)
)

// FormatCurrency normalizes free-form currency input for display:
// digits and at most one decimal point survive, the fraction is
// truncated to two digits and the integer part gets thousands
// separators. Idempotent on its own output.
func FormatCurrency(value string) string {
	if value == "" {
		return ""
	}

	cleaned := nonDigitDot.ReplaceAllString(value, "")
	if i := strings.IndexByte(cleaned, '.'); i != -1 {
		cleaned = cleaned[:i+1] + strings.ReplaceAll(cleaned[i+1:], ".", "")
	}
	if cleaned == "." {
		return "0."
	}

	intPart, frac, hasDot := strings.Cut(cleaned, ".")
	formatted := groupThousands(intPart)
	if !hasDot {
		return formatted
	}
	if len(frac) > 2 {
		frac = frac[:2]
	}
	return formatted + "." + frac
}

// ParseCurrency extracts a numeric value from formatted currency input.
// It never fails: garbage parses to 0 so a stray character cannot block
// a submission.
func ParseCurrency(value string) float64 {
	cleaned := nonNumeric.ReplaceAllString(value, "")
	prefix := leadingNumber.FindString(cleaned)
	if prefix == "" {
		return 0
	}
	n, err := strconv.ParseFloat(prefix, 64)
	if err != nil {
		return 0
	}
	return n
}

// FormatPhone renders a US phone number progressively as digits arrive:
// "(AAA", "(AAA) BBB", then "(AAA) BBB-CCCC". Input beyond 10 digits is
// truncated.
func FormatPhone(raw string) string {
	digits := nonDigit.ReplaceAllString(raw, "")
	if len(digits) > 10 {
		digits = digits[:10]
	}
	if digits == "" {
		return ""
	}
	if len(digits) <= 3 {
		return "(" + digits
	}
	if len(digits) <= 6 {
		return "(" + digits[:3] + ") " + digits[3:]
	}
	return "(" + digits[:3] + ") " + digits[3:6] + "-" + digits[6:]
}

// NormalizeZip keeps at most five digits.
func NormalizeZip(raw string) string {
	digits := nonDigit.ReplaceAllString(raw, "")
	if len(digits) > 5 {
		digits = digits[:5]
	}
	return digits
}

// AbbreviateState maps a state name to its two-letter code. Two-letter
// input passes through upper-cased; unknown names are upper-cased
// verbatim rather than rejected.
func AbbreviateState(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	if len(trimmed) == 2 {
		return strings.ToUpper(trimmed)
	}
	key := separators.ReplaceAllString(strings.ToLower(trimmed), " ")
	if abbr, ok := stateAbbr[key]; ok {
		return abbr
	}
	return strings.ToUpper(trimmed)
}

var stateAbbr = map[string]string{
	"alabama":              "AL",
	"alaska":               "AK",
	"arizona":              "AZ",
	"arkansas":             "AR",
	"california":           "CA",
	"colorado":             "CO",
	"connecticut":          "CT",
	"delaware":             "DE",
	"florida":              "FL",
	"georgia":              "GA",
	"hawaii":               "HI",
	"idaho":                "ID",
	"illinois":             "IL",
	"indiana":              "IN",
	"iowa":                 "IA",
	"kansas":               "KS",
	"kentucky":             "KY",
	"louisiana":            "LA",
	"maine":                "ME",
	"maryland":             "MD",
	"massachusetts":        "MA",
	"michigan":             "MI",
	"minnesota":            "MN",
	"mississippi":          "MS",
	"missouri":             "MO",
	"montana":              "MT",
	"nebraska":             "NE",
	"nevada":               "NV",
	"new hampshire":        "NH",
	"new jersey":           "NJ",
	"new mexico":           "NM",
	"new york":             "NY",
	"north carolina":       "NC",
	"north dakota":         "ND",
	"ohio":                 "OH",
	"oklahoma":             "OK",
	"oregon":               "OR",
	"pennsylvania":         "PA",
	"rhode island":         "RI",
	"south carolina":       "SC",
	"south dakota":         "SD",
	"tennessee":            "TN",
	"texas":                "TX",
	"utah":                 "UT",
	"vermont":              "VT",
	"virginia":             "VA",
	"washington":           "WA",
	"west virginia":        "WV",
	"wisconsin":            "WI",
	"wyoming":              "WY",
	"district of columbia": "DC",
	"dc":                   "DC",
}

func groupThousands(digits string) string {
	digits = strings.TrimLeft(digits, "0")
	if digits == "" {
		return "0"
	}

	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
