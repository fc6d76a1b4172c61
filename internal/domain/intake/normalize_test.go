package intake

import "testing"

func TestFormatCurrency(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"1234", "1,234"},
		{"1234.567", "1,234.56"},
		{"$1,234.56", "1,234.56"},
		{"1.2.3", "1.23"},
		{".", "0."},
		{".5", "0.5"},
		{"abc", "0"},
		{"0012", "12"},
		{"1000000", "1,000,000"},
		{"12.3", "12.3"},
	}

	for _, tc := range cases {
		if got := FormatCurrency(tc.in); got != tc.want {
			t.Errorf("FormatCurrency(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestFormatCurrencyIdempotent(t *testing.T) {
	inputs := []string{"1234.567", "$500,000", "0.99", "abc", "7"}
	for _, in := range inputs {
		once := FormatCurrency(in)
		if twice := FormatCurrency(once); twice != once {
			t.Errorf("FormatCurrency not idempotent on %q: %q then %q", in, once, twice)
		}
	}
}

func TestParseCurrency(t *testing.T) {
	cases := []struct {
		in   string
		want float64
	}{
		{"", 0},
		{"abc", 0},
		{"1,234.56", 1234.56},
		{"$500,000", 500000},
		{"-42.5", -42.5},
		{"5-6", 5},
		{"--5", 0},
		{".25", 0.25},
		{"12.", 12},
	}

	for _, tc := range cases {
		if got := ParseCurrency(tc.in); got != tc.want {
			t.Errorf("ParseCurrency(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestFormatPhone(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"4", "(4"},
		{"415", "(415"},
		{"4155", "(415) 5"},
		{"415555", "(415) 555"},
		{"4155551", "(415) 555-1"},
		{"4155551234", "(415) 555-1234"},
		{"41555512349999", "(415) 555-1234"},
		{"(415) 555-1234", "(415) 555-1234"},
		{"abc415def555", "(415) 555"},
	}

	for _, tc := range cases {
		if got := FormatPhone(tc.in); got != tc.want {
			t.Errorf("FormatPhone(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestNormalizeZip(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"94110", "94110"},
		{"94110-1234", "94110"},
		{"abc123", "123"},
		{"", ""},
	}

	for _, tc := range cases {
		if got := NormalizeZip(tc.in); got != tc.want {
			t.Errorf("NormalizeZip(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestAbbreviateState(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"ca", "CA"},
		{" tx ", "TX"},
		{"california", "CA"},
		{"New York", "NY"},
		{"NEW   JERSEY", "NJ"},
		{"district-of_columbia", "DC"},
		{"District of Columbia", "DC"},
		{"Atlantis", "ATLANTIS"},
	}

	for _, tc := range cases {
		if got := AbbreviateState(tc.in); got != tc.want {
			t.Errorf("AbbreviateState(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
