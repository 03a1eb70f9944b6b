// Package textutils provides the shared field extractors that all source
// parsers compose: monetary amounts, reference codes, and payer/payee
// entities. Extraction is layered pattern matching over free-form prose;
// misses are expected and reported through the second return value, never
// as errors.
package textutils

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	// Informal "90k" / "10.5K" shorthand. The surrounding boundary
	// alternation keeps it from firing inside alphanumeric codes such as
	// "AB20K9".
	kShorthandRe = regexp.MustCompile(`(?:\b|\s|^)(\d+(?:\.\d+)?)[kK](?:\b|\s|$)`)

	// Currency token followed by a thousands-grouped number: "Ksh 12,500.50".
	prefixAmountRe = regexp.MustCompile(`(?i)(?:Ksh|KES|USD|GBP|EUR|UGX|TZS)\.?\s*([0-9]{1,3}(?:,[0-9]{3})*(?:\.[0-9]+)?)`)

	// Number followed by a currency or shilling suffix: "1,000/-", "500 Ksh".
	suffixAmountRe = regexp.MustCompile(`(?i)([0-9]{1,3}(?:,[0-9]{3})*(?:\.[0-9]+)?)\s*(?:Ksh|KES|/-|KSH)`)

	// Currency-first variant used by the Telegram pipeline. Deliberately
	// narrower: prefix only, and the vocabulary is matched as written
	// (with a lone lowercase "ksh" alternative) rather than folded.
	currencyAmountRe = regexp.MustCompile(`(?:Ksh|KES|USD|EUR|GBP|ksh)\s*([0-9,]+(?:\.[0-9]+)?)`)

	thousandsK = decimal.NewFromInt(1000)
)

// ExtractAmount resolves a monetary amount from a text fragment.
// Precedence: informal k-shorthand, then currency-prefixed, then
// currency-suffixed. Returns false when no rule matches; the caller must
// discard the candidate record.
func ExtractAmount(text string) (decimal.Decimal, bool) {
	if m := kShorthandRe.FindStringSubmatch(text); m != nil {
		if n, ok := ParseNumber(m[1]); ok {
			return n.Mul(thousandsK), true
		}
	}

	if m := prefixAmountRe.FindStringSubmatch(text); m != nil {
		if n, ok := ParseNumber(m[1]); ok {
			return n, true
		}
	}

	if m := suffixAmountRe.FindStringSubmatch(text); m != nil {
		if n, ok := ParseNumber(m[1]); ok {
			return n, true
		}
	}

	return decimal.Zero, false
}

// ExtractCurrencyAmount resolves an amount using the currency-first variant:
// only a currency-prefixed number counts. Used where a bare number is too
// likely to be a date fragment or an ID.
func ExtractCurrencyAmount(text string) (decimal.Decimal, bool) {
	if m := currencyAmountRe.FindStringSubmatch(text); m != nil {
		return ParseNumber(m[1])
	}
	return decimal.Zero, false
}

// ParseNumber converts a matched number string to a decimal, stripping
// thousands-separator commas first. Only the decimal point is treated as a
// decimal separator; there is no locale handling.
func ParseNumber(s string) (decimal.Decimal, bool) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}
