// Package currency validates and corrects ISO 4217-like currency codes
// produced by an untrusted text generator. All functions are pure,
// deterministic and idempotent: Normalize(Normalize(x)) == Normalize(x).
package currency

import (
	"strings"
	"unicode"

	xcurrency "golang.org/x/text/currency"

	"wayfarer/pkg/models"
)

// DefaultCurrency is used when a code cannot be normalized and no country
// hint resolves.
const DefaultCurrency = "USD"

// Normalize corrects a currency code using the package default. country is an
// optional hint ("Japan", "Tokyo, Japan") used when the code itself is
// unusable; pass "" when there is none.
func Normalize(code, country string) string {
	return NormalizeWithDefault(code, country, DefaultCurrency)
}

// NormalizeWithDefault corrects a currency code, falling back to an explicit
// default. The pipeline is first-match-wins:
//
//  1. empty input: infer from country, else default
//  2. trim+uppercase already-valid codes pass unchanged (curated table,
//     then x/text ISO lookup)
//  3. correction table: plural/informal names, invalid markers, symbols
//  4. country hint: exact match, then substring match
//  5. well-formed but unrecognized 3-letter codes pass through
//  6. default
func NormalizeWithDefault(code, country, def string) string {
	trimmed := strings.TrimSpace(code)
	if trimmed == "" {
		return inferFromCountry(country, def)
	}

	upper := strings.ToUpper(trimmed)
	if validCurrencies[upper] {
		return upper
	}

	// x/text recognizes ISO codes beyond the curated table (historic and
	// minor currencies); those are just as valid.
	if isAlpha3(upper) {
		if _, err := xcurrency.ParseISO(upper); err == nil {
			return upper
		}
	}

	if corrected, ok := corrections[upper]; ok {
		if corrected == "" {
			// Invalid marker ("N/A", "NULL", ...): the country hint still
			// beats the default.
			return inferFromCountry(country, def)
		}
		return corrected
	}

	if inferred := inferFromCountry(country, ""); inferred != "" {
		return inferred
	}

	// A bare three-letter alphabetic code outside the known set is treated as
	// unrecognized-but-well-formed and passed through rather than rejected.
	if isAlpha3(upper) {
		return upper
	}

	return def
}

// InferFromCountry resolves a currency from a country string alone.
func InferFromCountry(country string) string {
	return inferFromCountry(country, DefaultCurrency)
}

func inferFromCountry(country, def string) string {
	lowered := strings.ToLower(strings.TrimSpace(country))
	if lowered == "" {
		return def
	}

	if code, ok := countryCurrencies[lowered]; ok {
		return code
	}

	// Substring match supports "Tokyo, Japan" -> "japan" -> JPY.
	for name, code := range countryCurrencies {
		if strings.Contains(lowered, name) {
			return code
		}
	}

	return def
}

// ValidateCostItem normalizes the item's currency in place. When the value
// changes the original is preserved on the item; repairs are never silent.
func ValidateCostItem(item *models.CostItem) {
	if item == nil {
		return
	}

	normalized := Normalize(item.Currency, "")
	if normalized != item.Currency {
		item.OriginalCurrency = item.Currency
		item.CurrencyAutoCorrected = true
		item.Currency = normalized
	}
}

// IsValid reports whether code is in the known-valid ISO table.
func IsValid(code string) bool {
	return validCurrencies[code]
}

func isAlpha3(s string) bool {
	if len(s) != 3 {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}
