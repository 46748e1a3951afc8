package common

import (
	"errors"
	"strconv"
	"strings"
)

// SOLDecimals: SOL has 9 decimals (lamports)
const SOLDecimals = 9

// LamportsToSOL converts lamports to SOL string without float precision loss
func LamportsToSOL(lamports uint64) string {
	return formatWithDecimals(lamports, SOLDecimals)
}

// SOLToLamports converts SOL string to lamports without float precision loss.
// More than 9 fractional digits is an error rather than a silent truncation.
func SOLToLamports(sol string) (uint64, error) {
	return parseWithDecimals(sol, SOLDecimals)
}

// formatWithDecimals converts integer to decimal string by inserting decimal point
// Example: formatWithDecimals(24981836, 9) = "0.024981836"
func formatWithDecimals(value uint64, decimals int) string {
	s := strconv.FormatUint(value, 10)

	// Pad with leading zeros if needed
	if len(s) <= decimals {
		s = strings.Repeat("0", decimals-len(s)+1) + s
	}

	// Insert decimal point
	pos := len(s) - decimals
	return s[:pos] + "." + s[pos:]
}

// parseWithDecimals converts decimal string to integer by removing decimal point
// Example: parseWithDecimals("0.024981836", 9) = 24981836
func parseWithDecimals(s string, decimals int) (uint64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, errors.New("empty amount")
	}

	whole, frac, found := strings.Cut(s, ".")
	if found && frac == "" && whole == "" {
		return 0, errors.New("invalid decimal format")
	}
	if whole == "" {
		whole = "0"
	}
	if strings.ContainsAny(whole+frac, "+-") {
		return 0, errors.New("amount must be an unsigned decimal")
	}
	if len(frac) > decimals {
		return 0, errors.New("too many decimal places")
	}

	// Pad fractional part to exact decimals
	frac += strings.Repeat("0", decimals-len(frac))

	// Combine and parse
	return strconv.ParseUint(whole+frac, 10, 64)
}
