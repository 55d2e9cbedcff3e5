package models

import (
	"fmt"
	"math/big"
	"strings"
)

// DefaultDecimals is the ERC-20 convention used by the governance token.
const DefaultDecimals = 18

// FormatUnits renders an integer token amount with the given number of
// decimals. The output always carries at least one fractional digit and
// trailing zeros are trimmed: 10e18 -> "10.0", 1.5e18 -> "1.5", nil -> "0.0".
func FormatUnits(amount *big.Int, decimals int) string {
	if amount == nil {
		amount = new(big.Int)
	}
	if decimals <= 0 {
		return amount.String()
	}

	negative := amount.Sign() < 0
	value := new(big.Int).Abs(amount)

	multiplier := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(decimals)), nil)
	whole, frac := new(big.Int).QuoRem(value, multiplier, new(big.Int))

	fraction := frac.String()
	if len(fraction) < decimals {
		fraction = strings.Repeat("0", decimals-len(fraction)) + fraction
	}
	fraction = strings.TrimRight(fraction, "0")
	if fraction == "" {
		fraction = "0"
	}

	out := whole.String() + "." + fraction
	if negative {
		out = "-" + out
	}
	return out
}

// ParseUnits converts a decimal string into an integer amount with the given
// number of decimals. "1000000" with 18 decimals is 1e24.
func ParseUnits(value string, decimals int) (*big.Int, error) {
	value = strings.TrimSpace(strings.ReplaceAll(value, "_", ""))
	if value == "" {
		return nil, fmt.Errorf("invalid amount: empty")
	}

	negative := strings.HasPrefix(value, "-")
	value = strings.TrimPrefix(value, "-")

	whole, fraction, _ := strings.Cut(value, ".")
	if whole == "" {
		whole = "0"
	}
	if len(fraction) > decimals {
		return nil, fmt.Errorf("invalid amount %q: more than %d decimals", value, decimals)
	}
	fraction += strings.Repeat("0", decimals-len(fraction))

	out, ok := new(big.Int).SetString(whole+fraction, 10)
	if !ok {
		return nil, fmt.Errorf("invalid amount %q", value)
	}
	if negative {
		out.Neg(out)
	}
	return out, nil
}

// MustParseUnits is ParseUnits for compile-time constants.
func MustParseUnits(value string, decimals int) *big.Int {
	out, err := ParseUnits(value, decimals)
	if err != nil {
		panic(err)
	}
	return out
}

// ShortenAddress keeps the first 8 and last 4 characters of an address.
func ShortenAddress(address string) string {
	if len(address) <= 12 {
		return address
	}
	return address[:8] + "..." + address[len(address)-4:]
}

// ScaleUnits returns whole * 10^decimals.
func ScaleUnits(whole int64, decimals int) *big.Int {
	if decimals <= 0 {
		return big.NewInt(whole)
	}
	multiplier := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(decimals)), nil)
	return multiplier.Mul(multiplier, big.NewInt(whole))
}
