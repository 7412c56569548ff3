package contract

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"
)

// -----------------------------------------------------------------------------
// Amount Helpers
// -----------------------------------------------------------------------------
// Amounts are *big.Int base units (10^18 per whole token); int64 overflows at
// the scales the commission rule works with, so everything stays big.

// Tokens converts whole tokens to base units.
// Example payload: Tokens(2000)
func Tokens(n int64) *big.Int {
	return new(big.Int).Mul(big.NewInt(n), UnitScale)
}

// DecimalToAmount parses a human decimal like "0.1" into base units without
// going through floats.
// Example payload: DecimalToAmount("3.5")
func DecimalToAmount(s string) (*big.Int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, fmt.Errorf("empty amount")
	}
	// SetString("-0") loses the sign, so reject negatives up front
	if s[0] == '-' || s[0] == '+' {
		return nil, fmt.Errorf("invalid amount %q", s)
	}
	intPart := s
	fracPart := ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, fracPart = s[:i], s[i+1:]
	}
	if len(fracPart) > 18 {
		return nil, fmt.Errorf("amount %q has more than 18 decimals", s)
	}
	if intPart == "" {
		intPart = "0"
	}
	whole, ok := new(big.Int).SetString(intPart, 10)
	if !ok || whole.Sign() < 0 {
		return nil, fmt.Errorf("invalid amount %q", s)
	}
	out := new(big.Int).Mul(whole, UnitScale)
	if fracPart != "" {
		frac, ok := new(big.Int).SetString(fracPart+strings.Repeat("0", 18-len(fracPart)), 10)
		if !ok {
			return nil, fmt.Errorf("invalid amount %q", s)
		}
		out.Add(out, frac)
	}
	return out, nil
}

// AmountToDecimal renders base units back into a human decimal, trimming
// trailing zeros.
// Example payload: AmountToDecimal(Tokens(40))
func AmountToDecimal(v *big.Int) string {
	if v == nil {
		return "0"
	}
	q, r := new(big.Int).QuoRem(v, UnitScale, new(big.Int))
	if r.Sign() == 0 {
		return q.String()
	}
	frac := strings.TrimRight(fmt.Sprintf("%018s", r.String()), "0")
	return q.String() + "." + frac
}

// amountToState serializes an amount for the kv store.
func amountToState(v *big.Int) string {
	if v == nil {
		return "0"
	}
	return v.String()
}

// amountFromState deserializes a stored amount, defaulting to zero.
func amountFromState(ptr *string) *big.Int {
	if ptr == nil || *ptr == "" {
		return new(big.Int)
	}
	v, ok := new(big.Int).SetString(*ptr, 10)
	if !ok {
		return new(big.Int)
	}
	return v
}

// cloneAmount copies an amount so staged records never alias stored ones.
func cloneAmount(v *big.Int) *big.Int {
	if v == nil {
		return new(big.Int)
	}
	return new(big.Int).Set(v)
}

// isPositive is the validity check every value movement starts with.
func isPositive(v *big.Int) bool {
	return v != nil && v.Sign() > 0
}

// commissionFor applies the basis-point rate to a withdrawal amount.
func commissionFor(amount *big.Int) *big.Int {
	c := new(big.Int).Mul(amount, big.NewInt(CommissionRate))
	return c.Quo(c, big.NewInt(BasisPoints))
}

// -----------------------------------------------------------------------------
// String Conversion Helpers
// -----------------------------------------------------------------------------

// UInt64ToString turns an id back into decimal text for logs or keys.
// Example payload: UInt64ToString(9001)
func UInt64ToString(val uint64) string {
	return strconv.FormatUint(val, 10)
}
