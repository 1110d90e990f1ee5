package splitter

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/holiman/uint256"
)

// ParseAmount parses a decimal or 0x-prefixed hex string into a 256-bit amount.
// Signs, fractions and values above 2^256-1 are rejected.
func ParseAmount(s string) (*uint256.Int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, ErrEmptyAmount
	}

	base := 10
	digits := s
	if len(s) > 2 && (s[:2] == "0x" || s[:2] == "0X") {
		base = 16
		digits = s[2:]
	}
	if !validDigits(digits, base) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}

	b, ok := new(big.Int).SetString(digits, base)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}

	amount, overflow := uint256.FromBig(b)
	if overflow {
		return nil, fmt.Errorf("%w: %q", ErrAmountOverflow, s)
	}
	return amount, nil
}

// MustParseAmount is ParseAmount that panics on error. Intended for constants
// and tests.
func MustParseAmount(s string) *uint256.Int {
	amount, err := ParseAmount(s)
	if err != nil {
		panic(err)
	}
	return amount
}

// FormatAmount renders amount in decimal.
func FormatAmount(amount *uint256.Int) string {
	return orZero(amount).Dec()
}

func validDigits(s string, base int) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= '0' && c <= '9':
		case base == 16 && (c >= 'a' && c <= 'f' || c >= 'A' && c <= 'F'):
		default:
			return false
		}
	}
	return true
}
