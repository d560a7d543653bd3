// Package money represents a monetary amount in the system. Amounts are
// carried end to end in integer smallest-currency-units (cents); no unit
// conversion ever happens on this type.
package money

import (
	"fmt"
	"strconv"
)

// MaxTransactable is the largest amount, in cents, the billing provider will
// accept on a single charge.
const MaxTransactable = 99_999_999

// Amount represents a monetary amount in integer cents.
type Amount struct {
	value int64
}

// Value returns the amount in cents.
func (a Amount) Value() int64 {
	return a.value
}

// String returns the amount formatted in cents.
func (a Amount) String() string {
	return strconv.FormatInt(a.value, 10)
}

// Equal provides support for the go-cmp package and testing.
func (a Amount) Equal(a2 Amount) bool {
	return a.value == a2.value
}

// MarshalText provides support for logging and any marshal needs.
func (a Amount) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// =============================================================================

// Parse validates the cents value and returns an amount. Zero is accepted;
// negative values and values above the provider maximum are not.
func Parse(cents int64) (Amount, error) {
	if cents < 0 {
		return Amount{}, fmt.Errorf("invalid amount %d: must not be negative", cents)
	}

	if cents > MaxTransactable {
		return Amount{}, fmt.Errorf("invalid amount %d: exceeds provider maximum %d", cents, MaxTransactable)
	}

	return Amount{cents}, nil
}

// MustParse validates the cents value and returns an amount. If an error
// occurs the function panics.
func MustParse(cents int64) Amount {
	amount, err := Parse(cents)
	if err != nil {
		panic(err)
	}

	return amount
}
