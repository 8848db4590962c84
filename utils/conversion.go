package utils

import (
	"errors"
	"math"
)

var ErrNegativeAmount = errors.New("amount must not be negative")

// DollarsToCents converts a whole-dollar total into the smallest currency unit
// expected by the payment provider.
func DollarsToCents(dollars int) (int64, error) {
	if dollars < 0 {
		return 0, ErrNegativeAmount
	}
	if int64(dollars) > math.MaxInt64/100 {
		return 0, errors.New("amount overflows cents")
	}
	return int64(dollars) * 100, nil
}
