package entity

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	errs "github.com/amirhossein-jamali/vending-machine/internal/domain/error"
)

// DefaultCurrency is the unit label used when none is configured
const DefaultCurrency = "rub"

// MaxQuantity bounds any item or coin count: one restock or deposit, a product stock, a bank line
const MaxQuantity = math.MaxInt32

// ParseWholeNumber validates user input holding a non-negative whole number.
// Leading and trailing whitespace is ignored; signs, decimals and separators are rejected.
func ParseWholeNumber(input string) (int64, error) {
	input = strings.TrimSpace(input)
	if len(input) == 0 {
		return 0, fmt.Errorf("%w: empty value", errs.ErrInvalidRequest)
	}

	if strings.HasPrefix(input, "-") {
		return 0, fmt.Errorf("%w: negative value %q", errs.ErrInvalidRequest, input)
	}

	for _, r := range input {
		if r < '0' || r > '9' {
			return 0, fmt.Errorf("%w: %q is not a whole number", errs.ErrInvalidRequest, input)
		}
	}

	value, err := strconv.ParseInt(input, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s", errs.ErrInvalidRequest, err.Error())
	}

	return value, nil
}

// ParseDenomination converts user input into an accepted coin
func ParseDenomination(input string) (Denomination, error) {
	value, err := ParseWholeNumber(input)
	if err != nil {
		return 0, err
	}
	return NewDenomination(value)
}

// ParseProductID converts user input into a product identifier
func ParseProductID(input string) (uint64, error) {
	value, err := ParseWholeNumber(input)
	if err != nil {
		return 0, err
	}
	if value == 0 {
		return 0, errs.ErrInvalidProductID
	}
	return uint64(value), nil
}

// ParseQuantity converts user input into a positive item or coin count
func ParseQuantity(input string) (int, error) {
	value, err := ParseWholeNumber(input)
	if err != nil {
		return 0, err
	}
	if value <= 0 || value > MaxQuantity {
		return 0, fmt.Errorf("%w: %d", errs.ErrInvalidQuantity, value)
	}
	return int(value), nil
}

// FormatAmount renders an amount with its currency label, e.g. "120 rub"
func FormatAmount(amount int64, currency string) string {
	if currency == "" {
		currency = DefaultCurrency
	}
	return fmt.Sprintf("%d %s", amount, currency)
}
