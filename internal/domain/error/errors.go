package error

import (
	"errors"
	"fmt"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeInvalidDenomination = 4001
	CodeInvalidQuantity     = 4002
	CodeInvalidProductID    = 4003
	CodeInvalidRequest      = 4004
	CodeInvalidAmount       = 4005
	CodeUnauthorized        = 4010
	CodeInsufficientFunds   = 4020
	CodeProductNotFound     = 4040
	CodeOutOfStock          = 4090
	CodeChangeUnavailable   = 4091
	CodeNoBalance           = 4092

	// 5xxx - Server errors
	CodeInternal           = 5000
	CodeJournalUnavailable = 5030
)

// Base error types
var (
	// ErrInvalidDenomination is returned when a coin is not one the machine accepts
	ErrInvalidDenomination = errors.New("denomination is not accepted")

	// ErrProductNotFound is returned when no product has the requested ID
	ErrProductNotFound = errors.New("product not found")

	// ErrOutOfStock is returned when the requested product has no items left
	ErrOutOfStock = errors.New("product is out of stock")

	// ErrInsufficientFunds is returned when the available balance is below the price
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrChangeUnavailable is returned when an amount cannot be paid out with the coins in the bank
	ErrChangeUnavailable = errors.New("change cannot be dispensed")

	// ErrNoBalance is returned when change is requested while no credit is owed
	ErrNoBalance = errors.New("no balance to return")

	// ErrInvalidQuantity is returned when a restock or deposit count is not positive
	ErrInvalidQuantity = errors.New("quantity must be positive")

	// ErrInvalidProductID is returned when the product ID is not a positive integer
	ErrInvalidProductID = errors.New("product ID must be positive")

	// ErrInvalidAmount is returned when a price or amount is not valid
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrInvalidRequest is returned when input cannot be parsed
	ErrInvalidRequest = errors.New("invalid request")

	// ErrUnauthorized is returned when the admin password does not match
	ErrUnauthorized = errors.New("wrong admin password")

	// ErrDuplicateProduct is returned when a product with the same ID already exists
	ErrDuplicateProduct = errors.New("product already exists")

	// ErrJournalUnavailable is returned when the sale journal cannot be reached
	ErrJournalUnavailable = errors.New("sale journal unavailable")

	// ErrInternal is returned for unexpected failures
	ErrInternal = errors.New("internal error")
)

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrInvalidDenomination):
		return CodeInvalidDenomination
	case errors.Is(err, ErrInvalidQuantity):
		return CodeInvalidQuantity
	case errors.Is(err, ErrInvalidProductID):
		return CodeInvalidProductID
	case errors.Is(err, ErrInvalidAmount):
		return CodeInvalidAmount
	case errors.Is(err, ErrInvalidRequest):
		return CodeInvalidRequest
	case errors.Is(err, ErrUnauthorized):
		return CodeUnauthorized
	case errors.Is(err, ErrInsufficientFunds):
		return CodeInsufficientFunds
	case errors.Is(err, ErrProductNotFound):
		return CodeProductNotFound
	case errors.Is(err, ErrOutOfStock):
		return CodeOutOfStock
	case errors.Is(err, ErrChangeUnavailable):
		return CodeChangeUnavailable
	case errors.Is(err, ErrNoBalance):
		return CodeNoBalance
	case errors.Is(err, ErrJournalUnavailable):
		return CodeJournalUnavailable
	default:
		return CodeInternal
	}
}

// InsufficientFundsError provides detailed information when the balance does not cover the price
type InsufficientFundsError struct {
	ProductID uint64
	Price     int64
	Available int64
}

// Error implements the error interface
func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf("insufficient funds for product %d: price %d, available %d",
		e.ProductID, e.Price, e.Available)
}

// Is checks if the target error is an ErrInsufficientFunds
func (e *InsufficientFundsError) Is(target error) bool {
	return target == ErrInsufficientFunds
}

// LogFields returns a map of fields for structured logging
func (e *InsufficientFundsError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "insufficient_funds",
		"product_id": e.ProductID,
		"price":      e.Price,
		"available":  e.Available,
		"error_code": CodeInsufficientFunds,
	}
}

// NewInsufficientFundsError creates a new detailed insufficient funds error
func NewInsufficientFundsError(productID uint64, price, available int64) error {
	return &InsufficientFundsError{
		ProductID: productID,
		Price:     price,
		Available: available,
	}
}

// OutOfStockError identifies the product that ran out
type OutOfStockError struct {
	ProductID uint64
	Name      string
}

// Error implements the error interface
func (e *OutOfStockError) Error() string {
	return fmt.Sprintf("product %d (%s) is out of stock", e.ProductID, e.Name)
}

// Is checks if the target error is an ErrOutOfStock
func (e *OutOfStockError) Is(target error) bool {
	return target == ErrOutOfStock
}

// NewOutOfStockError creates a new out of stock error
func NewOutOfStockError(productID uint64, name string) error {
	return &OutOfStockError{ProductID: productID, Name: name}
}

// ChangeUnavailableError describes an amount the bank could not pay out.
// Returned lists the coins reported back to the user when a purchase was aborted;
// it is empty when the failure happened while taking change.
type ChangeUnavailableError struct {
	Amount   int64
	Returned map[int64]int
}

// Error implements the error interface
func (e *ChangeUnavailableError) Error() string {
	return fmt.Sprintf("cannot dispense %d with the coins in the bank", e.Amount)
}

// Is checks if the target error is an ErrChangeUnavailable
func (e *ChangeUnavailableError) Is(target error) bool {
	return target == ErrChangeUnavailable
}

// LogFields returns a map of fields for structured logging
func (e *ChangeUnavailableError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "change_unavailable",
		"amount":     e.Amount,
		"returned":   e.Returned,
		"error_code": CodeChangeUnavailable,
	}
}

// NewChangeUnavailableError creates a new change unavailable error
func NewChangeUnavailableError(amount int64, returned map[int64]int) error {
	return &ChangeUnavailableError{
		Amount:   amount,
		Returned: returned,
	}
}

// IsChangeUnavailableError checks if the error means change could not be paid out
func IsChangeUnavailableError(err error) bool {
	return errors.Is(err, ErrChangeUnavailable)
}

// IsInsufficientFundsError checks if the error is related to insufficient funds
func IsInsufficientFundsError(err error) bool {
	return errors.Is(err, ErrInsufficientFunds)
}

// IsProductNotFoundError checks if the error is a product not found error
func IsProductNotFoundError(err error) bool {
	return errors.Is(err, ErrProductNotFound)
}

// IsOutOfStockError checks if the error is an out of stock error
func IsOutOfStockError(err error) bool {
	return errors.Is(err, ErrOutOfStock)
}

// IsValidationError checks if the error was caused by bad input
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidDenomination) ||
		errors.Is(err, ErrInvalidQuantity) ||
		errors.Is(err, ErrInvalidProductID) ||
		errors.Is(err, ErrInvalidAmount) ||
		errors.Is(err, ErrInvalidRequest)
}
