package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Sentinel errors shared across the lifecycle services
var (
	ErrOrderNotFound     = errors.New("import order not found")
	ErrTransferNotFound  = errors.New("transfer request not found")
	ErrInvoiceNotFound   = errors.New("invoice not found")
	ErrWarehouseNotFound = errors.New("warehouse not found")
	ErrVendorNotFound    = errors.New("vendor not found")
	ErrCustomerNotFound  = errors.New("customer not found")
	ErrItemNotFound      = errors.New("item not found")
	ErrInvalidTransition = errors.New("transition not allowed from current status")
)

// ValidationError marks malformed input, rejected before any write
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func validationErrf(format string, args ...interface{}) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// OverCollectionError reports a payment that would push the collected
// sum past the invoice total.
type OverCollectionError struct {
	InvoiceID uuid.UUID
	Amount    decimal.Decimal
	Remaining decimal.Decimal
}

func (e *OverCollectionError) Error() string {
	return fmt.Sprintf("collection of %s exceeds remaining balance %s on invoice %s",
		e.Amount.StringFixed(2), e.Remaining.StringFixed(2), e.InvoiceID)
}

// parseDate validates YYYY-MM-DD request dates
func parseDate(value string) (time.Time, error) {
	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, validationErrf("invalid date '%s', use YYYY-MM-DD", value)
	}
	return parsed, nil
}
