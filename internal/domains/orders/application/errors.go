package application

import (
	"errors"
	"fmt"

	"github.com/Apurer/go-order-api/internal/domains/orders/domain"
)

var (
	// ErrInvalidInput signals the request violated a domain invariant.
	ErrInvalidInput = errors.New("invalid order input")
	// ErrDuplicateOrderID signals an external order id collision.
	ErrDuplicateOrderID = errors.New("duplicate order id")
)

func duplicateOrderID(orderID int64) error {
	return fmt.Errorf("%w: order with ID %d already exists", ErrDuplicateOrderID, orderID)
}

func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, domain.ErrMissingOrderID) ||
		errors.Is(err, domain.ErrMissingUserID) ||
		errors.Is(err, domain.ErrMissingTotal) ||
		errors.Is(err, domain.ErrNonPositiveTotal) {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return err
}
