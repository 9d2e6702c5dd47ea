package domain

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var (
	ErrMissingOrderID   = errors.New("order ID cannot be null")
	ErrMissingUserID    = errors.New("user ID cannot be null")
	ErrMissingTotal     = errors.New("total cannot be null")
	ErrNonPositiveTotal = errors.New("total must be positive")
)

// Order models a purchase order placed by a user. ID is the storage-assigned
// surrogate key; OrderID is the caller-supplied external identifier and must
// be unique across all orders.
type Order struct {
	ID        int64
	OrderID   int64
	UserID    int64
	Total     decimal.Decimal
	Status    string
	CreatedAt time.Time
}

// NewOrder validates and constructs an order candidate. ID and CreatedAt are
// left unset; they are assigned on first save.
func NewOrder(orderID, userID int64, total decimal.Decimal, status string) (*Order, error) {
	order := &Order{
		OrderID: orderID,
		UserID:  userID,
		Total:   total,
		Status:  status,
	}
	if err := order.Validate(); err != nil {
		return nil, err
	}
	return order, nil
}

// Validate enforces the required-field and positive-total invariants.
func (o *Order) Validate() error {
	if o.OrderID <= 0 {
		return ErrMissingOrderID
	}
	if o.UserID <= 0 {
		return ErrMissingUserID
	}
	if !o.Total.IsPositive() {
		return ErrNonPositiveTotal
	}
	return nil
}
