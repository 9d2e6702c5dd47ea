package mapper

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"

	orderdomain "github.com/Apurer/go-order-api/internal/domains/orders/domain"
)

func init() {
	// Clients expect total as a JSON number, not decimal's default string.
	decimal.MarshalJSONWithoutQuotes = true
}

// Order is the transport-layer shape returned to clients.
type Order struct {
	ID        int64           `json:"id"`
	OrderID   int64           `json:"orderId"`
	UserID    int64           `json:"userId"`
	Total     decimal.Decimal `json:"total"`
	Status    string          `json:"status"`
	CreatedAt time.Time       `json:"createdAt"`
}

// OrderMutation is the inbound payload for create and update requests.
// Pointer fields distinguish "absent" from zero values.
type OrderMutation struct {
	OrderID *int64           `json:"orderId"`
	UserID  *int64           `json:"userId"`
	Total   *decimal.Decimal `json:"total"`
	Status  *string          `json:"status"`
}

var (
	errMissingOrderID   = errors.New("Order ID cannot be null")
	errMissingUserID    = errors.New("User ID cannot be null")
	errMissingTotal     = errors.New("Total cannot be null")
	errNonPositiveTotal = errors.New("Total must be positive")
)

// ValidateRequired checks the full-payload contract used by POST and PUT:
// orderId, userId, and total must all be present and total positive.
func (m OrderMutation) ValidateRequired() error {
	if m.OrderID == nil {
		return errMissingOrderID
	}
	if m.UserID == nil {
		return errMissingUserID
	}
	if m.Total == nil {
		return errMissingTotal
	}
	if !m.Total.IsPositive() {
		return errNonPositiveTotal
	}
	return nil
}

// ValidatePartial checks only the fields a PATCH supplies.
func (m OrderMutation) ValidatePartial() error {
	if m.Total != nil && !m.Total.IsPositive() {
		return errNonPositiveTotal
	}
	return nil
}

// ToDomainOrder converts a full mutation into an order candidate.
// ValidateRequired must have passed.
func ToDomainOrder(m OrderMutation) (*orderdomain.Order, error) {
	status := ""
	if m.Status != nil {
		status = *m.Status
	}
	return orderdomain.NewOrder(*m.OrderID, *m.UserID, *m.Total, status)
}

// ToPatch converts a mutation into the selective-merge patch applied on
// update: nil fields keep the stored values.
func ToPatch(m OrderMutation) orderdomain.Patch {
	return orderdomain.Patch{
		OrderID: m.OrderID,
		UserID:  m.UserID,
		Total:   m.Total,
		Status:  m.Status,
	}
}

// FromDomainOrder converts a domain order to the transport representation.
func FromDomainOrder(order *orderdomain.Order) Order {
	if order == nil {
		return Order{}
	}
	return Order{
		ID:        order.ID,
		OrderID:   order.OrderID,
		UserID:    order.UserID,
		Total:     order.Total,
		Status:    order.Status,
		CreatedAt: order.CreatedAt,
	}
}

// FromDomainOrderList converts a slice of domain orders, never returning nil
// so empty results marshal as [].
func FromDomainOrderList(orders []*orderdomain.Order) []Order {
	list := make([]Order, 0, len(orders))
	for _, order := range orders {
		list = append(list, FromDomainOrder(order))
	}
	return list
}
