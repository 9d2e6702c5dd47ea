package domain

import "github.com/shopspring/decimal"

// Patch carries per-field optional values for selective updates. A nil field
// means "leave the stored value unchanged"; there is no way to clear a field
// through a patch.
type Patch struct {
	OrderID *int64
	UserID  *int64
	Total   *decimal.Decimal
	Status  *string
}

// Validate checks whichever fields the patch supplies.
func (p Patch) Validate() error {
	if p.OrderID != nil && *p.OrderID <= 0 {
		return ErrMissingOrderID
	}
	if p.UserID != nil && *p.UserID <= 0 {
		return ErrMissingUserID
	}
	if p.Total != nil && !p.Total.IsPositive() {
		return ErrNonPositiveTotal
	}
	return nil
}

// ChangesOrderID reports whether applying the patch would move the order to a
// different external identifier.
func (p Patch) ChangesOrderID(current int64) bool {
	return p.OrderID != nil && *p.OrderID != current
}

// ApplyTo merges the supplied fields into the order. CreatedAt and the
// surrogate ID are never touched.
func (p Patch) ApplyTo(o *Order) {
	if p.OrderID != nil {
		o.OrderID = *p.OrderID
	}
	if p.UserID != nil {
		o.UserID = *p.UserID
	}
	if p.Total != nil {
		o.Total = *p.Total
	}
	if p.Status != nil {
		o.Status = *p.Status
	}
}
