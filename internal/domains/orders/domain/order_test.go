package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestNewOrder_Valid(t *testing.T) {
	order, err := NewOrder(1001, 7, decimal.RequireFromString("49.99"), "PENDING")
	require.NoError(t, err)
	require.Equal(t, int64(1001), order.OrderID)
	require.Equal(t, int64(7), order.UserID)
	require.True(t, order.Total.Equal(decimal.RequireFromString("49.99")))
	require.Equal(t, "PENDING", order.Status)
	require.Zero(t, order.ID)
	require.True(t, order.CreatedAt.IsZero())
}

func TestNewOrder_StatusOptional(t *testing.T) {
	order, err := NewOrder(1001, 7, decimal.NewFromInt(10), "")
	require.NoError(t, err)
	require.Empty(t, order.Status)
}

func TestValidate_Invariants(t *testing.T) {
	tests := []struct {
		name  string
		order Order
		want  error
	}{
		{"missing order id", Order{UserID: 7, Total: decimal.NewFromInt(10)}, ErrMissingOrderID},
		{"missing user id", Order{OrderID: 1001, Total: decimal.NewFromInt(10)}, ErrMissingUserID},
		{"zero total", Order{OrderID: 1001, UserID: 7}, ErrNonPositiveTotal},
		{"negative total", Order{OrderID: 1001, UserID: 7, Total: decimal.NewFromInt(-5)}, ErrNonPositiveTotal},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.ErrorIs(t, tt.order.Validate(), tt.want)
		})
	}
}
