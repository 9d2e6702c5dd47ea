package ports

import (
	"context"
	"errors"

	"github.com/Apurer/go-order-api/internal/domains/orders/domain"
)

var (
	ErrNotFound         = errors.New("order not found")
	ErrDuplicateOrderID = errors.New("duplicate order id")
)

// Repository persists orders. ListByUserID returns newest first; the other
// list operations make no ordering promise.
type Repository interface {
	Save(ctx context.Context, order *domain.Order) (*domain.Order, error)
	GetByID(ctx context.Context, id int64) (*domain.Order, error)
	GetByOrderID(ctx context.Context, orderID int64) (*domain.Order, error)
	List(ctx context.Context) ([]*domain.Order, error)
	ListByUserID(ctx context.Context, userID int64) ([]*domain.Order, error)
	ListByStatus(ctx context.Context, status string) ([]*domain.Order, error)
	ListByUserIDAndStatus(ctx context.Context, userID int64, status string) ([]*domain.Order, error)
	ExistsByID(ctx context.Context, id int64) (bool, error)
	ExistsByOrderID(ctx context.Context, orderID int64) (bool, error)
	Delete(ctx context.Context, id int64) error
}
