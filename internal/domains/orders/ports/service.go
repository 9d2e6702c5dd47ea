package ports

import (
	"context"

	"github.com/Apurer/go-order-api/internal/domains/orders/domain"
)

// Service exposes order use cases to adapters.
type Service interface {
	Create(ctx context.Context, order *domain.Order) (*domain.Order, error)
	GetAll(ctx context.Context) ([]*domain.Order, error)
	GetByID(ctx context.Context, id int64) (*domain.Order, error)
	GetByOrderID(ctx context.Context, orderID int64) (*domain.Order, error)
	ListByUserID(ctx context.Context, userID int64) ([]*domain.Order, error)
	ListByStatus(ctx context.Context, status string) ([]*domain.Order, error)
	ListByUserIDAndStatus(ctx context.Context, userID int64, status string) ([]*domain.Order, error)
	Update(ctx context.Context, id int64, patch domain.Patch) (*domain.Order, error)
	Delete(ctx context.Context, id int64) error
	Exists(ctx context.Context, id int64) (bool, error)
	ExistsByOrderID(ctx context.Context, orderID int64) (bool, error)
}
