package memory

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/Apurer/go-order-api/internal/domains/orders/domain"
	"github.com/Apurer/go-order-api/internal/domains/orders/ports"
)

var _ ports.Repository = (*Repository)(nil)

// Repository is an in-memory order persistence adapter. It enforces the same
// order_id uniqueness the postgres adapter gets from its unique index.
type Repository struct {
	mu     sync.RWMutex
	orders map[int64]*domain.Order
	nextID int64
}

func NewRepository() *Repository {
	return &Repository{orders: map[int64]*domain.Order{}}
}

func (r *Repository) Save(_ context.Context, order *domain.Order) (*domain.Order, error) {
	if order == nil {
		return nil, errors.New("order is nil")
	}
	clone := *order
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.orders {
		if existing.OrderID == clone.OrderID && existing.ID != clone.ID {
			return nil, ports.ErrDuplicateOrderID
		}
	}
	if clone.ID == 0 {
		r.nextID++
		clone.ID = r.nextID
	} else if clone.ID > r.nextID {
		r.nextID = clone.ID
	}
	r.orders[clone.ID] = &clone
	result := clone
	return &result, nil
}

func (r *Repository) GetByID(_ context.Context, id int64) (*domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	order, ok := r.orders[id]
	if !ok {
		return nil, ports.ErrNotFound
	}
	clone := *order
	return &clone, nil
}

func (r *Repository) GetByOrderID(_ context.Context, orderID int64) (*domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, order := range r.orders {
		if order.OrderID == orderID {
			clone := *order
			return &clone, nil
		}
	}
	return nil, ports.ErrNotFound
}

func (r *Repository) List(_ context.Context) ([]*domain.Order, error) {
	return r.collect(func(*domain.Order) bool { return true }), nil
}

func (r *Repository) ListByUserID(_ context.Context, userID int64) ([]*domain.Order, error) {
	list := r.collect(func(o *domain.Order) bool { return o.UserID == userID })
	sort.Slice(list, func(i, j int) bool { return list[i].CreatedAt.After(list[j].CreatedAt) })
	return list, nil
}

func (r *Repository) ListByStatus(_ context.Context, status string) ([]*domain.Order, error) {
	return r.collect(func(o *domain.Order) bool { return o.Status == status }), nil
}

func (r *Repository) ListByUserIDAndStatus(_ context.Context, userID int64, status string) ([]*domain.Order, error) {
	return r.collect(func(o *domain.Order) bool { return o.UserID == userID && o.Status == status }), nil
}

func (r *Repository) ExistsByID(_ context.Context, id int64) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.orders[id]
	return ok, nil
}

func (r *Repository) ExistsByOrderID(_ context.Context, orderID int64) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, order := range r.orders {
		if order.OrderID == orderID {
			return true, nil
		}
	}
	return false, nil
}

func (r *Repository) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.orders[id]; !ok {
		return ports.ErrNotFound
	}
	delete(r.orders, id)
	return nil
}

func (r *Repository) collect(keep func(*domain.Order) bool) []*domain.Order {
	r.mu.RLock()
	defer r.mu.RUnlock()
	list := make([]*domain.Order, 0, len(r.orders))
	for _, order := range r.orders {
		if keep(order) {
			clone := *order
			list = append(list, &clone)
		}
	}
	return list
}
