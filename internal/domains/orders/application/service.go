package application

import (
	"context"
	"errors"
	"time"

	"github.com/Apurer/go-order-api/internal/domains/orders/domain"
	"github.com/Apurer/go-order-api/internal/domains/orders/ports"
)

// Service orchestrates order use cases. External-id uniqueness is checked
// here before writing; the storage-level unique index on order_id is the
// backstop that closes the check-then-write race between concurrent calls.
type Service struct {
	repo ports.Repository
	now  func() time.Time
}

type Option func(*Service)

// WithClock overrides the creation timestamp source, used by tests.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

func NewService(repo ports.Repository, opts ...Option) *Service {
	s := &Service{repo: repo, now: time.Now}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

// Create persists a new order. Caller-supplied ID and CreatedAt are ignored;
// the surrogate id is assigned by the repository and CreatedAt is stamped here.
func (s *Service) Create(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	if order == nil {
		return nil, errors.New("order is nil")
	}
	if err := order.Validate(); err != nil {
		return nil, mapError(err)
	}
	exists, err := s.repo.ExistsByOrderID(ctx, order.OrderID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, duplicateOrderID(order.OrderID)
	}
	candidate := *order
	candidate.ID = 0
	candidate.CreatedAt = s.now().UTC()
	saved, err := s.repo.Save(ctx, &candidate)
	if err != nil {
		if errors.Is(err, ports.ErrDuplicateOrderID) {
			return nil, duplicateOrderID(order.OrderID)
		}
		return nil, err
	}
	return saved, nil
}

func (s *Service) GetAll(ctx context.Context) ([]*domain.Order, error) {
	return s.repo.List(ctx)
}

func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Order, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) GetByOrderID(ctx context.Context, orderID int64) (*domain.Order, error) {
	return s.repo.GetByOrderID(ctx, orderID)
}

func (s *Service) ListByUserID(ctx context.Context, userID int64) ([]*domain.Order, error) {
	return s.repo.ListByUserID(ctx, userID)
}

func (s *Service) ListByStatus(ctx context.Context, status string) ([]*domain.Order, error) {
	return s.repo.ListByStatus(ctx, status)
}

func (s *Service) ListByUserIDAndStatus(ctx context.Context, userID int64, status string) ([]*domain.Order, error) {
	return s.repo.ListByUserIDAndStatus(ctx, userID, status)
}

// Update merges the supplied patch into the stored order and persists the
// result as one unit. A duplicate external id discards all pending changes.
// PUT and PATCH share these semantics; they differ only in transport-level
// validation of which fields must be present.
func (s *Service) Update(ctx context.Context, id int64, patch domain.Patch) (*domain.Order, error) {
	if err := patch.Validate(); err != nil {
		return nil, mapError(err)
	}
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if patch.ChangesOrderID(existing.OrderID) {
		holder, err := s.repo.GetByOrderID(ctx, *patch.OrderID)
		if err != nil && !errors.Is(err, ports.ErrNotFound) {
			return nil, err
		}
		if holder != nil && holder.ID != id {
			return nil, duplicateOrderID(*patch.OrderID)
		}
	}
	merged := *existing
	patch.ApplyTo(&merged)
	saved, err := s.repo.Save(ctx, &merged)
	if err != nil {
		if errors.Is(err, ports.ErrDuplicateOrderID) {
			return nil, duplicateOrderID(merged.OrderID)
		}
		return nil, err
	}
	return saved, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

func (s *Service) Exists(ctx context.Context, id int64) (bool, error) {
	return s.repo.ExistsByID(ctx, id)
}

func (s *Service) ExistsByOrderID(ctx context.Context, orderID int64) (bool, error) {
	return s.repo.ExistsByOrderID(ctx, orderID)
}

var _ ports.Service = (*Service)(nil)
