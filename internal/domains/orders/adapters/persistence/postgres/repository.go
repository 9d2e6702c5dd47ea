package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/Apurer/go-order-api/internal/domains/orders/domain"
	"github.com/Apurer/go-order-api/internal/domains/orders/ports"
)

var _ ports.Repository = (*Repository)(nil)

// Repository persists orders in PostgreSQL using GORM. Requires a connection
// opened with TranslateError so unique violations surface as
// gorm.ErrDuplicatedKey.
type Repository struct {
	db *gorm.DB
}

// NewRepository wires a PostgreSQL-backed repository. Caller manages DB lifecycle.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// orderRecord maps the order entity to a relational table. The unique index
// on order_id is what makes concurrent duplicate writes lose.
type orderRecord struct {
	ID        int64           `gorm:"primaryKey;column:id"`
	OrderID   int64           `gorm:"column:order_id;uniqueIndex:idx_orders_order_id"`
	UserID    int64           `gorm:"column:user_id;index:idx_orders_user_created"`
	Total     decimal.Decimal `gorm:"column:total;type:decimal(10,2)"`
	Status    string          `gorm:"column:status;type:varchar(50);index"`
	CreatedAt time.Time       `gorm:"column:created_at;index:idx_orders_user_created"`
}

func (orderRecord) TableName() string { return "orders" }

// Save inserts the order when its surrogate id is zero, otherwise updates the
// existing row in full.
func (r *Repository) Save(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	if order == nil {
		return nil, errors.New("order is nil")
	}
	record := toRecord(order)
	if err := r.db.WithContext(ctx).Save(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ports.ErrDuplicateOrderID
		}
		return nil, err
	}
	return record.toDomain(), nil
}

// GetByID fetches an order by surrogate identifier.
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Order, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var record orderRecord
	if err := r.db.WithContext(ctx).First(&record, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ports.ErrNotFound
		}
		return nil, err
	}
	return record.toDomain(), nil
}

// GetByOrderID fetches an order by external identifier.
func (r *Repository) GetByOrderID(ctx context.Context, orderID int64) (*domain.Order, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var record orderRecord
	if err := r.db.WithContext(ctx).First(&record, "order_id = ?", orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ports.ErrNotFound
		}
		return nil, err
	}
	return record.toDomain(), nil
}

// List returns all orders.
func (r *Repository) List(ctx context.Context) ([]*domain.Order, error) {
	return r.find(ctx, func(db *gorm.DB) *gorm.DB { return db })
}

// ListByUserID returns a user's orders, newest first.
func (r *Repository) ListByUserID(ctx context.Context, userID int64) ([]*domain.Order, error) {
	return r.find(ctx, func(db *gorm.DB) *gorm.DB {
		return db.Where("user_id = ?", userID).Order("created_at DESC")
	})
}

// ListByStatus returns orders in the given status.
func (r *Repository) ListByStatus(ctx context.Context, status string) ([]*domain.Order, error) {
	return r.find(ctx, func(db *gorm.DB) *gorm.DB {
		return db.Where("status = ?", status)
	})
}

// ListByUserIDAndStatus returns a user's orders in the given status.
func (r *Repository) ListByUserIDAndStatus(ctx context.Context, userID int64, status string) ([]*domain.Order, error) {
	return r.find(ctx, func(db *gorm.DB) *gorm.DB {
		return db.Where("user_id = ? AND status = ?", userID, status)
	})
}

// ExistsByID reports whether a row with the surrogate id exists.
func (r *Repository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	return r.exists(ctx, "id = ?", id)
}

// ExistsByOrderID reports whether any row holds the external id.
func (r *Repository) ExistsByOrderID(ctx context.Context, orderID int64) (bool, error) {
	return r.exists(ctx, "order_id = ?", orderID)
}

// Delete removes an order by surrogate identifier.
func (r *Repository) Delete(ctx context.Context, id int64) error {
	if err := r.ensureDB(); err != nil {
		return err
	}
	result := r.db.WithContext(ctx).Delete(&orderRecord{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ports.ErrNotFound
	}
	return nil
}

func (r *Repository) find(ctx context.Context, scope func(*gorm.DB) *gorm.DB) ([]*domain.Order, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var records []orderRecord
	if err := scope(r.db.WithContext(ctx)).Find(&records).Error; err != nil {
		return nil, err
	}
	orders := make([]*domain.Order, 0, len(records))
	for i := range records {
		orders = append(orders, records[i].toDomain())
	}
	return orders, nil
}

func (r *Repository) exists(ctx context.Context, query string, arg any) (bool, error) {
	if err := r.ensureDB(); err != nil {
		return false, err
	}
	var count int64
	if err := r.db.WithContext(ctx).Model(&orderRecord{}).Where(query, arg).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *Repository) ensureDB() error {
	if r == nil || r.db == nil {
		return errors.New("postgres order repository not configured")
	}
	return nil
}

func toRecord(order *domain.Order) orderRecord {
	return orderRecord{
		ID:        order.ID,
		OrderID:   order.OrderID,
		UserID:    order.UserID,
		Total:     order.Total,
		Status:    order.Status,
		CreatedAt: order.CreatedAt,
	}
}

func (r orderRecord) toDomain() *domain.Order {
	return &domain.Order{
		ID:        r.ID,
		OrderID:   r.OrderID,
		UserID:    r.UserID,
		Total:     r.Total,
		Status:    r.Status,
		CreatedAt: r.CreatedAt,
	}
}
