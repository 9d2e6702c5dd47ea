package migrations

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Run applies the order schema. Intended to replace adapter-level automigrate.
func Run(db *gorm.DB) error {
	if db == nil {
		return nil
	}
	return db.AutoMigrate(&orderRecord{})
}

// Order schema mirrors the orders Postgres adapter. The unique index on
// order_id enforces external-id uniqueness at the storage level.
type orderRecord struct {
	ID        int64           `gorm:"primaryKey;column:id"`
	OrderID   int64           `gorm:"column:order_id;uniqueIndex:idx_orders_order_id"`
	UserID    int64           `gorm:"column:user_id;index:idx_orders_user_created"`
	Total     decimal.Decimal `gorm:"column:total;type:decimal(10,2)"`
	Status    string          `gorm:"column:status;type:varchar(50);index"`
	CreatedAt time.Time       `gorm:"column:created_at;index:idx_orders_user_created"`
}

func (orderRecord) TableName() string { return "orders" }
