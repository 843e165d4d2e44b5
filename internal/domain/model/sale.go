package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// 売上イベント。保存後は不変（append-only）。
type Sale struct {
	ID         int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID     int64           `gorm:"not null;index" json:"user_id"`
	ProductID  int64           `gorm:"not null;index" json:"product_id"`
	StoreID    *int64          `gorm:"index" json:"store_id,omitempty"`
	Quantity   int64           `gorm:"not null" json:"quantity"`
	Amount     decimal.Decimal `gorm:"type:numeric(20,4);not null" json:"amount"`
	OccurredAt time.Time       `gorm:"not null;index" json:"occurred_at"`
	CreatedAt  time.Time       `gorm:"not null;autoCreateTime" json:"created_at"`

	Product *Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
	Store   *Store   `gorm:"foreignKey:StoreID" json:"store,omitempty"`
}
