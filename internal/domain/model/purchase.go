package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// 仕入イベント。保存後は不変（append-only）。
type Purchase struct {
	ID          int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID      int64           `gorm:"not null;index" json:"user_id"`
	ProductID   int64           `gorm:"not null;index" json:"product_id"`
	Quantity    int64           `gorm:"not null" json:"quantity"`
	TotalAmount decimal.Decimal `gorm:"type:numeric(20,4);not null" json:"total_amount"`
	OccurredAt  time.Time       `gorm:"not null;index" json:"occurred_at"`
	CreatedAt   time.Time       `gorm:"not null;autoCreateTime" json:"created_at"`

	// 表示用。商品が削除済みならnilのまま返す
	Product *Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}
