package model

import "time"

const (
	AvailabilityInStock    = "In Stock"
	AvailabilityOutOfStock = "Out of Stock"
)

// stockは台帳（purchase/sale）経由でのみ増減する。
// メタデータ更新パスで直接書き換えた分はreconciliationで検出される。
type Product struct {
	ID           int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID       int64     `gorm:"not null;index" json:"user_id"`
	Name         string    `gorm:"type:varchar(255);not null" json:"name"`
	Manufacturer string    `gorm:"type:varchar(255)" json:"manufacturer"`
	Description  string    `gorm:"type:text" json:"description"`
	Stock        int64     `gorm:"not null;default:0" json:"stock"`
	ImageURL     string    `gorm:"type:text" json:"image_url"`
	CreatedAt    time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}

// availabilityは保存せず、読み出し時にstockから導出する
func (p Product) Availability() string {
	if p.Stock > 0 {
		return AvailabilityInStock
	}
	return AvailabilityOutOfStock
}
