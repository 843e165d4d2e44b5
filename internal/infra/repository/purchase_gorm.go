package repository

import (
	"context"

	"app/internal/domain/model"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type PurchaseGormRepository struct {
	db *gorm.DB
}

func NewPurchaseGormRepository(db *gorm.DB) *PurchaseGormRepository {
	return &PurchaseGormRepository{db: db}
}

// イベント追記。idとcreated_atはDB側で採番される
func (r *PurchaseGormRepository) Create(ctx context.Context, p model.Purchase) (model.Purchase, error) {
	if err := r.db.WithContext(ctx).Create(&p).Error; err != nil {
		return model.Purchase{}, err
	}
	return p, nil
}

// 新しい順。商品が削除済みならProductはnilのまま
func (r *PurchaseGormRepository) ListByUser(ctx context.Context, userID int64) ([]model.Purchase, error) {
	var purchases []model.Purchase
	err := r.db.WithContext(ctx).
		Preload("Product").
		Where("user_id = ?", userID).
		Order("id desc").
		Find(&purchases).Error
	if err != nil {
		return []model.Purchase{}, err
	}
	return purchases, nil
}

func (r *PurchaseGormRepository) SumAmountByUser(ctx context.Context, userID int64) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.db.WithContext(ctx).Raw(
		`SELECT COALESCE(SUM(total_amount), 0) FROM purchases WHERE user_id = ?`,
		userID,
	).Scan(&total).Error
	if err != nil {
		return decimal.Zero, err
	}
	return total, nil
}
