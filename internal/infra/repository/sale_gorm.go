package repository

import (
	"context"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type SaleGormRepository struct {
	db *gorm.DB
}

func NewSaleGormRepository(db *gorm.DB) *SaleGormRepository {
	return &SaleGormRepository{db: db}
}

// イベント追記。idとcreated_atはDB側で採番される
func (r *SaleGormRepository) Create(ctx context.Context, s model.Sale) (model.Sale, error) {
	if err := r.db.WithContext(ctx).Create(&s).Error; err != nil {
		return model.Sale{}, err
	}
	return s, nil
}

// 新しい順。Product/Storeが削除済みならnilのまま
func (r *SaleGormRepository) ListByUser(ctx context.Context, userID int64) ([]model.Sale, error) {
	var sales []model.Sale
	err := r.db.WithContext(ctx).
		Preload("Product").
		Preload("Store").
		Where("user_id = ?", userID).
		Order("id desc").
		Find(&sales).Error
	if err != nil {
		return []model.Sale{}, err
	}
	return sales, nil
}

func (r *SaleGormRepository) SumAmountByUser(ctx context.Context, userID int64) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.db.WithContext(ctx).Raw(
		`SELECT COALESCE(SUM(amount), 0) FROM sales WHERE user_id = ?`,
		userID,
	).Scan(&total).Error
	if err != nil {
		return decimal.Zero, err
	}
	return total, nil
}

// occurred_at（UTC保存）の暦月でグルーピングする。
// 同じ月でも年が違えば別バケツ。イベントのない月は行ごと出ない
func (r *SaleGormRepository) MonthlyByUser(ctx context.Context, userID int64) ([]repo.MonthlySalesRow, error) {
	var rows []repo.MonthlySalesRow
	err := r.db.WithContext(ctx).Raw(
		`SELECT EXTRACT(YEAR FROM occurred_at AT TIME ZONE 'UTC')::int  AS year,
		        EXTRACT(MONTH FROM occurred_at AT TIME ZONE 'UTC')::int AS month,
		        COALESCE(SUM(amount), 0)   AS total_amount,
		        COALESCE(SUM(quantity), 0) AS total_quantity
		 FROM sales
		 WHERE user_id = ?
		 GROUP BY 1, 2
		 ORDER BY 1, 2`,
		userID,
	).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
