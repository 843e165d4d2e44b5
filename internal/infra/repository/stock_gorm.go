package repository

import (
	"context"

	repo "app/internal/repository"

	"gorm.io/gorm"
)

type StockGormRepository struct {
	db *gorm.DB
}

func NewStockGormRepository(db *gorm.DB) *StockGormRepository {
	return &StockGormRepository{db: db}
}

// 符号付きdeltaを1文のUPDATEで加算する。
// アプリ側で読み出してから書き戻すと同時更新で負けるので必ずこの形にする。
func (r *StockGormRepository) Adjust(ctx context.Context, productID int64, delta int64) (int64, error) {
	var newStock int64
	res := r.db.WithContext(ctx).Raw(
		`UPDATE products SET stock = stock + ?, updated_at = NOW()
		 WHERE id = ?
		 RETURNING stock`,
		delta, productID,
	).Scan(&newStock)

	if res.Error != nil {
		return 0, res.Error
	}
	if res.RowsAffected == 0 {
		return 0, repo.ErrNotFound
	}
	return newStock, nil
}

// 在庫が足りるときだけ減らす（足りないなら false）
func (r *StockGormRepository) AdjustIfEnough(ctx context.Context, productID int64, qty int64) (int64, bool, error) {
	var newStock int64
	res := r.db.WithContext(ctx).Raw(
		`UPDATE products SET stock = stock - ?, updated_at = NOW()
		 WHERE id = ? AND stock >= ?
		 RETURNING stock`,
		qty, productID, qty,
	).Scan(&newStock)

	if res.Error != nil {
		return 0, false, res.Error
	}
	if res.RowsAffected == 0 {
		return 0, false, nil
	}
	return newStock, true, nil
}

// 現在値とイベント再生値の突き合わせ行を返す
func (r *StockGormRepository) DriftByUser(ctx context.Context, userID int64) ([]repo.StockDriftRow, error) {
	var rows []repo.StockDriftRow
	err := r.db.WithContext(ctx).Raw(
		`SELECT p.id AS product_id,
		        p.name AS product_name,
		        p.stock AS stock,
		        COALESCE(pu.qty, 0) - COALESCE(sa.qty, 0) AS derived
		 FROM products p
		 LEFT JOIN (
		     SELECT product_id, SUM(quantity) AS qty FROM purchases GROUP BY product_id
		 ) pu ON pu.product_id = p.id
		 LEFT JOIN (
		     SELECT product_id, SUM(quantity) AS qty FROM sales GROUP BY product_id
		 ) sa ON sa.product_id = p.id
		 WHERE p.user_id = ?
		 ORDER BY p.id`,
		userID,
	).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
