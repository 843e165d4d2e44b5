package repository

import "context"

// reconciliation用の行。Derivedはイベント再生で導出した在庫。
type StockDriftRow struct {
	ProductID   int64  `json:"product_id"`
	ProductName string `json:"product_name"`
	Stock       int64  `json:"stock"`
	Derived     int64  `json:"derived"`
}

// 在庫カウンタの更新を約束。
// 増減は必ずストレージ層の原子的なUPDATEで行う（read-modify-write禁止）。
type StockRepository interface {
	// 符号付きdeltaを無条件に加算し、更新後の在庫を返す
	Adjust(ctx context.Context, productID int64, delta int64) (int64, error)

	// 在庫が足りるときだけ減算（REJECT_NEGATIVE_STOCK用）
	AdjustIfEnough(ctx context.Context, productID int64, qty int64) (int64, bool, error)

	// 現在値とイベント合計の突き合わせ
	DriftByUser(ctx context.Context, userID int64) ([]StockDriftRow, error)
}
