package repository

import (
	"app/internal/domain/model"
	"context"

	"github.com/shopspring/decimal"
)

// (year, month)バケツの集計行。occurred_atのUTC暦月でグルーピングする。
type MonthlySalesRow struct {
	Year          int             `json:"year"`
	Month         int             `json:"month"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	TotalQuantity int64           `json:"total_quantity"`
}

// 売上イベントの追記と読み出しを約束。更新・削除は提供しない。
type SaleRepository interface {
	Create(ctx context.Context, s model.Sale) (model.Sale, error)

	// 新しい順（id降順）。Product/Storeを解決して返す
	ListByUser(ctx context.Context, userID int64) ([]model.Sale, error)

	SumAmountByUser(ctx context.Context, userID int64) (decimal.Decimal, error)

	// (year, month)昇順。イベントのない月は返さない
	MonthlyByUser(ctx context.Context, userID int64) ([]MonthlySalesRow, error)
}
