package repository

import (
	"app/internal/domain/model"
	"context"

	"github.com/shopspring/decimal"
)

// 仕入イベントの追記と読み出しを約束。更新・削除は提供しない。
type PurchaseRepository interface {
	Create(ctx context.Context, p model.Purchase) (model.Purchase, error)

	// 新しい順（id降順）。Productを解決して返す
	ListByUser(ctx context.Context, userID int64) ([]model.Purchase, error)

	// イベントなしは0
	SumAmountByUser(ctx context.Context, userID int64) (decimal.Decimal, error)
}
