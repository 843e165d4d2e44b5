package usecase

import (
	"context"
	"net/http"
	"time"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"github.com/shopspring/decimal"
)

// 仕入の取り込み。検証 → イベント追記 → 在庫加算を1トランザクションで行う
type PurchaseUsecase struct {
	tx repo.TransactionManager
}

func NewPurchaseUsecase(tx repo.TransactionManager) *PurchaseUsecase {
	return &PurchaseUsecase{tx: tx}
}

type RecordPurchaseInput struct {
	ProductID   int64
	Quantity    int64
	TotalAmount decimal.Decimal
	OccurredAt  *time.Time
}

type PurchaseOutput struct {
	ID          int64           `json:"id"`
	ProductID   int64           `json:"product_id"`
	Quantity    int64           `json:"quantity"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	OccurredAt  time.Time       `json:"occurred_at"`
	CreatedAt   time.Time       `json:"created_at"`
	NewStock    int64           `json:"new_stock"`
}

func (u *PurchaseUsecase) RecordPurchase(ctx context.Context, userID int64, in RecordPurchaseInput) (PurchaseOutput, error) {
	if userID <= 0 {
		return PurchaseOutput{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if in.ProductID <= 0 {
		return PurchaseOutput{}, NewHTTPError(http.StatusBadRequest, "invalid product_id")
	}
	if in.Quantity <= 0 {
		return PurchaseOutput{}, NewHTTPError(http.StatusBadRequest, "quantity must be > 0")
	}
	if in.TotalAmount.IsNegative() {
		return PurchaseOutput{}, NewHTTPError(http.StatusBadRequest, "total_amount must be >= 0")
	}

	//未指定なら取り込み時刻
	occurredAt := time.Now().UTC()
	if in.OccurredAt != nil {
		occurredAt = in.OccurredAt.UTC()
	}

	var out PurchaseOutput

	//追記と在庫加算は同一トランザクション。途中で失敗したらイベントも残らない
	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		p, err := r.Products().FindByID(ctx, in.ProductID)
		if err == repo.ErrNotFound {
			return NewHTTPError(http.StatusNotFound, "product not found")
		}
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
		//他人の商品は「存在しない扱い」にする
		if p.UserID != userID {
			return NewHTTPError(http.StatusNotFound, "product not found")
		}

		created, err := r.Purchases().Create(ctx, model.Purchase{
			UserID:      userID,
			ProductID:   in.ProductID,
			Quantity:    in.Quantity,
			TotalAmount: in.TotalAmount,
			OccurredAt:  occurredAt,
		})
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		newStock, err := r.Stock().Adjust(ctx, in.ProductID, in.Quantity)
		if err == repo.ErrNotFound {
			return NewHTTPError(http.StatusNotFound, "product not found")
		}
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		out = PurchaseOutput{
			ID:          created.ID,
			ProductID:   created.ProductID,
			Quantity:    created.Quantity,
			TotalAmount: created.TotalAmount,
			OccurredAt:  created.OccurredAt,
			CreatedAt:   created.CreatedAt,
			NewStock:    newStock,
		}
		return nil
	})

	if err != nil {
		return PurchaseOutput{}, err
	}
	return out, nil
}

// 自分の仕入イベント一覧（新しい順、商品解決済み）
func (u *PurchaseUsecase) ListPurchases(ctx context.Context, userID int64) ([]model.Purchase, error) {
	if userID <= 0 {
		return nil, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	var purchases []model.Purchase
	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		var err error
		purchases, err = r.Purchases().ListByUser(ctx, userID)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return purchases, nil
}
