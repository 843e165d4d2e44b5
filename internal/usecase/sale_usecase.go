package usecase

import (
	"context"
	"net/http"
	"time"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"github.com/shopspring/decimal"
)

// 売上の取り込み。検証 → イベント追記 → 在庫減算を1トランザクションで行う
type SaleUsecase struct {
	tx repo.TransactionManager

	// trueなら在庫不足の売上を拒否する。
	// デフォルトはfalse：参照実装どおり在庫はマイナスになり得る
	rejectNegativeStock bool
}

func NewSaleUsecase(tx repo.TransactionManager, rejectNegativeStock bool) *SaleUsecase {
	return &SaleUsecase{tx: tx, rejectNegativeStock: rejectNegativeStock}
}

type RecordSaleInput struct {
	ProductID  int64
	StoreID    *int64
	Quantity   int64
	Amount     decimal.Decimal
	OccurredAt *time.Time
}

type SaleOutput struct {
	ID         int64           `json:"id"`
	ProductID  int64           `json:"product_id"`
	StoreID    *int64          `json:"store_id,omitempty"`
	Quantity   int64           `json:"quantity"`
	Amount     decimal.Decimal `json:"amount"`
	OccurredAt time.Time       `json:"occurred_at"`
	CreatedAt  time.Time       `json:"created_at"`
	NewStock   int64           `json:"new_stock"`
}

func (u *SaleUsecase) RecordSale(ctx context.Context, userID int64, in RecordSaleInput) (SaleOutput, error) {
	if userID <= 0 {
		return SaleOutput{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if in.ProductID <= 0 {
		return SaleOutput{}, NewHTTPError(http.StatusBadRequest, "invalid product_id")
	}
	if in.StoreID != nil && *in.StoreID <= 0 {
		return SaleOutput{}, NewHTTPError(http.StatusBadRequest, "invalid store_id")
	}
	if in.Quantity <= 0 {
		return SaleOutput{}, NewHTTPError(http.StatusBadRequest, "quantity must be > 0")
	}
	if in.Amount.IsNegative() {
		return SaleOutput{}, NewHTTPError(http.StatusBadRequest, "amount must be >= 0")
	}

	//未指定なら取り込み時刻
	occurredAt := time.Now().UTC()
	if in.OccurredAt != nil {
		occurredAt = in.OccurredAt.UTC()
	}

	var out SaleOutput

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		p, err := r.Products().FindByID(ctx, in.ProductID)
		if err == repo.ErrNotFound {
			return NewHTTPError(http.StatusNotFound, "product not found")
		}
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
		if p.UserID != userID {
			return NewHTTPError(http.StatusNotFound, "product not found")
		}

		//storeは任意。指定されたときだけ存在と所有を確認する
		if in.StoreID != nil {
			s, err := r.Stores().FindByID(ctx, *in.StoreID)
			if err == repo.ErrNotFound {
				return NewHTTPError(http.StatusNotFound, "store not found")
			}
			if err != nil {
				return NewHTTPError(http.StatusInternalServerError, "db error")
			}
			if s.UserID != userID {
				return NewHTTPError(http.StatusNotFound, "store not found")
			}
		}

		created, err := r.Sales().Create(ctx, model.Sale{
			UserID:     userID,
			ProductID:  in.ProductID,
			StoreID:    in.StoreID,
			Quantity:   in.Quantity,
			Amount:     in.Amount,
			OccurredAt: occurredAt,
		})
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		var newStock int64
		if u.rejectNegativeStock {
			//足りないときは売上ごとロールバックされる
			stock, ok, err := r.Stock().AdjustIfEnough(ctx, in.ProductID, in.Quantity)
			if err != nil {
				return NewHTTPError(http.StatusInternalServerError, "db error")
			}
			if !ok {
				return NewHTTPError(http.StatusBadRequest, "insufficient stock")
			}
			newStock = stock
		} else {
			stock, err := r.Stock().Adjust(ctx, in.ProductID, -in.Quantity)
			if err == repo.ErrNotFound {
				return NewHTTPError(http.StatusNotFound, "product not found")
			}
			if err != nil {
				return NewHTTPError(http.StatusInternalServerError, "db error")
			}
			newStock = stock
		}

		out = SaleOutput{
			ID:         created.ID,
			ProductID:  created.ProductID,
			StoreID:    created.StoreID,
			Quantity:   created.Quantity,
			Amount:     created.Amount,
			OccurredAt: created.OccurredAt,
			CreatedAt:  created.CreatedAt,
			NewStock:   newStock,
		}
		return nil
	})

	if err != nil {
		return SaleOutput{}, err
	}
	return out, nil
}

// 自分の売上イベント一覧（新しい順、商品・店舗解決済み）
func (u *SaleUsecase) ListSales(ctx context.Context, userID int64) ([]model.Sale, error) {
	if userID <= 0 {
		return nil, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	var sales []model.Sale
	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		var err error
		sales, err = r.Sales().ListByUser(ctx, userID)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return sales, nil
}
