package usecase

import (
	"context"
	"log"
	"net/http"

	repo "app/internal/repository"

	"github.com/shopspring/decimal"
)

// イベントストア上の読み取り専用集計。在庫カウンタには触らない
type ReportUsecase struct {
	purchaseRepo repo.PurchaseRepository
	saleRepo     repo.SaleRepository
	stockRepo    repo.StockRepository
}

// DI
func NewReportUsecase(
	purchaseRepo repo.PurchaseRepository,
	saleRepo repo.SaleRepository,
	stockRepo repo.StockRepository,
) *ReportUsecase {
	return &ReportUsecase{
		purchaseRepo: purchaseRepo,
		saleRepo:     saleRepo,
		stockRepo:    stockRepo,
	}
}

type TotalAmountOutput struct {
	TotalAmount decimal.Decimal `json:"total_amount"`
}

// イベントなしは0（エラーではない）
func (u *ReportUsecase) TotalPurchaseAmount(ctx context.Context, userID int64) (TotalAmountOutput, error) {
	if userID <= 0 {
		return TotalAmountOutput{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	total, err := u.purchaseRepo.SumAmountByUser(ctx, userID)
	if err != nil {
		return TotalAmountOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return TotalAmountOutput{TotalAmount: total}, nil
}

func (u *ReportUsecase) TotalSaleAmount(ctx context.Context, userID int64) (TotalAmountOutput, error) {
	if userID <= 0 {
		return TotalAmountOutput{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	total, err := u.saleRepo.SumAmountByUser(ctx, userID)
	if err != nil {
		return TotalAmountOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return TotalAmountOutput{TotalAmount: total}, nil
}

// (year, month)昇順の売上バケツ。イベントのない月は返さない
func (u *ReportUsecase) MonthlySales(ctx context.Context, userID int64) ([]repo.MonthlySalesRow, error) {
	if userID <= 0 {
		return nil, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	rows, err := u.saleRepo.MonthlyByUser(ctx, userID)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if rows == nil {
		rows = []repo.MonthlySalesRow{}
	}
	return rows, nil
}

type ReconcileRow struct {
	ProductID   int64  `json:"product_id"`
	ProductName string `json:"product_name"`
	Stock       int64  `json:"stock"`
	Derived     int64  `json:"derived"`
	Drift       int64  `json:"drift"`
}

// イベントを再生した在庫と現在のカウンタを突き合わせる。
// 非台帳パス（メタデータでのstock直接編集）のずれはここで可視化される
func (u *ReportUsecase) ReconcileStock(ctx context.Context, userID int64) ([]ReconcileRow, error) {
	if userID <= 0 {
		return nil, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	rows, err := u.stockRepo.DriftByUser(ctx, userID)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	outs := make([]ReconcileRow, 0, len(rows))
	for _, r := range rows {
		drift := r.Stock - r.Derived
		if drift != 0 {
			log.Printf("stock drift: product=%d stock=%d derived=%d", r.ProductID, r.Stock, r.Derived)
		}
		outs = append(outs, ReconcileRow{
			ProductID:   r.ProductID,
			ProductName: r.ProductName,
			Stock:       r.Stock,
			Derived:     r.Derived,
			Drift:       drift,
		})
	}
	return outs, nil
}
