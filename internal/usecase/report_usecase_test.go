package usecase_test

import (
	"context"
	"testing"

	repo "app/internal/repository"
	"app/internal/usecase"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newReportMocks() (*PurchaseRepoMock, *SaleRepoMock, *StockRepoMock, *usecase.ReportUsecase) {
	puRepo := new(PurchaseRepoMock)
	saRepo := new(SaleRepoMock)
	stRepo := new(StockRepoMock)
	return puRepo, saRepo, stRepo, usecase.NewReportUsecase(puRepo, saRepo, stRepo)
}

// イベントなしでも0が返る
func TestReportUsecase_TotalPurchaseAmount_NoEvents(t *testing.T) {
	puRepo, _, _, uc := newReportMocks()

	puRepo.On("SumAmountByUser", mock.Anything, int64(1)).Return(decimal.Zero, nil)

	out, err := uc.TotalPurchaseAmount(context.Background(), 1)
	assert.NoError(t, err)
	assert.True(t, out.TotalAmount.IsZero())
}

func TestReportUsecase_TotalPurchaseAmount(t *testing.T) {
	puRepo, _, _, uc := newReportMocks()

	puRepo.On("SumAmountByUser", mock.Anything, int64(1)).Return(decimal.RequireFromString("1234.5678"), nil)

	out, err := uc.TotalPurchaseAmount(context.Background(), 1)
	assert.NoError(t, err)
	assert.True(t, out.TotalAmount.Equal(decimal.RequireFromString("1234.5678")))
}

func TestReportUsecase_TotalSaleAmount(t *testing.T) {
	_, saRepo, _, uc := newReportMocks()

	saRepo.On("SumAmountByUser", mock.Anything, int64(1)).Return(decimal.NewFromInt(900), nil)

	out, err := uc.TotalSaleAmount(context.Background(), 1)
	assert.NoError(t, err)
	assert.True(t, out.TotalAmount.Equal(decimal.NewFromInt(900)))
}

func TestReportUsecase_TotalSaleAmount_Unauthorized(t *testing.T) {
	_, _, _, uc := newReportMocks()

	_, err := uc.TotalSaleAmount(context.Background(), 0)
	assertStatus(t, err, 401)
}

// 月次はイベントのある月だけ。空でもnilではなく空スライス
func TestReportUsecase_MonthlySales(t *testing.T) {
	_, saRepo, _, uc := newReportMocks()

	rows := []repo.MonthlySalesRow{
		{Year: 2023, Month: 12, TotalAmount: decimal.NewFromInt(100), TotalQuantity: 2},
		{Year: 2024, Month: 3, TotalAmount: decimal.NewFromInt(250), TotalQuantity: 5},
	}
	saRepo.On("MonthlyByUser", mock.Anything, int64(1)).Return(rows, nil)

	out, err := uc.MonthlySales(context.Background(), 1)
	assert.NoError(t, err)
	assert.Equal(t, rows, out)
}

func TestReportUsecase_MonthlySales_Empty(t *testing.T) {
	_, saRepo, _, uc := newReportMocks()

	saRepo.On("MonthlyByUser", mock.Anything, int64(1)).Return(nil, nil)

	out, err := uc.MonthlySales(context.Background(), 1)
	assert.NoError(t, err)
	assert.NotNil(t, out)
	assert.Equal(t, 0, len(out))
}

func TestReportUsecase_ReconcileStock(t *testing.T) {
	_, _, stRepo, uc := newReportMocks()

	rows := []repo.StockDriftRow{
		{ProductID: 1, ProductName: "pen", Stock: 12, Derived: 12},
		{ProductID: 2, ProductName: "ink", Stock: 7, Derived: 10},
	}
	stRepo.On("DriftByUser", mock.Anything, int64(1)).Return(rows, nil)

	out, err := uc.ReconcileStock(context.Background(), 1)
	assert.NoError(t, err)
	assert.Equal(t, 2, len(out))
	assert.Equal(t, int64(0), out[0].Drift)
	assert.Equal(t, int64(-3), out[1].Drift)
}

func TestReportUsecase_ReconcileStock_DBError(t *testing.T) {
	_, _, stRepo, uc := newReportMocks()

	stRepo.On("DriftByUser", mock.Anything, int64(1)).Return(nil, assert.AnError)

	_, err := uc.ReconcileStock(context.Background(), 1)
	assertStatus(t, err, 500)
}
