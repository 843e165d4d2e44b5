package handler

import (
	"net/http"
	"time"

	mw "app/internal/middleware"
	"app/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// /api/sales のAPI（売上イベントの取り込み・読み出し・月次集計）
type SaleHandler struct {
	uc     *usecase.SaleUsecase
	report *usecase.ReportUsecase
}

// DI
func NewSaleHandler(uc *usecase.SaleUsecase, report *usecase.ReportUsecase) *SaleHandler {
	return &SaleHandler{uc: uc, report: report}
}

func (h *SaleHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/sales", h.record)
	g.GET("/sales", h.list)
	g.GET("/sales/total", h.total)
	g.GET("/sales/monthly", h.monthly)
}

type saleRequest struct {
	ProductID  int64           `json:"product_id"`
	StoreID    *int64          `json:"store_id"`
	Quantity   int64           `json:"quantity"`
	Amount     decimal.Decimal `json:"amount"`
	OccurredAt *time.Time      `json:"occurred_at"`
}

func (h *SaleHandler) record(c echo.Context) error {
	var req saleRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Success: false, Message: "invalid body"})
	}

	out, err := h.uc.RecordSale(c.Request().Context(), mw.UserIDFrom(c), usecase.RecordSaleInput{
		ProductID:  req.ProductID,
		StoreID:    req.StoreID,
		Quantity:   req.Quantity,
		Amount:     req.Amount,
		OccurredAt: req.OccurredAt,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, out)
}

func (h *SaleHandler) list(c echo.Context) error {
	out, err := h.uc.ListSales(c.Request().Context(), mw.UserIDFrom(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *SaleHandler) total(c echo.Context) error {
	out, err := h.report.TotalSaleAmount(c.Request().Context(), mw.UserIDFrom(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *SaleHandler) monthly(c echo.Context) error {
	out, err := h.report.MonthlySales(c.Request().Context(), mw.UserIDFrom(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
