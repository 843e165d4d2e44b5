package handler

import (
	"net/http"
	"time"

	mw "app/internal/middleware"
	"app/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// /api/purchases のAPI（仕入イベントの取り込みと読み出し）
type PurchaseHandler struct {
	uc     *usecase.PurchaseUsecase
	report *usecase.ReportUsecase
}

// DI
func NewPurchaseHandler(uc *usecase.PurchaseUsecase, report *usecase.ReportUsecase) *PurchaseHandler {
	return &PurchaseHandler{uc: uc, report: report}
}

func (h *PurchaseHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/purchases", h.record)
	g.GET("/purchases", h.list)
	g.GET("/purchases/total", h.total)
}

type purchaseRequest struct {
	ProductID   int64           `json:"product_id"`
	Quantity    int64           `json:"quantity"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	OccurredAt  *time.Time      `json:"occurred_at"`
}

func (h *PurchaseHandler) record(c echo.Context) error {
	var req purchaseRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Success: false, Message: "invalid body"})
	}

	out, err := h.uc.RecordPurchase(c.Request().Context(), mw.UserIDFrom(c), usecase.RecordPurchaseInput{
		ProductID:   req.ProductID,
		Quantity:    req.Quantity,
		TotalAmount: req.TotalAmount,
		OccurredAt:  req.OccurredAt,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, out)
}

func (h *PurchaseHandler) list(c echo.Context) error {
	out, err := h.uc.ListPurchases(c.Request().Context(), mw.UserIDFrom(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *PurchaseHandler) total(c echo.Context) error {
	out, err := h.report.TotalPurchaseAmount(c.Request().Context(), mw.UserIDFrom(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
