package handler

import (
	"net/http"

	mw "app/internal/middleware"
	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /api/reports のAPI
type ReportHandler struct {
	uc *usecase.ReportUsecase
}

// DI
func NewReportHandler(uc *usecase.ReportUsecase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

func (h *ReportHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/reports/reconciliation", h.reconciliation)
}

// 在庫カウンタとイベント再生値の突き合わせ
func (h *ReportHandler) reconciliation(c echo.Context) error {
	out, err := h.uc.ReconcileStock(c.Request().Context(), mw.UserIDFrom(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
