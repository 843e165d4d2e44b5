package handler

import (
	"net/http"

	mw "app/internal/middleware"
	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /api/stores のAPI
type StoreHandler struct {
	uc *usecase.StoreUsecase
}

// DI
func NewStoreHandler(uc *usecase.StoreUsecase) *StoreHandler {
	return &StoreHandler{uc: uc}
}

func (h *StoreHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/stores", h.list)
	g.POST("/stores", h.create)
}

func (h *StoreHandler) list(c echo.Context) error {
	out, err := h.uc.ListStores(c.Request().Context(), mw.UserIDFrom(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

type storeRequest struct {
	Name     string `json:"name"`
	Category string `json:"category"`
	Address  string `json:"address"`
	City     string `json:"city"`
	ImageURL string `json:"image_url"`
}

func (h *StoreHandler) create(c echo.Context) error {
	var req storeRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Success: false, Message: "invalid body"})
	}

	out, err := h.uc.CreateStore(c.Request().Context(), mw.UserIDFrom(c), usecase.CreateStoreInput{
		Name:     req.Name,
		Category: req.Category,
		Address:  req.Address,
		City:     req.City,
		ImageURL: req.ImageURL,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, out)
}
