package server

import (
	"net/http"

	"app/internal/config"
	"app/internal/handler"
	mw "app/internal/middleware"

	"github.com/labstack/echo/v4"
)

type Handlers struct {
	Auth     *handler.AuthHandler
	User     *handler.UserHandler
	Product  *handler.ProductHandler
	Store    *handler.StoreHandler
	Purchase *handler.PurchaseHandler
	Sale     *handler.SaleHandler
	Report   *handler.ReportHandler
}

func RegisterRoutes(e *echo.Echo, cfg config.Config, h Handlers) {
	api := e.Group("/api")

	api.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "OK"})
	})

	//認証不要
	h.Auth.RegisterPublicRoutes(api)

	//JWT必須
	authed := api.Group("", mw.AuthJWT(cfg))
	h.Auth.RegisterRoutes(authed)
	h.User.RegisterRoutes(authed)
	h.Product.RegisterRoutes(authed)
	h.Store.RegisterRoutes(authed)
	h.Purchase.RegisterRoutes(authed)
	h.Sale.RegisterRoutes(authed)
	h.Report.RegisterRoutes(authed)
}
