package httpapi

import (
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewRouter registers HTTP routes and returns the echo instance with
// middleware attached.
func NewRouter(app *App) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(WithRequestID(), WithLogging())

	e.GET("/products", app.listProductsHandler)
	e.GET("/products/:id", app.getProductHandler)
	e.POST("/orders", app.submitOrderHandler)
	e.GET("/orders/events", app.orderEventsHandler)
	e.GET("/healthz", app.healthHandler)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.GET("/openapi.yaml", app.openapiHandler)
	e.GET("/docs", app.docsHandler)
	return e
}
