package httpapi

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/ManabBehera342/biztab-order-validation/internal/catalog"
	"github.com/ManabBehera342/biztab-order-validation/internal/config"
	"github.com/ManabBehera342/biztab-order-validation/internal/feed"
	httpopenapi "github.com/ManabBehera342/biztab-order-validation/internal/http/openapi"
	"github.com/ManabBehera342/biztab-order-validation/internal/model"
	"github.com/ManabBehera342/biztab-order-validation/internal/obs"
	"github.com/ManabBehera342/biztab-order-validation/internal/pipeline"
)

// App bundles the handlers' dependencies.
type App struct {
	Cfg      config.Config
	Catalog  *catalog.Store
	Pipeline *pipeline.Pipeline
	Feed     *feed.Feed
	started  time.Time
}

// NewApp wires the HTTP layer over the catalog, the pipeline and the
// status feed.
func NewApp(cfg config.Config, cat *catalog.Store, pl *pipeline.Pipeline, fd *feed.Feed) *App {
	return &App{Cfg: cfg, Catalog: cat, Pipeline: pl, Feed: fd, started: time.Now()}
}

type orderRequest struct {
	ProductID    string `json:"product_id"`
	Quantity     int64  `json:"quantity"`
	DeliveryZone string `json:"delivery_zone"`
}

type orderResponse struct {
	Order      model.Order         `json:"order"`
	Status     model.Status        `json:"status"`
	Delivered  bool                `json:"delivered"`
	TrackingID string              `json:"tracking_id,omitempty"`
	Stages     []model.StageResult `json:"stages"`
	RequestID  string              `json:"request_id"`
}

func (a *App) listProductsHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, a.Catalog.List())
}

func (a *App) getProductHandler(c echo.Context) error {
	p, ok := a.Catalog.Get(c.Param("id"))
	if !ok {
		return JSONError(c, http.StatusNotFound, "not_found", "")
	}
	return c.JSON(http.StatusOK, p)
}

// submitOrderHandler is the single entry point of the order pipeline.
// The order id is generated here and the total is computed from the
// catalog price, so total_amount always equals price times quantity.
// Stage failures are demo output, not transport errors: the response
// is 200 with the stage trail either way.
func (a *App) submitOrderHandler(c echo.Context) error {
	var req orderRequest
	if err := c.Bind(&req); err != nil {
		return JSONError(c, http.StatusBadRequest, "invalid_json", err.Error())
	}
	if req.ProductID == "" {
		return JSONError(c, http.StatusBadRequest, "validation_error", "product_id is required")
	}
	p, ok := a.Catalog.Get(req.ProductID)
	if !ok {
		return JSONError(c, http.StatusNotFound, "not_found", "unknown product_id")
	}
	if req.DeliveryZone == "" {
		req.DeliveryZone = "IN"
	}

	order := model.Order{
		OrderID:      pipeline.NewOrderID(),
		ProductID:    req.ProductID,
		Quantity:     req.Quantity,
		TotalAmount:  p.Price * req.Quantity,
		DeliveryZone: req.DeliveryZone,
	}

	stages := a.Pipeline.Process(c.Request().Context(), order)

	resp := orderResponse{
		Order:     order,
		Status:    model.StatusSubmitted,
		Stages:    stages,
		RequestID: RequestID(c),
	}
	for _, s := range stages {
		if !s.Success {
			break
		}
		resp.Status = s.Status
		if s.TrackingID != "" {
			resp.TrackingID = s.TrackingID
		}
	}
	resp.Delivered = resp.Status == model.StatusDelivered

	obs.Logger.Infow("order_processed",
		"request_id", resp.RequestID,
		"order_id", order.OrderID,
		"product_id", order.ProductID,
		"quantity", order.Quantity,
		"total_amount", order.TotalAmount,
		"status", resp.Status,
	)
	return c.JSON(http.StatusOK, resp)
}

// orderEventsHandler streams stage events over SSE until the client
// disconnects. Only events published after the subscription are seen;
// the feed keeps no history.
func (a *App) orderEventsHandler(c echo.Context) error {
	ctx := c.Request().Context()
	msgs, err := a.Feed.Subscribe(ctx)
	if err != nil {
		return JSONError(c, http.StatusInternalServerError, "subscribe_failed", err.Error())
	}

	resp := c.Response()
	resp.Header().Set(echo.HeaderContentType, "text/event-stream")
	resp.Header().Set("Cache-Control", "no-cache")
	resp.Header().Set("Connection", "keep-alive")
	resp.WriteHeader(http.StatusOK)
	resp.Flush()

	for {
		select {
		case <-ctx.Done():
			return nil
		case msg, ok := <-msgs:
			if !ok {
				return nil
			}
			fmt.Fprintf(resp, "data: %s\n\n", msg.Payload)
			resp.Flush()
			msg.Ack()
		}
	}
}

func (a *App) healthHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"status":     "ok",
		"uptime_sec": time.Since(a.started).Seconds(),
	})
}

func (a *App) openapiHandler(c echo.Context) error {
	return c.Blob(http.StatusOK, "application/yaml", httpopenapi.YAML)
}

func (a *App) docsHandler(c echo.Context) error {
	html := `<!doctype html>
<html>
  <head>
    <meta charset="utf-8" />
    <title>API Docs</title>
    <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5/swagger-ui.css" />
  </head>
  <body>
    <div id="swagger-ui"></div>
    <script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
    <script>
      window.ui = SwaggerUIBundle({
        url: '/openapi.yaml',
        dom_id: '#swagger-ui'
      });
    </script>
  </body>
</html>`
	return c.HTML(http.StatusOK, html)
}
