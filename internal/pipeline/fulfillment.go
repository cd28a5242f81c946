package pipeline

import (
	"github.com/ManabBehera342/biztab-order-validation/internal/catalog"
	"github.com/ManabBehera342/biztab-order-validation/internal/model"
)

// FulfillmentHandler packs the order and decrements catalog stock.
type FulfillmentHandler struct {
	catalog *catalog.Store
}

// NewFulfillmentHandler builds a handler over the given catalog.
func NewFulfillmentHandler(cat *catalog.Store) *FulfillmentHandler {
	return &FulfillmentHandler{catalog: cat}
}

// Fulfill decrements stock by the order quantity and reports packing
// success. It has no failure path and does not re-check stock; the
// inventory check preceding it is assumed still valid.
func (h *FulfillmentHandler) Fulfill(o model.Order) string {
	h.catalog.DecrementStock(o.ProductID, o.Quantity)
	return MsgOrderPacked
}
