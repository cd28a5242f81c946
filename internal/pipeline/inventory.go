package pipeline

import (
	"fmt"

	"github.com/ManabBehera342/biztab-order-validation/internal/catalog"
	"github.com/ManabBehera342/biztab-order-validation/internal/model"
)

// InventoryChecker compares requested quantity against current stock.
type InventoryChecker struct {
	catalog *catalog.Store
}

// NewInventoryChecker builds a checker over the given catalog.
func NewInventoryChecker(cat *catalog.Store) *InventoryChecker {
	return &InventoryChecker{catalog: cat}
}

// CheckStock reports whether the order can be served from current
// stock. An unknown product id fails the check instead of propagating
// an uncontrolled lookup failure.
func (c *InventoryChecker) CheckStock(o model.Order) (bool, string) {
	p, ok := c.catalog.Get(o.ProductID)
	if !ok {
		return false, MsgProductNotFound
	}
	if p.Stock >= o.Quantity {
		return true, fmt.Sprintf("Stock available (%d units)", p.Stock)
	}
	return false, MsgOutOfStock
}
