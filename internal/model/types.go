// Package model defines domain types used by the service.
package model

// Product is a catalog entry. Prices are whole currency units, as in
// the demo data.
type Product struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Price       int64  `json:"price"`
	Stock       int64  `json:"stock"`
	Image       string `json:"image"`
	Description string `json:"description"`
}

// Order is a single submitted order. TotalAmount is always
// Price * Quantity at submission time.
type Order struct {
	OrderID      string `json:"order_id"`
	ProductID    string `json:"product_id"`
	Quantity     int64  `json:"quantity"`
	TotalAmount  int64  `json:"total_amount"`
	DeliveryZone string `json:"delivery_zone"`
}

// Stage names the pipeline step that produced a StageResult.
type Stage string

const (
	StageValidation  Stage = "validation"
	StageInventory   Stage = "inventory"
	StagePayment     Stage = "payment"
	StageFulfillment Stage = "fulfillment"
	StageShipment    Stage = "shipment"
	StageDelivery    Stage = "delivery"
)

// Status is the order state reached after a stage completes.
type Status string

const (
	StatusSubmitted       Status = "Submitted"
	StatusValidated       Status = "Validated"
	StatusStockChecked    Status = "StockChecked"
	StatusPaymentApproved Status = "PaymentApproved"
	StatusFulfilled       Status = "Fulfilled"
	StatusShipped         Status = "Shipped"
	StatusDelivered       Status = "Delivered"
)

// StageResult is the (success, message) pair a stage reports back to
// the presentation layer, tagged with the stage and the status the
// order holds after it. TrackingID is set by the shipment stage only.
type StageResult struct {
	Stage      Stage  `json:"stage"`
	Status     Status `json:"status"`
	Success    bool   `json:"success"`
	Message    string `json:"message"`
	TrackingID string `json:"tracking_id,omitempty"`
}
