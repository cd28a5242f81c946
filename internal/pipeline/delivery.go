package pipeline

// DeliveryConfirmer closes out the order. It is an interface so a real
// courier integration can replace the mock without touching the
// orchestration.
type DeliveryConfirmer interface {
	ConfirmDelivery() string
}

// MockCourier always confirms delivery; purely illustrative.
type MockCourier struct{}

// ConfirmDelivery returns the fixed success message.
func (MockCourier) ConfirmDelivery() string {
	return MsgOrderDelivered
}
