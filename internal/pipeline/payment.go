package pipeline

// PaymentProcessor charges the order total. It is an interface so a
// real gateway integration can replace the mock without touching the
// orchestration.
type PaymentProcessor interface {
	Charge(totalAmount int64) (bool, string)
}

// MockGateway approves any amount at or under its ceiling. The ceiling
// matches the validator's risk threshold, so a decline here is
// unreachable through the normal flow.
type MockGateway struct {
	maxAmount int64
}

// NewMockGateway builds a gateway with the given approval ceiling.
func NewMockGateway(maxAmount int64) *MockGateway {
	return &MockGateway{maxAmount: maxAmount}
}

// Charge approves iff totalAmount is within the ceiling.
func (g *MockGateway) Charge(totalAmount int64) (bool, string) {
	if totalAmount <= g.maxAmount {
		return true, MsgPaymentSuccessful
	}
	return false, MsgPaymentFailed
}
