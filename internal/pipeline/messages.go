package pipeline

// Stage outcome messages shown to the user. The wording is part of the
// demo's contract and asserted by the test suite.
const (
	MsgInvalidOrderID     = "Invalid Order ID"
	MsgDuplicateOrder     = "Duplicate order detected"
	MsgBelowMinQuantity   = "Order quantity below minimum threshold"
	MsgExceedsRisk        = "Order amount exceeds risk threshold"
	MsgZoneNotServiceable = "Delivery address not serviceable"
	MsgOrderValidated     = "Order validated successfully"

	MsgOutOfStock      = "Out of stock"
	MsgProductNotFound = "Product not found"

	MsgPaymentSuccessful = "Payment successful"
	MsgPaymentFailed     = "Payment failed due to risk threshold"

	MsgOrderPacked    = "Order packed successfully"
	MsgOrderDelivered = "Order delivered successfully"
)
