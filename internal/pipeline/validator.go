package pipeline

import "github.com/ManabBehera342/biztab-order-validation/internal/model"

// processedView is the read side of the duplicate check. The validator
// never mutates the set; insertion is the orchestrator's job after a
// successful validation.
type processedView interface {
	Contains(id string) bool
}

// Validator runs the ordered shape-and-risk checks on a submitted
// order.
type Validator struct {
	rules     Rules
	processed processedView
}

// NewValidator builds a Validator over the given rules and the
// processed-order view used for replay detection.
func NewValidator(rules Rules, processed processedView) *Validator {
	return &Validator{rules: rules, processed: processed}
}

// Validate evaluates each check in fixed order and returns the first
// failure reason, or the success message when all pass.
func (v *Validator) Validate(o model.Order) (bool, string) {
	checks := []struct {
		ok     func() bool
		reason string
	}{
		{func() bool { return o.OrderID != "" }, MsgInvalidOrderID},
		{func() bool { return !v.processed.Contains(o.OrderID) }, MsgDuplicateOrder},
		{func() bool { return o.Quantity >= v.rules.MinQuantity }, MsgBelowMinQuantity},
		{func() bool { return o.TotalAmount <= v.rules.MaxAmount }, MsgExceedsRisk},
		{func() bool { return v.rules.zoneServiceable(o.DeliveryZone) }, MsgZoneNotServiceable},
	}
	for _, c := range checks {
		if !c.ok() {
			return false, c.reason
		}
	}
	return true, MsgOrderValidated
}
