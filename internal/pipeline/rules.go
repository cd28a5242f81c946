package pipeline

// Rules are the business thresholds applied by the validator and the
// mock payment gateway.
type Rules struct {
	// MinQuantity is the minimum order quantity (MOQ).
	MinQuantity int64
	// MaxAmount is the risk-mitigation ceiling on the order total.
	MaxAmount int64
	// ServiceableZones is the delivery-zone allow-list.
	ServiceableZones []string
}

// DefaultRules returns the demo rule set.
func DefaultRules() Rules {
	return Rules{
		MinQuantity:      1,
		MaxAmount:        5000,
		ServiceableZones: []string{"IN"},
	}
}

func (r Rules) zoneServiceable(zone string) bool {
	for _, z := range r.ServiceableZones {
		if z == zone {
			return true
		}
	}
	return false
}
