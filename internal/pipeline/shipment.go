package pipeline

import (
	"strings"

	"github.com/google/uuid"
)

// randomTag returns prefix followed by n uppercase hex characters of a
// fresh random UUID.
func randomTag(prefix string, n int) string {
	raw := strings.ReplaceAll(uuid.NewString(), "-", "")
	return prefix + strings.ToUpper(raw[:n])
}

// NewOrderID generates a fresh order identifier, one per submission.
func NewOrderID() string {
	return randomTag("ORD-", 6)
}

// InitiateShipment issues an opaque tracking identifier. The caller is
// responsible for associating it with the order.
func InitiateShipment() string {
	return randomTag("TRK-", 8)
}
