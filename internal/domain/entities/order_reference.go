package entities

import (
	"encoding/hex"
	"fmt"
	"io"
	"strings"
)

const (
	OrderReferencePrefix = "ORD"

	// 16 hex characters keeps collisions negligible well past 10^5 references.
	orderReferenceRandomBytes = 8
)

// OrderReference is the correlation token minted per checkout attempt. It is
// embedded in the success/cancel URLs and in the gateway metadata, and comes
// back on the webhook as the only join key between a session and its outcome.
//
// Uniqueness is probabilistic; nothing looks references up before minting.
type OrderReference string

func (r OrderReference) String() string {
	return string(r)
}

// NewOrderReference reads random bytes from src and formats them as
// "ORD-<hex>". A short read from src is returned as an error.
func NewOrderReference(src io.Reader) (OrderReference, error) {
	buf := make([]byte, orderReferenceRandomBytes)
	if _, err := io.ReadFull(src, buf); err != nil {
		return "", fmt.Errorf("read order reference entropy: %w", err)
	}
	return OrderReference(OrderReferencePrefix + "-" + hex.EncodeToString(buf)), nil
}

// ParseOrderReference trims the raw value echoed back by the gateway. An empty
// result means the event carried no reference.
func ParseOrderReference(raw string) OrderReference {
	return OrderReference(strings.TrimSpace(raw))
}
