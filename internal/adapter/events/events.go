// Package events holds the event publisher adapters shared helpers.
package events

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/simaogato/walletledger-backend/internal/domain"
)

// Encode serialises an event body as JSON
func Encode(event any) ([]byte, error) {
	body, err := json.Marshal(event)
	if err != nil {
		return nil, fmt.Errorf("marshal event: %w", err)
	}
	return body, nil
}

// Noop discards every event. Used when no broker is configured.
type Noop struct{}

var _ domain.EventPublisher = Noop{}

// Publish implements domain.EventPublisher
func (Noop) Publish(context.Context, string, any) error { return nil }

// Close implements io.Closer
func (Noop) Close() error { return nil }
