// util/event_bus_test.go
package util

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"

	logger "github.com/rohanverma/dashgate/logging"
)

func TestEventBus(t *testing.T) {
	logger.InitLogger(t.TempDir())
	defer logger.Sync()
	ctx := context.Background()

	t.Run("DeliversToSubscribers", func(t *testing.T) {
		bus := NewEventBus()
		var delivered atomic.Int64
		var payload atomic.Value

		bus.Subscribe("dashboard.created", func(ctx context.Context, event Event) error {
			delivered.Add(1)
			payload.Store(event.Payload)
			return nil
		})
		bus.Subscribe("dashboard.created", func(ctx context.Context, event Event) error {
			delivered.Add(1)
			return nil
		})

		bus.Publish(ctx, "dashboard.created", "d-1")
		bus.Drain()

		assert.Equal(t, int64(2), delivered.Load())
		assert.Equal(t, "d-1", payload.Load())
	})

	t.Run("OtherEventTypesAreNotDelivered", func(t *testing.T) {
		bus := NewEventBus()
		var delivered atomic.Int64

		bus.Subscribe("dashboard.created", func(ctx context.Context, event Event) error {
			delivered.Add(1)
			return nil
		})

		bus.Publish(ctx, "dashboard.deleted", "d-1")
		bus.Drain()

		assert.Equal(t, int64(0), delivered.Load())
	})

	t.Run("UnsubscribeStopsDelivery", func(t *testing.T) {
		bus := NewEventBus()
		var delivered atomic.Int64

		unsubscribe := bus.Subscribe("dashboard.updated", func(ctx context.Context, event Event) error {
			delivered.Add(1)
			return nil
		})

		bus.Publish(ctx, "dashboard.updated", "d-1")
		bus.Drain()
		unsubscribe()
		bus.Publish(ctx, "dashboard.updated", "d-1")
		bus.Drain()

		assert.Equal(t, int64(1), delivered.Load())
	})

	t.Run("HandlerErrorDoesNotAffectOthers", func(t *testing.T) {
		bus := NewEventBus()
		var delivered atomic.Int64

		bus.Subscribe("dashboard.created", func(ctx context.Context, event Event) error {
			return errors.New("handler failure")
		})
		bus.Subscribe("dashboard.created", func(ctx context.Context, event Event) error {
			delivered.Add(1)
			return nil
		})

		bus.Publish(ctx, "dashboard.created", "d-1")
		bus.Drain()

		assert.Equal(t, int64(1), delivered.Load())
	})
}
