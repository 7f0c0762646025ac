//go:build unit

package pubsub_test

import (
	"testing"
	"time"

	"letterdesk/internal/infra/pubsub"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func change(userID uuid.UUID) pubsub.RowChange {
	return pubsub.RowChange{
		Type:           pubsub.ChangeInserted,
		NotificationID: uuid.New(),
		UserID:         userID,
		Kind:           "request_created",
		OccurredAt:     time.Now(),
	}
}

func TestBus(t *testing.T) {
	t.Run("subscriber receives own events only", func(t *testing.T) {
		bus := pubsub.NewBus()
		alice := uuid.New()
		bob := uuid.New()

		ch, cancel := bus.Subscribe(alice)
		defer cancel()

		bus.Publish(change(bob))
		bus.Publish(change(alice))

		select {
		case got := <-ch:
			assert.Equal(t, alice, got.UserID)
		default:
			t.Fatal("expected an event for alice")
		}
		select {
		case got := <-ch:
			t.Fatalf("unexpected second event: %+v", got)
		default:
		}
	})

	t.Run("multiple subscriptions per user each get the event", func(t *testing.T) {
		bus := pubsub.NewBus()
		userID := uuid.New()

		ch1, cancel1 := bus.Subscribe(userID)
		ch2, cancel2 := bus.Subscribe(userID)
		defer cancel1()
		defer cancel2()

		require.Equal(t, 2, bus.SubscriberCount(userID))
		bus.Publish(change(userID))

		assert.Len(t, ch1, 1)
		assert.Len(t, ch2, 1)
	})

	t.Run("cancel closes the channel and is idempotent", func(t *testing.T) {
		bus := pubsub.NewBus()
		userID := uuid.New()

		ch, cancel := bus.Subscribe(userID)
		cancel()
		cancel()

		_, open := <-ch
		assert.False(t, open)
		assert.Equal(t, 0, bus.SubscriberCount(userID))
	})

	t.Run("publish never blocks on a full buffer", func(t *testing.T) {
		bus := pubsub.NewBus()
		userID := uuid.New()

		_, cancel := bus.Subscribe(userID)
		defer cancel()

		done := make(chan struct{})
		go func() {
			defer close(done)
			for i := 0; i < 100; i++ {
				bus.Publish(change(userID))
			}
		}()

		select {
		case <-done:
		case <-time.After(time.Second):
			t.Fatal("publish blocked on a slow subscriber")
		}
	})

	t.Run("publish to a user with no subscribers is a no-op", func(t *testing.T) {
		bus := pubsub.NewBus()
		bus.Publish(change(uuid.New()))
	})
}
