// Package pubsub is the in-process bus behind the real-time notification
// stream. Delivery is best-effort: consumers that fall behind lose events
// and are expected to recover by re-fetching the unread count or the list.
package pubsub

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

type ChangeType string

const (
	ChangeInserted ChangeType = "insert"
	ChangeUpdated  ChangeType = "update"
)

// RowChange describes one notification row mutation, scoped to its owner.
type RowChange struct {
	Type           ChangeType `json:"type"`
	NotificationID uuid.UUID  `json:"notification_id"`
	UserID         uuid.UUID  `json:"-"`
	Kind           string     `json:"kind"`
	Read           bool       `json:"read"`
	OccurredAt     time.Time  `json:"occurred_at"`
}

const subscriberBuffer = 16

type subscriber struct {
	userID uuid.UUID
	ch     chan RowChange
}

// Bus fans row changes out to per-user subscribers. A single user may hold
// several subscriptions (multiple tabs); each gets its own buffer.
type Bus struct {
	mu   sync.RWMutex
	subs map[uuid.UUID]map[*subscriber]struct{}
}

func NewBus() *Bus {
	return &Bus{
		subs: make(map[uuid.UUID]map[*subscriber]struct{}),
	}
}

// Subscribe registers a listener for one user's row changes. The returned
// cancel func is idempotent and closes the channel.
func (b *Bus) Subscribe(userID uuid.UUID) (<-chan RowChange, func()) {
	sub := &subscriber{
		userID: userID,
		ch:     make(chan RowChange, subscriberBuffer),
	}

	b.mu.Lock()
	if b.subs[userID] == nil {
		b.subs[userID] = make(map[*subscriber]struct{})
	}
	b.subs[userID][sub] = struct{}{}
	b.mu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			b.mu.Lock()
			if set, ok := b.subs[userID]; ok {
				delete(set, sub)
				if len(set) == 0 {
					delete(b.subs, userID)
				}
			}
			b.mu.Unlock()
			close(sub.ch)
		})
	}

	return sub.ch, cancel
}

// Publish never blocks: a full subscriber buffer drops the event for that
// subscriber only.
func (b *Bus) Publish(change RowChange) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for sub := range b.subs[change.UserID] {
		select {
		case sub.ch <- change:
		default:
		}
	}
}

// SubscriberCount reports the open subscriptions for one user.
func (b *Bus) SubscriberCount(userID uuid.UUID) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs[userID])
}
