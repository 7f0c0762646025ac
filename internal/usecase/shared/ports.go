package shared

import (
	"context"
	"time"

	"letterdesk/internal/domain/notification"
	"letterdesk/internal/infra/db"
	"letterdesk/internal/infra/pubsub"

	"github.com/google/uuid"
)

// TxRunner runs fn inside one transaction, retrying serialization failures.
type TxRunner interface {
	RunInTx(ctx context.Context, fn func(tx db.DBTX) error) error
}

// NotificationRepository is the single write surface over the notifications
// table. Claim and SaveOutcome are conditional updates; see the repository
// implementation for the guard semantics.
type NotificationRepository interface {
	Create(ctx context.Context, tx db.DBTX, n *notification.Notification) error
	SelectDue(ctx context.Context, now time.Time, limit int) ([]*notification.Notification, error)
	Claim(ctx context.Context, n *notification.Notification, now time.Time) (bool, error)
	SaveOutcome(ctx context.Context, n *notification.Notification) error
	ReclaimStuck(ctx context.Context, cutoff, now time.Time) (int64, error)
	DeleteTerminalBefore(ctx context.Context, cutoff time.Time) (int64, error)
	MarkRead(ctx context.Context, id, userID uuid.UUID, now time.Time) (bool, error)
	MarkAllRead(ctx context.Context, userID uuid.UUID, now time.Time) (int64, error)
}

// ChangePublisher pushes row-change events onto the in-process bus. Callers
// treat it as fire-and-forget.
type ChangePublisher interface {
	Publish(change pubsub.RowChange)
}
