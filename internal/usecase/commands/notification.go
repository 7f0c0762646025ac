package commands

import (
	"context"

	"letterdesk/internal/infra"
	"letterdesk/internal/infra/pubsub"
	"letterdesk/internal/pkg/clock"
	"letterdesk/internal/pkg/errs"
	"letterdesk/internal/usecase/shared"

	"github.com/google/uuid"
)

// NotificationCommands covers the user-initiated mutations. Both are
// idempotent: marking an already-read notification succeeds silently.
type NotificationCommands interface {
	MarkRead(ctx context.Context, id, userID uuid.UUID) error
	MarkAllRead(ctx context.Context, userID uuid.UUID) (int64, error)
}

type notificationCommandsImpl struct {
	repo shared.NotificationRepository
	bus  shared.ChangePublisher
	clk  clock.Clock
}

func NewNotificationCommands(
	repo shared.NotificationRepository,
	bus shared.ChangePublisher,
	clk clock.Clock,
) NotificationCommands {
	return &notificationCommandsImpl{repo: repo, bus: bus, clk: clk}
}

func (c *notificationCommandsImpl) MarkRead(ctx context.Context, id, userID uuid.UUID) error {
	now := c.clk.Now()
	updated, err := c.repo.MarkRead(ctx, id, userID, now)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.ErrNotificationNotFound
		}
		return err
	}
	if updated {
		c.bus.Publish(pubsub.RowChange{
			Type:           pubsub.ChangeUpdated,
			NotificationID: id,
			UserID:         userID,
			Read:           true,
			OccurredAt:     now,
		})
	}
	return nil
}

func (c *notificationCommandsImpl) MarkAllRead(ctx context.Context, userID uuid.UUID) (int64, error) {
	now := c.clk.Now()
	updated, err := c.repo.MarkAllRead(ctx, userID, now)
	if err != nil {
		return 0, err
	}
	return updated, nil
}
