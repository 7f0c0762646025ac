package commands

import (
	"context"
	"encoding/json"
	"log/slog"

	"letterdesk/internal/domain/event"
	"letterdesk/internal/domain/notification"
	"letterdesk/internal/infra"
	"letterdesk/internal/infra/db"
	"letterdesk/internal/infra/pubsub"
	"letterdesk/internal/pkg/clock"
	"letterdesk/internal/pkg/errs"
	"letterdesk/internal/usecase/queries"
	"letterdesk/internal/usecase/shared"

	"github.com/google/uuid"
)

// DispatchCommand turns a business event into persisted notification rows.
// Enqueue is all-or-nothing per event: either every resolved recipient gets
// a row or the caller sees ErrEnqueueFailed and may retry the whole event.
type DispatchCommand interface {
	Dispatch(ctx context.Context, ev event.TriggerEvent) ([]uuid.UUID, error)
}

type dispatchCommandImpl struct {
	tx     shared.TxRunner
	repo   shared.NotificationRepository
	users  queries.UserReadStore
	bus    shared.ChangePublisher
	clk    clock.Clock
	logger *slog.Logger
}

func NewDispatchCommand(
	tx shared.TxRunner,
	repo shared.NotificationRepository,
	users queries.UserReadStore,
	bus shared.ChangePublisher,
	clk clock.Clock,
	logger *slog.Logger,
) DispatchCommand {
	return &dispatchCommandImpl{
		tx:     tx,
		repo:   repo,
		users:  users,
		bus:    bus,
		clk:    clk,
		logger: logger,
	}
}

func (c *dispatchCommandImpl) Dispatch(ctx context.Context, ev event.TriggerEvent) ([]uuid.UUID, error) {
	routing := event.Route(ev)

	payload, err := json.Marshal(ev)
	if err != nil {
		return nil, errs.Wrap(err, "failed to encode event payload")
	}

	targets, err := c.resolveTargets(ctx, routing)
	if err != nil {
		return nil, err
	}
	if len(targets) == 0 {
		return nil, errs.ErrNoRecipients
	}

	now := c.clk.Now()
	rows := make([]*notification.Notification, 0, len(targets))
	for _, t := range targets {
		n, err := notification.New(t.userID, ev.Kind(), payload, t.channels, now)
		if err != nil {
			return nil, errs.Wrap(err, "failed to build notification")
		}
		rows = append(rows, n)
	}

	err = c.tx.RunInTx(ctx, func(tx db.DBTX) error {
		for _, n := range rows {
			if err := c.repo.Create(ctx, tx, n); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		c.logger.Error("notification enqueue failed",
			slog.String("kind", string(ev.Kind())),
			slog.String("error", err.Error()))
		return nil, errs.Mark(err, errs.ErrEnqueueFailed)
	}

	ids := make([]uuid.UUID, 0, len(rows))
	for _, n := range rows {
		ids = append(ids, n.ID())
		c.bus.Publish(pubsub.RowChange{
			Type:           pubsub.ChangeInserted,
			NotificationID: n.ID(),
			UserID:         n.UserID(),
			Kind:           string(n.Kind()),
			Read:           false,
			OccurredAt:     now,
		})
	}
	return ids, nil
}

type resolvedTarget struct {
	userID   uuid.UUID
	channels []notification.Channel
}

// resolveTargets expands role broadcasts and intersects each target's
// candidate channels with the recipient's preferences. in_app bypasses
// preferences so the user always has a record of what happened.
func (c *dispatchCommandImpl) resolveTargets(ctx context.Context, routing event.Routing) ([]resolvedTarget, error) {
	var out []resolvedTarget
	seen := make(map[uuid.UUID]struct{}, len(routing.Targets))

	for _, t := range routing.Targets {
		if _, dup := seen[t.UserID]; dup {
			continue
		}
		seen[t.UserID] = struct{}{}

		recipient, err := c.users.FindRecipient(ctx, t.UserID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				c.logger.Warn("skipping unknown recipient", slog.String("user_id", t.UserID.String()))
				continue
			}
			return nil, err
		}
		if !recipient.IsActive {
			continue
		}
		channels := gateChannels(t.Candidates, recipient)
		if len(channels) == 0 {
			continue
		}
		out = append(out, resolvedTarget{userID: t.UserID, channels: channels})
	}

	if len(routing.AdminCandidates) > 0 {
		admins, err := c.users.FindAdmins(ctx)
		if err != nil {
			return nil, err
		}
		for _, admin := range admins {
			if _, dup := seen[admin.ID]; dup {
				continue
			}
			seen[admin.ID] = struct{}{}
			channels := gateChannels(routing.AdminCandidates, admin)
			if len(channels) == 0 {
				continue
			}
			out = append(out, resolvedTarget{userID: admin.ID, channels: channels})
		}
	}

	return out, nil
}

func gateChannels(candidates []notification.Channel, r *queries.RecipientView) []notification.Channel {
	var out []notification.Channel
	for _, ch := range candidates {
		switch ch {
		case notification.ChannelInApp:
			out = append(out, ch)
		case notification.ChannelEmail:
			if r.PrefEmail {
				out = append(out, ch)
			}
		case notification.ChannelSMS:
			if r.PrefSMS {
				out = append(out, ch)
			}
		case notification.ChannelWhatsApp:
			if r.PrefWhatsApp {
				out = append(out, ch)
			}
		}
	}
	return out
}
