package commands

import (
	"context"
	"log/slog"

	"letterdesk/internal/domain/notification"
	"letterdesk/internal/infra"
	"letterdesk/internal/infra/pubsub"
	"letterdesk/internal/infra/sender"
	"letterdesk/internal/pkg/clock"
	"letterdesk/internal/pkg/config"
	"letterdesk/internal/pkg/errs"
	"letterdesk/internal/usecase/queries"
	"letterdesk/internal/usecase/shared"
)

// ProcessingSummary reports one batch pass for the scheduler response and
// the logs.
type ProcessingSummary struct {
	Selected           int   `json:"selected"`
	Claimed            int   `json:"claimed"`
	Delivered          int   `json:"delivered"`
	PartiallyDelivered int   `json:"partially_delivered"`
	Failed             int   `json:"failed"`
	Retried            int   `json:"retried"`
	ClaimLost          int   `json:"claim_lost"`
	Reclaimed          int64 `json:"reclaimed"`
}

// ProcessCommand drains the due queue. Safe to run from several scheduler
// instances at once: the claim update arbitrates row ownership.
type ProcessCommand interface {
	ProcessBatch(ctx context.Context) (ProcessingSummary, error)
}

type processCommandImpl struct {
	repo   shared.NotificationRepository
	users  queries.UserReadStore
	reg    *sender.Registry
	bus    shared.ChangePublisher
	cfg    config.NotifyConfig
	clk    clock.Clock
	logger *slog.Logger
}

func NewProcessCommand(
	repo shared.NotificationRepository,
	users queries.UserReadStore,
	reg *sender.Registry,
	bus shared.ChangePublisher,
	cfg config.NotifyConfig,
	clk clock.Clock,
	logger *slog.Logger,
) ProcessCommand {
	return &processCommandImpl{
		repo:   repo,
		users:  users,
		reg:    reg,
		bus:    bus,
		cfg:    cfg,
		clk:    clk,
		logger: logger,
	}
}

func (c *processCommandImpl) policy() notification.RetryPolicy {
	return notification.RetryPolicy{
		MaxAttempts: c.cfg.MaxAttempts,
		BaseDelay:   c.cfg.BaseDelay,
		MaxDelay:    c.cfg.MaxDelay,
	}
}

// ProcessBatch reclaims rows stuck in processing past the grace period,
// then claims and works through due rows oldest-first. A failure on one
// row never aborts the rest of the batch.
func (c *processCommandImpl) ProcessBatch(ctx context.Context) (ProcessingSummary, error) {
	var summary ProcessingSummary
	now := c.clk.Now()

	reclaimed, err := c.repo.ReclaimStuck(ctx, now.Add(-c.cfg.StuckGracePeriod), now)
	if err != nil {
		return summary, errs.Wrap(err, "failed to reclaim stuck notifications")
	}
	summary.Reclaimed = reclaimed
	if reclaimed > 0 {
		c.logger.Warn("reclaimed stuck notifications", slog.Int64("count", reclaimed))
	}

	due, err := c.repo.SelectDue(ctx, now, c.cfg.BatchSize)
	if err != nil {
		return summary, errs.Wrap(err, "failed to select due notifications")
	}
	summary.Selected = len(due)

	for _, n := range due {
		if err := ctx.Err(); err != nil {
			return summary, err
		}

		claimed, err := c.repo.Claim(ctx, n, c.clk.Now())
		if err != nil {
			c.logger.Error("claim failed",
				slog.String("notification_id", n.ID().String()),
				slog.String("error", err.Error()))
			continue
		}
		if !claimed {
			continue
		}
		summary.Claimed++

		c.processOne(ctx, n, &summary)
	}

	return summary, nil
}

func (c *processCommandImpl) processOne(ctx context.Context, n *notification.Notification, summary *ProcessingSummary) {
	results := c.attemptChannels(ctx, n)
	now := c.clk.Now()
	n.ApplyAttempt(results, c.policy(), now)

	if err := c.saveOutcome(ctx, n); err != nil {
		if infra.IsKind(err, infra.KindClaimLost) {
			summary.ClaimLost++
			c.logger.Warn("lost claim before outcome write",
				slog.String("notification_id", n.ID().String()))
			return
		}
		c.logger.Error("outcome write failed, row will be reclaimed",
			slog.String("notification_id", n.ID().String()),
			slog.String("error", err.Error()))
		return
	}

	switch n.Status() {
	case notification.StatusDelivered:
		summary.Delivered++
	case notification.StatusPartiallyDelivered:
		summary.PartiallyDelivered++
	case notification.StatusFailed:
		summary.Failed++
		c.logger.Error("notification exhausted its retry budget",
			slog.String("notification_id", n.ID().String()),
			slog.String("kind", string(n.Kind())),
			slog.String("last_error", n.LastError()))
	default:
		summary.Retried++
	}

	c.bus.Publish(pubsub.RowChange{
		Type:           pubsub.ChangeUpdated,
		NotificationID: n.ID(),
		UserID:         n.UserID(),
		Kind:           string(n.Kind()),
		Read:           n.Read(),
		OccurredAt:     now,
	})
}

// attemptChannels sends to every still-pending channel. Channel failures
// are captured per channel, never propagated; a down SMS gateway must not
// keep the email from going out.
func (c *processCommandImpl) attemptChannels(ctx context.Context, n *notification.Notification) map[notification.Channel]notification.AttemptResult {
	results := make(map[notification.Channel]notification.AttemptResult)
	pending := n.PendingChannels()
	if len(pending) == 0 {
		return results
	}

	recipient, err := c.users.FindRecipient(ctx, n.UserID())
	if err != nil {
		permanent := infra.IsKind(err, infra.KindNotFound)
		for _, ch := range pending {
			results[ch] = notification.AttemptResult{
				Err:       errs.Wrap(err, "recipient lookup failed"),
				Permanent: permanent,
			}
		}
		return results
	}
	if !recipient.IsActive {
		for _, ch := range pending {
			results[ch] = notification.AttemptResult{
				Err:       errs.New("recipient is deactivated"),
				Permanent: true,
			}
		}
		return results
	}

	msg := notification.Render(n.Kind(), n.Payload())

	for _, ch := range pending {
		results[ch] = c.attemptOne(ctx, ch, recipient, msg)
	}
	return results
}

func (c *processCommandImpl) attemptOne(
	ctx context.Context,
	ch notification.Channel,
	recipient *queries.RecipientView,
	msg notification.RenderedMessage,
) notification.AttemptResult {
	s, ok := c.reg.Lookup(ch)
	if !ok {
		return notification.AttemptResult{Err: errs.New("no sender registered for channel " + string(ch))}
	}

	address, err := channelAddress(ch, recipient)
	if err != nil {
		return notification.AttemptResult{Err: err, Permanent: true}
	}

	sendCtx, cancel := context.WithTimeout(ctx, c.cfg.SendTimeout)
	defer cancel()

	if err := s.Send(sendCtx, address, msg); err != nil {
		return notification.AttemptResult{Err: err, Permanent: sender.IsPermanent(err)}
	}
	return notification.AttemptResult{}
}

func channelAddress(ch notification.Channel, r *queries.RecipientView) (string, error) {
	switch ch {
	case notification.ChannelEmail:
		if r.Email == "" {
			return "", errs.New("recipient has no email address")
		}
		return r.Email, nil
	case notification.ChannelSMS, notification.ChannelWhatsApp:
		if r.Phone == "" {
			return "", errs.New("recipient has no phone number")
		}
		return r.Phone, nil
	case notification.ChannelInApp:
		return r.ID.String(), nil
	default:
		return "", errs.New("unknown channel " + string(ch))
	}
}

// saveOutcome retries transient write failures a bounded number of times.
// Losing the outcome write means double delivery on the next pass, which
// at-least-once semantics permit but we try to avoid.
func (c *processCommandImpl) saveOutcome(ctx context.Context, n *notification.Notification) error {
	var err error
	for i := 0; i < c.cfg.OutcomeWriteRetry; i++ {
		err = c.repo.SaveOutcome(ctx, n)
		if err == nil {
			return nil
		}
		if infra.IsKind(err, infra.KindClaimLost) {
			return err
		}
	}
	return err
}
