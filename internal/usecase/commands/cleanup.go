package commands

import (
	"context"
	"log/slog"

	"letterdesk/internal/pkg/clock"
	"letterdesk/internal/pkg/config"
	"letterdesk/internal/pkg/errs"
	"letterdesk/internal/usecase/shared"
)

// CleanupCommand prunes terminal notifications past the retention window.
// Rows still pending or partially delivered are never touched regardless
// of age.
type CleanupCommand interface {
	Cleanup(ctx context.Context) (int64, error)
}

type cleanupCommandImpl struct {
	repo   shared.NotificationRepository
	cfg    config.NotifyConfig
	clk    clock.Clock
	logger *slog.Logger
}

func NewCleanupCommand(
	repo shared.NotificationRepository,
	cfg config.NotifyConfig,
	clk clock.Clock,
	logger *slog.Logger,
) CleanupCommand {
	return &cleanupCommandImpl{repo: repo, cfg: cfg, clk: clk, logger: logger}
}

func (c *cleanupCommandImpl) Cleanup(ctx context.Context) (int64, error) {
	cutoff := c.clk.Now().Add(-c.cfg.Retention)

	deleted, err := c.repo.DeleteTerminalBefore(ctx, cutoff)
	if err != nil {
		return 0, errs.Wrap(err, "failed to delete expired notifications")
	}
	if deleted > 0 {
		c.logger.Info("pruned expired notifications",
			slog.Int64("deleted", deleted),
			slog.Time("cutoff", cutoff))
	}
	return deleted, nil
}
