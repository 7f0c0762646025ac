//go:build unit

package commands_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"letterdesk/internal/pkg/clock"
	"letterdesk/internal/pkg/config"
	"letterdesk/internal/usecase/commands"
	sharedmock "letterdesk/tests/mock/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestCleanupCommand(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	cfg := config.NewTestConfig().Notify
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("deletes terminal rows older than the retention window", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := sharedmock.NewMockNotificationRepository(ctrl)
		cmd := commands.NewCleanupCommand(repo, cfg, clock.NewMockClock(now), logger)

		repo.EXPECT().
			DeleteTerminalBefore(gomock.Any(), now.Add(-cfg.Retention)).
			Return(int64(7), nil)

		deleted, err := cmd.Cleanup(context.Background())
		require.NoError(t, err)
		assert.Equal(t, int64(7), deleted)
	})

	t.Run("propagates repository failures", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := sharedmock.NewMockNotificationRepository(ctrl)
		cmd := commands.NewCleanupCommand(repo, cfg, clock.NewMockClock(now), logger)

		repo.EXPECT().
			DeleteTerminalBefore(gomock.Any(), gomock.Any()).
			Return(int64(0), errors.New("connection reset"))

		deleted, err := cmd.Cleanup(context.Background())
		require.Error(t, err)
		assert.Zero(t, deleted)
	})
}
