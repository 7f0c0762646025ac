//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"letterdesk/internal/infra"
	"letterdesk/internal/infra/pubsub"
	"letterdesk/internal/pkg/clock"
	"letterdesk/internal/pkg/errs"
	"letterdesk/internal/usecase/commands"
	sharedmock "letterdesk/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type NotificationCommandsTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller
	repo *sharedmock.MockNotificationRepository
	bus  *sharedmock.MockChangePublisher
	now  time.Time
	cmd  commands.NotificationCommands
}

func (s *NotificationCommandsTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.repo = sharedmock.NewMockNotificationRepository(s.ctrl)
	s.bus = sharedmock.NewMockChangePublisher(s.ctrl)
	s.now = time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	s.cmd = commands.NewNotificationCommands(s.repo, s.bus, clock.NewMockClock(s.now))
}

func (s *NotificationCommandsTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestNotificationCommandsSuite(t *testing.T) {
	suite.Run(t, new(NotificationCommandsTestSuite))
}

func (s *NotificationCommandsTestSuite) TestMarkRead() {
	ctx := context.Background()
	id := uuid.New()
	userID := uuid.New()

	s.Run("publishes an update when the row flips to read", func() {
		s.repo.EXPECT().MarkRead(ctx, id, userID, s.now).Return(true, nil)
		s.bus.EXPECT().Publish(gomock.Any()).Do(func(change pubsub.RowChange) {
			s.Equal(pubsub.ChangeUpdated, change.Type)
			s.Equal(id, change.NotificationID)
			s.Equal(userID, change.UserID)
			s.True(change.Read)
		})

		s.NoError(s.cmd.MarkRead(ctx, id, userID))
	})

	s.Run("already read publishes nothing", func() {
		s.repo.EXPECT().MarkRead(ctx, id, userID, s.now).Return(false, nil)

		s.NoError(s.cmd.MarkRead(ctx, id, userID))
	})

	s.Run("maps missing rows to the domain error", func() {
		s.repo.EXPECT().MarkRead(ctx, id, userID, s.now).
			Return(false, infra.WrapRepoErr(infra.KindNotFound, "notification not found", nil))

		err := s.cmd.MarkRead(ctx, id, userID)
		s.ErrorIs(err, errs.ErrNotificationNotFound)
	})
}

func (s *NotificationCommandsTestSuite) TestMarkAllRead() {
	ctx := context.Background()
	userID := uuid.New()

	s.Run("returns the number of rows flipped", func() {
		s.repo.EXPECT().MarkAllRead(ctx, userID, s.now).Return(int64(3), nil)

		updated, err := s.cmd.MarkAllRead(ctx, userID)
		s.NoError(err)
		s.Equal(int64(3), updated)
	})

	s.Run("propagates repository failures", func() {
		s.repo.EXPECT().MarkAllRead(ctx, userID, s.now).
			Return(int64(0), infra.WrapRepoErr(infra.KindDBFailure, "update failed", nil))

		_, err := s.cmd.MarkAllRead(ctx, userID)
		s.Error(err)
	})
}
