//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"letterdesk/internal/infra"
	"letterdesk/internal/pkg/errs"
	"letterdesk/internal/usecase/queries"
	"letterdesk/tests/common/builder"
	queriesmock "letterdesk/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type NotificationQueriesTestSuite struct {
	suite.Suite
	ctrl  *gomock.Controller
	store *queriesmock.MockNotificationReadStore
	q     queries.NotificationQueries
}

func (s *NotificationQueriesTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.store = queriesmock.NewMockNotificationReadStore(s.ctrl)
	s.q = queries.NewNotificationQueries(s.store)
}

func (s *NotificationQueriesTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestNotificationQueriesSuite(t *testing.T) {
	suite.Run(t, new(NotificationQueriesTestSuite))
}

func makeViews(userID uuid.UUID, n int) []*queries.NotificationView {
	base := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	views := make([]*queries.NotificationView, n)
	for i := range views {
		v := builder.NewNotificationBuilder().WithUserID(userID).BuildView()
		v.CreatedAt = base.Add(-time.Duration(i) * time.Minute)
		views[i] = v
	}
	return views
}

func (s *NotificationQueriesTestSuite) TestList() {
	ctx := context.Background()
	userID := uuid.New()

	s.Run("first page without cursor", func() {
		views := makeViews(userID, 3)
		s.store.EXPECT().FindFirstPage(ctx, userID, int32(21)).Return(views, nil)

		items, next, err := s.q.List(ctx, userID, nil, 20)
		s.NoError(err)
		s.Len(items, 3)
		s.Nil(next)
	})

	s.Run("full page produces a next cursor", func() {
		views := makeViews(userID, 21)
		s.store.EXPECT().FindFirstPage(ctx, userID, int32(21)).Return(views, nil)

		items, next, err := s.q.List(ctx, userID, nil, 20)
		s.NoError(err)
		s.Len(items, 20)
		s.NotNil(next)

		// the cursor points at the last returned row
		gotTime, gotID, derr := queries.DecodeAfterCursor(next.After)
		s.NoError(derr)
		s.Equal(views[19].ID, gotID)
		s.True(views[19].CreatedAt.Equal(gotTime))
	})

	s.Run("subsequent page uses the keyset", func() {
		views := makeViews(userID, 2)
		last := views[0]
		cursor := &queries.Cursor{After: queries.EncodeAfterCursor(last.CreatedAt, last.ID)}

		s.store.EXPECT().
			FindKeyset(ctx, userID, gomock.Any(), last.ID, int32(21)).
			Return(views[1:], nil)

		items, next, err := s.q.List(ctx, userID, cursor, 20)
		s.NoError(err)
		s.Len(items, 1)
		s.Nil(next)
	})

	s.Run("garbage cursor maps to ErrInvalidCursor", func() {
		_, _, err := s.q.List(ctx, userID, &queries.Cursor{After: "garbage"}, 20)
		s.True(errors.Is(err, errs.ErrInvalidCursor))
	})
}

func (s *NotificationQueriesTestSuite) TestGetByID() {
	ctx := context.Background()
	userID := uuid.New()

	s.Run("found", func() {
		view := builder.NewNotificationBuilder().WithUserID(userID).BuildView()
		s.store.EXPECT().FindByID(ctx, view.ID, userID).Return(view, nil)

		got, err := s.q.GetByID(ctx, view.ID, userID)
		s.NoError(err)
		s.Equal(view, got)
	})

	s.Run("not found maps to domain error", func() {
		id := uuid.New()
		s.store.EXPECT().FindByID(ctx, id, userID).
			Return(nil, infra.WrapRepoErr(infra.KindNotFound, "notification not found", nil))

		_, err := s.q.GetByID(ctx, id, userID)
		s.True(errors.Is(err, errs.ErrNotificationNotFound))
	})
}

func (s *NotificationQueriesTestSuite) TestUnreadCount() {
	ctx := context.Background()
	userID := uuid.New()

	s.store.EXPECT().UnreadCount(ctx, userID).Return(int64(7), nil)

	count, err := s.q.UnreadCount(ctx, userID)
	s.NoError(err)
	s.Equal(int64(7), count)
}
