package queries

import (
	"context"
	"time"

	"letterdesk/internal/infra"
	"letterdesk/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrNotificationNotFound = errs.ErrNotificationNotFound
	ErrInvalidCursor        = errs.ErrInvalidCursor
)

// NotificationReadStore is the persistence port for the read side.
type NotificationReadStore interface {
	FindByID(ctx context.Context, id, userID uuid.UUID) (*NotificationView, error)
	FindFirstPage(ctx context.Context, userID uuid.UUID, limit int32) ([]*NotificationView, error)
	FindKeyset(ctx context.Context, userID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*NotificationView, error)
	UnreadCount(ctx context.Context, userID uuid.UUID) (int64, error)
}

// NotificationQueries is the user-scoped read surface. Every method takes
// the acting userID explicitly; there is no ambient session state.
type NotificationQueries interface {
	List(ctx context.Context, userID uuid.UUID, cursor *Cursor, limit int) ([]*NotificationView, *Cursor, error)
	GetByID(ctx context.Context, id, userID uuid.UUID) (*NotificationView, error)
	UnreadCount(ctx context.Context, userID uuid.UUID) (int64, error)
}

type notificationQueriesImpl struct {
	store NotificationReadStore
}

func NewNotificationQueries(store NotificationReadStore) NotificationQueries {
	return &notificationQueriesImpl{store: store}
}

func (q *notificationQueriesImpl) GetByID(ctx context.Context, id, userID uuid.UUID) (*NotificationView, error) {
	v, err := q.store.FindByID(ctx, id, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrNotificationNotFound
		}
		return nil, err
	}
	return v, nil
}

// List pages newest-first with a keyset cursor on (created_at, id).
func (q *notificationQueriesImpl) List(ctx context.Context, userID uuid.UUID, cursor *Cursor, limit int) ([]*NotificationView, *Cursor, error) {
	limit = ValidateLimit(limit)

	var rows []*NotificationView
	var err error
	if cursor == nil || cursor.After == "" {
		rows, err = q.store.FindFirstPage(ctx, userID, int32(limit+1))
	} else {
		lastCreatedAt, lastID, derr := DecodeAfterCursor(cursor.After)
		if derr != nil {
			return nil, nil, ErrInvalidCursor
		}
		rows, err = q.store.FindKeyset(ctx, userID, lastCreatedAt, lastID, int32(limit+1))
	}
	if err != nil {
		return nil, nil, err
	}

	var next *Cursor
	if len(rows) > limit {
		last := rows[limit-1]
		next = &Cursor{After: EncodeAfterCursor(last.CreatedAt, last.ID)}
		rows = rows[:limit]
	}
	return rows, next, nil
}

func (q *notificationQueriesImpl) UnreadCount(ctx context.Context, userID uuid.UUID) (int64, error) {
	return q.store.UnreadCount(ctx, userID)
}
