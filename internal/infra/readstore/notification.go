package readstore

import (
	"context"
	"errors"
	"time"

	"letterdesk/internal/infra"
	"letterdesk/internal/infra/db"
	"letterdesk/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// NotificationReadStore serves the user-facing read side. It deliberately
// never selects attempts, last_error or channel_state: delivery internals
// stay invisible to end users.
type NotificationReadStore struct {
	db db.DBTX
}

func NewNotificationReadStore(dbtx db.DBTX) *NotificationReadStore {
	return &NotificationReadStore{db: dbtx}
}

const viewColumns = `SELECT id, user_id, kind, payload, read, created_at`

func (s *NotificationReadStore) FindByID(ctx context.Context, id, userID uuid.UUID) (*queries.NotificationView, error) {
	row := s.db.QueryRow(ctx, viewColumns+`
		FROM notifications
		WHERE id = $1 AND user_id = $2`,
		id, userID,
	)
	return scanView(row)
}

func (s *NotificationReadStore) FindFirstPage(ctx context.Context, userID uuid.UUID, limit int32) ([]*queries.NotificationView, error) {
	rows, err := s.db.Query(ctx, viewColumns+`
		FROM notifications
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2`,
		userID, limit,
	)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to list notifications", err)
	}
	defer rows.Close()

	return scanViews(rows)
}

func (s *NotificationReadStore) FindKeyset(ctx context.Context, userID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.NotificationView, error) {
	rows, err := s.db.Query(ctx, viewColumns+`
		FROM notifications
		WHERE user_id = $1 AND (created_at, id) < ($2, $3)
		ORDER BY created_at DESC, id DESC
		LIMIT $4`,
		userID, lastCreatedAt, lastID, limit,
	)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to list notifications by keyset", err)
	}
	defer rows.Close()

	return scanViews(rows)
}

func (s *NotificationReadStore) UnreadCount(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	err := s.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM notifications WHERE user_id = $1 AND read = FALSE`,
		userID,
	).Scan(&count)
	if err != nil {
		return 0, infra.WrapRepoErr(infra.KindDBFailure, "failed to count unread notifications", err)
	}
	return count, nil
}

func scanViews(rows pgx.Rows) ([]*queries.NotificationView, error) {
	var out []*queries.NotificationView
	for rows.Next() {
		v, err := scanView(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to iterate notification views", err)
	}
	return out, nil
}

func scanView(row pgx.Row) (*queries.NotificationView, error) {
	var v queries.NotificationView
	err := row.Scan(&v.ID, &v.UserID, &v.Kind, &v.Payload, &v.Read, &v.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr(infra.KindNotFound, "notification not found", err)
		}
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to scan notification view", err)
	}
	return &v, nil
}
