package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"letterdesk/internal/domain/notification"
	"letterdesk/internal/infra"
	"letterdesk/internal/infra/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const pgErrCodeUniqueViolation = "23505"

// NotificationRepository owns every mutation of the notifications table.
// Claims are plain conditional updates; there is no advisory locking.
type NotificationRepository struct {
	db db.DBTX
}

func NewNotificationRepository(dbtx db.DBTX) *NotificationRepository {
	return &NotificationRepository{db: dbtx}
}

func (r *NotificationRepository) Create(ctx context.Context, tx db.DBTX, n *notification.Notification) error {
	channels := make([]string, 0, len(n.Channels()))
	for _, ch := range n.Channels() {
		channels = append(channels, ch.String())
	}

	state, err := json.Marshal(n.ChannelStates())
	if err != nil {
		return infra.WrapRepoErr(infra.KindDBFailure, "failed to marshal channel state", err)
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO notifications
			(id, user_id, kind, payload, channels, channel_state, status,
			 attempts, last_error, read, created_at, updated_at, next_attempt_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
		n.ID(), n.UserID(), n.Kind().String(), n.Payload(), channels, state,
		n.Status().String(), n.Attempts(), nullIfEmpty(n.LastError()), n.Read(),
		n.CreatedAt(), n.UpdatedAt(), n.NextAttemptAt(),
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgErrCodeUniqueViolation {
			return infra.WrapRepoErr(infra.KindDuplicateKey, "notification already exists", err)
		}
		return infra.WrapRepoErr(infra.KindDBFailure, "failed to insert notification", err)
	}
	return nil
}

// SelectDue returns retry-eligible rows oldest first. partially_delivered is
// included so an operator can re-arm a partial row by resetting its
// next_attempt_at; the processor itself clears next_attempt_at on
// semi-terminal rows, keeping them out of normal selection.
func (r *NotificationRepository) SelectDue(ctx context.Context, now time.Time, limit int) ([]*notification.Notification, error) {
	rows, err := r.db.Query(ctx, selectColumns+`
		FROM notifications
		WHERE status IN ('pending', 'partially_delivered')
		  AND next_attempt_at IS NOT NULL
		  AND next_attempt_at <= $1
		ORDER BY created_at ASC
		LIMIT $2`,
		now, limit,
	)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to select due notifications", err)
	}
	defer rows.Close()

	return scanNotifications(rows)
}

// Claim transitions a row to processing only if it still looks exactly like
// it did when selected. Losing the race is a normal outcome, not an error.
func (r *NotificationRepository) Claim(ctx context.Context, n *notification.Notification, now time.Time) (bool, error) {
	tag, err := r.db.Exec(ctx, `
		UPDATE notifications
		SET status = 'processing', updated_at = $1
		WHERE id = $2 AND status = $3 AND attempts = $4`,
		now, n.ID(), n.Status().String(), n.Attempts(),
	)
	if err != nil {
		return false, infra.WrapRepoErr(infra.KindDBFailure, "failed to claim notification", err)
	}
	return tag.RowsAffected() == 1, nil
}

// SaveOutcome persists a processing pass. The status guard keeps a crashed
// twin's stale write from clobbering a row someone else already resolved.
func (r *NotificationRepository) SaveOutcome(ctx context.Context, n *notification.Notification) error {
	state, err := json.Marshal(n.ChannelStates())
	if err != nil {
		return infra.WrapRepoErr(infra.KindDBFailure, "failed to marshal channel state", err)
	}

	tag, err := r.db.Exec(ctx, `
		UPDATE notifications
		SET status = $1, attempts = $2, channel_state = $3, last_error = $4,
		    updated_at = $5, next_attempt_at = $6
		WHERE id = $7 AND status = 'processing'`,
		n.Status().String(), n.Attempts(), state, nullIfEmpty(n.LastError()),
		n.UpdatedAt(), n.NextAttemptAt(), n.ID(),
	)
	if err != nil {
		return infra.WrapRepoErr(infra.KindDBFailure, "failed to save notification outcome", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(infra.KindClaimLost, "notification no longer claimed", nil)
	}
	return nil
}

// ReclaimStuck returns processing rows older than the cutoff to pending.
// Attempts are untouched: a crash mid-send is not a delivery failure.
func (r *NotificationRepository) ReclaimStuck(ctx context.Context, cutoff, now time.Time) (int64, error) {
	tag, err := r.db.Exec(ctx, `
		UPDATE notifications
		SET status = 'pending', next_attempt_at = $1, updated_at = $1
		WHERE status = 'processing' AND updated_at < $2`,
		now, cutoff,
	)
	if err != nil {
		return 0, infra.WrapRepoErr(infra.KindDBFailure, "failed to reclaim stuck notifications", err)
	}
	return tag.RowsAffected(), nil
}

// DeleteTerminalBefore purges delivered/failed rows past retention. The
// status list is deliberately closed: pending, processing and
// partially_delivered rows survive any retention value.
func (r *NotificationRepository) DeleteTerminalBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	tag, err := r.db.Exec(ctx, `
		DELETE FROM notifications
		WHERE status IN ('delivered', 'failed') AND updated_at < $1`,
		cutoff,
	)
	if err != nil {
		return 0, infra.WrapRepoErr(infra.KindDBFailure, "failed to delete terminal notifications", err)
	}
	return tag.RowsAffected(), nil
}

// MarkRead flips read for a single row owned by userID. Zero rows affected
// means the row does not exist or belongs to someone else; the two cases are
// indistinguishable on purpose.
func (r *NotificationRepository) MarkRead(ctx context.Context, id, userID uuid.UUID, now time.Time) (bool, error) {
	tag, err := r.db.Exec(ctx, `
		UPDATE notifications
		SET read = TRUE, updated_at = $1
		WHERE id = $2 AND user_id = $3 AND read = FALSE`,
		now, id, userID,
	)
	if err != nil {
		return false, infra.WrapRepoErr(infra.KindDBFailure, "failed to mark notification read", err)
	}
	if tag.RowsAffected() == 1 {
		return true, nil
	}

	// Distinguish "already read" (no-op) from "not owned" (NotFound).
	var exists bool
	err = r.db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM notifications WHERE id = $1 AND user_id = $2)`,
		id, userID,
	).Scan(&exists)
	if err != nil {
		return false, infra.WrapRepoErr(infra.KindDBFailure, "failed to check notification ownership", err)
	}
	if !exists {
		return false, infra.WrapRepoErr(infra.KindNotFound, "notification not found", nil)
	}
	return false, nil
}

// MarkAllRead is a single statement, so it is atomic relative to concurrent
// MarkRead calls: the net effect of any interleaving is all rows read.
func (r *NotificationRepository) MarkAllRead(ctx context.Context, userID uuid.UUID, now time.Time) (int64, error) {
	tag, err := r.db.Exec(ctx, `
		UPDATE notifications
		SET read = TRUE, updated_at = $1
		WHERE user_id = $2 AND read = FALSE`,
		now, userID,
	)
	if err != nil {
		return 0, infra.WrapRepoErr(infra.KindDBFailure, "failed to mark all notifications read", err)
	}
	return tag.RowsAffected(), nil
}

const selectColumns = `
		SELECT id, user_id, kind, payload, channels, channel_state, status,
		       attempts, last_error, read, created_at, updated_at, next_attempt_at`

func scanNotifications(rows pgx.Rows) ([]*notification.Notification, error) {
	var out []*notification.Notification
	for rows.Next() {
		n, err := scanNotification(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to iterate notifications", err)
	}
	return out, nil
}

func scanNotification(row pgx.Row) (*notification.Notification, error) {
	var (
		id, userID    uuid.UUID
		kind          string
		payload       []byte
		channels      []string
		stateRaw      []byte
		status        string
		attempts      int
		lastError     *string
		read          bool
		createdAt     time.Time
		updatedAt     time.Time
		nextAttemptAt *time.Time
	)

	err := row.Scan(&id, &userID, &kind, &payload, &channels, &stateRaw, &status,
		&attempts, &lastError, &read, &createdAt, &updatedAt, &nextAttemptAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr(infra.KindNotFound, "notification not found", err)
		}
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to scan notification", err)
	}

	chs := make([]notification.Channel, 0, len(channels))
	for _, ch := range channels {
		chs = append(chs, notification.Channel(ch))
	}

	var state map[notification.Channel]notification.ChannelState
	if len(stateRaw) > 0 {
		if err := json.Unmarshal(stateRaw, &state); err != nil {
			return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to unmarshal channel state", err)
		}
	}

	lastErrStr := ""
	if lastError != nil {
		lastErrStr = *lastError
	}

	return notification.Reconstruct(
		id, userID, notification.Kind(kind), payload, chs, state,
		notification.Status(status), attempts, lastErrStr, read,
		createdAt, updatedAt, nextAttemptAt,
	), nil
}

func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
