package readstore

import (
	"context"
	"errors"

	"letterdesk/internal/infra"
	"letterdesk/internal/infra/db"
	"letterdesk/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type UserReadStore struct {
	db db.DBTX
}

func NewUserReadStore(dbtx db.DBTX) *UserReadStore {
	return &UserReadStore{db: dbtx}
}

// FindByEmail returns the authorization view plus the password hash for
// credential checks. The hash never travels further than the auth command.
func (s *UserReadStore) FindByEmail(ctx context.Context, email string) (*queries.AuthorizedUserView, string, error) {
	var (
		v    queries.AuthorizedUserView
		hash string
	)
	err := s.db.QueryRow(ctx, `
		SELECT id, email, role, is_active, password_hash
		FROM users
		WHERE email = $1`,
		email,
	).Scan(&v.ID, &v.Email, &v.Role, &v.IsActive, &hash)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, "", infra.WrapRepoErr(infra.KindNotFound, "user not found", err)
		}
		return nil, "", infra.WrapRepoErr(infra.KindDBFailure, "failed to find user by email", err)
	}
	return &v, hash, nil
}

func (s *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.AuthorizedUserView, error) {
	var v queries.AuthorizedUserView
	err := s.db.QueryRow(ctx, `
		SELECT id, email, role, is_active
		FROM users
		WHERE id = $1`,
		id,
	).Scan(&v.ID, &v.Email, &v.Role, &v.IsActive)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr(infra.KindNotFound, "user not found", err)
		}
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to find user by ID", err)
	}
	return &v, nil
}

// FindRecipient returns the contact data and channel opt-ins the dispatcher
// needs to gate an event's candidate channels.
func (s *UserReadStore) FindRecipient(ctx context.Context, id uuid.UUID) (*queries.RecipientView, error) {
	var v queries.RecipientView
	err := s.db.QueryRow(ctx, `
		SELECT id, email, phone, pref_email, pref_sms, pref_whatsapp, is_active
		FROM users
		WHERE id = $1`,
		id,
	).Scan(&v.ID, &v.Email, &v.Phone, &v.PrefEmail, &v.PrefSMS, &v.PrefWhatsApp, &v.IsActive)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr(infra.KindNotFound, "recipient not found", err)
		}
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to find recipient", err)
	}
	return &v, nil
}

// FindAdmins lists active admin users for role-broadcast events.
func (s *UserReadStore) FindAdmins(ctx context.Context) ([]*queries.RecipientView, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, email, phone, pref_email, pref_sms, pref_whatsapp, is_active
		FROM users
		WHERE role = 'admin' AND is_active = TRUE`)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to list admin users", err)
	}
	defer rows.Close()

	var out []*queries.RecipientView
	for rows.Next() {
		var v queries.RecipientView
		if err := rows.Scan(&v.ID, &v.Email, &v.Phone, &v.PrefEmail, &v.PrefSMS, &v.PrefWhatsApp, &v.IsActive); err != nil {
			return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to scan admin user", err)
		}
		out = append(out, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to iterate admin users", err)
	}
	return out, nil
}
