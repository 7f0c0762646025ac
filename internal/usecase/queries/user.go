package queries

import (
	"context"

	"letterdesk/internal/infra"
	"letterdesk/internal/pkg/errs"

	"github.com/google/uuid"
)

// UserReadStore is the persistence port for user lookups.
type UserReadStore interface {
	FindByEmail(ctx context.Context, email string) (*AuthorizedUserView, string, error)
	FindByID(ctx context.Context, id uuid.UUID) (*AuthorizedUserView, error)
	FindRecipient(ctx context.Context, id uuid.UUID) (*RecipientView, error)
	FindAdmins(ctx context.Context) ([]*RecipientView, error)
}

type UserQueries interface {
	Me(ctx context.Context, userID uuid.UUID) (*AuthorizedUserView, error)
}

type userQueriesImpl struct {
	store UserReadStore
}

func NewUserQueries(store UserReadStore) UserQueries {
	return &userQueriesImpl{store: store}
}

func (q *userQueriesImpl) Me(ctx context.Context, userID uuid.UUID) (*AuthorizedUserView, error) {
	v, err := q.store.FindByID(ctx, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrUserNotFound
		}
		return nil, err
	}
	return v, nil
}
