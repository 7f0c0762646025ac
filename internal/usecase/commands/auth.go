package commands

import (
	"context"

	"letterdesk/internal/domain/user"
	"letterdesk/internal/infra"
	"letterdesk/internal/pkg/errs"
	"letterdesk/internal/pkg/jwt"
	"letterdesk/internal/pkg/password"
	"letterdesk/internal/usecase/queries"
)

// AuthCommand issues access tokens for the read API. Credential failures
// collapse into a single error so callers cannot probe which emails exist.
type AuthCommand interface {
	Login(ctx context.Context, email, rawPassword string) (string, *queries.AuthorizedUserView, error)
}

type authCommandImpl struct {
	users queries.UserReadStore
	jwt   *jwt.Service
}

func NewAuthCommand(users queries.UserReadStore, jwtSvc *jwt.Service) AuthCommand {
	return &authCommandImpl{users: users, jwt: jwtSvc}
}

func (c *authCommandImpl) Login(ctx context.Context, email, rawPassword string) (string, *queries.AuthorizedUserView, error) {
	view, hash, err := c.users.FindByEmail(ctx, email)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return "", nil, errs.ErrInvalidCredentials
		}
		return "", nil, err
	}
	if !view.IsActive {
		return "", nil, errs.ErrInvalidCredentials
	}
	if err := password.ComparePassword(hash, rawPassword); err != nil {
		return "", nil, errs.ErrInvalidCredentials
	}

	role, err := user.NewRole(view.Role)
	if err != nil {
		return "", nil, errs.Wrap(err, "user row carries invalid role")
	}

	token, err := c.jwt.GenerateToken(view.ID, role)
	if err != nil {
		return "", nil, errs.Wrap(err, "failed to generate token")
	}
	return token, view, nil
}
