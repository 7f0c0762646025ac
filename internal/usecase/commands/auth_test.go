//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"letterdesk/internal/infra"
	"letterdesk/internal/pkg/errs"
	"letterdesk/internal/pkg/jwt"
	"letterdesk/internal/pkg/password"
	"letterdesk/internal/usecase/commands"
	"letterdesk/internal/usecase/queries"
	queriesmock "letterdesk/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AuthCommandTestSuite struct {
	suite.Suite
	ctrl  *gomock.Controller
	users *queriesmock.MockUserReadStore
	jwt   *jwt.Service
	cmd   commands.AuthCommand
	hash  string
}

func (s *AuthCommandTestSuite) SetupSuite() {
	hash, err := password.HashPassword("correct horse battery")
	s.Require().NoError(err)
	s.hash = hash
}

func (s *AuthCommandTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.users = queriesmock.NewMockUserReadStore(s.ctrl)
	s.jwt = jwt.NewService("test-secret", time.Hour)
	s.cmd = commands.NewAuthCommand(s.users, s.jwt)
}

func (s *AuthCommandTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestAuthCommandSuite(t *testing.T) {
	suite.Run(t, new(AuthCommandTestSuite))
}

func (s *AuthCommandTestSuite) view() *queries.AuthorizedUserView {
	return &queries.AuthorizedUserView{
		ID:       uuid.New(),
		Email:    "lecturer@example.edu",
		Role:     "lecturer",
		IsActive: true,
	}
}

func (s *AuthCommandTestSuite) TestLogin() {
	ctx := context.Background()

	s.Run("returns a verifiable token on valid credentials", func() {
		view := s.view()
		s.users.EXPECT().FindByEmail(ctx, view.Email).Return(view, s.hash, nil)

		token, got, err := s.cmd.Login(ctx, view.Email, "correct horse battery")
		s.Require().NoError(err)
		s.Equal(view, got)

		claims, err := s.jwt.ValidateToken(token)
		s.Require().NoError(err)
		s.Equal(view.ID, claims.UserID)
	})

	s.Run("wrong password", func() {
		view := s.view()
		s.users.EXPECT().FindByEmail(ctx, view.Email).Return(view, s.hash, nil)

		_, _, err := s.cmd.Login(ctx, view.Email, "not the password")
		s.ErrorIs(err, errs.ErrInvalidCredentials)
	})

	s.Run("unknown email", func() {
		s.users.EXPECT().FindByEmail(ctx, "nobody@example.edu").
			Return(nil, "", infra.WrapRepoErr(infra.KindNotFound, "user not found", nil))

		_, _, err := s.cmd.Login(ctx, "nobody@example.edu", "correct horse battery")
		s.ErrorIs(err, errs.ErrInvalidCredentials)
	})

	s.Run("deactivated account", func() {
		view := s.view()
		view.IsActive = false
		s.users.EXPECT().FindByEmail(ctx, view.Email).Return(view, s.hash, nil)

		_, _, err := s.cmd.Login(ctx, view.Email, "correct horse battery")
		s.ErrorIs(err, errs.ErrInvalidCredentials)
	})

	s.Run("database failure is not masked as bad credentials", func() {
		s.users.EXPECT().FindByEmail(ctx, "lecturer@example.edu").
			Return(nil, "", infra.WrapRepoErr(infra.KindDBFailure, "query failed", nil))

		_, _, err := s.cmd.Login(ctx, "lecturer@example.edu", "correct horse battery")
		s.Error(err)
		s.NotErrorIs(err, errs.ErrInvalidCredentials)
	})
}
