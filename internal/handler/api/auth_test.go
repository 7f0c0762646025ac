//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"letterdesk/internal/handler/api"
	reqdto "letterdesk/internal/handler/dto/request"
	resdto "letterdesk/internal/handler/dto/response"
	"letterdesk/internal/pkg/config"
	"letterdesk/internal/pkg/cookie"
	"letterdesk/internal/pkg/errs"
	"letterdesk/internal/usecase/queries"
	testhttp "letterdesk/tests/common/httptest"
	commandsmock "letterdesk/tests/mock/commands"
	queriesmock "letterdesk/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AuthHandlerTestSuite struct {
	suite.Suite
	ctrl   *gomock.Controller
	auth   *commandsmock.MockAuthCommand
	q      *queriesmock.MockUserQueries
	router *gin.Engine
	userID uuid.UUID
}

func (s *AuthHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.ctrl = gomock.NewController(s.T())
	s.auth = commandsmock.NewMockAuthCommand(s.ctrl)
	s.q = queriesmock.NewMockUserQueries(s.ctrl)
	s.userID = uuid.New()

	h := api.NewAuthHandler(s.auth, s.q, config.NewTestConfig())

	s.router = gin.New()
	auth := s.router.Group("/api/auth")
	auth.POST("/login", h.Login)
	auth.POST("/logout", h.Logout)
	auth.GET("/me", func(c *gin.Context) {
		c.Set("user_id", s.userID)
		c.Next()
	}, h.Me)
}

func (s *AuthHandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestAuthHandlerSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}

func (s *AuthHandlerTestSuite) TestLogin() {
	body := reqdto.LoginRequest{Email: "lecturer@example.edu", Password: "correct horse battery"}

	s.Run("returns the token and sets the cookie", func() {
		view := &queries.AuthorizedUserView{
			ID:       s.userID,
			Email:    body.Email,
			Role:     "lecturer",
			IsActive: true,
		}
		s.auth.EXPECT().
			Login(gomock.Any(), body.Email, body.Password).
			Return("signed.jwt.token", view, nil)

		w := testhttp.PerformRequest(s.T(), s.router, http.MethodPost, "/api/auth/login", body, "")

		var resp resdto.LoginResponse
		testhttp.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
		s.Equal("signed.jwt.token", resp.AccessToken)
		s.Equal(view.Email, resp.User.Email)

		cookies := w.Result().Cookies()
		s.Require().NotEmpty(cookies)
		s.Equal(cookie.AccessTokenCookieName, cookies[0].Name)
		s.Equal("signed.jwt.token", cookies[0].Value)
	})

	s.Run("401 on bad credentials", func() {
		s.auth.EXPECT().
			Login(gomock.Any(), body.Email, body.Password).
			Return("", nil, errs.ErrInvalidCredentials)

		w := testhttp.PerformRequest(s.T(), s.router, http.MethodPost, "/api/auth/login", body, "")

		testhttp.AssertErrorResponse(s.T(), w, http.StatusUnauthorized, "Invalid email or password")
	})

	s.Run("400 on a malformed body", func() {
		w := testhttp.PerformRequest(s.T(), s.router, http.MethodPost, "/api/auth/login",
			map[string]string{"email": "not-an-email"}, "")

		testhttp.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid request format")
	})
}

func (s *AuthHandlerTestSuite) TestLogout() {
	w := testhttp.PerformRequest(s.T(), s.router, http.MethodPost, "/api/auth/logout", nil, "")

	s.Equal(http.StatusNoContent, w.Code)
	cookies := w.Result().Cookies()
	s.Require().NotEmpty(cookies)
	s.Equal(cookie.AccessTokenCookieName, cookies[0].Name)
	s.True(cookies[0].MaxAge < 0)
}

func (s *AuthHandlerTestSuite) TestMe() {
	s.Run("returns the authenticated user", func() {
		view := &queries.AuthorizedUserView{
			ID:       s.userID,
			Email:    "lecturer@example.edu",
			Role:     "lecturer",
			IsActive: true,
		}
		s.q.EXPECT().Me(gomock.Any(), s.userID).Return(view, nil)

		w := testhttp.PerformRequest(s.T(), s.router, http.MethodGet, "/api/auth/me", nil, "")

		var resp queries.AuthorizedUserView
		testhttp.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
		s.Equal(view.ID, resp.ID)
		s.Equal(view.Role, resp.Role)
	})

	s.Run("404 when the account vanished", func() {
		s.q.EXPECT().Me(gomock.Any(), s.userID).Return(nil, errs.ErrUserNotFound)

		w := testhttp.PerformRequest(s.T(), s.router, http.MethodGet, "/api/auth/me", nil, "")

		testhttp.AssertErrorResponse(s.T(), w, http.StatusNotFound, "User not found")
	})
}
