//go:build unit

package api_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"letterdesk/internal/domain/event"
	"letterdesk/internal/handler/api"
	reqdto "letterdesk/internal/handler/dto/request"
	resdto "letterdesk/internal/handler/dto/response"
	"letterdesk/internal/handler/middleware"
	"letterdesk/internal/pkg/config"
	"letterdesk/internal/pkg/errs"
	"letterdesk/internal/usecase/commands"
	testhttp "letterdesk/tests/common/httptest"
	commandsmock "letterdesk/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AdminHandlerTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	dispatch *commandsmock.MockDispatchCommand
	process  *commandsmock.MockProcessCommand
	cleanup  *commandsmock.MockCleanupCommand
	router   *gin.Engine
	token    string
}

func (s *AdminHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.ctrl = gomock.NewController(s.T())
	s.dispatch = commandsmock.NewMockDispatchCommand(s.ctrl)
	s.process = commandsmock.NewMockProcessCommand(s.ctrl)
	s.cleanup = commandsmock.NewMockCleanupCommand(s.ctrl)

	cfg := config.NewTestConfig()
	s.token = cfg.Scheduler.Token

	h := api.NewAdminHandler(s.dispatch, s.process, s.cleanup)

	s.router = gin.New()
	internal := s.router.Group("/api/internal", middleware.RequireSchedulerToken(cfg.Scheduler))
	internal.POST("/events", h.DispatchEvent)
	internal.POST("/notifications/process", h.Process)
	internal.POST("/notifications/cleanup", h.Cleanup)
}

func (s *AdminHandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestAdminHandlerSuite(t *testing.T) {
	suite.Run(t, new(AdminHandlerTestSuite))
}

func (s *AdminHandlerTestSuite) headers() map[string]string {
	return map[string]string{"X-Scheduler-Token": s.token}
}

func (s *AdminHandlerTestSuite) eventBody() reqdto.DispatchEventRequest {
	payload, _ := json.Marshal(map[string]any{
		"request_id":    uuid.New(),
		"student_id":    uuid.New(),
		"lecturer_id":   uuid.New(),
		"request_title": "Letter for MSc application",
		"student_name":  "Dana Roth",
	})
	return reqdto.DispatchEventRequest{Kind: "request_created", Payload: payload}
}

func (s *AdminHandlerTestSuite) TestDispatchEvent() {
	s.Run("202 with the created notification ids", func() {
		ids := []uuid.UUID{uuid.New(), uuid.New()}
		s.dispatch.EXPECT().
			Dispatch(gomock.Any(), gomock.AssignableToTypeOf(event.RequestCreated{})).
			Return(ids, nil)

		w := testhttp.PerformRequestWithHeaders(s.T(), s.router,
			http.MethodPost, "/api/internal/events", s.eventBody(), s.headers())

		var resp resdto.DispatchResponse
		testhttp.AssertSuccessResponse(s.T(), w, http.StatusAccepted, &resp)
		s.Equal(ids, resp.NotificationIDs)
	})

	s.Run("400 on an unknown event kind", func() {
		body := reqdto.DispatchEventRequest{Kind: "request_exploded", Payload: json.RawMessage(`{}`)}

		w := testhttp.PerformRequestWithHeaders(s.T(), s.router,
			http.MethodPost, "/api/internal/events", body, s.headers())

		testhttp.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid event")
	})

	s.Run("422 when nobody should be notified", func() {
		s.dispatch.EXPECT().
			Dispatch(gomock.Any(), gomock.Any()).
			Return(nil, errs.ErrNoRecipients)

		w := testhttp.PerformRequestWithHeaders(s.T(), s.router,
			http.MethodPost, "/api/internal/events", s.eventBody(), s.headers())

		testhttp.AssertErrorResponse(s.T(), w, http.StatusUnprocessableEntity, "no recipients")
	})

	s.Run("502 when the enqueue transaction fails", func() {
		s.dispatch.EXPECT().
			Dispatch(gomock.Any(), gomock.Any()).
			Return(nil, errs.Mark(errs.New("tx aborted"), errs.ErrEnqueueFailed))

		w := testhttp.PerformRequestWithHeaders(s.T(), s.router,
			http.MethodPost, "/api/internal/events", s.eventBody(), s.headers())

		testhttp.AssertErrorResponse(s.T(), w, http.StatusBadGateway, "retry the event")
	})

	s.Run("401 without the scheduler token", func() {
		w := testhttp.PerformRequest(s.T(), s.router,
			http.MethodPost, "/api/internal/events", s.eventBody(), "")

		testhttp.AssertStatus(s.T(), w, http.StatusUnauthorized)
	})
}

func (s *AdminHandlerTestSuite) TestProcess() {
	summary := commands.ProcessingSummary{Selected: 3, Claimed: 3, Delivered: 2, Retried: 1}
	s.process.EXPECT().ProcessBatch(gomock.Any()).Return(summary, nil)

	w := testhttp.PerformRequestWithHeaders(s.T(), s.router,
		http.MethodPost, "/api/internal/notifications/process", nil, s.headers())

	var resp resdto.ProcessResponse
	testhttp.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
	s.Equal(summary, resp.Summary)
}

func (s *AdminHandlerTestSuite) TestCleanup() {
	s.cleanup.EXPECT().Cleanup(gomock.Any()).Return(int64(12), nil)

	w := testhttp.PerformRequestWithHeaders(s.T(), s.router,
		http.MethodPost, "/api/internal/notifications/cleanup", nil, s.headers())

	var resp resdto.CleanupResponse
	testhttp.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
	s.Equal(int64(12), resp.Deleted)
}
