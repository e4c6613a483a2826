//go:build unit

package api_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"hireflow/internal/handler/api"
	resdto "hireflow/internal/handler/dto/response"
	"hireflow/internal/pkg/errs"
	"hireflow/internal/usecase/commands"
	"hireflow/internal/usecase/queries"
	"hireflow/tests/common/builder"
	"hireflow/tests/common/httptest"
	commandsmock "hireflow/tests/mock/commands"
	queriesmock "hireflow/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ScheduleHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockScheduleCommands
	mockQueries  *queriesmock.MockScheduleQueries
	handler      *api.ScheduleHandler
	userID       uuid.UUID
}

func (s *ScheduleHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockScheduleCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockScheduleQueries(s.mockCtrl)
	s.handler = api.NewScheduleHandler(s.mockCommands, s.mockQueries)
	s.userID = uuid.New()

	// Stand-in for the auth middleware: a bearer header sets the user context.
	withUser := func(h gin.HandlerFunc) gin.HandlerFunc {
		return func(c *gin.Context) {
			if c.GetHeader("Authorization") != "" {
				c.Set("user_id", s.userID)
			}
			h(c)
		}
	}

	s.router.POST("/schedules", withUser(s.handler.CreateSchedule))
	s.router.GET("/schedules/:id", withUser(s.handler.GetSchedule))
	s.router.POST("/schedules/:id/cancel", withUser(s.handler.CancelSchedule))
	s.router.GET("/candidates/:id/schedules", withUser(s.handler.ListByCandidate))
}

func (s *ScheduleHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestScheduleHandlerSuite(t *testing.T) {
	suite.Run(t, new(ScheduleHandlerTestSuite))
}

func (s *ScheduleHandlerTestSuite) TestCreateSchedule() {
	url := "/schedules"
	reqBody := builder.NewScheduleBuilder().BuildDTO()

	s.Run("success: returns 201 with the option batch summary", func() {
		result := &commands.CreateScheduleResult{
			RequestID:       uuid.New(),
			OptionCount:     5,
			PublicLinkToken: "link-token",
		}
		s.mockCommands.EXPECT().Create(gomock.Any(), reqBody, s.userID).
			Return(result, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var response resdto.CreateScheduleResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(result.RequestID, response.RequestID)
		s.Equal(5, response.OptionCount)
		s.Equal("link-token", response.PublicLinkToken)
	})

	s.Run("success: accepts an empty interviewer set", func() {
		noInterviewers := builder.NewScheduleBuilder().
			With(func(b *builder.ScheduleBuilder) { b.InterviewerIDs = []uuid.UUID{} }).
			BuildDTO()
		result := &commands.CreateScheduleResult{
			RequestID:       uuid.New(),
			OptionCount:     3,
			PublicLinkToken: "link-token",
		}
		s.mockCommands.EXPECT().Create(gomock.Any(), noInterviewers, s.userID).
			Return(result, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, noInterviewers, "bearer-token")

		var response resdto.CreateScheduleResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(3, response.OptionCount)
	})

	s.Run("error: 422 with request id when nothing is available", func() {
		result := &commands.CreateScheduleResult{RequestID: uuid.New(), OptionCount: 0}
		s.mockCommands.EXPECT().Create(gomock.Any(), reqBody, s.userID).
			Return(result, errs.ErrNoAvailability).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "No available time slots")

		var response map[string]any
		s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
		s.Equal(result.RequestID.String(), response["request_id"])
	})

	s.Run("error: 400 on malformed body", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"candidate_id": "nope"}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "invalid window",
				commandsError:  errs.ErrInvalidWindow,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Window start must be before window end",
			},
			{
				name:           "invalid duration",
				commandsError:  errs.ErrInvalidDuration,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Duration must be",
			},
			{
				name:           "candidate not found",
				commandsError:  errs.ErrCandidateNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Candidate not found",
			},
			{
				name:           "stage not found",
				commandsError:  errs.ErrStageNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Stage not found",
			},
			{
				name:           "concurrent create conflict",
				commandsError:  errs.ErrPendingScheduleExists,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "created concurrently",
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Create(gomock.Any(), reqBody, s.userID).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

func (s *ScheduleHandlerTestSuite) TestGetSchedule() {
	b := builder.NewScheduleBuilder()
	view := b.WithOfferedOption(b.WindowStart.Add(9 * time.Hour)).BuildView()

	s.Run("success: returns the request with its options", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/schedules/"+view.ID.String(), nil, "bearer-token")

		var response resdto.ScheduleRequestResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(view.ID, response.ID)
		s.Equal(view.CandidateName, response.CandidateName)
		s.Len(response.Options, 1)
	})

	s.Run("error: 404 for unknown request", func() {
		unknown := uuid.New()
		s.mockQueries.EXPECT().GetByID(gomock.Any(), unknown).
			Return(nil, errs.ErrScheduleRequestNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/schedules/"+unknown.String(), nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Schedule request not found")
	})

	s.Run("error: 400 for malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/schedules/not-a-uuid", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid schedule request ID")
	})
}

func (s *ScheduleHandlerTestSuite) TestCancelSchedule() {
	requestID := uuid.New()
	url := "/schedules/" + requestID.String() + "/cancel"

	s.Run("success: returns 204", func() {
		s.mockCommands.EXPECT().Cancel(gomock.Any(), requestID, s.userID).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "not found",
				commandsError:  errs.ErrScheduleRequestNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Schedule request not found",
			},
			{
				name:           "already confirmed",
				commandsError:  errs.ErrAlreadyConfirmed,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "already confirmed",
			},
			{
				name:           "not cancellable",
				commandsError:  errs.ErrInvalidScheduleState,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "not cancellable",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Cancel(gomock.Any(), requestID, s.userID).
					Return(tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

func (s *ScheduleHandlerTestSuite) TestListByCandidate() {
	candidateID := uuid.New()

	s.Run("success: returns the candidate's requests", func() {
		b := builder.NewScheduleBuilder()
		b.CandidateID = candidateID
		view := b.BuildView()

		s.mockQueries.EXPECT().ListByCandidate(gomock.Any(), candidateID).
			Return([]*queries.ScheduleRequestView{view}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/candidates/"+candidateID.String()+"/schedules", nil, "bearer-token")

		var response []resdto.ScheduleRequestResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 1)
		s.Equal(candidateID, response[0].CandidateID)
	})
}
