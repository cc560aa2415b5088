package handlers_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"leave-tracker-backend/internal/api/handlers"
	"leave-tracker-backend/internal/calendar"
	"leave-tracker-backend/internal/database/models"
	apperrors "leave-tracker-backend/internal/errors"
	"leave-tracker-backend/internal/mocks"
	"leave-tracker-backend/internal/service"
	"leave-tracker-backend/internal/testutils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// LeaveHandlerTestSuite defines the test suite for LeaveHandler
type LeaveHandlerTestSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	mockLeave *mocks.MockLeaveServiceInterface
	mockSlack *mocks.MockSlackServiceInterface
	handler   *handlers.LeaveHandler
	httpSuite *testutils.HTTPTestSuite
}

// SetupTest sets up the test suite
func (suite *LeaveHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockLeave = mocks.NewMockLeaveServiceInterface(suite.ctrl)
	suite.mockSlack = mocks.NewMockSlackServiceInterface(suite.ctrl)
	suite.handler = handlers.NewLeaveHandler(suite.mockLeave, suite.mockSlack)
	suite.httpSuite = testutils.SetupHTTPTest()

	// stands in for auth.RequireAuth
	authenticated := func(c *gin.Context) {
		c.Set("user_id", "40158994")
		c.Set("handle", "jdoe")
		c.Next()
	}

	leave := suite.httpSuite.Router.Group("/v6/leave", authenticated)
	{
		leave.POST("/dates", suite.handler.SetLeaveDates)
		leave.PATCH("/dates", suite.handler.SetLeaveDates)
		leave.GET("/dates", suite.handler.GetLeaveDates)
		leave.GET("/team", suite.handler.GetTeamLeave)
		leave.POST("/wipro-holidays", suite.handler.CreateCompanyHolidays)
		leave.GET("/wipro-holidays", suite.handler.GetCompanyHolidays)
		leave.POST("/slack/test", suite.handler.SendSlackTestMessage)
	}
}

// TearDownTest cleans up after each test
func (suite *LeaveHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func utcDate(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func (suite *LeaveHandlerTestSuite) TestSetLeaveDates() {
	suite.T().Run("Success", func(t *testing.T) {
		body := map[string]interface{}{"dates": []string{"2025-03-03", "2025-03-04"}, "status": "LEAVE"}
		suite.mockLeave.EXPECT().
			SetLeaveDates(gomock.Any(), "40158994", "jdoe", &service.SetLeaveDatesRequest{
				Dates:  []string{"2025-03-03", "2025-03-04"},
				Status: "LEAVE",
			}).
			Return(&service.SetLeaveDatesResponse{
				Success: true,
				UpdatedDates: []models.LeaveDate{
					{UserID: "40158994", Date: utcDate(2025, 3, 3), Status: models.LeaveStatusLeave},
					{UserID: "40158994", Date: utcDate(2025, 3, 4), Status: models.LeaveStatusLeave},
				},
			}, nil)

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/v6/leave/dates", body)

		var response map[string]interface{}
		testutils.AssertJSONResponse(t, recorder, http.StatusOK, &response)
		assert.Equal(t, true, response["success"])
		assert.Len(t, response["updatedDates"], 2)
	})

	suite.T().Run("PATCH behaves like POST", func(t *testing.T) {
		body := map[string]interface{}{"dates": []string{"2025-03-03"}, "status": "AVAILABLE"}
		suite.mockLeave.EXPECT().
			SetLeaveDates(gomock.Any(), "40158994", "jdoe", gomock.Any()).
			Return(&service.SetLeaveDatesResponse{Success: true, UpdatedDates: []models.LeaveDate{}}, nil)

		recorder := suite.httpSuite.MakeRequest(http.MethodPatch, "/v6/leave/dates", body)
		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	suite.T().Run("Missing dates", func(t *testing.T) {
		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/v6/leave/dates", map[string]interface{}{"status": "LEAVE"})
		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "Dates")
	})

	suite.T().Run("Invalid JSON", func(t *testing.T) {
		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/v6/leave/dates", "invalid json")
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	suite.T().Run("Service validation error", func(t *testing.T) {
		suite.mockLeave.EXPECT().
			SetLeaveDates(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, apperrors.ErrInvalidLeaveStatus)

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/v6/leave/dates",
			map[string]interface{}{"dates": []string{"2025-03-03"}, "status": "WEEKEND"})
		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "status must be one of")
	})

	suite.T().Run("Persistence error", func(t *testing.T) {
		suite.mockLeave.EXPECT().
			SetLeaveDates(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, apperrors.NewPersistenceError("upsert leave dates", errors.New("connection reset")))

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/v6/leave/dates",
			map[string]interface{}{"dates": []string{"2025-03-03"}, "status": "LEAVE"})
		testutils.AssertErrorResponse(t, recorder, http.StatusInternalServerError, "failed to upsert leave dates")
	})
}

func (suite *LeaveHandlerTestSuite) TestGetLeaveDates() {
	suite.T().Run("Defaults to the current month", func(t *testing.T) {
		suite.mockLeave.EXPECT().
			GetLeaveDates(gomock.Any(), "40158994", (*time.Time)(nil), (*time.Time)(nil)).
			Return([]calendar.DayStatus{
				{Date: calendar.NewDay(utcDate(2025, 3, 1)), Status: models.LeaveStatusWeekend, IsWeekend: true},
			}, nil)

		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/v6/leave/dates", nil)

		var response []map[string]interface{}
		testutils.AssertJSONResponse(t, recorder, http.StatusOK, &response)
		require.Len(t, response, 1)
		assert.Equal(t, "2025-03-01", response[0]["date"])
		assert.Equal(t, "WEEKEND", response[0]["status"])
		assert.Equal(t, true, response[0]["isWeekend"])
	})

	suite.T().Run("Explicit range", func(t *testing.T) {
		start := utcDate(2025, 3, 3)
		end := utcDate(2025, 3, 7)
		suite.mockLeave.EXPECT().
			GetLeaveDates(gomock.Any(), "40158994", &start, &end).
			Return([]calendar.DayStatus{}, nil)

		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/v6/leave/dates?startDate=2025-03-03&endDate=2025-03-07T10:00:00Z", nil)
		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	suite.T().Run("Invalid startDate", func(t *testing.T) {
		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/v6/leave/dates?startDate=yesterday", nil)
		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "Invalid startDate format")
	})

	suite.T().Run("Invalid endDate", func(t *testing.T) {
		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/v6/leave/dates?endDate=2025-02-30", nil)
		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "Invalid endDate format")
	})

	suite.T().Run("Inverted range", func(t *testing.T) {
		suite.mockLeave.EXPECT().
			GetLeaveDates(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, apperrors.ErrInvalidRange)

		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/v6/leave/dates?startDate=2025-03-07&endDate=2025-03-03", nil)
		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "startDate must be before or equal to endDate")
	})
}

func (suite *LeaveHandlerTestSuite) TestGetTeamLeave() {
	suite.T().Run("Success", func(t *testing.T) {
		day := utcDate(2025, 3, 4)
		suite.mockLeave.EXPECT().
			GetTeamLeave(gomock.Any(), &day, &day).
			Return([]calendar.TeamDayRoster{{
				Date: calendar.NewDay(day),
				Entries: []calendar.TeamEntry{
					{SubjectID: "1", Handle: "ann", DisplayName: "Ann Lee", Status: models.LeaveStatusLeave},
					{SubjectID: calendar.CompanyHolidaySubjectID, Handle: "Holi", DisplayName: "Holi", Status: models.LeaveStatusCompanyHoliday},
				},
			}}, nil)

		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/v6/leave/team?startDate=2025-03-04&endDate=2025-03-04", nil)

		var response []map[string]interface{}
		testutils.AssertJSONResponse(t, recorder, http.StatusOK, &response)
		require.Len(t, response, 1)
		entries, ok := response[0]["usersOnLeave"].([]interface{})
		require.True(t, ok)
		require.Len(t, entries, 2)
		assert.Equal(t, "wipro-holiday", entries[1].(map[string]interface{})["userId"])
		assert.Equal(t, "WIPRO_HOLIDAY", entries[1].(map[string]interface{})["status"])
	})

	suite.T().Run("Service error", func(t *testing.T) {
		suite.mockLeave.EXPECT().
			GetTeamLeave(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, apperrors.NewPersistenceError("load team leave", fmt.Errorf("timeout")))

		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/v6/leave/team", nil)
		assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	})
}

func (suite *LeaveHandlerTestSuite) TestCompanyHolidays() {
	suite.T().Run("Create", func(t *testing.T) {
		name := "Holi"
		suite.mockLeave.EXPECT().
			CreateCompanyHolidays(gomock.Any(), "jdoe", &service.CreateCompanyHolidaysRequest{Dates: []string{"2025-03-14"}, Name: &name}).
			Return(&service.CompanyHolidaysResponse{
				Success:  true,
				Holidays: []models.CompanyHoliday{{Date: utcDate(2025, 3, 14), Name: &name}},
			}, nil)

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/v6/leave/wipro-holidays",
			map[string]interface{}{"dates": []string{"2025-03-14"}, "name": "Holi"})

		var response map[string]interface{}
		testutils.AssertJSONResponse(t, recorder, http.StatusOK, &response)
		assert.Equal(t, true, response["success"])
		assert.Len(t, response["holidays"], 1)
	})

	suite.T().Run("Create without dates", func(t *testing.T) {
		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/v6/leave/wipro-holidays", map[string]interface{}{"name": "Holi"})
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	suite.T().Run("List", func(t *testing.T) {
		start := utcDate(2025, 1, 1)
		suite.mockLeave.EXPECT().
			GetCompanyHolidays(gomock.Any(), &start, (*time.Time)(nil)).
			Return([]models.CompanyHoliday{}, nil)

		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/v6/leave/wipro-holidays?startDate=2025-01-01", nil)
		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.JSONEq(t, `[]`, recorder.Body.String())
	})
}

func (suite *LeaveHandlerTestSuite) TestSendSlackTestMessage() {
	suite.T().Run("Default message", func(t *testing.T) {
		suite.mockSlack.EXPECT().SendTestNotification(gomock.Any(), "Hello from the Leave API.").Return(nil)

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/v6/leave/slack/test", nil)
		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	suite.T().Run("Custom message", func(t *testing.T) {
		suite.mockSlack.EXPECT().SendTestNotification(gomock.Any(), "ping").Return(nil)

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/v6/leave/slack/test", map[string]interface{}{"message": "ping"})
		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	suite.T().Run("Not configured", func(t *testing.T) {
		suite.mockSlack.EXPECT().SendTestNotification(gomock.Any(), gomock.Any()).Return(apperrors.ErrSlackNotConfigured)

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/v6/leave/slack/test", nil)
		testutils.AssertErrorResponse(t, recorder, http.StatusServiceUnavailable, "slack is not configured")
	})

	suite.T().Run("Slack API error", func(t *testing.T) {
		suite.mockSlack.EXPECT().SendTestNotification(gomock.Any(), gomock.Any()).
			Return(apperrors.NewUpstreamError("slack", errors.New("slack API error: channel_not_found")))

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/v6/leave/slack/test", nil)
		testutils.AssertErrorResponse(t, recorder, http.StatusBadGateway, "channel_not_found")
	})
}

func TestLeaveHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(LeaveHandlerTestSuite))
}
