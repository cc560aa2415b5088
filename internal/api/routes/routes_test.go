package routes_test

import (
	"net/http"
	"strings"
	"testing"
	"time"

	"leave-tracker-backend/internal/api/routes"
	"leave-tracker-backend/internal/auth"
	"leave-tracker-backend/internal/calendar"
	"leave-tracker-backend/internal/config"
	"leave-tracker-backend/internal/mocks"
	"leave-tracker-backend/internal/service"
	"leave-tracker-backend/internal/testutils"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const secret = "routes-test-secret"

type routesFixture struct {
	router    *gin.Engine
	mockLeave *mocks.MockLeaveServiceInterface
	mockSlack *mocks.MockSlackServiceInterface
	auth      *auth.AuthService
}

func newFixture(t *testing.T) *routesFixture {
	t.Helper()
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	authService, err := auth.NewAuthService(secret)
	require.NoError(t, err)

	f := &routesFixture{
		mockLeave: mocks.NewMockLeaveServiceInterface(ctrl),
		mockSlack: mocks.NewMockSlackServiceInterface(ctrl),
		auth:      authService,
	}
	cfg := &config.Config{AdminRole: "Administrator", StaffRole: "Topcoder Staff"}
	// routes never touch the database without a health request
	f.router = routes.SetupRoutes(nil, cfg, routes.Dependencies{
		Auth:     authService,
		Leave:    f.mockLeave,
		Slack:    f.mockSlack,
		Registry: prometheus.NewRegistry(),
	})
	return f
}

func (f *routesFixture) token(t *testing.T, roles ...string) string {
	t.Helper()
	token, err := f.auth.GenerateJWT(&auth.AuthClaims{
		UserID: "1",
		Handle: "jdoe",
		Roles:  roles,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	require.NoError(t, err)
	return token
}

func (f *routesFixture) do(method, path string, body interface{}, token string) int {
	httpSuite := &testutils.HTTPTestSuite{Router: f.router}
	var headers map[string]string
	if token != "" {
		headers = testutils.BearerHeader(token)
	}
	return httpSuite.MakeRequestWithHeaders(method, path, body, headers).Code
}

func TestLeaveRoutesRequireAuthentication(t *testing.T) {
	f := newFixture(t)

	for _, path := range []string{"/v6/leave/dates", "/v6/leave/team", "/v6/leave/wipro-holidays"} {
		assert.Equal(t, http.StatusUnauthorized, f.do(http.MethodGet, path, nil, ""), path)
	}
}

func TestStaffCanReadTeamCalendar(t *testing.T) {
	f := newFixture(t)
	f.mockLeave.EXPECT().GetTeamLeave(gomock.Any(), gomock.Any(), gomock.Any()).Return([]calendar.TeamDayRoster{}, nil)

	assert.Equal(t, http.StatusOK, f.do(http.MethodGet, "/v6/leave/team", nil, f.token(t, "Topcoder Staff")))
}

func TestOnlyAdminsManageHolidays(t *testing.T) {
	f := newFixture(t)
	body := map[string]interface{}{"dates": []string{"2025-12-25"}}

	assert.Equal(t, http.StatusForbidden, f.do(http.MethodPost, "/v6/leave/wipro-holidays", body, f.token(t, "Topcoder Staff")))
	assert.Equal(t, http.StatusForbidden, f.do(http.MethodPost, "/v6/leave/slack/test", nil, f.token(t, "Topcoder Staff")))

	f.mockLeave.EXPECT().CreateCompanyHolidays(gomock.Any(), "jdoe", gomock.Any()).
		Return(&service.CompanyHolidaysResponse{Success: true}, nil)
	assert.Equal(t, http.StatusOK, f.do(http.MethodPost, "/v6/leave/wipro-holidays", body, f.token(t, "administrator")))
}

func TestMemberWithoutLeaveRoleIsForbidden(t *testing.T) {
	f := newFixture(t)
	assert.Equal(t, http.StatusForbidden, f.do(http.MethodGet, "/v6/leave/dates", nil, f.token(t, "Topcoder User")))
}

func TestMetricsEndpoint(t *testing.T) {
	f := newFixture(t)
	f.do(http.MethodGet, "/v6/leave/team", nil, "")

	httpSuite := &testutils.HTTPTestSuite{Router: f.router}
	recorder := httpSuite.MakeRequest(http.MethodGet, "/metrics", nil)
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.True(t, strings.Contains(recorder.Body.String(), "leave_http_requests_total"))
}
