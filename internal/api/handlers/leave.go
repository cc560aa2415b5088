package handlers

import (
	"net/http"
	"strings"
	"time"

	"leave-tracker-backend/internal/auth"
	"leave-tracker-backend/internal/calendar"
	apperrors "leave-tracker-backend/internal/errors"
	"leave-tracker-backend/internal/logger"
	"leave-tracker-backend/internal/service"

	"github.com/gin-gonic/gin"
)

const defaultSlackTestMessage = "Hello from the Leave API."

// SlackTestMessageRequest is the optional body of POST /slack/test
type SlackTestMessageRequest struct {
	Message *string `json:"message,omitempty" example:"Hello from the Leave API."`
}

// LeaveHandler handles the leave calendar endpoints
type LeaveHandler struct {
	leaveService service.LeaveServiceInterface
	slackService service.SlackServiceInterface
}

// NewLeaveHandler creates a new leave handler
func NewLeaveHandler(leaveService service.LeaveServiceInterface, slackService service.SlackServiceInterface) *LeaveHandler {
	return &LeaveHandler{
		leaveService: leaveService,
		slackService: slackService,
	}
}

// SetLeaveDates handles POST and PATCH /dates
// @Summary Set leave dates for authenticated user
// @Description Creates or updates the caller's status on each date. AVAILABLE clears a previous leave.
// @Tags leave
// @Accept json
// @Produce json
// @Param body body service.SetLeaveDatesRequest true "Dates and status"
// @Success 200 {object} service.SetLeaveDatesResponse "Leave dates successfully created or updated"
// @Failure 400 {object} map[string]interface{} "Invalid date format or status"
// @Failure 401 {object} map[string]interface{} "Unauthorized"
// @Failure 403 {object} map[string]interface{} "Forbidden"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /dates [post]
// @Router /dates [patch]
func (h *LeaveHandler) SetLeaveDates(c *gin.Context) {
	var req service.SetLeaveDatesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID, _ := auth.GetUserID(c)
	resp, err := h.leaveService.SetLeaveDates(c.Request.Context(), userID, auth.GetActor(c), &req)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetLeaveDates handles GET /dates
// @Summary Get leave calendar for authenticated user
// @Description One entry per day of the range, merging personal records, company holidays and weekends. Defaults to the current UTC month.
// @Tags leave
// @Produce json
// @Param startDate query string false "Range start (ISO-8601)"
// @Param endDate query string false "Range end (ISO-8601)"
// @Success 200 {array} calendar.DayStatus "Leave calendar"
// @Failure 400 {object} map[string]interface{} "Invalid date format"
// @Failure 401 {object} map[string]interface{} "Unauthorized"
// @Failure 403 {object} map[string]interface{} "Forbidden"
// @Security BearerAuth
// @Router /dates [get]
func (h *LeaveHandler) GetLeaveDates(c *gin.Context) {
	start, end, ok := parseDateRange(c)
	if !ok {
		return
	}

	userID, _ := auth.GetUserID(c)
	days, err := h.leaveService.GetLeaveDates(c.Request.Context(), userID, start, end)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, days)
}

// GetTeamLeave handles GET /team
// @Summary Get leave calendar for all team members
// @Description Days with at least one absence. Company holidays appear as synthetic entries with userId "wipro-holiday" and status WIPRO_HOLIDAY.
// @Tags leave
// @Produce json
// @Param startDate query string false "Range start (ISO-8601)"
// @Param endDate query string false "Range end (ISO-8601)"
// @Success 200 {array} calendar.TeamDayRoster "Team leave calendar"
// @Failure 400 {object} map[string]interface{} "Invalid date format"
// @Failure 401 {object} map[string]interface{} "Unauthorized"
// @Failure 403 {object} map[string]interface{} "Forbidden"
// @Security BearerAuth
// @Router /team [get]
func (h *LeaveHandler) GetTeamLeave(c *gin.Context) {
	start, end, ok := parseDateRange(c)
	if !ok {
		return
	}

	rosters, err := h.leaveService.GetTeamLeave(c.Request.Context(), start, end)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, rosters)
}

// CreateCompanyHolidays handles POST /wipro-holidays
// @Summary Configure Wipro holiday dates (Admin only)
// @Tags holidays
// @Accept json
// @Produce json
// @Param body body service.CreateCompanyHolidaysRequest true "Holiday dates and optional name"
// @Success 200 {object} service.CompanyHolidaysResponse "Wipro holidays configured"
// @Failure 400 {object} map[string]interface{} "Invalid date format"
// @Failure 401 {object} map[string]interface{} "Unauthorized"
// @Failure 403 {object} map[string]interface{} "Only administrators can manage Wipro holidays"
// @Security BearerAuth
// @Router /wipro-holidays [post]
func (h *LeaveHandler) CreateCompanyHolidays(c *gin.Context) {
	var req service.CreateCompanyHolidaysRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.leaveService.CreateCompanyHolidays(c.Request.Context(), auth.GetActor(c), &req)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetCompanyHolidays handles GET /wipro-holidays
// @Summary List Wipro holidays in a range
// @Tags holidays
// @Produce json
// @Param startDate query string false "Range start (ISO-8601)"
// @Param endDate query string false "Range end (ISO-8601)"
// @Success 200 {array} models.CompanyHoliday "Configured holidays"
// @Failure 400 {object} map[string]interface{} "Invalid date format"
// @Security BearerAuth
// @Router /wipro-holidays [get]
func (h *LeaveHandler) GetCompanyHolidays(c *gin.Context) {
	start, end, ok := parseDateRange(c)
	if !ok {
		return
	}

	holidays, err := h.leaveService.GetCompanyHolidays(c.Request.Context(), start, end)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, holidays)
}

// SendSlackTestMessage handles POST /slack/test
// @Summary Send a test Slack notification (Admin only)
// @Tags notifications
// @Accept json
// @Produce json
// @Param body body SlackTestMessageRequest false "Optional message"
// @Success 200 {object} map[string]interface{} "Message sent"
// @Failure 502 {object} map[string]interface{} "Slack rejected the message"
// @Failure 503 {object} map[string]interface{} "Slack is not configured"
// @Security BearerAuth
// @Router /slack/test [post]
func (h *LeaveHandler) SendSlackTestMessage(c *gin.Context) {
	var req SlackTestMessageRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	message := defaultSlackTestMessage
	if req.Message != nil && strings.TrimSpace(*req.Message) != "" {
		message = *req.Message
	}

	if err := h.slackService.SendTestNotification(c.Request.Context(), message); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": message})
}

// parseDateRange reads the optional startDate/endDate query parameters,
// writing a 400 response and returning false when either is malformed.
func parseDateRange(c *gin.Context) (*time.Time, *time.Time, bool) {
	start, err := parseOptionalDay(c.Query("startDate"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid startDate format"})
		return nil, nil, false
	}
	end, err := parseOptionalDay(c.Query("endDate"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid endDate format"})
		return nil, nil, false
	}
	return start, end, true
}

func parseOptionalDay(raw string) (*time.Time, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}
	day, err := calendar.ParseDay(raw)
	if err != nil {
		return nil, err
	}
	return &day, nil
}

// writeError maps service errors onto HTTP status codes
func writeError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case apperrors.IsValidation(err):
		status = http.StatusBadRequest
	case apperrors.IsAuthentication(err):
		status = http.StatusUnauthorized
	case apperrors.IsAuthorization(err):
		status = http.StatusForbidden
	case apperrors.IsNotFound(err):
		status = http.StatusNotFound
	case apperrors.IsConfiguration(err):
		status = http.StatusServiceUnavailable
	case apperrors.IsUpstream(err):
		status = http.StatusBadGateway
	}

	if status >= http.StatusInternalServerError {
		logger.WithContext(c.Request.Context()).WithError(err).Errorf("%s %s failed", c.Request.Method, c.FullPath())
	}
	c.JSON(status, gin.H{"error": err.Error()})
}
