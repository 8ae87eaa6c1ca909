package handlers

import (
	"net/http"
	"time"

	"household-ledger/internal/dto"
	"household-ledger/internal/errors"
	"household-ledger/internal/ledger"
	"household-ledger/internal/models"
	"household-ledger/internal/services"

	"github.com/labstack/echo/v4"
)

// summaryDateLayout matches the dashboard's bare calendar dates
const summaryDateLayout = "2006-01-02"

// DashboardHandler serves the derived dashboard view
type DashboardHandler struct {
	dashboardService services.DashboardServiceInterface
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboardService services.DashboardServiceInterface) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
	}
}

// GetSummary returns aggregates and the filtered, grouped transaction list
// @Summary Get dashboard summary
// @Description Derive monthly and daily totals plus the filtered, month-grouped transaction list for a user
// @Tags Transactions
// @Produce json
// @Param user_id query string false "User ID (defaults to anonymous)"
// @Param search query string false "Case-insensitive substring match on description and category"
// @Param month query string false "Month key (e.g. 2024-6) or all"
// @Param date query string false "Day filter (YYYY-MM-DD); narrows month to the day's month"
// @Success 200 {object} dto.GetDashboardResponse "Derived dashboard view"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_004 - Invalid month or date parameter"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /transactions/summary [get]
func (h *DashboardHandler) GetSummary(c echo.Context) error {
	userID := c.QueryParam("user_id")
	if userID == "" {
		userID = models.AnonymousUserID
	}

	state := ledger.FilterState{
		Search: c.QueryParam("search"),
	}

	if monthStr := c.QueryParam("month"); monthStr != "" {
		key, err := ledger.ParseMonthKey(monthStr)
		if err != nil {
			return SendError(c, errors.ValidationInvalidDate, errors.WithMessage("Invalid month, use YYYY-M or all"))
		}
		state.SelectMonth(key)
	}

	// Day selection last: it narrows the month to the day's month.
	if dateStr := c.QueryParam("date"); dateStr != "" {
		day, err := time.Parse(summaryDateLayout, dateStr)
		if err != nil {
			return SendError(c, errors.ValidationInvalidDate, errors.WithMessage("Invalid date, use YYYY-MM-DD"))
		}
		state.SelectDay(day)
	}

	view, err := h.dashboardService.GetDashboard(userID, state, time.Now().UTC())
	if err != nil {
		return SendQueryError(c, err)
	}

	return c.JSON(http.StatusOK, dto.GetDashboardResponse{
		Data: dto.NewDashboardViewResponse(view),
	})
}
