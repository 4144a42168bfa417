package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tableset/catering-api/internal/service"
	appErrors "github.com/tableset/catering-api/pkg/errors"
	"github.com/tableset/catering-api/pkg/response"
)

// CalendarHandler serves computed calendar grids.
type CalendarHandler struct {
	calendars *service.CalendarService
}

// NewCalendarHandler constructs a new CalendarHandler.
func NewCalendarHandler(calendars *service.CalendarService) *CalendarHandler {
	return &CalendarHandler{calendars: calendars}
}

// ChefCalendar godoc
// @Summary Get a chef's week or month calendar
// @Tags Calendar
// @Produce json
// @Param id path string true "Chef ID"
// @Param view query string false "View mode (week/month), default week"
// @Param date query string false "Reference date (YYYY-MM-DD), default today"
// @Success 200 {object} response.Envelope
// @Router /chefs/{id}/calendar [get]
func (h *CalendarHandler) ChefCalendar(c *gin.Context) {
	calendar, err := h.calendars.GetChefCalendar(c.Request.Context(), service.CalendarRequest{
		ChefID: c.Param("id"),
		View:   c.Query("view"),
		Date:   c.Query("date"),
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, calendar, nil)
}

// StationCalendar godoc
// @Summary Get calendars for every active chef of a station
// @Tags Calendar
// @Produce json
// @Param station_id query string true "Station ID"
// @Param view query string false "View mode (week/month), default week"
// @Param date query string false "Reference date (YYYY-MM-DD), default today"
// @Success 200 {object} response.Envelope
// @Router /calendar [get]
func (h *CalendarHandler) StationCalendar(c *gin.Context) {
	stationID := c.Query("station_id")
	if stationID == "" {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "station_id is required"))
		return
	}
	calendar, err := h.calendars.GetStationCalendar(c.Request.Context(), stationID, service.CalendarRequest{
		View: c.Query("view"),
		Date: c.Query("date"),
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, calendar, nil)
}
