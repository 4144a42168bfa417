package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/tableset/catering-api/internal/service"
	appErrors "github.com/tableset/catering-api/pkg/errors"
	"github.com/tableset/catering-api/pkg/response"
)

// AvailabilityHandler wires template and override editing to HTTP routes.
type AvailabilityHandler struct {
	availability *service.AvailabilityService
}

// NewAvailabilityHandler constructs a new AvailabilityHandler.
func NewAvailabilityHandler(availability *service.AvailabilityService) *AvailabilityHandler {
	return &AvailabilityHandler{availability: availability}
}

// Get godoc
// @Summary Get a chef's weekly templates and date overrides
// @Tags Availability
// @Produce json
// @Param id path string true "Chef ID"
// @Param from query string false "Range start (YYYY-MM-DD), default today"
// @Param to query string false "Range end (YYYY-MM-DD), default +60 days"
// @Success 200 {object} response.Envelope
// @Router /chefs/{id}/availability [get]
func (h *AvailabilityHandler) Get(c *gin.Context) {
	now := time.Now().UTC()
	from := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, 60)
	if raw := c.Query("from"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid from date, expected YYYY-MM-DD"))
			return
		}
		from = parsed
	}
	if raw := c.Query("to"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid to date, expected YYYY-MM-DD"))
			return
		}
		to = parsed
	}

	availability, err := h.availability.Get(c.Request.Context(), c.Param("id"), from, to)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, availability, nil)
}

// ReplaceWeek godoc
// @Summary Replace a chef's full weekly template set
// @Tags Availability
// @Accept json
// @Produce json
// @Param id path string true "Chef ID"
// @Param payload body service.ReplaceWeekRequest true "Seven day entries"
// @Success 200 {object} response.Envelope
// @Router /chefs/{id}/availability/week [put]
func (h *AvailabilityHandler) ReplaceWeek(c *gin.Context) {
	var req service.ReplaceWeekRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid week payload"))
		return
	}
	templates, err := h.availability.ReplaceWeek(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, templates, nil)
}

// ToggleSlot godoc
// @Summary Toggle one slot on one date
// @Description Creates or updates a full-day override seeded from the
// @Description currently resolved state, with the named slot flipped.
// @Tags Availability
// @Accept json
// @Produce json
// @Param id path string true "Chef ID"
// @Param payload body service.ToggleSlotRequest true "Date and slot"
// @Success 200 {object} response.Envelope
// @Router /chefs/{id}/availability/toggle [post]
func (h *AvailabilityHandler) ToggleSlot(c *gin.Context) {
	var req service.ToggleSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid toggle payload"))
		return
	}
	override, err := h.availability.ToggleSlot(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, override, nil)
}

// UpsertOverride godoc
// @Summary Create or replace a date override
// @Tags Availability
// @Accept json
// @Produce json
// @Param id path string true "Chef ID"
// @Param payload body service.UpsertOverrideRequest true "Override payload"
// @Success 200 {object} response.Envelope
// @Router /chefs/{id}/availability/overrides [put]
func (h *AvailabilityHandler) UpsertOverride(c *gin.Context) {
	var req service.UpsertOverrideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid override payload"))
		return
	}
	override, err := h.availability.UpsertOverride(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, override, nil)
}

// DeleteOverride godoc
// @Summary Delete a date override, reverting the date to its template
// @Tags Availability
// @Param id path string true "Chef ID"
// @Param date path string true "Date (YYYY-MM-DD)"
// @Success 204
// @Router /chefs/{id}/availability/overrides/{date} [delete]
func (h *AvailabilityHandler) DeleteOverride(c *gin.Context) {
	if err := h.availability.DeleteOverride(c.Request.Context(), c.Param("id"), c.Param("date")); err != nil {
		response.Error(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
