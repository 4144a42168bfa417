package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tableset/catering-api/internal/service"
	appErrors "github.com/tableset/catering-api/pkg/errors"
	"github.com/tableset/catering-api/pkg/response"
)

// AssignmentHandler applies chef assignments to bookings.
type AssignmentHandler struct {
	assignments *service.AssignmentService
}

// NewAssignmentHandler constructs a new AssignmentHandler.
func NewAssignmentHandler(assignments *service.AssignmentService) *AssignmentHandler {
	return &AssignmentHandler{assignments: assignments}
}

// Assign godoc
// @Summary Assign or unassign a chef on a booking
// @Description A null chef_id unassigns the booking's current chef.
// @Tags Bookings
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param payload body service.AssignRequest true "Candidate chef"
// @Success 200 {object} response.Envelope
// @Router /bookings/{id}/assign [post]
func (h *AssignmentHandler) Assign(c *gin.Context) {
	var req service.AssignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid assignment payload"))
		return
	}
	booking, err := h.assignments.Assign(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, booking, nil)
}
