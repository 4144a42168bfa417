package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/tableset/catering-api/internal/models"
	"github.com/tableset/catering-api/internal/service"
	appErrors "github.com/tableset/catering-api/pkg/errors"
	"github.com/tableset/catering-api/pkg/response"
)

// ChefHandler wires the chef roster service to HTTP routes.
type ChefHandler struct {
	chefs *service.ChefService
}

// NewChefHandler constructs a new ChefHandler.
func NewChefHandler(chefs *service.ChefService) *ChefHandler {
	return &ChefHandler{chefs: chefs}
}

// List godoc
// @Summary List chefs
// @Tags Chefs
// @Produce json
// @Param station_id query string false "Filter by station"
// @Param search query string false "Search by name/email"
// @Param active query bool false "Filter by active status"
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} response.Envelope
// @Router /chefs [get]
func (h *ChefHandler) List(c *gin.Context) {
	filter := models.ChefFilter{
		StationID: c.Query("station_id"),
		Search:    strings.TrimSpace(c.Query("search")),
		SortBy:    c.Query("sort"),
		SortOrder: c.Query("order"),
	}
	if active := c.Query("active"); active != "" {
		switch strings.ToLower(active) {
		case "true":
			val := true
			filter.Active = &val
		case "false":
			val := false
			filter.Active = &val
		}
	}
	if page, err := strconv.Atoi(c.DefaultQuery("page", "1")); err == nil {
		filter.Page = page
	}
	if size, err := strconv.Atoi(c.DefaultQuery("limit", "20")); err == nil {
		filter.PageSize = size
	}

	chefs, pagination, err := h.chefs.List(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, chefs, pagination)
}

// Get godoc
// @Summary Get chef detail
// @Tags Chefs
// @Produce json
// @Param id path string true "Chef ID"
// @Success 200 {object} response.Envelope
// @Router /chefs/{id} [get]
func (h *ChefHandler) Get(c *gin.Context) {
	chef, err := h.chefs.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, chef, nil)
}

// Create godoc
// @Summary Create chef
// @Tags Chefs
// @Accept json
// @Produce json
// @Param payload body service.CreateChefRequest true "Chef payload"
// @Success 201 {object} response.Envelope
// @Router /chefs [post]
func (h *ChefHandler) Create(c *gin.Context) {
	var req service.CreateChefRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid chef payload"))
		return
	}
	chef, err := h.chefs.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, chef)
}

// Update godoc
// @Summary Update chef
// @Tags Chefs
// @Accept json
// @Produce json
// @Param id path string true "Chef ID"
// @Param payload body service.UpdateChefRequest true "Chef payload"
// @Success 200 {object} response.Envelope
// @Router /chefs/{id} [put]
func (h *ChefHandler) Update(c *gin.Context) {
	var req service.UpdateChefRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid chef payload"))
		return
	}
	chef, err := h.chefs.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, chef, nil)
}

// Delete godoc
// @Summary Deactivate chef
// @Tags Chefs
// @Param id path string true "Chef ID"
// @Success 204
// @Router /chefs/{id} [delete]
func (h *ChefHandler) Delete(c *gin.Context) {
	if err := h.chefs.Deactivate(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ListStations godoc
// @Summary List stations
// @Tags Stations
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /stations [get]
func (h *ChefHandler) ListStations(c *gin.Context) {
	stations, err := h.chefs.ListStations(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, stations, nil)
}
