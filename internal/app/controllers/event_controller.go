package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/alumeee/alumniconnect/internal/app/models/dto"
	"github.com/alumeee/alumniconnect/internal/app/services"
	"github.com/alumeee/alumniconnect/internal/middleware"
	"github.com/alumeee/alumniconnect/internal/pkg/helpers"
)

// EventController handles campus events
type EventController struct {
	eventService *services.EventService
	logger       zerolog.Logger
}

// NewEventController creates a new EventController
func NewEventController(eventService *services.EventService, logger zerolog.Logger) *EventController {
	return &EventController{
		eventService: eventService,
		logger:       logger,
	}
}

// Create announces an event
// @Summary Announce an event
// @Description Creates an event; the end date must not come before the start date
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateEventRequest true "Event information"
// @Success 201 {object} dto.APIResponse{data=dto.EventResponse} "Created event"
// @Failure 400 {object} dto.ErrorResponse "Validation error or bad date range"
// @Router /admin/events [post]
func (c *EventController) Create(ctx *gin.Context) {
	userID, _ := middleware.GetUserID(ctx)

	var req dto.CreateEventRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	event, err := c.eventService.Create(ctx.Request.Context(), userID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{Data: event})
}

// List returns events
// @Summary List events
// @Description Lists events soonest first; pass upcoming=true to hide ended events
// @Tags events
// @Produce json
// @Security BearerAuth
// @Param upcoming query bool false "Only events that have not ended"
// @Param page query int false "Page number"
// @Param pageSize query int false "Page size"
// @Success 200 {object} dto.APIResponse{data=dto.EventListResponse} "Events"
// @Router /events [get]
func (c *EventController) List(ctx *gin.Context) {
	page, size := helpers.ParsePaginationParams(ctx)
	upcomingOnly := ctx.Query("upcoming") == "true"

	events, err := c.eventService.List(ctx.Request.Context(), upcomingOnly, page, size)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: events})
}

// Get returns a single event
// @Summary Event detail
// @Tags events
// @Produce json
// @Security BearerAuth
// @Param id path int true "Event ID"
// @Success 200 {object} dto.APIResponse{data=dto.EventResponse} "Event"
// @Failure 404 {object} dto.ErrorResponse "Event not found"
// @Router /events/{id} [get]
func (c *EventController) Get(ctx *gin.Context) {
	eventID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	event, err := c.eventService.Get(ctx.Request.Context(), eventID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: event})
}

// Delete removes an event
// @Summary Delete an event
// @Tags events
// @Produce json
// @Security BearerAuth
// @Param id path int true "Event ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Deleted"
// @Failure 404 {object} dto.ErrorResponse "Event not found"
// @Router /admin/events/{id} [delete]
func (c *EventController) Delete(ctx *gin.Context) {
	eventID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.eventService.Delete(ctx.Request.Context(), eventID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Int64("eventID", eventID).Msg("Event deleted")
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: dto.SuccessResponse{Message: "event deleted"}})
}
