package controllers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/uynm/backend/internal/app/models/dto"
	"github.com/uynm/backend/internal/app/services"
	"github.com/uynm/backend/internal/middleware"
)

// EventController handles event and event registration endpoints
type EventController struct {
	eventService *services.EventService
}

// NewEventController creates a new EventController
func NewEventController(eventService *services.EventService) *EventController {
	return &EventController{
		eventService: eventService,
	}
}

func parseEventID(ctx *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid event ID").WithField("id")))
		return 0, false
	}
	return id, true
}

// CreateEvent stores a new event
func (c *EventController) CreateEvent(ctx *gin.Context) {
	var req dto.CreateEventRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewValidationErrorResponse(dto.HandleValidationErrors(err)))
		return
	}

	event, err := c.eventService.Create(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(event, "Event created successfully"))
}

// ListEvents returns events ordered by date. With ?upcoming=true only events
// that have not happened yet are included.
func (c *EventController) ListEvents(ctx *gin.Context) {
	upcomingOnly := ctx.Query("upcoming") == "true"

	events, err := c.eventService.List(ctx, upcomingOnly)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(events, "Events retrieved successfully"))
}

// GetEvent returns a single event
func (c *EventController) GetEvent(ctx *gin.Context) {
	id, ok := parseEventID(ctx)
	if !ok {
		return
	}

	event, err := c.eventService.Get(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(event, "Event retrieved successfully"))
}

// UpdateEvent replaces an event's fields
func (c *EventController) UpdateEvent(ctx *gin.Context) {
	id, ok := parseEventID(ctx)
	if !ok {
		return
	}

	var req dto.UpdateEventRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewValidationErrorResponse(dto.HandleValidationErrors(err)))
		return
	}

	event, err := c.eventService.Update(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(event, "Event updated successfully"))
}

// DeleteEvent removes an event and its registrations
func (c *EventController) DeleteEvent(ctx *gin.Context) {
	id, ok := parseEventID(ctx)
	if !ok {
		return
	}

	if err := c.eventService.Delete(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Event deleted successfully"))
}

// RegisterForEvent records a public registration for an event
func (c *EventController) RegisterForEvent(ctx *gin.Context) {
	id, ok := parseEventID(ctx)
	if !ok {
		return
	}

	var req dto.RegisterForEventRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewValidationErrorResponse(dto.HandleValidationErrors(err)))
		return
	}

	reg, event, err := c.eventService.Register(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	message := fmt.Sprintf("You are registered for %s! See you at the event.", event.Title)
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(reg, message))
}

// ListRegistrations returns the registrations for an event
func (c *EventController) ListRegistrations(ctx *gin.Context) {
	id, ok := parseEventID(ctx)
	if !ok {
		return
	}

	regs, err := c.eventService.ListRegistrations(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(regs, "Registrations retrieved successfully"))
}
