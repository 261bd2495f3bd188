package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"sdp-site.backend/internal/domain/entities"
	domainerrors "sdp-site.backend/internal/domain/errors"
	"sdp-site.backend/internal/domain/repositories"
	"sdp-site.backend/internal/domain/seed"
	"sdp-site.backend/internal/interfaces/http/response"
	"sdp-site.backend/pkg/logger"
)

// EventHandler handles event endpoints
type EventHandler struct {
	eventRepo repositories.EventRepository
	now       func() time.Time
}

// NewEventHandler creates a new event handler
func NewEventHandler(eventRepo repositories.EventRepository) *EventHandler {
	return &EventHandler{eventRepo: eventRepo, now: time.Now}
}

// List handles the public events listing. Only future events are returned,
// soonest first. When the store is unreachable the fixed fallback listing is
// served instead, flagged via the X-Fallback-Data header.
// GET /api/events
func (h *EventHandler) List(c *gin.Context) {
	events, err := h.eventRepo.ListUpcoming(c.Request.Context(), h.now())
	if err != nil {
		logger.Warn(c.Request.Context(), "events listing degraded to fallback data", zap.Error(err))
		c.Header(FallbackHeader, "true")
		response.Success(c, http.StatusOK, seed.Events())
		return
	}
	if events == nil {
		events = []*entities.Event{}
	}
	response.Success(c, http.StatusOK, events)
}

// Get handles fetching a single event.
// GET /api/events/:id
func (h *EventHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	event, err := h.eventRepo.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			response.Error(c, domainerrors.NotFound("event not found"))
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, event)
}

// Create handles event creation.
// POST /api/events
func (h *EventHandler) Create(c *gin.Context) {
	var input entities.EventInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	date, err := input.ParseDate()
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid date format"))
		return
	}

	event := &entities.Event{
		Title:       input.Title,
		Description: input.Description,
		Date:        date,
		Time:        input.Time,
		Location:    input.Location,
		Category:    input.Category,
	}
	if err := h.eventRepo.Create(c.Request.Context(), event); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, event)
}

// Update handles full replacement of an event.
// PUT /api/events/:id
func (h *EventHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var input entities.EventInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	date, err := input.ParseDate()
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid date format"))
		return
	}

	event := &entities.Event{
		ID:          id,
		Title:       input.Title,
		Description: input.Description,
		Date:        date,
		Time:        input.Time,
		Location:    input.Location,
		Category:    input.Category,
	}
	if err := h.eventRepo.Update(c.Request.Context(), event); err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			response.Error(c, domainerrors.NotFound("event not found"))
			return
		}
		response.Error(c, err)
		return
	}

	updated, err := h.eventRepo.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, updated)
}

// Delete handles event deletion.
// DELETE /api/events/:id
func (h *EventHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.eventRepo.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			response.Error(c, domainerrors.NotFound("event not found"))
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"success": true})
}
