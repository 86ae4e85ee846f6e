package handler

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/progress-analytics-api/internal/models"
	appErrors "github.com/noah-isme/progress-analytics-api/pkg/errors"
	"github.com/noah-isme/progress-analytics-api/pkg/response"
)

type eventService interface {
	Handle(ctx context.Context, event models.ProgressEvent) error
}

// EventHandler receives data-change events from the platform event bus
// bridge and triggers cache invalidation.
type EventHandler struct {
	service eventService
}

// NewEventHandler constructs the handler.
func NewEventHandler(service eventService) *EventHandler {
	return &EventHandler{service: service}
}

// Ingest godoc
// @Summary Apply a grade- or completion-affecting domain event
// @Tags Events
// @Accept json
// @Success 204
// @Router /internal/progress-events [post]
func (h *EventHandler) Ingest(c *gin.Context) {
	if h.service == nil {
		response.Error(c, appErrors.ErrInternal)
		return
	}

	var event models.ProgressEvent
	if err := c.ShouldBindJSON(&event); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "malformed event payload"))
		return
	}

	if err := h.service.Handle(c.Request.Context(), event); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}
