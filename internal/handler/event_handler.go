package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/shizuku355/suiquest-jp/internal/domain"
	"github.com/shizuku355/suiquest-jp/internal/service"
	"github.com/shizuku355/suiquest-jp/pkg/logger"
	"github.com/shizuku355/suiquest-jp/pkg/response"
)

// EventHandler serves the public event catalogue
type EventHandler struct {
	events service.EventService
}

func NewEventHandler(events service.EventService) *EventHandler {
	return &EventHandler{events: events}
}

// ListEvents handles GET /api/v1/events
func (h *EventHandler) ListEvents(c *gin.Context) {
	events, err := h.events.ListEvents(c.Request.Context())
	if err != nil {
		logger.Get().Error("failed to list events", zap.Error(err))
		response.BadGateway(c, "failed to read events from the ledger")
		return
	}
	response.Success(c, events)
}

// GetEvent handles GET /api/v1/events/:slug
func (h *EventHandler) GetEvent(c *gin.Context) {
	slug := c.Param("slug")
	if slug == "" {
		response.BadRequest(c, "slug is required")
		return
	}

	event, err := h.events.GetEvent(c.Request.Context(), slug)
	if err != nil {
		if errors.Is(err, domain.ErrEventNotFound) {
			response.NotFound(c, "event not found")
			return
		}
		logger.Get().Error("failed to get event", zap.String("slug", slug), zap.Error(err))
		response.BadGateway(c, "failed to read event from the ledger")
		return
	}
	response.Success(c, event)
}
