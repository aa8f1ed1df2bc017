package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/shizuku355/suiquest-jp/internal/domain"
	"github.com/shizuku355/suiquest-jp/internal/dto"
	"github.com/shizuku355/suiquest-jp/internal/service"
	"github.com/shizuku355/suiquest-jp/pkg/logger"
	"github.com/shizuku355/suiquest-jp/pkg/response"
)

// AdminHandler serves admin event management. The routes sit behind the
// admin allowlist middleware; handlers assume the caller is authorized.
type AdminHandler struct {
	admin service.AdminService
}

func NewAdminHandler(admin service.AdminService) *AdminHandler {
	return &AdminHandler{admin: admin}
}

// CreateEvent handles POST /api/v1/admin/events
func (h *AdminHandler) CreateEvent(c *gin.Context) {
	var req dto.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	if ok, msg := req.Validate(); !ok {
		response.BadRequest(c, msg)
		return
	}

	call, err := h.admin.PrepareCreateEvent(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, domain.ErrSlugTaken) {
			response.Conflict(c, "SLUG_TAKEN", domain.ErrSlugTaken.Error())
			return
		}
		logger.Get().Error("event creation preparation failed", zap.String("slug", req.Slug), zap.Error(err))
		response.BadGateway(c, "failed to read events from the ledger")
		return
	}
	response.Created(c, call)
}

// UpdateEvent handles PUT /api/v1/admin/events/:id
func (h *AdminHandler) UpdateEvent(c *gin.Context) {
	eventID := c.Param("id")
	if eventID == "" {
		response.BadRequest(c, "event id is required")
		return
	}

	var req dto.UpdateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	if ok, msg := req.Validate(); !ok {
		response.BadRequest(c, msg)
		return
	}

	call, err := h.admin.PrepareUpdateEvent(c.Request.Context(), eventID, &req)
	if err != nil {
		if errors.Is(err, domain.ErrEventNotFound) {
			response.NotFound(c, "event not found")
			return
		}
		logger.Get().Error("event update preparation failed", zap.String("event_id", eventID), zap.Error(err))
		response.BadGateway(c, "failed to read event from the ledger")
		return
	}
	response.Success(c, call)
}
