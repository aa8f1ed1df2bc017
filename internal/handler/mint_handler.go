package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/shizuku355/suiquest-jp/internal/domain"
	"github.com/shizuku355/suiquest-jp/internal/dto"
	"github.com/shizuku355/suiquest-jp/internal/eligibility"
	"github.com/shizuku355/suiquest-jp/internal/service"
	"github.com/shizuku355/suiquest-jp/pkg/logger"
	"github.com/shizuku355/suiquest-jp/pkg/middleware"
	"github.com/shizuku355/suiquest-jp/pkg/response"
)

// MintHandler serves mint preparation and transaction relay
type MintHandler struct {
	mint service.MintService
}

func NewMintHandler(mint service.MintService) *MintHandler {
	return &MintHandler{mint: mint}
}

// denialStatus maps an eligibility denial to an HTTP status code
func denialStatus(reason eligibility.Reason) int {
	switch reason {
	case eligibility.ReasonPasswordRequired:
		return http.StatusBadRequest
	case eligibility.ReasonPasswordInvalid:
		return http.StatusForbidden
	case eligibility.ReasonNotConfigured:
		return http.StatusPreconditionFailed
	default:
		// NOT_STARTED, ENDED, SOLD_OUT: the event state conflicts
		// with the request
		return http.StatusConflict
	}
}

// PrepareMint handles POST /api/v1/events/:slug/mint
func (h *MintHandler) PrepareMint(c *gin.Context) {
	slug := c.Param("slug")

	var req dto.MintRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			response.BadRequest(c, "invalid request body")
			return
		}
	}

	caller, _ := middleware.GetWalletAddress(c)

	result, err := h.mint.PrepareMint(c.Request.Context(), slug, caller, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrEventNotFound) {
			response.NotFound(c, "event not found")
			return
		}
		logger.Get().Error("mint preparation failed", zap.String("slug", slug), zap.Error(err))
		response.BadGateway(c, "failed to read event from the ledger")
		return
	}

	if !result.Eligible {
		reason := eligibility.Reason(result.Reason)
		msg := "mint is not allowed"
		if derr := reason.Err(); derr != nil {
			msg = derr.Error()
		}
		response.Error(c, denialStatus(reason), result.Reason, msg, "")
		return
	}
	response.Success(c, result)
}

// RelayTransaction handles POST /api/v1/transactions
func (h *MintHandler) RelayTransaction(c *gin.Context) {
	var req dto.RelayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	if ok, msg := req.Validate(); !ok {
		response.BadRequest(c, msg)
		return
	}

	caller, _ := middleware.GetWalletAddress(c)

	result, err := h.mint.RelayTransaction(c.Request.Context(), caller, &req)
	if err != nil {
		logger.Get().Error("transaction relay failed", zap.Error(err))
		response.BadGateway(c, "transaction execution failed")
		return
	}
	response.Success(c, result)
}
