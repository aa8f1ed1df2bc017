package handler

import (
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/shizuku355/suiquest-jp/internal/service"
	"github.com/shizuku355/suiquest-jp/pkg/logger"
	"github.com/shizuku355/suiquest-jp/pkg/response"
)

// WalletHandler serves per-address holdings
type WalletHandler struct {
	wallets service.WalletService
}

func NewWalletHandler(wallets service.WalletService) *WalletHandler {
	return &WalletHandler{wallets: wallets}
}

// normalizeAddress lowercases the path address; the ledger stores
// addresses in lower case
func normalizeAddress(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

// ListPasses handles GET /api/v1/wallets/:address/passes
func (h *WalletHandler) ListPasses(c *gin.Context) {
	address := normalizeAddress(c.Param("address"))
	if address == "" {
		response.BadRequest(c, "address is required")
		return
	}

	passes, err := h.wallets.ListPasses(c.Request.Context(), address)
	if err != nil {
		logger.Get().Error("failed to list passes", zap.String("address", address), zap.Error(err))
		response.BadGateway(c, "failed to read passes from the ledger")
		return
	}
	response.Success(c, passes)
}

// GetBalance handles GET /api/v1/wallets/:address/balance
func (h *WalletHandler) GetBalance(c *gin.Context) {
	address := normalizeAddress(c.Param("address"))
	if address == "" {
		response.BadRequest(c, "address is required")
		return
	}

	balance, err := h.wallets.GetBalance(c.Request.Context(), address)
	if err != nil {
		logger.Get().Error("failed to get balance", zap.String("address", address), zap.Error(err))
		response.BadGateway(c, "failed to read balance from the ledger")
		return
	}
	response.Success(c, balance)
}
