package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/shizuku355/suiquest-jp/internal/dto"
)

type stubWalletService struct {
	passes     []*dto.PassResponse
	passesErr  error
	balance    *dto.BalanceResponse
	balanceErr error

	gotAddress string
}

func (s *stubWalletService) ListPasses(ctx context.Context, address string) ([]*dto.PassResponse, error) {
	s.gotAddress = address
	return s.passes, s.passesErr
}

func (s *stubWalletService) GetBalance(ctx context.Context, address string) (*dto.BalanceResponse, error) {
	s.gotAddress = address
	return s.balance, s.balanceErr
}

func walletRouter(svc *stubWalletService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	h := NewWalletHandler(svc)
	router.GET("/api/v1/wallets/:address/passes", h.ListPasses)
	router.GET("/api/v1/wallets/:address/balance", h.GetBalance)
	return router
}

func TestListPassesHandler(t *testing.T) {
	svc := &stubWalletService{
		passes: []*dto.PassResponse{{ID: "0xpass", Name: "Tokyo Pass"}},
	}
	router := walletRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/wallets/0xHOLDER/passes", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if svc.gotAddress != "0xholder" {
		t.Errorf("expected lowercased address, got %q", svc.gotAddress)
	}

	var resp struct {
		Data []*dto.PassResponse `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid body: %v", err)
	}
	if len(resp.Data) != 1 || resp.Data[0].ID != "0xpass" {
		t.Errorf("unexpected body: %s", w.Body.String())
	}
}

func TestGetBalanceHandler(t *testing.T) {
	svc := &stubWalletService{
		balance: &dto.BalanceResponse{CoinType: "0x2::sui::SUI", TotalBalance: "1500000000", Display: "1.500000000"},
	}
	router := walletRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/wallets/0xholder/balance", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestGetBalanceUpstreamError(t *testing.T) {
	svc := &stubWalletService{balanceErr: errors.New("rpc unavailable")}
	router := walletRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/wallets/0xholder/balance", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadGateway {
		t.Errorf("expected 502, got %d", w.Code)
	}
}
