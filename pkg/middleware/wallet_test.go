package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func setupWalletRouter(walletCfg *WalletConfig, adminCfg *AdminConfig) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(WalletAddress(walletCfg))

	router.GET("/whoami", func(c *gin.Context) {
		addr, _ := GetWalletAddress(c)
		c.String(http.StatusOK, addr)
	})

	if adminCfg != nil {
		admin := router.Group("/admin")
		admin.Use(RequireAdmin(adminCfg))
		admin.GET("/ping", func(c *gin.Context) {
			c.String(http.StatusOK, "pong")
		})
	}
	return router
}

func TestWalletAddress_Normalizes(t *testing.T) {
	router := setupWalletRouter(nil, nil)

	req, _ := http.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set(WalletAddressHeader, "  0xABCdef01  ")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Body.String() != "0xabcdef01" {
		t.Errorf("address = %q, want %q", resp.Body.String(), "0xabcdef01")
	}
}

func TestWalletAddress_RequiredRejectsMissing(t *testing.T) {
	router := setupWalletRouter(&WalletConfig{Required: true}, nil)

	req, _ := http.NewRequest(http.MethodGet, "/whoami", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", resp.Code, http.StatusUnauthorized)
	}
}

func TestRequireAdmin(t *testing.T) {
	adminCfg := &AdminConfig{Addresses: []string{"0xF6BBc8c1"}}
	router := setupWalletRouter(nil, adminCfg)

	tests := []struct {
		name       string
		address    string
		wantStatus int
	}{
		{
			name:       "allowlisted address, different case",
			address:    "0xf6bbC8C1",
			wantStatus: http.StatusOK,
		},
		{
			name:       "unknown address",
			address:    "0xdeadbeef",
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "missing address",
			address:    "",
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, _ := http.NewRequest(http.MethodGet, "/admin/ping", nil)
			if tt.address != "" {
				req.Header.Set(WalletAddressHeader, tt.address)
			}
			resp := httptest.NewRecorder()
			router.ServeHTTP(resp, req)

			if resp.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", resp.Code, tt.wantStatus)
			}
		})
	}
}
