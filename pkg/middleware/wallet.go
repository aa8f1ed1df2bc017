package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shizuku355/suiquest-jp/pkg/response"
)

const (
	// WalletAddressHeader carries the caller's connected wallet address.
	// Wallets sign client-side; the service only needs the identity.
	WalletAddressHeader = "X-Wallet-Address"

	// ContextKeyWalletAddress is the gin context key for the caller address
	ContextKeyWalletAddress = "wallet_address"
)

// WalletConfig holds wallet identification settings
type WalletConfig struct {
	// Required rejects requests without an address when true
	Required bool
}

// WalletAddress extracts the caller's wallet address into the context.
// Addresses are lower-cased once here so every downstream comparison
// sees one canonical form.
func WalletAddress(cfg *WalletConfig) gin.HandlerFunc {
	required := cfg != nil && cfg.Required

	return func(c *gin.Context) {
		addr := strings.ToLower(strings.TrimSpace(c.GetHeader(WalletAddressHeader)))
		if addr == "" && required {
			response.Unauthorized(c, "Wallet address is required")
			c.Abort()
			return
		}
		if addr != "" {
			c.Set(ContextKeyWalletAddress, addr)
		}
		c.Next()
	}
}

// GetWalletAddress returns the caller address set by WalletAddress
func GetWalletAddress(c *gin.Context) (string, bool) {
	addr, ok := c.Get(ContextKeyWalletAddress)
	if !ok {
		return "", false
	}
	s, ok := addr.(string)
	return s, ok && s != ""
}

// AdminConfig holds the administrator allowlist for management routes
type AdminConfig struct {
	// Addresses is the injected allowlist; entries are normalized to
	// lower case at construction time
	Addresses []string
}

// RequireAdmin gates a route group to allowlisted wallet addresses.
// Both the allowlist and the connected address are compared lower-cased.
func RequireAdmin(cfg *AdminConfig) gin.HandlerFunc {
	allowed := make(map[string]struct{}, len(cfg.Addresses))
	for _, addr := range cfg.Addresses {
		addr = strings.ToLower(strings.TrimSpace(addr))
		if addr != "" {
			allowed[addr] = struct{}{}
		}
	}

	return func(c *gin.Context) {
		addr, ok := GetWalletAddress(c)
		if !ok {
			response.Unauthorized(c, "Wallet address is required")
			c.Abort()
			return
		}
		if _, ok := allowed[addr]; !ok {
			response.Forbidden(c, "Address is not an administrator")
			c.Abort()
			return
		}
		c.Next()
	}
}
