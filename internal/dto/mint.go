package dto

import (
	"strings"

	"github.com/shizuku355/suiquest-jp/internal/domain"
)

// MintRequest is the caller's attempt to mint a pass for an event
type MintRequest struct {
	Password string `json:"password"`
}

// MoveCall describes one unsigned contract call the caller's wallet
// must build and sign. The service never holds keys and never submits
// on the caller's behalf.
type MoveCall struct {
	PackageID string   `json:"package_id"`
	Module    string   `json:"module"`
	Function  string   `json:"function"`
	Arguments []string `json:"arguments"`
}

// MintResponse carries the eligibility outcome and, when eligible, the
// unsigned call payload for the wallet
type MintResponse struct {
	Eligible bool      `json:"eligible"`
	Reason   string    `json:"reason"`
	Call     *MoveCall `json:"call,omitempty"`
}

// RelayRequest carries a wallet-signed transaction for submission
type RelayRequest struct {
	TxBytes   string `json:"tx_bytes" binding:"required"`
	Signature string `json:"signature" binding:"required"`
}

// Validate validates the relay request
func (r *RelayRequest) Validate() (bool, string) {
	if strings.TrimSpace(r.TxBytes) == "" {
		return false, "tx_bytes is required"
	}
	if strings.TrimSpace(r.Signature) == "" {
		return false, "signature is required"
	}
	return true, ""
}

// RelayResponse reports the executed transaction
type RelayResponse struct {
	Digest string `json:"digest"`
	Status string `json:"status"`
}

// PassResponse is the public view of a minted pass
type PassResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	ImageURL    string `json:"image_url,omitempty"`
	MintedAtMs  int64  `json:"minted_at_ms"`
}

// NewPassListResponse builds response views for a holder's passes
func NewPassListResponse(passes []*domain.Pass) []*PassResponse {
	out := make([]*PassResponse, 0, len(passes))
	for _, p := range passes {
		out = append(out, &PassResponse{
			ID:          p.ID,
			Name:        p.Name,
			Description: p.Description,
			ImageURL:    p.ImageURL,
			MintedAtMs:  p.MintedAtMs,
		})
	}
	return out
}

// BalanceResponse is an address's base-coin balance. Display is the
// human unit with nine decimal places.
type BalanceResponse struct {
	CoinType     string `json:"coin_type"`
	TotalBalance string `json:"total_balance"`
	Display      string `json:"display"`
}
