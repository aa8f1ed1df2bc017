package service

import (
	"context"

	"github.com/shizuku355/suiquest-jp/internal/dto"
	"github.com/shizuku355/suiquest-jp/internal/ledger"
)

// EventService exposes the public event catalogue
type EventService interface {
	// ListEvents returns all events with their current display status
	ListEvents(ctx context.Context) ([]*dto.EventResponse, error)
	// GetEvent returns one event by slug
	GetEvent(ctx context.Context, slug string) (*dto.EventResponse, error)
}

// MintService evaluates mint eligibility and relays signed transactions
type MintService interface {
	// PrepareMint checks eligibility and returns the unsigned call payload
	PrepareMint(ctx context.Context, slug, caller, password string) (*dto.MintResponse, error)
	// RelayTransaction submits a wallet-signed transaction to the ledger
	RelayTransaction(ctx context.Context, caller string, req *dto.RelayRequest) (*dto.RelayResponse, error)
}

// WalletService exposes per-address holdings
type WalletService interface {
	// ListPasses returns the passes owned by an address
	ListPasses(ctx context.Context, address string) ([]*dto.PassResponse, error)
	// GetBalance returns the base-coin balance of an address
	GetBalance(ctx context.Context, address string) (*dto.BalanceResponse, error)
}

// AdminService builds unsigned admin calls for event management
type AdminService interface {
	// PrepareCreateEvent validates and returns the event creation call
	PrepareCreateEvent(ctx context.Context, req *dto.CreateEventRequest) (*dto.MoveCall, error)
	// PrepareUpdateEvent validates and returns the detail update call
	PrepareUpdateEvent(ctx context.Context, eventID string, req *dto.UpdateEventRequest) (*dto.MoveCall, error)
}

// TransactionRelay is the slice of the ledger API used for submission
type TransactionRelay interface {
	ExecuteTransaction(ctx context.Context, txBytes, signature string) (*ledger.TransactionResult, error)
}

// BalanceReader is the slice of the ledger API used for balances
type BalanceReader interface {
	GetBalance(ctx context.Context, owner string) (*ledger.Balance, error)
}

// ActivityPublisher emits mint activity records to the message bus
type ActivityPublisher interface {
	ProduceJSON(ctx context.Context, topic, key string, value interface{}, headers map[string]string) error
}
