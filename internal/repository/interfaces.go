package repository

import (
	"context"

	"github.com/shizuku355/suiquest-jp/internal/domain"
	"github.com/shizuku355/suiquest-jp/internal/ledger"
)

// EventRepository defines read access to projected events. There is no
// write path: events change only through ledger transactions, and the
// projection is re-derived on the next read.
type EventRepository interface {
	// List returns all projected events in first-seen notification order
	List(ctx context.Context) ([]*domain.Event, error)
	// GetBySlug retrieves an event by slug; nil when absent
	GetBySlug(ctx context.Context, slug string) (*domain.Event, error)
	// GetByID retrieves an event by object id; nil when absent
	GetByID(ctx context.Context, id string) (*domain.Event, error)
	// Invalidate drops any cached projection so the next read hits the ledger
	Invalidate(ctx context.Context) error
}

// PassRepository defines read access to minted passes
type PassRepository interface {
	// ListByHolder returns passes owned by the given address
	ListByHolder(ctx context.Context, holder string) ([]*domain.Pass, error)
}

// LedgerClient is the slice of the ledger API the repositories consume
type LedgerClient interface {
	QueryEventNotifications(ctx context.Context, eventType string, limit int) ([]ledger.EventNotification, error)
	MultiGetObjects(ctx context.Context, ids []string) ([]ledger.ObjectResult, error)
	GetOwnedObjects(ctx context.Context, owner, structType string) ([]ledger.ObjectResult, error)
}
