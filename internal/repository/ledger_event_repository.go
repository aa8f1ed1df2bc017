package repository

import (
	"context"
	"fmt"

	"golang.org/x/sync/singleflight"

	"github.com/shizuku355/suiquest-jp/internal/domain"
	"github.com/shizuku355/suiquest-jp/internal/projection"
	"github.com/shizuku355/suiquest-jp/pkg/logger"

	"go.uber.org/zap"
)

// LedgerEventRepository projects events straight from the ledger:
// creation notifications give the object ids, a batch object lookup
// gives the live state. Concurrent List calls share one ledger
// roundtrip via singleflight.
type LedgerEventRepository struct {
	client     LedgerClient
	packageID  string
	queryLimit int
	group      singleflight.Group
}

func NewLedgerEventRepository(client LedgerClient, packageID string, queryLimit int) *LedgerEventRepository {
	return &LedgerEventRepository{
		client:     client,
		packageID:  packageID,
		queryLimit: queryLimit,
	}
}

func (r *LedgerEventRepository) eventType() string {
	return fmt.Sprintf("%s::core::EventCreated", r.packageID)
}

func (r *LedgerEventRepository) List(ctx context.Context) ([]*domain.Event, error) {
	v, err, _ := r.group.Do("events", func() (interface{}, error) {
		return r.load(ctx)
	})
	if err != nil {
		return nil, err
	}
	return v.([]*domain.Event), nil
}

func (r *LedgerEventRepository) load(ctx context.Context) ([]*domain.Event, error) {
	notifications, err := r.client.QueryEventNotifications(ctx, r.eventType(), r.queryLimit)
	if err != nil {
		return nil, fmt.Errorf("query event notifications: %w", err)
	}

	ids := projection.EventIDs(notifications)
	if len(ids) == 0 {
		return []*domain.Event{}, nil
	}

	objects, err := r.client.MultiGetObjects(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("multi get objects: %w", err)
	}

	events := projection.Events(objects)
	logger.Get().Debug("projected events from ledger",
		zap.Int("notifications", len(notifications)),
		zap.Int("events", len(events)),
	)
	return events, nil
}

func (r *LedgerEventRepository) GetBySlug(ctx context.Context, slug string) (*domain.Event, error) {
	events, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, e := range events {
		if e.Slug == slug {
			return e, nil
		}
	}
	return nil, nil
}

func (r *LedgerEventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	events, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, e := range events {
		if e.ID == id {
			return e, nil
		}
	}
	return nil, nil
}

// Invalidate is a no-op: the ledger repository holds no state
func (r *LedgerEventRepository) Invalidate(ctx context.Context) error {
	return nil
}
