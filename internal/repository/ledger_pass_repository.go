package repository

import (
	"context"
	"fmt"

	"github.com/shizuku355/suiquest-jp/internal/domain"
	"github.com/shizuku355/suiquest-jp/internal/projection"
)

// LedgerPassRepository reads minted passes from a holder's owned objects
type LedgerPassRepository struct {
	client   LedgerClient
	passType string
}

func NewLedgerPassRepository(client LedgerClient, passType string) *LedgerPassRepository {
	return &LedgerPassRepository{
		client:   client,
		passType: passType,
	}
}

func (r *LedgerPassRepository) ListByHolder(ctx context.Context, holder string) ([]*domain.Pass, error) {
	objects, err := r.client.GetOwnedObjects(ctx, holder, r.passType)
	if err != nil {
		return nil, fmt.Errorf("get owned objects: %w", err)
	}
	return projection.Passes(objects, holder), nil
}
