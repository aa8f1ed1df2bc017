package service

import (
	"context"
	"fmt"
	"strconv"

	"github.com/shizuku355/suiquest-jp/internal/dto"
	"github.com/shizuku355/suiquest-jp/internal/repository"
)

// Base-coin decimal places
const coinDecimals = 9

type walletService struct {
	passes   repository.PassRepository
	balances BalanceReader
}

// NewWalletService creates the per-address holdings service
func NewWalletService(passes repository.PassRepository, balances BalanceReader) WalletService {
	return &walletService{
		passes:   passes,
		balances: balances,
	}
}

func (s *walletService) ListPasses(ctx context.Context, address string) ([]*dto.PassResponse, error) {
	passes, err := s.passes.ListByHolder(ctx, address)
	if err != nil {
		return nil, err
	}
	return dto.NewPassListResponse(passes), nil
}

func (s *walletService) GetBalance(ctx context.Context, address string) (*dto.BalanceResponse, error) {
	balance, err := s.balances.GetBalance(ctx, address)
	if err != nil {
		return nil, err
	}
	return &dto.BalanceResponse{
		CoinType:     balance.CoinType,
		TotalBalance: balance.TotalBalance,
		Display:      formatBaseUnits(balance.TotalBalance),
	}, nil
}

// formatBaseUnits renders a base-unit decimal string in whole-coin
// units with nine fractional digits. Unparseable input renders as zero.
func formatBaseUnits(raw string) string {
	units, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return "0.000000000"
	}

	divisor := uint64(1)
	for i := 0; i < coinDecimals; i++ {
		divisor *= 10
	}
	return fmt.Sprintf("%d.%09d", units/divisor, units%divisor)
}
