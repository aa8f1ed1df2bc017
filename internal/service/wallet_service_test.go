package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/shizuku355/suiquest-jp/internal/domain"
	"github.com/shizuku355/suiquest-jp/internal/ledger"
)

type mockPassRepository struct {
	mock.Mock
}

func (m *mockPassRepository) ListByHolder(ctx context.Context, holder string) ([]*domain.Pass, error) {
	args := m.Called(ctx, holder)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Pass), args.Error(1)
}

type mockBalanceReader struct {
	mock.Mock
}

func (m *mockBalanceReader) GetBalance(ctx context.Context, owner string) (*ledger.Balance, error) {
	args := m.Called(ctx, owner)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ledger.Balance), args.Error(1)
}

func TestListPasses(t *testing.T) {
	passes := new(mockPassRepository)
	passes.On("ListByHolder", mock.Anything, "0xholder").Return([]*domain.Pass{
		{ID: "0xpass", Name: "Tokyo Pass", MintedAtMs: 1700000000000, Holder: "0xholder"},
	}, nil)

	svc := NewWalletService(passes, nil)
	resp, err := svc.ListPasses(context.Background(), "0xholder")

	assert.NoError(t, err)
	assert.Len(t, resp, 1)
	assert.Equal(t, "0xpass", resp[0].ID)
	assert.Equal(t, int64(1700000000000), resp[0].MintedAtMs)
}

func TestGetBalance(t *testing.T) {
	balances := new(mockBalanceReader)
	balances.On("GetBalance", mock.Anything, "0xholder").Return(&ledger.Balance{
		CoinType:     "0x2::sui::SUI",
		TotalBalance: "1500000000",
	}, nil)

	svc := NewWalletService(nil, balances)
	resp, err := svc.GetBalance(context.Background(), "0xholder")

	assert.NoError(t, err)
	assert.Equal(t, "1500000000", resp.TotalBalance)
	assert.Equal(t, "1.500000000", resp.Display)
}

func TestFormatBaseUnits(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{raw: "0", want: "0.000000000"},
		{raw: "1", want: "0.000000001"},
		{raw: "1000000000", want: "1.000000000"},
		{raw: "1234567890123", want: "1234.567890123"},
		{raw: "not-a-number", want: "0.000000000"},
		{raw: "", want: "0.000000000"},
	}

	for _, tt := range tests {
		if got := formatBaseUnits(tt.raw); got != tt.want {
			t.Errorf("formatBaseUnits(%q) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}
