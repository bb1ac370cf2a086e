package provider

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

type MockProvider struct {
	mock.Mock
}

func (m *MockProvider) GetRate(ctx context.Context, sellCurrency, buyCurrency string) (decimal.Decimal, error) {
	args := m.Called(ctx, sellCurrency, buyCurrency)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}
