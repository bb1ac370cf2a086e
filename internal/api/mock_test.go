package api

import (
	"context"

	"github.com/shopspring/decimal"

	"transferservice/internal/repository"
	"transferservice/internal/service"
)

type mockQuoteService struct {
	createQuoteFunc func(ctx context.Context, sell, buy string, amount decimal.Decimal) (*service.QuoteResult, error)
	getQuoteFunc    func(ctx context.Context, quoteID string) (*service.QuoteResult, error)
}

func (m *mockQuoteService) CreateQuote(ctx context.Context, sell, buy string, amount decimal.Decimal) (*service.QuoteResult, error) {
	return m.createQuoteFunc(ctx, sell, buy, amount)
}

func (m *mockQuoteService) GetQuote(ctx context.Context, quoteID string) (*service.QuoteResult, error) {
	return m.getQuoteFunc(ctx, quoteID)
}

type mockTransferService struct {
	createTransferFunc func(ctx context.Context, in service.CreateTransferInput) (*service.TransferResult, error)
	getTransferFunc    func(ctx context.Context, transferID string) (*service.TransferResult, error)
	updateStatusFunc   func(ctx context.Context, transferID string, next repository.TransferStatus) error
}

func (m *mockTransferService) CreateTransfer(ctx context.Context, in service.CreateTransferInput) (*service.TransferResult, error) {
	return m.createTransferFunc(ctx, in)
}

func (m *mockTransferService) GetTransfer(ctx context.Context, transferID string) (*service.TransferResult, error) {
	return m.getTransferFunc(ctx, transferID)
}

func (m *mockTransferService) UpdateStatus(ctx context.Context, transferID string, next repository.TransferStatus) error {
	return m.updateStatusFunc(ctx, transferID, next)
}
