package service

import (
	"context"

	"github.com/shopspring/decimal"

	"transferservice/internal/repository"
)

// Mock rates provider
type mockRatesProvider struct {
	getRateFunc func(ctx context.Context, sell, buy string) (decimal.Decimal, error)
}

func (m *mockRatesProvider) GetRate(ctx context.Context, sell, buy string) (decimal.Decimal, error) {
	return m.getRateFunc(ctx, sell, buy)
}

// Mock quote repository
type mockQuoteRepo struct {
	insertFunc  func(ctx context.Context, q *repository.Quote) error
	getByIDFunc func(ctx context.Context, id string) (*repository.Quote, error)
}

func (m *mockQuoteRepo) Insert(ctx context.Context, q *repository.Quote) error {
	return m.insertFunc(ctx, q)
}

func (m *mockQuoteRepo) GetByID(ctx context.Context, id string) (*repository.Quote, error) {
	return m.getByIDFunc(ctx, id)
}

// Mock party repository
type mockPartyRepo struct {
	getPayerFunc       func(ctx context.Context, id string) (*repository.Payer, error)
	getRecipientFunc   func(ctx context.Context, accountNumber, bankCode, bankName string) (*repository.Recipient, error)
	insertPayerFunc    func(ctx context.Context, p *repository.Payer) error
	insertRecipientFnc func(ctx context.Context, r *repository.Recipient) error
}

func (m *mockPartyRepo) GetPayerByID(ctx context.Context, id string) (*repository.Payer, error) {
	return m.getPayerFunc(ctx, id)
}

func (m *mockPartyRepo) GetRecipientByBankAccount(ctx context.Context, accountNumber, bankCode, bankName string) (*repository.Recipient, error) {
	return m.getRecipientFunc(ctx, accountNumber, bankCode, bankName)
}

func (m *mockPartyRepo) InsertPayer(ctx context.Context, p *repository.Payer) error {
	return m.insertPayerFunc(ctx, p)
}

func (m *mockPartyRepo) InsertRecipient(ctx context.Context, r *repository.Recipient) error {
	return m.insertRecipientFnc(ctx, r)
}

// Mock transfer repository
type mockTransferRepo struct {
	insertFunc       func(ctx context.Context, t *repository.Transfer) error
	getByIDFunc      func(ctx context.Context, id string) (*repository.Transfer, error)
	getDetailFunc    func(ctx context.Context, id string) (*repository.TransferDetail, error)
	updateStatusFunc func(ctx context.Context, id string, from, to repository.TransferStatus) error
}

func (m *mockTransferRepo) Insert(ctx context.Context, t *repository.Transfer) error {
	return m.insertFunc(ctx, t)
}

func (m *mockTransferRepo) GetByID(ctx context.Context, id string) (*repository.Transfer, error) {
	return m.getByIDFunc(ctx, id)
}

func (m *mockTransferRepo) GetDetailByID(ctx context.Context, id string) (*repository.TransferDetail, error) {
	return m.getDetailFunc(ctx, id)
}

func (m *mockTransferRepo) UpdateStatus(ctx context.Context, id string, from, to repository.TransferStatus) error {
	return m.updateStatusFunc(ctx, id, from, to)
}
