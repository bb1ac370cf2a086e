//go:build integration

package integration

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"

	"transferservice/internal/repository"
)

var (
	testDB  *sql.DB
	testRDB *redis.Client
)

// resetTestData truncates all domain tables and flushes the current Redis database.
func resetTestData(t *testing.T) {
	t.Helper()

	_, err := testDB.ExecContext(context.Background(),
		"TRUNCATE TABLE transfers, quotes, payers, recipients CASCADE")
	if err != nil {
		t.Fatalf("failed to truncate tables: %v", err)
	}

	if err := testRDB.FlushDB(context.Background()).Err(); err != nil {
		t.Fatalf("failed to flush redis: %v", err)
	}
}

// testContext returns a context with a 30-second deadline tied to the test's cleanup.
func testContext(t *testing.T) context.Context {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	t.Cleanup(cancel)
	return ctx
}

// seedQuote inserts a quote row and returns it.
func seedQuote(t *testing.T, sell, buy string) *repository.Quote {
	t.Helper()
	ctx := testContext(t)
	repo := repository.NewPostgresQuoteRepository(testDB)

	q := &repository.Quote{
		ID:              uuid.New().String(),
		SellCurrency:    sell,
		BuyCurrency:     buy,
		Amount:          decimal.RequireFromString("1000"),
		OfxRate:         decimal.RequireFromString("55.2225"),
		InverseOfxRate:  decimal.RequireFromString("0.01811"),
		ConvertedAmount: decimal.RequireFromString("55222.50"),
	}
	if err := repo.Insert(ctx, q); err != nil {
		t.Fatalf("seed quote: %v", err)
	}
	return q
}

// seedPayer inserts a payer row and returns it.
func seedPayer(t *testing.T) *repository.Payer {
	t.Helper()
	ctx := testContext(t)
	repo := repository.NewPostgresPartyRepository(testDB)

	p := &repository.Payer{
		ID:             uuid.New().String(),
		Name:           "John Doe",
		TransferReason: "Invoice",
	}
	if err := repo.InsertPayer(ctx, p); err != nil {
		t.Fatalf("seed payer: %v", err)
	}
	return p
}

// seedRecipient inserts a recipient row and returns it.
func seedRecipient(t *testing.T) *repository.Recipient {
	t.Helper()
	ctx := testContext(t)
	repo := repository.NewPostgresPartyRepository(testDB)

	rec := &repository.Recipient{
		ID:            uuid.New().String(),
		Name:          "Maria Garcia",
		AccountNumber: "1234567890",
		BankCode:      "HSBC123",
		BankName:      "HSBC Bank",
	}
	if err := repo.InsertRecipient(ctx, rec); err != nil {
		t.Fatalf("seed recipient: %v", err)
	}
	return rec
}
