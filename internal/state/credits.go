package state

import (
	"context"

	"nathanbeddoewebdev/hirectl/internal/domain"
)

// CreditsData is the credit balance and recent ledger.
type CreditsData struct {
	Balance      *domain.CreditBalance
	Transactions []domain.CreditTransaction
}

// CreditsSlice tracks billing credits.
type CreditsSlice struct {
	base[CreditsData]
}

// LoadBalance fetches the current balance.
func (c *CreditsSlice) LoadBalance(ctx context.Context) error {
	return run(ctx, &c.base, "balance", c.store.api.Balance, func(d *CreditsData, b *domain.CreditBalance) {
		d.Balance = b
	})
}

// LoadTransactions fetches the most recent ledger entries.
func (c *CreditsSlice) LoadTransactions(ctx context.Context, limit int) error {
	return run(ctx, &c.base, "transactions", func(ctx context.Context) ([]domain.CreditTransaction, error) {
		return c.store.api.Transactions(ctx, limit)
	}, func(d *CreditsData, txs []domain.CreditTransaction) {
		d.Transactions = txs
	})
}

// Purchase buys credits and stores the new balance.
func (c *CreditsSlice) Purchase(ctx context.Context, p domain.Purchase) error {
	return run(ctx, &c.base, "purchase", func(ctx context.Context) (*domain.CreditBalance, error) {
		return c.store.api.Purchase(ctx, p)
	}, func(d *CreditsData, b *domain.CreditBalance) {
		d.Balance = b
	})
}
