package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"nathanbeddoewebdev/hirectl/internal/domain"
)

// Balance returns the current credit balance.
func (c *Client) Balance(ctx context.Context) (*domain.CreditBalance, error) {
	var b domain.CreditBalance
	if err := c.getJSON(ctx, "/credits/balance", nil, &b); err != nil {
		return nil, fmt.Errorf("get credit balance: %w", err)
	}
	return &b, nil
}

// Transactions returns the most recent ledger entries.
func (c *Client) Transactions(ctx context.Context, limit int) ([]domain.CreditTransaction, error) {
	v := url.Values{}
	if limit > 0 {
		v.Set("limit", strconv.Itoa(limit))
	}
	var out []domain.CreditTransaction
	if err := c.getJSON(ctx, "/credits/transactions", v, &out); err != nil {
		return nil, fmt.Errorf("list credit transactions: %w", err)
	}
	return out, nil
}

// Purchase buys a credit package and returns the new balance.
func (c *Client) Purchase(ctx context.Context, p domain.Purchase) (*domain.CreditBalance, error) {
	var b domain.CreditBalance
	if err := c.sendJSON(ctx, http.MethodPost, "/credits/purchase", p, &b); err != nil {
		return nil, fmt.Errorf("purchase credits: %w", err)
	}
	return &b, nil
}
