package port

import (
	"context"

	"auctionhouse/internal/core/domain"
)

// BankingService executes a single funds transfer between accounts. One
// attempt, no retry: any returned error counts as a failed transfer.
type BankingService interface {
	Transfer(ctx context.Context, fromAccount, fromAuthCode, toAccount string, amount domain.Money) error
}
