package banking

import (
	"context"
	"fmt"
	"sync"
	"time"

	"auctionhouse/internal/core/domain"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// LedgerEntry records one executed transfer.
type LedgerEntry struct {
	Reference   string
	FromAccount string
	ToAccount   string
	Amount      domain.Money
	At          time.Time
}

// Ledger is an in-memory BankingService. Every successful transfer is
// appended to a ledger with a unique reference. Accounts can be marked bad to
// make a transfer leg fail, which is how a sale ends up pending payment.
type Ledger struct {
	mu          sync.Mutex
	entries     []LedgerEntry
	badAccounts map[string]struct{}
	logger      *zap.Logger
}

func NewLedger(logger *zap.Logger) *Ledger {
	return &Ledger{
		badAccounts: make(map[string]struct{}),
		logger:      logger,
	}
}

// MarkBadAccount makes every transfer touching the account fail.
func (l *Ledger) MarkBadAccount(account string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.badAccounts[account] = struct{}{}
}

func (l *Ledger) Transfer(_ context.Context, fromAccount, fromAuthCode, toAccount string, amount domain.Money) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if fromAccount == "" || toAccount == "" {
		return fmt.Errorf("transfer of %s: missing account", amount)
	}
	if fromAuthCode == "" {
		return fmt.Errorf("transfer of %s from %s: missing auth code", amount, fromAccount)
	}
	if _, bad := l.badAccounts[fromAccount]; bad {
		return fmt.Errorf("transfer of %s from %s: account rejected", amount, fromAccount)
	}
	if _, bad := l.badAccounts[toAccount]; bad {
		return fmt.Errorf("transfer of %s to %s: account rejected", amount, toAccount)
	}

	entry := LedgerEntry{
		Reference:   uuid.NewString(),
		FromAccount: fromAccount,
		ToAccount:   toAccount,
		Amount:      amount,
		At:          time.Now(),
	}
	l.entries = append(l.entries, entry)

	l.logger.Info("transfer executed",
		zap.String("reference", entry.Reference),
		zap.String("from", fromAccount),
		zap.String("to", toAccount),
		zap.Stringer("amount", amount))
	return nil
}

// Entries returns a copy of the ledger in execution order.
func (l *Ledger) Entries() []LedgerEntry {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]LedgerEntry(nil), l.entries...)
}
