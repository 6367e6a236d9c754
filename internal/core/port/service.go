package port

import (
	"context"

	"auctionhouse/internal/core/domain"
)

// SaleOutcome is the result of closing an auction. It is distinct from the
// error taxonomy: a close that reaches settlement is a processed request even
// when the funds only partially moved.
type SaleOutcome string

const (
	OutcomeSale               SaleOutcome = "SALE"
	OutcomeSalePendingPayment SaleOutcome = "SALE_PENDING_PAYMENT"
	OutcomeNoSale             SaleOutcome = "NO_SALE"
)

type AuctionHouse interface {
	RegisterBuyer(ctx context.Context, name, address, account, authCode string) error
	RegisterSeller(ctx context.Context, name, address, account string) error

	AddLot(ctx context.Context, sellerName string, number int, description string, reservePrice domain.Money) error
	ViewCatalogue(ctx context.Context) ([]domain.CatalogueEntry, error)
	NoteInterest(ctx context.Context, buyerName string, lotNumber int) error

	OpenAuction(ctx context.Context, auctioneerName, auctioneerAddress string, lotNumber int) error
	MakeBid(ctx context.Context, buyerName string, lotNumber int, bid domain.Money) error
	CloseAuction(ctx context.Context, auctioneerName string, lotNumber int) (SaleOutcome, error)
}
