package port

import (
	"context"

	"auctionhouse/internal/core/domain"
)

// MessagingService delivers lifecycle notifications to a participant address.
// Delivery is fire-and-forget: the core never learns whether a notification
// arrived and a delivery problem must not roll back the transition that
// triggered it.
type MessagingService interface {
	AuctionOpened(ctx context.Context, address string, lotNumber int)
	BidAccepted(ctx context.Context, address string, lotNumber int, amount domain.Money)
	LotSold(ctx context.Context, address string, lotNumber int)
	LotUnsold(ctx context.Context, address string, lotNumber int)
}
