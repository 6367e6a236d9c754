package service

import (
	"context"

	"auctionhouse/internal/core/domain"
	"go.uber.org/zap"
)

// Fan-out order is fixed: seller first, then interested buyers in insertion
// order, then the auctioneer last (bid events only). An interested buyer who
// never registered has no deliverable address and is skipped.

func (h *AuctionHouse) fanOut(ctx context.Context, lot *domain.Lot, excludeBuyer string, send func(address string)) {
	seller, err := h.repo.GetSeller(ctx, lot.SellerName)
	if err != nil {
		h.logger.Warn("seller not found for notification",
			zap.String("seller", lot.SellerName), zap.Int("lot", lot.Number))
	} else {
		send(seller.Address)
	}

	for _, name := range lot.InterestedBuyers {
		if name == excludeBuyer {
			continue
		}
		buyer, err := h.repo.GetBuyer(ctx, name)
		if err != nil {
			h.logger.Warn("interested buyer not registered, skipping notification",
				zap.String("buyer", name), zap.Int("lot", lot.Number))
			continue
		}
		send(buyer.Address)
	}
}

func (h *AuctionHouse) notifyOpened(ctx context.Context, lot *domain.Lot) {
	h.fanOut(ctx, lot, "", func(address string) {
		h.logger.Debug("notify auction opened", zap.String("address", address), zap.Int("lot", lot.Number))
		h.messaging.AuctionOpened(ctx, address, lot.Number)
	})
}

func (h *AuctionHouse) notifyBidAccepted(ctx context.Context, lot *domain.Lot, bidder string, amount domain.Money) {
	h.fanOut(ctx, lot, bidder, func(address string) {
		h.logger.Debug("notify bid accepted", zap.String("address", address), zap.Int("lot", lot.Number))
		h.messaging.BidAccepted(ctx, address, lot.Number, amount)
	})

	if lot.Auctioneer != nil {
		h.logger.Debug("notify bid accepted",
			zap.String("address", lot.Auctioneer.Address), zap.Int("lot", lot.Number))
		h.messaging.BidAccepted(ctx, lot.Auctioneer.Address, lot.Number, amount)
	}
}

func (h *AuctionHouse) notifySold(ctx context.Context, lot *domain.Lot) {
	h.fanOut(ctx, lot, "", func(address string) {
		h.logger.Debug("notify lot sold", zap.String("address", address), zap.Int("lot", lot.Number))
		h.messaging.LotSold(ctx, address, lot.Number)
	})
}

func (h *AuctionHouse) notifyUnsold(ctx context.Context, lot *domain.Lot) {
	h.fanOut(ctx, lot, "", func(address string) {
		h.logger.Debug("notify lot unsold", zap.String("address", address), zap.Int("lot", lot.Number))
		h.messaging.LotUnsold(ctx, address, lot.Number)
	})
}
