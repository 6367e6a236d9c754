package service

import (
	"context"
	"errors"
	"fmt"

	"auctionhouse/internal/core/domain"
	"auctionhouse/internal/core/port"
	"go.uber.org/zap"
)

// CloseAuction closes an open lot. When the highest bid meets the reserve the
// two settlement legs run and the lot ends SOLD on full success or
// SOLD_PENDING_PAYMENT on partial failure; below the reserve the lot returns
// to UNSOLD. The pending case sends no notifications.
func (h *AuctionHouse) CloseAuction(ctx context.Context, auctioneerName string, lotNumber int) (port.SaleOutcome, error) {
	h.logger.Info("close auction", zap.String("auctioneer", auctioneerName), zap.Int("lot", lotNumber))

	h.mu.Lock()
	defer h.mu.Unlock()

	lot, err := h.repo.GetLot(ctx, lotNumber)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", domain.ErrUnknownLot
		}
		h.logger.Error("get lot", zap.Error(err))
		return "", err
	}

	if lot.Status != domain.LotStatusInAuction {
		return "", domain.ErrLotNotOpen
	}
	if lot.Auctioneer == nil || lot.Auctioneer.Name != auctioneerName {
		return "", domain.ErrUnauthorizedAuctioneer
	}

	if !lot.ReserveMet() {
		lot, err = h.repo.UpdateLot(ctx, lotNumber, func(l *domain.Lot) error {
			l.MarkUnsold()
			return nil
		})
		if err != nil {
			return "", err
		}
		h.notifyUnsold(ctx, lot)
		return port.OutcomeNoSale, nil
	}

	settled, err := h.settle(ctx, lot)
	if err != nil {
		return "", err
	}

	if !settled {
		if _, err := h.repo.UpdateLot(ctx, lotNumber, func(l *domain.Lot) error {
			l.MarkPendingPayment()
			return nil
		}); err != nil {
			return "", err
		}
		return port.OutcomeSalePendingPayment, nil
	}

	lot, err = h.repo.UpdateLot(ctx, lotNumber, func(l *domain.Lot) error {
		l.MarkSold()
		return nil
	})
	if err != nil {
		return "", err
	}
	h.notifySold(ctx, lot)
	return port.OutcomeSale, nil
}

// settle runs the two-leg funds movement: buyer pays the hammer price plus
// the buyer premium into the house account, the house pays the hammer price
// less commission out to the seller. Both legs are always attempted and the
// settlement succeeds only when both do. There is no retry and no reversal of
// a leg that already went through.
func (h *AuctionHouse) settle(ctx context.Context, lot *domain.Lot) (bool, error) {
	buyer, err := h.repo.GetBuyer(ctx, lot.HighestBidder)
	if err != nil {
		return false, fmt.Errorf("settle lot %d: highest bidder: %w", lot.Number, err)
	}
	seller, err := h.repo.GetSeller(ctx, lot.SellerName)
	if err != nil {
		return false, fmt.Errorf("settle lot %d: seller: %w", lot.Number, err)
	}

	amountBuyerPays := lot.HighestBid.AddPercent(h.params.BuyerPremium)
	amountSellerReceives := lot.HighestBid.AddPercent(-h.params.Commission)

	h.logger.Info("settlement transfer",
		zap.String("from", buyer.Account),
		zap.String("to", h.params.HouseAccount),
		zap.Stringer("amount", amountBuyerPays))
	buyerLeg := h.banking.Transfer(ctx, buyer.Account, buyer.AuthCode, h.params.HouseAccount, amountBuyerPays)
	if buyerLeg != nil {
		h.logger.Warn("buyer leg failed", zap.Int("lot", lot.Number), zap.Error(buyerLeg))
	}

	h.logger.Info("settlement transfer",
		zap.String("from", h.params.HouseAccount),
		zap.String("to", seller.Account),
		zap.Stringer("amount", amountSellerReceives))
	sellerLeg := h.banking.Transfer(ctx, h.params.HouseAccount, h.params.HouseAuthCode, seller.Account, amountSellerReceives)
	if sellerLeg != nil {
		h.logger.Warn("seller leg failed", zap.Int("lot", lot.Number), zap.Error(sellerLeg))
	}

	return buyerLeg == nil && sellerLeg == nil, nil
}
