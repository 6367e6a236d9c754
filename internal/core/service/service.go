package service

import (
	"context"
	"errors"
	"sync"

	"auctionhouse/internal/core/domain"
	"auctionhouse/internal/core/port"
	"go.uber.org/zap"
)

// Parameters holds the house-level settlement terms. Premium and commission
// are percentages of the hammer price; the house account is the middle stop
// of every two-leg settlement.
type Parameters struct {
	BuyerPremium  float64
	Commission    float64
	HouseAccount  string
	HouseAuthCode string
}

// AuctionHouse implements port.AuctionHouse over a repository and the two
// external collaborators. Mutating lifecycle operations are serialized behind
// one mutex so bid arbitration and the close-auction reserve check always
// observe a consistent highest bid.
type AuctionHouse struct {
	repo      port.Repository
	messaging port.MessagingService
	banking   port.BankingService
	params    Parameters
	logger    *zap.Logger

	mu sync.Mutex
}

func NewAuctionHouse(
	repo port.Repository,
	messaging port.MessagingService,
	banking port.BankingService,
	params Parameters,
	logger *zap.Logger,
) (*AuctionHouse, error) {
	return &AuctionHouse{
		repo:      repo,
		messaging: messaging,
		banking:   banking,
		params:    params,
		logger:    logger,
	}, nil
}

func (h *AuctionHouse) RegisterBuyer(ctx context.Context, name, address, account, authCode string) error {
	h.logger.Info("register buyer", zap.String("name", name))

	buyer := &domain.Buyer{
		Contact:  domain.Contact{Name: name, Address: address},
		Account:  account,
		AuthCode: authCode,
	}
	if err := h.repo.CreateBuyer(ctx, buyer); err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return domain.ErrDuplicateParticipant
		}
		h.logger.Error("create buyer", zap.Error(err))
		return err
	}
	return nil
}

func (h *AuctionHouse) RegisterSeller(ctx context.Context, name, address, account string) error {
	h.logger.Info("register seller", zap.String("name", name))

	seller := &domain.Seller{
		Contact: domain.Contact{Name: name, Address: address},
		Account: account,
	}
	if err := h.repo.CreateSeller(ctx, seller); err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return domain.ErrDuplicateParticipant
		}
		h.logger.Error("create seller", zap.Error(err))
		return err
	}
	return nil
}

func (h *AuctionHouse) AddLot(ctx context.Context, sellerName string, number int, description string, reservePrice domain.Money) error {
	h.logger.Info("add lot",
		zap.String("seller", sellerName),
		zap.Int("lot", number),
		zap.Stringer("reserve", reservePrice))

	if _, err := h.repo.GetSeller(ctx, sellerName); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrUnknownSeller
		}
		h.logger.Error("get seller", zap.Error(err))
		return err
	}

	if err := h.repo.CreateLot(ctx, domain.NewLot(sellerName, number, description, reservePrice)); err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return domain.ErrDuplicateLot
		}
		h.logger.Error("create lot", zap.Error(err))
		return err
	}
	return nil
}

func (h *AuctionHouse) ViewCatalogue(ctx context.Context) ([]domain.CatalogueEntry, error) {
	entries, err := h.repo.ListCatalogue(ctx)
	if err != nil {
		h.logger.Error("list catalogue", zap.Error(err))
		return nil, err
	}
	return entries, nil
}

func (h *AuctionHouse) NoteInterest(ctx context.Context, buyerName string, lotNumber int) error {
	h.logger.Info("note interest", zap.String("buyer", buyerName), zap.Int("lot", lotNumber))

	_, err := h.repo.UpdateLot(ctx, lotNumber, func(l *domain.Lot) error {
		l.NoteInterest(buyerName)
		return nil
	})
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrUnknownLot
		}
		h.logger.Error("update lot", zap.Error(err))
		return err
	}
	return nil
}

func (h *AuctionHouse) OpenAuction(ctx context.Context, auctioneerName, auctioneerAddress string, lotNumber int) error {
	h.logger.Info("open auction", zap.String("auctioneer", auctioneerName), zap.Int("lot", lotNumber))

	h.mu.Lock()
	defer h.mu.Unlock()

	auctioneer := domain.Auctioneer{
		Contact: domain.Contact{Name: auctioneerName, Address: auctioneerAddress},
	}
	lot, err := h.repo.UpdateLot(ctx, lotNumber, func(l *domain.Lot) error {
		return l.Open(auctioneer)
	})
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrUnknownLot
		}
		return err
	}

	h.notifyOpened(ctx, lot)
	return nil
}

func (h *AuctionHouse) MakeBid(ctx context.Context, buyerName string, lotNumber int, bid domain.Money) error {
	h.logger.Info("make bid",
		zap.String("buyer", buyerName),
		zap.Int("lot", lotNumber),
		zap.Stringer("bid", bid))

	h.mu.Lock()
	defer h.mu.Unlock()

	lot, err := h.repo.UpdateLot(ctx, lotNumber, func(l *domain.Lot) error {
		return l.PlaceBid(buyerName, bid)
	})
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrUnknownLot
		}
		return err
	}

	h.notifyBidAccepted(ctx, lot, buyerName, bid)
	return nil
}
