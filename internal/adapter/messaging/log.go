package messaging

import (
	"context"

	"auctionhouse/internal/core/domain"
	"go.uber.org/zap"
)

// LogNotifier is a MessagingService that emits every notification through the
// logger. It never reports anything back to the caller.
type LogNotifier struct {
	logger *zap.Logger
}

func NewLogNotifier(logger *zap.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

func (n *LogNotifier) AuctionOpened(_ context.Context, address string, lotNumber int) {
	n.logger.Info("auction opened",
		zap.String("to", address),
		zap.Int("lot", lotNumber))
}

func (n *LogNotifier) BidAccepted(_ context.Context, address string, lotNumber int, amount domain.Money) {
	n.logger.Info("bid accepted",
		zap.String("to", address),
		zap.Int("lot", lotNumber),
		zap.Stringer("amount", amount))
}

func (n *LogNotifier) LotSold(_ context.Context, address string, lotNumber int) {
	n.logger.Info("lot sold",
		zap.String("to", address),
		zap.Int("lot", lotNumber))
}

func (n *LogNotifier) LotUnsold(_ context.Context, address string, lotNumber int) {
	n.logger.Info("lot unsold",
		zap.String("to", address),
		zap.Int("lot", lotNumber))
}
