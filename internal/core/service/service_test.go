package service_test

import (
	"context"
	"errors"
	"testing"

	"auctionhouse/internal/adapter/storage/memory"
	"auctionhouse/internal/core/domain"
	"auctionhouse/internal/core/port"
	"auctionhouse/internal/core/port/mock"
	"auctionhouse/internal/core/service"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const (
	buyerPremium = 10.0
	commission   = 15.0
	houseAccount = "AH A/C"
	houseAuth    = "AH-auth"
)

type testHouse struct {
	house     *service.AuctionHouse
	repo      *memory.Storage
	messaging *mock.MockMessagingService
	banking   *mock.MockBankingService
}

func newTestHouse(t *testing.T, ctrl *gomock.Controller) *testHouse {
	t.Helper()

	th := &testHouse{
		repo:      memory.NewStorage(),
		messaging: mock.NewMockMessagingService(ctrl),
		banking:   mock.NewMockBankingService(ctrl),
	}

	house, err := service.NewAuctionHouse(th.repo, th.messaging, th.banking,
		service.Parameters{
			BuyerPremium:  buyerPremium,
			Commission:    commission,
			HouseAccount:  houseAccount,
			HouseAuthCode: houseAuth,
		},
		zap.NewNop())
	require.NoError(t, err)
	th.house = house
	return th
}

// runStory replays the shared scenario up to the requested stage, so tests
// can branch off a known state: two sellers, three lots, three buyers, the
// bicycle opened and bid up to 100.00 against its 80.00 reserve.
func (th *testHouse) runStory(t *testing.T, stage int) {
	t.Helper()
	ctx := context.Background()

	require.NoError(t, th.house.RegisterSeller(ctx, "SellerY", "@SellerY", "SY A/C"))
	require.NoError(t, th.house.RegisterSeller(ctx, "SellerZ", "@SellerZ", "SZ A/C"))
	if stage == 1 {
		return
	}

	require.NoError(t, th.house.AddLot(ctx, "SellerY", 2, "Painting", domain.MustMoney("200.00")))
	require.NoError(t, th.house.AddLot(ctx, "SellerY", 1, "Bicycle", domain.MustMoney("80.00")))
	require.NoError(t, th.house.AddLot(ctx, "SellerZ", 5, "Table", domain.MustMoney("100.00")))
	if stage == 2 {
		return
	}

	require.NoError(t, th.house.RegisterBuyer(ctx, "BuyerA", "@BuyerA", "BA A/C", "BA-auth"))
	require.NoError(t, th.house.RegisterBuyer(ctx, "BuyerB", "@BuyerB", "BB A/C", "BB-auth"))
	require.NoError(t, th.house.RegisterBuyer(ctx, "BuyerC", "@BuyerC", "BC A/C", "BC-auth"))
	if stage == 3 {
		return
	}

	require.NoError(t, th.house.NoteInterest(ctx, "BuyerA", 1))
	require.NoError(t, th.house.NoteInterest(ctx, "BuyerA", 5))
	require.NoError(t, th.house.NoteInterest(ctx, "BuyerB", 1))
	require.NoError(t, th.house.NoteInterest(ctx, "BuyerB", 2))
	if stage == 4 {
		return
	}

	gomock.InOrder(
		th.messaging.EXPECT().AuctionOpened(gomock.Any(), "@SellerY", 1),
		th.messaging.EXPECT().AuctionOpened(gomock.Any(), "@BuyerA", 1),
		th.messaging.EXPECT().AuctionOpened(gomock.Any(), "@BuyerB", 1),
	)
	require.NoError(t, th.house.OpenAuction(ctx, "Auctioneer1", "@Auctioneer1", 1))
	if stage == 5 {
		return
	}

	m70 := domain.MustMoney("70.00")
	gomock.InOrder(
		th.messaging.EXPECT().BidAccepted(gomock.Any(), "@SellerY", 1, m70),
		th.messaging.EXPECT().BidAccepted(gomock.Any(), "@BuyerB", 1, m70),
		th.messaging.EXPECT().BidAccepted(gomock.Any(), "@Auctioneer1", 1, m70),
	)
	require.NoError(t, th.house.MakeBid(ctx, "BuyerA", 1, m70))
	if stage == 6 {
		return
	}

	m100 := domain.MustMoney("100.00")
	gomock.InOrder(
		th.messaging.EXPECT().BidAccepted(gomock.Any(), "@SellerY", 1, m100),
		th.messaging.EXPECT().BidAccepted(gomock.Any(), "@BuyerA", 1, m100),
		th.messaging.EXPECT().BidAccepted(gomock.Any(), "@Auctioneer1", 1, m100),
	)
	require.NoError(t, th.house.MakeBid(ctx, "BuyerB", 1, m100))
}

func lotStatus(t *testing.T, th *testHouse, number int) domain.LotStatus {
	t.Helper()
	lot, err := th.repo.GetLot(context.Background(), number)
	require.NoError(t, err)
	return lot.Status
}

func TestAuctionHouse_RegisterDuplicates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	th := newTestHouse(t, ctrl)
	ctx := context.Background()

	th.runStory(t, 3)

	err := th.house.RegisterSeller(ctx, "SellerY", "@Imposter", "XX A/C")
	assert.ErrorIs(t, err, domain.ErrDuplicateParticipant)

	err = th.house.RegisterBuyer(ctx, "BuyerA", "@Imposter", "XX A/C", "XX-auth")
	assert.ErrorIs(t, err, domain.ErrDuplicateParticipant)
}

func TestAuctionHouse_AddLot(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	th := newTestHouse(t, ctrl)
	ctx := context.Background()

	th.runStory(t, 2)

	err := th.house.AddLot(ctx, "SellerN", 9, "Vase", domain.MustMoney("50.00"))
	assert.ErrorIs(t, err, domain.ErrUnknownSeller)

	err = th.house.AddLot(ctx, "SellerZ", 1, "Clock", domain.MustMoney("60.00"))
	assert.ErrorIs(t, err, domain.ErrDuplicateLot)
}

func TestAuctionHouse_ViewCatalogue(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	th := newTestHouse(t, ctrl)
	ctx := context.Background()

	entries, err := th.house.ViewCatalogue(ctx)
	require.NoError(t, err)
	assert.Empty(t, entries)

	th.runStory(t, 2)

	entries, err = th.house.ViewCatalogue(ctx)
	require.NoError(t, err)
	assert.Equal(t, []domain.CatalogueEntry{
		{Number: 1, Description: "Bicycle", Status: domain.LotStatusUnsold},
		{Number: 2, Description: "Painting", Status: domain.LotStatusUnsold},
		{Number: 5, Description: "Table", Status: domain.LotStatusUnsold},
	}, entries)
}

func TestAuctionHouse_NoteInterest(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	th := newTestHouse(t, ctrl)
	ctx := context.Background()

	th.runStory(t, 3)

	err := th.house.NoteInterest(ctx, "BuyerA", 19)
	assert.ErrorIs(t, err, domain.ErrUnknownLot)

	require.NoError(t, th.house.NoteInterest(ctx, "BuyerA", 1))
	// first interest wins
	require.NoError(t, th.house.NoteInterest(ctx, "BuyerA", 1))

	lot, err := th.repo.GetLot(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"BuyerA"}, lot.InterestedBuyers)
}

func TestAuctionHouse_OpenAuctionErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	th := newTestHouse(t, ctrl)
	ctx := context.Background()

	th.runStory(t, 5)

	err := th.house.OpenAuction(ctx, "Auctioneer1", "@Auctioneer1", 19)
	assert.ErrorIs(t, err, domain.ErrUnknownLot)

	err = th.house.OpenAuction(ctx, "Auctioneer2", "@Auctioneer2", 1)
	assert.ErrorIs(t, err, domain.ErrLotAlreadyOpen)
	assert.Equal(t, domain.LotStatusInAuction, lotStatus(t, th, 1))
}

func TestAuctionHouse_OpenAuctionSkipsUnregisteredBuyer(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	th := newTestHouse(t, ctrl)
	ctx := context.Background()

	th.runStory(t, 4)
	// noteInterest does not validate registration, so a ghost can appear in
	// the interested list; fan-out has no address for them and skips
	require.NoError(t, th.house.NoteInterest(ctx, "Ghost", 1))

	gomock.InOrder(
		th.messaging.EXPECT().AuctionOpened(gomock.Any(), "@SellerY", 1),
		th.messaging.EXPECT().AuctionOpened(gomock.Any(), "@BuyerA", 1),
		th.messaging.EXPECT().AuctionOpened(gomock.Any(), "@BuyerB", 1),
	)
	require.NoError(t, th.house.OpenAuction(ctx, "Auctioneer1", "@Auctioneer1", 1))
}

func TestAuctionHouse_MakeBidErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	th := newTestHouse(t, ctrl)
	ctx := context.Background()

	th.runStory(t, 7)

	tests := []struct {
		name     string
		buyer    string
		lot      int
		bid      string
		expError error
	}{
		{name: "unknown lot", buyer: "BuyerA", lot: 19, bid: "10.00", expError: domain.ErrUnknownLot},
		{name: "lot not opened", buyer: "BuyerB", lot: 2, bid: "300.00", expError: domain.ErrLotNotOpen},
		{name: "buyer not interested", buyer: "BuyerB", lot: 5, bid: "1200.00", expError: domain.ErrBuyerNotInterested},
		{name: "bid equal to highest", buyer: "BuyerA", lot: 1, bid: "100.00", expError: domain.ErrBidTooLow},
		{name: "bid below highest", buyer: "BuyerA", lot: 1, bid: "20.00", expError: domain.ErrBidTooLow},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			// no notification may leave the house for a rejected bid; the
			// strict mocks fail on any unexpected call
			err := th.house.MakeBid(ctx, test.buyer, test.lot, domain.MustMoney(test.bid))
			assert.ErrorIs(t, err, test.expError)
		})
	}

	lot, err := th.repo.GetLot(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, domain.MustMoney("100.00"), lot.HighestBid)
	assert.Equal(t, "BuyerB", lot.HighestBidder)
}

func TestAuctionHouse_CloseAuctionErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	th := newTestHouse(t, ctrl)
	ctx := context.Background()

	th.runStory(t, 7)

	_, err := th.house.CloseAuction(ctx, "Auctioneer1", 19)
	assert.ErrorIs(t, err, domain.ErrUnknownLot)

	_, err = th.house.CloseAuction(ctx, "Auctioneer1", 2)
	assert.ErrorIs(t, err, domain.ErrLotNotOpen)

	_, err = th.house.CloseAuction(ctx, "Auctioneer2", 1)
	assert.ErrorIs(t, err, domain.ErrUnauthorizedAuctioneer)
	assert.Equal(t, domain.LotStatusInAuction, lotStatus(t, th, 1))
}

func TestAuctionHouse_CloseAuctionSale(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	th := newTestHouse(t, ctrl)
	ctx := context.Background()

	th.runStory(t, 7)

	gomock.InOrder(
		th.banking.EXPECT().
			Transfer(gomock.Any(), "BB A/C", "BB-auth", houseAccount, domain.MustMoney("110.00")).
			Return(nil),
		th.banking.EXPECT().
			Transfer(gomock.Any(), houseAccount, houseAuth, "SY A/C", domain.MustMoney("85.00")).
			Return(nil),
	)
	gomock.InOrder(
		th.messaging.EXPECT().LotSold(gomock.Any(), "@SellerY", 1),
		th.messaging.EXPECT().LotSold(gomock.Any(), "@BuyerA", 1),
		th.messaging.EXPECT().LotSold(gomock.Any(), "@BuyerB", 1),
	)

	outcome, err := th.house.CloseAuction(ctx, "Auctioneer1", 1)
	require.NoError(t, err)
	assert.Equal(t, port.OutcomeSale, outcome)
	assert.Equal(t, domain.LotStatusSold, lotStatus(t, th, 1))

	// the lifecycle is over for this lot
	err = th.house.OpenAuction(ctx, "Auctioneer1", "@Auctioneer1", 1)
	assert.ErrorIs(t, err, domain.ErrLotAlreadySold)
	err = th.house.MakeBid(ctx, "BuyerA", 1, domain.MustMoney("500.00"))
	assert.ErrorIs(t, err, domain.ErrLotAlreadySold)
}

func TestAuctionHouse_CloseAuctionSaleAtReserve(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	th := newTestHouse(t, ctrl)
	ctx := context.Background()

	th.runStory(t, 4)

	th.messaging.EXPECT().AuctionOpened(gomock.Any(), "@SellerZ", 5)
	th.messaging.EXPECT().AuctionOpened(gomock.Any(), "@BuyerA", 5)
	require.NoError(t, th.house.OpenAuction(ctx, "Auctioneer2", "@Auctioneer2", 5))

	m100 := domain.MustMoney("100.00")
	th.messaging.EXPECT().BidAccepted(gomock.Any(), "@SellerZ", 5, m100)
	th.messaging.EXPECT().BidAccepted(gomock.Any(), "@Auctioneer2", 5, m100)
	require.NoError(t, th.house.MakeBid(ctx, "BuyerA", 5, m100))

	// a bid equal to the reserve sells
	th.banking.EXPECT().
		Transfer(gomock.Any(), "BA A/C", "BA-auth", houseAccount, domain.MustMoney("110.00")).
		Return(nil)
	th.banking.EXPECT().
		Transfer(gomock.Any(), houseAccount, houseAuth, "SZ A/C", domain.MustMoney("85.00")).
		Return(nil)
	th.messaging.EXPECT().LotSold(gomock.Any(), "@SellerZ", 5)
	th.messaging.EXPECT().LotSold(gomock.Any(), "@BuyerA", 5)

	outcome, err := th.house.CloseAuction(ctx, "Auctioneer2", 5)
	require.NoError(t, err)
	assert.Equal(t, port.OutcomeSale, outcome)
	assert.Equal(t, domain.LotStatusSold, lotStatus(t, th, 5))
}

func TestAuctionHouse_CloseAuctionPendingPayment(t *testing.T) {
	tests := []struct {
		name      string
		buyerLeg  error
		sellerLeg error
	}{
		{name: "buyer leg fails", buyerLeg: errors.New("account rejected")},
		{name: "seller leg fails", sellerLeg: errors.New("account rejected")},
		{name: "both legs fail", buyerLeg: errors.New("account rejected"), sellerLeg: errors.New("account rejected")},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			th := newTestHouse(t, ctrl)
			ctx := context.Background()

			th.runStory(t, 7)

			// both legs are always attempted, whatever the first returned
			th.banking.EXPECT().
				Transfer(gomock.Any(), "BB A/C", "BB-auth", houseAccount, domain.MustMoney("110.00")).
				Return(test.buyerLeg)
			th.banking.EXPECT().
				Transfer(gomock.Any(), houseAccount, houseAuth, "SY A/C", domain.MustMoney("85.00")).
				Return(test.sellerLeg)

			// the pending case sends no notifications at all
			outcome, err := th.house.CloseAuction(ctx, "Auctioneer1", 1)
			require.NoError(t, err)
			assert.Equal(t, port.OutcomeSalePendingPayment, outcome)
			assert.Equal(t, domain.LotStatusSoldPendingPayment, lotStatus(t, th, 1))

			// pending payment is terminal
			err = th.house.OpenAuction(ctx, "Auctioneer1", "@Auctioneer1", 1)
			assert.ErrorIs(t, err, domain.ErrLotPendingPayment)
		})
	}
}

func TestAuctionHouse_CloseAuctionNoSale(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	th := newTestHouse(t, ctrl)
	ctx := context.Background()

	// stop after the 70.00 bid, below the 80.00 reserve
	th.runStory(t, 6)

	gomock.InOrder(
		th.messaging.EXPECT().LotUnsold(gomock.Any(), "@SellerY", 1),
		th.messaging.EXPECT().LotUnsold(gomock.Any(), "@BuyerA", 1),
		th.messaging.EXPECT().LotUnsold(gomock.Any(), "@BuyerB", 1),
	)

	outcome, err := th.house.CloseAuction(ctx, "Auctioneer1", 1)
	require.NoError(t, err)
	assert.Equal(t, port.OutcomeNoSale, outcome)
	assert.Equal(t, domain.LotStatusUnsold, lotStatus(t, th, 1))

	// an unsold lot can go back under the hammer
	gomock.InOrder(
		th.messaging.EXPECT().AuctionOpened(gomock.Any(), "@SellerY", 1),
		th.messaging.EXPECT().AuctionOpened(gomock.Any(), "@BuyerA", 1),
		th.messaging.EXPECT().AuctionOpened(gomock.Any(), "@BuyerB", 1),
	)
	require.NoError(t, th.house.OpenAuction(ctx, "Auctioneer2", "@Auctioneer2", 1))

	lot, err := th.repo.GetLot(ctx, 1)
	require.NoError(t, err)
	assert.True(t, lot.HighestBid.IsZero())
	assert.Empty(t, lot.HighestBidder)
}

func TestAuctionHouse_CloseAuctionNoBids(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	th := newTestHouse(t, ctrl)
	ctx := context.Background()

	th.runStory(t, 5)

	gomock.InOrder(
		th.messaging.EXPECT().LotUnsold(gomock.Any(), "@SellerY", 1),
		th.messaging.EXPECT().LotUnsold(gomock.Any(), "@BuyerA", 1),
		th.messaging.EXPECT().LotUnsold(gomock.Any(), "@BuyerB", 1),
	)

	outcome, err := th.house.CloseAuction(ctx, "Auctioneer1", 1)
	require.NoError(t, err)
	assert.Equal(t, port.OutcomeNoSale, outcome)
	assert.Equal(t, domain.LotStatusUnsold, lotStatus(t, th, 1))
}
