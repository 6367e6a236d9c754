package domain

type LotStatus string

const (
	LotStatusUnsold             LotStatus = "UNSOLD"
	LotStatusInAuction          LotStatus = "IN_AUCTION"
	LotStatusSold               LotStatus = "SOLD"
	LotStatusSoldPendingPayment LotStatus = "SOLD_PENDING_PAYMENT"
)

// CatalogueEntry is the read-only projection of a lot shown in the catalogue.
type CatalogueEntry struct {
	Number      int
	Description string
	Status      LotStatus
}

// Lot is a single item offered for auction. It owns the per-lot state machine:
// UNSOLD -> IN_AUCTION -> (SOLD | SOLD_PENDING_PAYMENT | UNSOLD). Once a lot
// reaches SOLD or SOLD_PENDING_PAYMENT no transition leads out of it.
type Lot struct {
	Number           int
	Description      string
	SellerName       string
	ReservePrice     Money
	Status           LotStatus
	InterestedBuyers []string
	HighestBid       Money
	HighestBidder    string
	Auctioneer       *Auctioneer
}

func NewLot(sellerName string, number int, description string, reservePrice Money) *Lot {
	return &Lot{
		Number:       number,
		Description:  description,
		SellerName:   sellerName,
		ReservePrice: reservePrice,
		Status:       LotStatusUnsold,
		HighestBid:   ZeroMoney(),
	}
}

func (l *Lot) Entry() CatalogueEntry {
	return CatalogueEntry{
		Number:      l.Number,
		Description: l.Description,
		Status:      l.Status,
	}
}

// NoteInterest appends the buyer to the interested list. First interest wins:
// noting interest again is accepted but does not add a second entry.
func (l *Lot) NoteInterest(buyerName string) {
	if l.HasInterest(buyerName) {
		return
	}
	l.InterestedBuyers = append(l.InterestedBuyers, buyerName)
}

func (l *Lot) HasInterest(buyerName string) bool {
	for _, name := range l.InterestedBuyers {
		if name == buyerName {
			return true
		}
	}
	return false
}

// Open moves the lot from UNSOLD to IN_AUCTION, binds the auctioneer and
// resets the bid state for a fresh auction opening.
func (l *Lot) Open(auctioneer Auctioneer) error {
	switch l.Status {
	case LotStatusUnsold:
	case LotStatusSold:
		return ErrLotAlreadySold
	case LotStatusInAuction:
		return ErrLotAlreadyOpen
	default:
		return ErrLotPendingPayment
	}

	l.Auctioneer = &auctioneer
	l.HighestBid = ZeroMoney()
	l.HighestBidder = ""
	l.Status = LotStatusInAuction
	return nil
}

// PlaceBid arbitrates a bid on an open lot. A bid is accepted only when the
// buyer has noted interest and the amount is strictly greater than the current
// highest bid; a rejected bid leaves the lot untouched.
func (l *Lot) PlaceBid(buyerName string, bid Money) error {
	switch l.Status {
	case LotStatusInAuction:
	case LotStatusUnsold:
		return ErrLotNotOpen
	case LotStatusSold:
		return ErrLotAlreadySold
	default:
		return ErrLotPendingPayment
	}

	if !l.HasInterest(buyerName) {
		return ErrBuyerNotInterested
	}
	if bid.LessEqual(l.HighestBid) {
		return ErrBidTooLow
	}

	l.HighestBid = bid
	l.HighestBidder = buyerName
	return nil
}

// ReserveMet reports whether the current highest bid would make a sale. A lot
// with no accepted bid never meets the reserve, even a zero reserve.
func (l *Lot) ReserveMet() bool {
	return l.HighestBidder != "" && l.HighestBid.Cmp(l.ReservePrice) >= 0
}

func (l *Lot) MarkSold() {
	l.Status = LotStatusSold
}

func (l *Lot) MarkUnsold() {
	l.Status = LotStatusUnsold
}

func (l *Lot) MarkPendingPayment() {
	l.Status = LotStatusSoldPendingPayment
}
