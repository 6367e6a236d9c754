package domain

import (
	"errors"
)

var (
	// * Storage errors.
	ErrNotFound      = errors.New("record not found")
	ErrAlreadyExists = errors.New("record already exists")

	// * Business errors.
	ErrDuplicateParticipant   = errors.New("a participant with this name is already registered")
	ErrUnknownSeller          = errors.New("this seller is not registered")
	ErrUnknownLot             = errors.New("this lot is not in the catalogue")
	ErrDuplicateLot           = errors.New("a lot with this number is already in the catalogue")
	ErrLotAlreadySold         = errors.New("this lot is already sold")
	ErrLotAlreadyOpen         = errors.New("this lot has already been opened")
	ErrLotPendingPayment      = errors.New("this lot is already sold and is pending payment")
	ErrLotNotOpen             = errors.New("this lot has not been opened")
	ErrBuyerNotInterested     = errors.New("this buyer has not noted interest in the lot")
	ErrBidTooLow              = errors.New("bid is not higher than the current highest bid")
	ErrUnauthorizedAuctioneer = errors.New("only the auctioneer who opened the lot may close it")
)
