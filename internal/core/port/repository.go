package port

import (
	"context"

	"auctionhouse/internal/core/domain"
)

// Repository owns every participant and lot for the lifetime of the process.
// Lots are addressed by number, participants by name within their role, and
// all lot mutation goes through UpdateLot so no caller ever holds a writable
// reference into storage.
type Repository interface {
	// Participant directory
	CreateBuyer(ctx context.Context, buyer *domain.Buyer) error
	GetBuyer(ctx context.Context, name string) (*domain.Buyer, error)
	CreateSeller(ctx context.Context, seller *domain.Seller) error
	GetSeller(ctx context.Context, name string) (*domain.Seller, error)

	// Lot catalogue
	CreateLot(ctx context.Context, lot *domain.Lot) error
	GetLot(ctx context.Context, number int) (*domain.Lot, error)
	UpdateLot(ctx context.Context, number int, fn UpdateLotFn) (*domain.Lot, error)
	ListCatalogue(ctx context.Context) ([]domain.CatalogueEntry, error)
}

// UpdateLotFn mutates a lot inside the repository. Returning an error leaves
// the stored lot unchanged.
type UpdateLotFn func(*domain.Lot) error
