package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"auctionhouse/internal/core/domain"
	"auctionhouse/internal/core/port"
)

// Storage is a concurrency-safe in-memory implementation of port.Repository.
// It is the single owner of every participant and lot: lookups hand out
// snapshots and mutation happens only inside UpdateLot, so a failed update
// never leaves a half-applied lot behind.
type Storage struct {
	mu      sync.RWMutex
	buyers  map[string]*domain.Buyer
	sellers map[string]*domain.Seller
	lots    map[int]*domain.Lot
}

func NewStorage() *Storage {
	return &Storage{
		buyers:  make(map[string]*domain.Buyer),
		sellers: make(map[string]*domain.Seller),
		lots:    make(map[int]*domain.Lot),
	}
}

func (s *Storage) CreateBuyer(_ context.Context, buyer *domain.Buyer) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.buyers[buyer.Name]; ok {
		return fmt.Errorf("create buyer %s: %w", buyer.Name, domain.ErrAlreadyExists)
	}
	b := *buyer
	s.buyers[b.Name] = &b
	return nil
}

func (s *Storage) GetBuyer(_ context.Context, name string) (*domain.Buyer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	buyer, ok := s.buyers[name]
	if !ok {
		return nil, fmt.Errorf("get buyer %s: %w", name, domain.ErrNotFound)
	}
	b := *buyer
	return &b, nil
}

func (s *Storage) CreateSeller(_ context.Context, seller *domain.Seller) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sellers[seller.Name]; ok {
		return fmt.Errorf("create seller %s: %w", seller.Name, domain.ErrAlreadyExists)
	}
	sl := *seller
	s.sellers[sl.Name] = &sl
	return nil
}

func (s *Storage) GetSeller(_ context.Context, name string) (*domain.Seller, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	seller, ok := s.sellers[name]
	if !ok {
		return nil, fmt.Errorf("get seller %s: %w", name, domain.ErrNotFound)
	}
	sl := *seller
	return &sl, nil
}

func (s *Storage) CreateLot(_ context.Context, lot *domain.Lot) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.lots[lot.Number]; ok {
		return fmt.Errorf("create lot %d: %w", lot.Number, domain.ErrAlreadyExists)
	}
	s.lots[lot.Number] = cloneLot(lot)
	return nil
}

func (s *Storage) GetLot(_ context.Context, number int) (*domain.Lot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	lot, ok := s.lots[number]
	if !ok {
		return nil, fmt.Errorf("get lot %d: %w", number, domain.ErrNotFound)
	}
	return cloneLot(lot), nil
}

// UpdateLot runs fn against a working copy of the stored lot and commits the
// copy only when fn succeeds. The returned lot is a snapshot of the committed
// state.
func (s *Storage) UpdateLot(_ context.Context, number int, fn port.UpdateLotFn) (*domain.Lot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	lot, ok := s.lots[number]
	if !ok {
		return nil, fmt.Errorf("update lot %d: %w", number, domain.ErrNotFound)
	}

	updated := cloneLot(lot)
	if err := fn(updated); err != nil {
		return nil, err
	}
	s.lots[number] = updated

	return cloneLot(updated), nil
}

func (s *Storage) ListCatalogue(_ context.Context) ([]domain.CatalogueEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries := make([]domain.CatalogueEntry, 0, len(s.lots))
	for _, lot := range s.lots {
		entries = append(entries, lot.Entry())
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Number < entries[j].Number
	})
	return entries, nil
}

func cloneLot(lot *domain.Lot) *domain.Lot {
	c := *lot
	c.InterestedBuyers = append([]string(nil), lot.InterestedBuyers...)
	if lot.Auctioneer != nil {
		a := *lot.Auctioneer
		c.Auctioneer = &a
	}
	return &c
}
