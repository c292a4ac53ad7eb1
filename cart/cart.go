package cart

import (
	"context"
	"fmt"
)

// Namespace prefixes every persisted cart key so the storefront's state
// stays isolated from anything else living in the same store.
const Namespace = "badminton-cart"

type Item struct {
	ID        string `json:"id"` // courtId-date-slotId
	CourtID   int    `json:"courtId"`
	CourtName string `json:"courtName"`
	Date      string `json:"date"` // YYYY-MM-DD
	SlotLabel string `json:"slotLabel"`
	StartMin  int    `json:"startMin"`
	EndMin    int    `json:"endMin"`
	Price     int    `json:"price"`
}

// Persister is the durable side-channel for cart state. The store calls
// Save after every successful mutation and Load before every read.
type Persister interface {
	Load(ctx context.Context, key string) ([]Item, error)
	Save(ctx context.Context, key string, items []Item) error
}

type Store struct {
	persister Persister
}

func NewStore(persister Persister) *Store {
	return &Store{persister: persister}
}

func key(session string) string {
	return fmt.Sprintf("%s:%s", Namespace, session)
}

// Add appends the item unless an entry with the same ID already exists.
// Adding a duplicate is a silent no-op.
func (s *Store) Add(ctx context.Context, session string, item Item) error {
	items, err := s.persister.Load(ctx, key(session))

	if err != nil {
		return fmt.Errorf("failed to load cart: %w", err)
	}

	for _, existing := range items {
		if existing.ID == item.ID {
			return nil
		}
	}

	items = append(items, item)

	if err := s.persister.Save(ctx, key(session), items); err != nil {
		return fmt.Errorf("failed to save cart: %w", err)
	}

	return nil
}

// Remove deletes the entry with the given ID. Removing an unknown ID is
// a no-op.
func (s *Store) Remove(ctx context.Context, session string, id string) error {
	items, err := s.persister.Load(ctx, key(session))

	if err != nil {
		return fmt.Errorf("failed to load cart: %w", err)
	}

	kept := items[:0]

	for _, item := range items {
		if item.ID != id {
			kept = append(kept, item)
		}
	}

	if len(kept) == len(items) {
		return nil
	}

	if err := s.persister.Save(ctx, key(session), kept); err != nil {
		return fmt.Errorf("failed to save cart: %w", err)
	}

	return nil
}

func (s *Store) Clear(ctx context.Context, session string) error {
	if err := s.persister.Save(ctx, key(session), []Item{}); err != nil {
		return fmt.Errorf("failed to clear cart: %w", err)
	}

	return nil
}

func (s *Store) Items(ctx context.Context, session string) ([]Item, error) {
	items, err := s.persister.Load(ctx, key(session))

	if err != nil {
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}

	return items, nil
}

func (s *Store) Total(ctx context.Context, session string) (int, error) {
	items, err := s.Items(ctx, session)

	if err != nil {
		return 0, err
	}

	total := 0

	for _, item := range items {
		total += item.Price
	}

	return total, nil
}

func (s *Store) Count(ctx context.Context, session string) (int, error) {
	items, err := s.Items(ctx, session)

	if err != nil {
		return 0, err
	}

	return len(items), nil
}
