package checkout

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/arkasala/badmintongo-storefront/bookingapi"
	"github.com/arkasala/badmintongo-storefront/cart"
	"github.com/arkasala/badmintongo-storefront/catalog"
)

type CartStore interface {
	Items(ctx context.Context, session string) ([]cart.Item, error)
	Clear(ctx context.Context, session string) error
}

type Service struct {
	carts  CartStore
	api    bookingapi.BookingAPI
	logger *slog.Logger
}

func NewService(carts CartStore, api bookingapi.BookingAPI) *Service {
	return &Service{
		carts:  carts,
		api:    api,
		logger: slog.Default().With("component", "checkout"),
	}
}

// Submit posts the whole cart as one booking request and returns the
// payment redirect. All-or-nothing: any failure leaves the cart intact
// and there is no retry. The cart is cleared only after the booking API
// has accepted the request.
func (s *Service) Submit(ctx context.Context, session string) (*bookingapi.CheckoutResult, error) {
	items, err := s.carts.Items(ctx, session)

	if err != nil {
		return nil, err
	}

	if len(items) == 0 {
		return nil, cart.ErrCartEmpty
	}

	payload := make([]bookingapi.CheckoutItem, 0, len(items))

	for _, item := range items {
		startMin, endMin, err := itemRange(item)

		if err != nil {
			return nil, err
		}

		payload = append(payload, bookingapi.CheckoutItem{
			CourtID:  item.CourtID,
			Date:     item.Date,
			StartMin: startMin,
			EndMin:   endMin,
			Price:    item.Price,
		})
	}

	result, err := s.api.Checkout(ctx, payload)

	if err != nil {
		return nil, err
	}

	if err := s.carts.Clear(ctx, session); err != nil {
		// The booking already exists server-side, so a failed clear must
		// not fail the checkout.
		s.logger.Error("failed to clear cart after checkout", "session", session, "err", err)
	}

	return result, nil
}

// itemRange prefers the first-class minute fields; carts persisted by
// older clients only carry the display label, so fall back to parsing it.
func itemRange(item cart.Item) (int, int, error) {
	if item.StartMin != 0 || item.EndMin != 0 {
		return item.StartMin, item.EndMin, nil
	}

	startMin, endMin, err := catalog.ParseSlotLabel(item.SlotLabel)

	if err != nil {
		return 0, 0, fmt.Errorf("cart item '%v': %w", item.ID, err)
	}

	return startMin, endMin, nil
}
