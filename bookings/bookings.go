package bookings

import (
	"context"
	"strings"

	"github.com/arkasala/badmintongo-storefront/bookingapi"
)

const defaultLimit = 100

// StatusAll matches every booking; the other chips mirror the statuses
// the booking API reports.
const (
	StatusAll     = "all"
	StatusPending = "pending"
	StatusPaid    = "paid"
	StatusFailed  = "failed"
)

type Service struct {
	api bookingapi.BookingAPI
}

func NewService(api bookingapi.BookingAPI) *Service {
	return &Service{api: api}
}

// List fetches recent bookings and filters them by status chip and by a
// substring match on the booking code.
func (s *Service) List(ctx context.Context, limit int, status, query string) ([]bookingapi.Booking, error) {
	if limit <= 0 {
		limit = defaultLimit
	}

	rows, err := s.api.GetBookings(ctx, limit)

	if err != nil {
		return nil, err
	}

	status = strings.ToLower(strings.TrimSpace(status))
	query = strings.ToLower(strings.TrimSpace(query))

	filtered := make([]bookingapi.Booking, 0, len(rows))

	for _, booking := range rows {
		if status != "" && status != StatusAll && strings.ToLower(booking.Status) != status {
			continue
		}

		if query != "" && !strings.Contains(strings.ToLower(booking.Code), query) {
			continue
		}

		filtered = append(filtered, booking)
	}

	return filtered, nil
}
