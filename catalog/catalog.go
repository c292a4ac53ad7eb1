package catalog

import (
	"context"
	"log/slog"
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/arkasala/badmintongo-storefront/bookingapi"
)

type Sport string

const (
	SportBadminton Sport = "Badminton"
	SportPadel     Sport = "Padel"
)

type Court struct {
	ID              int                   `json:"id"`
	Name            string                `json:"name"`
	Sport           Sport                 `json:"sport"`
	Indoor          bool                  `json:"indoor"`
	Surface         string                `json:"surface"`
	Images          []string              `json:"images"`
	TimeslotsByDate map[string][]Timeslot `json:"timeslotsByDate"`
}

type Service struct {
	api    bookingapi.BookingAPI
	logger *slog.Logger
}

func NewService(api bookingapi.BookingAPI) *Service {
	return &Service{
		api:    api,
		logger: slog.Default().With("component", "catalog"),
	}
}

// Courts fetches court metadata and reshapes it for display. Slots are
// not loaded here; TimeslotsByDate starts empty.
func (s *Service) Courts(ctx context.Context) ([]Court, error) {
	rows, err := s.api.GetCourts(ctx)

	if err != nil {
		return nil, err
	}

	courts := make([]Court, 0, len(rows))

	for _, row := range rows {
		images := make([]string, 0, len(row.Images))

		for _, img := range row.Images {
			images = append(images, img.URL)
		}

		courts = append(courts, Court{
			ID:              row.ID,
			Name:            row.Name,
			Sport:           parseSport(row.Sport),
			Indoor:          row.Indoor,
			Surface:         row.Surface,
			Images:          images,
			TimeslotsByDate: map[string][]Timeslot{},
		})
	}

	return courts, nil
}

// AvailabilityForDate loads every court's slots for the date concurrently
// and merges them into TimeslotsByDate once all requests settle. A single
// court's failure is logged and leaves that court without slots for the
// date; cancellation aborts the whole cycle.
func (s *Service) AvailabilityForDate(ctx context.Context, courts []Court, date string) ([]Court, error) {
	if err := ValidateDate(date); err != nil {
		return nil, err
	}

	slotsByCourt := make([][]Timeslot, len(courts))

	var wg sync.WaitGroup

	for i := range courts {
		wg.Add(1)

		go func(idx int, courtID int) {
			defer wg.Done()

			slots, err := s.SlotsForCourt(ctx, courtID, date)

			if err != nil {
				s.logger.Warn("failed to fetch slots", "courtId", courtID, "date", date, "err", err)
				return
			}

			slotsByCourt[idx] = slots
		}(i, courts[i].ID)
	}

	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	merged := make([]Court, len(courts))

	for i, court := range courts {
		byDate := make(map[string][]Timeslot, len(court.TimeslotsByDate)+1)

		for d, slots := range court.TimeslotsByDate {
			byDate[d] = slots
		}

		byDate[date] = slotsByCourt[i]
		court.TimeslotsByDate = byDate
		merged[i] = court
	}

	return merged, nil
}

// SlotsForCourt returns one court's available slots for the date, sorted
// by start minute and shaped for display.
func (s *Service) SlotsForCourt(ctx context.Context, courtID int, date string) ([]Timeslot, error) {
	if err := ValidateDate(date); err != nil {
		return nil, err
	}

	rows, err := s.api.GetSlots(ctx, courtID, date)

	if err != nil {
		return nil, err
	}

	slots := make([]Timeslot, 0, len(rows))

	for _, row := range rows {
		if !row.Available {
			continue
		}

		slots = append(slots, Timeslot{
			ID:       strconv.Itoa(row.ID),
			Label:    SlotLabel(row.StartMin, row.EndMin),
			StartMin: row.StartMin,
			EndMin:   row.EndMin,
			Price:    row.Price,
		})
	}

	sort.Slice(slots, func(i, j int) bool {
		return slots[i].StartMin < slots[j].StartMin
	})

	return slots, nil
}

func ValidateDate(date string) error {
	if _, err := time.Parse(time.DateOnly, date); err != nil {
		return ErrInvalidDate
	}

	return nil
}

func parseSport(s string) Sport {
	if s == string(SportPadel) {
		return SportPadel
	}

	return SportBadminton
}
