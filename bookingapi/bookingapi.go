package bookingapi

import "time"

type Image struct {
	URL string `json:"url"`
}

type Court struct {
	ID      int     `json:"id"`
	Name    string  `json:"name"`
	Sport   string  `json:"sport"`
	Indoor  bool    `json:"indoor"`
	Surface string  `json:"surface"`
	Images  []Image `json:"images"`
}

type Slot struct {
	ID        int    `json:"id"`
	CourtID   int    `json:"courtId"`
	Date      string `json:"date"` // YYYY-MM-DD
	StartMin  int    `json:"startMin"`
	EndMin    int    `json:"endMin"`
	Price     int    `json:"price"`
	Available bool   `json:"available"`
}

type BookingItem struct {
	ID        int    `json:"id"`
	BookingID int    `json:"booking_id"`
	CourtID   int    `json:"court_id"`
	Date      string `json:"date"`
	StartMin  int    `json:"start_min"`
	EndMin    int    `json:"end_min"`
	Price     int    `json:"price"`
}

type Booking struct {
	ID        int           `json:"id"`
	Code      string        `json:"code"`
	Total     int           `json:"total"`
	Status    string        `json:"status"` // pending, paid, failed
	CreatedAt time.Time     `json:"created_at"`
	Items     []BookingItem `json:"items"`
}

type CheckoutItem struct {
	CourtID  int    `json:"courtId"`
	Date     string `json:"date"`
	StartMin int    `json:"startMin"`
	EndMin   int    `json:"endMin"`
	Price    int    `json:"price"`
}

type CheckoutResult struct {
	BookingID int    `json:"bookingId"`
	Code      string `json:"code"`
	Total     int    `json:"total"`
	Redirect  string `json:"redirect"`
	Token     string `json:"token"`
}
