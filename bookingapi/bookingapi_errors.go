package bookingapi

import "fmt"

// APIError carries a business failure reported by the booking API. The
// message is the server's own wording and is surfaced to the user as-is.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("booking api returned status %v: %v", e.Status, e.Message)
}
