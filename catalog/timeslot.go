package catalog

import (
	"fmt"
	"strconv"
	"strings"
)

// Timeslot is one bookable hour of one court on one date, shaped for
// display. StartMin/EndMin are minutes from 00:00 and are authoritative;
// Label is derived from them, never the other way around.
type Timeslot struct {
	ID       string `json:"id"`
	Label    string `json:"label"` // "07:00 – 08:00"
	StartMin int    `json:"startMin"`
	EndMin   int    `json:"endMin"`
	Price    int    `json:"price"`
}

func MinutesToLabel(m int) string {
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}

func SlotLabel(startMin, endMin int) string {
	return fmt.Sprintf("%s – %s", MinutesToLabel(startMin), MinutesToLabel(endMin))
}

// ParseSlotLabel recovers start/end minute offsets from a display label
// like "07:00 – 08:00". Kept for carts persisted before StartMin/EndMin
// became first-class fields. Accepts an en dash or a plain hyphen.
func ParseSlotLabel(label string) (int, int, error) {
	sep := "–"

	if !strings.Contains(label, sep) {
		sep = "-"
	}

	parts := strings.SplitN(label, sep, 2)

	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid slot label '%v'", label)
	}

	startMin, err := parseTime(parts[0])

	if err != nil {
		return 0, 0, fmt.Errorf("invalid slot label '%v': %w", label, err)
	}

	endMin, err := parseTime(parts[1])

	if err != nil {
		return 0, 0, fmt.Errorf("invalid slot label '%v': %w", label, err)
	}

	return startMin, endMin, nil
}

func parseTime(s string) (int, error) {
	hm := strings.SplitN(strings.TrimSpace(s), ":", 2)

	if len(hm) != 2 {
		return 0, fmt.Errorf("expected HH:MM, got '%v'", s)
	}

	hours, err := strconv.Atoi(hm[0])

	if err != nil {
		return 0, fmt.Errorf("invalid hours '%v'", hm[0])
	}

	minutes, err := strconv.Atoi(hm[1])

	if err != nil {
		return 0, fmt.Errorf("invalid minutes '%v'", hm[1])
	}

	return hours*60 + minutes, nil
}
