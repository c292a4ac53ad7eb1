package catalog

import "time"

// DateEntry is one button of the home view's date scroller.
type DateEntry struct {
	ISO      string `json:"iso"`      // YYYY-MM-DD
	DayLabel string `json:"dayLabel"` // "Sen"
	Label    string `json:"label"`    // "02 Sep"
}

var shortDays = map[time.Weekday]string{
	time.Sunday:    "Min",
	time.Monday:    "Sen",
	time.Tuesday:   "Sel",
	time.Wednesday: "Rab",
	time.Thursday:  "Kam",
	time.Friday:    "Jum",
	time.Saturday:  "Sab",
}

var shortMonths = map[time.Month]string{
	time.January:   "Jan",
	time.February:  "Feb",
	time.March:     "Mar",
	time.April:     "Apr",
	time.May:       "Mei",
	time.June:      "Jun",
	time.July:      "Jul",
	time.August:    "Agu",
	time.September: "Sep",
	time.October:   "Okt",
	time.November:  "Nov",
	time.December:  "Des",
}

// DateRange returns days consecutive entries starting at from.
func DateRange(from time.Time, days int) []DateEntry {
	entries := make([]DateEntry, 0, days)

	for i := 0; i < days; i++ {
		d := from.AddDate(0, 0, i)
		entries = append(entries, DateEntry{
			ISO:      d.Format(time.DateOnly),
			DayLabel: shortDays[d.Weekday()],
			Label:    d.Format("02 ") + shortMonths[d.Month()],
		})
	}

	return entries
}
