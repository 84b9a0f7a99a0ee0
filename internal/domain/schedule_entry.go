package domain

import (
	"fmt"
	"time"
)

// DateLayout is the layout of the date column in the weeks file.
// Month and day may be written with one or two digits; the year always has two.
const DateLayout = "1/2/06"

// DisplayLayout is the zero-padded layout used when printing entries.
const DisplayLayout = "01/02/06"

// EntrySeparator separates the date from the description on a line.
const EntrySeparator = " - "

// ScheduleEntry is one dated, described line from the weeks file.
type ScheduleEntry struct {
	Date        time.Time
	Description string
}

// NewScheduleEntry creates an entry for the calendar day of date.
func NewScheduleEntry(date time.Time, description string) ScheduleEntry {
	return ScheduleEntry{
		Date:        CalendarDay(date),
		Description: description,
	}
}

// String renders the entry the way it appears in the weeks file.
func (e ScheduleEntry) String() string {
	return fmt.Sprintf("%s%s%s", e.Date.Format(DisplayLayout), EntrySeparator, e.Description)
}

// CalendarDay strips the clock and location from t, keeping the year, month
// and day as seen in t's own location. The result is midnight UTC so that
// subtracting two days always yields a whole number of 24h periods.
func CalendarDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
