package domain

import "time"

// Highlight classifies an entry relative to the current week.
type Highlight int

const (
	HighlightNone Highlight = iota
	HighlightCurrent
	HighlightAdjacent
)

// String returns the string representation of the highlight
func (h Highlight) String() string {
	switch h {
	case HighlightCurrent:
		return "current"
	case HighlightAdjacent:
		return "adjacent"
	default:
		return "none"
	}
}

const daysPerWeek = 7

// WeekStart returns the Monday of the calendar week containing now.
func WeekStart(now time.Time) time.Time {
	today := CalendarDay(now)
	offset := (int(today.Weekday()) + 6) % daysPerWeek
	return today.AddDate(0, 0, -offset)
}

// WeekDiff returns the number of calendar weeks between date and weekStart.
// Dates in the week beginning at weekStart give 0, the week before gives -1.
func WeekDiff(date, weekStart time.Time) int {
	days := daysBetween(CalendarDay(weekStart), CalendarDay(date))
	return floorDiv(days, daysPerWeek)
}

// Classify returns how an entry should be highlighted for the given week start.
func Classify(entry ScheduleEntry, weekStart time.Time) Highlight {
	switch WeekDiff(entry.Date, weekStart) {
	case 0:
		return HighlightCurrent
	case -1, 1:
		return HighlightAdjacent
	default:
		return HighlightNone
	}
}

// InWeekWindow reports whether the entry falls in the previous, current or next week.
func InWeekWindow(entry ScheduleEntry, weekStart time.Time) bool {
	diff := WeekDiff(entry.Date, weekStart)
	return diff >= -1 && diff <= 1
}

// InMonth reports whether the entry shares today's month, whatever the year.
func InMonth(entry ScheduleEntry, today time.Time) bool {
	return entry.Date.Month() == today.Month()
}

func daysBetween(from, to time.Time) int {
	return int(to.Sub(from).Hours() / 24)
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}
