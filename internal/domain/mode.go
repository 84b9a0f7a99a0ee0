package domain

import (
	"schedule/internal/errors"
)

// Mode selects which entries a run prints.
type Mode int

const (
	ModeAll Mode = iota
	ModeThisWeek
	ModeThisMonth
	ModeThisQuarter
)

// Command names as typed on the command line.
const (
	ThisWeekCommand    = "thisWeek"
	ThisMonthCommand   = "thisMonth"
	ThisQuarterCommand = "thisQuarter"
)

// String returns the command name of the mode; the default mode has none.
func (m Mode) String() string {
	switch m {
	case ModeThisWeek:
		return ThisWeekCommand
	case ModeThisMonth:
		return ThisMonthCommand
	case ModeThisQuarter:
		return ThisQuarterCommand
	default:
		return "all"
	}
}

// ParseMode maps a command name to its mode. The empty string is the default mode.
func ParseMode(name string) (Mode, error) {
	switch name {
	case "":
		return ModeAll, nil
	case ThisWeekCommand:
		return ModeThisWeek, nil
	case ThisMonthCommand:
		return ModeThisMonth, nil
	case ThisQuarterCommand:
		return ModeThisQuarter, nil
	default:
		return ModeAll, errors.NewInvalidInputError("mode", name, "unknown mode")
	}
}

// ReadsEntries reports whether the mode works on the weeks file.
func (m Mode) ReadsEntries() bool {
	return m != ModeThisQuarter
}
