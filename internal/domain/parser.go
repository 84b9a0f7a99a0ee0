package domain

import (
	"bufio"
	"io"
	"strings"
	"time"
)

// SkipFunc is called for every line that does not hold an entry.
type SkipFunc func(lineNumber int, line string)

// ParseLine parses a single "MM/DD/YY - description" line.
// The line must split into exactly two parts and the first must be a date.
func ParseLine(line string) (ScheduleEntry, bool) {
	parts := strings.Split(line, EntrySeparator)
	if len(parts) != 2 {
		return ScheduleEntry{}, false
	}

	date, err := time.Parse(DateLayout, parts[0])
	if err != nil {
		return ScheduleEntry{}, false
	}

	return NewScheduleEntry(date, parts[1]), true
}

// ParseEntries reads every entry from r in file order, dropping malformed lines.
func ParseEntries(r io.Reader) ([]ScheduleEntry, error) {
	return ParseEntriesWithSkip(r, nil)
}

// ParseEntriesWithSkip behaves like ParseEntries and reports dropped lines to skip.
// Only a failure of the underlying reader is returned as an error.
func ParseEntriesWithSkip(r io.Reader, skip SkipFunc) ([]ScheduleEntry, error) {
	reader := bufio.NewReader(r)

	var entries []ScheduleEntry
	lineNumber := 0
	for {
		raw, err := reader.ReadString('\n')
		if err != nil && err != io.EOF {
			return nil, err
		}
		if raw == "" && err == io.EOF {
			break
		}

		lineNumber++
		line := strings.TrimSuffix(strings.TrimSuffix(raw, "\n"), "\r")
		if entry, ok := ParseLine(line); ok {
			entries = append(entries, entry)
		} else if skip != nil {
			skip(lineNumber, line)
		}

		if err == io.EOF {
			break
		}
	}
	return entries, nil
}
