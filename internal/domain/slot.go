package domain

import (
	"fmt"
	"time"
)

// SessionizeDateTimeLayout is the layout of startsAt/endsAt in the Sessionize API.
// Times are local to the venue and carry no offset.
const SessionizeDateTimeLayout = "2006-01-02T15:04:05"

// ParseSessionizeDateTime parses a Sessionize startsAt/endsAt value.
func ParseSessionizeDateTime(s string) (time.Time, error) {
	t, err := time.Parse(SessionizeDateTimeLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid sessionize datetime %q: %w", s, err)
	}
	return t, nil
}

// Slot is where and when a talk takes place.
// Day is the calendar day at midnight; Start is the full start timestamp.
// Number is the 1-based position of Start among the day's distinct start
// times, or 0 for sessions that are not numbered (venue open).
type Slot struct {
	Room   string    `json:"room"`
	Day    time.Time `json:"day"`
	Start  time.Time `json:"start"`
	Number int       `json:"number"`
}

// NewSlot builds a Slot from a Sessionize startsAt value.
func NewSlot(room, startsAt string, number int) (Slot, error) {
	start, err := ParseSessionizeDateTime(startsAt)
	if err != nil {
		return Slot{}, err
	}
	return Slot{
		Room:   room,
		Day:    DateOf(start),
		Start:  start,
		Number: number,
	}, nil
}

// DateOf truncates t to midnight of its calendar day.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
