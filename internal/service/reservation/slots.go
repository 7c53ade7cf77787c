package reservation

import (
	"fmt"
	"time"
)

const (
	openHour     = 10
	closeHour    = 19
	slotInterval = 30 * time.Minute
)

// Slot is a bookable start time on a given date.
type Slot struct {
	Time      string `json:"time"`
	Available bool   `json:"available"`
}

// SlotTimes lists the salon's start times from opening to the last slot at
// closing, inclusive.
func SlotTimes() []string {
	start := time.Date(2000, 1, 1, openHour, 0, 0, 0, time.UTC)
	end := time.Date(2000, 1, 1, closeHour, 0, 0, 0, time.UTC)

	var out []string
	for t := start; !t.After(end); t = t.Add(slotInterval) {
		out = append(out, t.Format(clockLayout))
	}
	return out
}

const clockLayout = "15:04"

func parseDate(s string) (string, error) {
	d, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return d.Format(time.DateOnly), nil
}

// parseClock accepts H:MM or HH:MM and returns HH:MM.
func parseClock(s string) (string, error) {
	t, err := time.Parse(clockLayout, s)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidTime, s)
	}
	return t.Format(clockLayout), nil
}
