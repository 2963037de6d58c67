// Package slots holds the fixed catalog of bookable times of day. The salon
// opens half-hour slots from 09:00 through 17:30 on every calendar day.
package slots

import "fmt"

const catalogSize = 18

// All returns the slot catalog in chronological order.
func All() []string {
	times := make([]string, 0, catalogSize)
	for h := 9; h <= 17; h++ {
		times = append(times, fmt.Sprintf("%02d:00", h), fmt.Sprintf("%02d:30", h))
	}
	return times
}

// Contains reports whether t is one of the catalog slots.
func Contains(t string) bool {
	for _, slot := range All() {
		if slot == t {
			return true
		}
	}
	return false
}

// Available returns the catalog minus the booked times, order preserved.
// Booked values outside the catalog are ignored.
func Available(booked []string) []string {
	taken := make(map[string]struct{}, len(booked))
	for _, t := range booked {
		taken[t] = struct{}{}
	}

	free := make([]string, 0, catalogSize)
	for _, slot := range All() {
		if _, ok := taken[slot]; !ok {
			free = append(free, slot)
		}
	}
	return free
}
