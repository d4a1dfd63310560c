package reservation

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"reservations-system/hall"
)

var (
	// ErrHallNotFound is returned by day queries for unknown hall numbers. An
	// unknown hall is a caller bug or a stale reference, never an empty day.
	ErrHallNotFound = errors.New("hall not found")

	// ErrDayNotInFuture is returned when free hours are requested for today or
	// a past day.
	ErrDayNotInFuture = errors.New("day must be in the future")
)

// ReservationsOnDay returns the reservations for the given hall on the given
// day, sorted ascending by start time. The hall must exist; a valid hall with
// no bookings yields an empty result, an unknown one yields ErrHallNotFound.
func ReservationsOnDay(day time.Time, hallNumber int, reservations []Reservation, halls []hall.Hall) ([]Reservation, error) {
	known := false
	for _, h := range halls {
		if h.Number == hallNumber {
			known = true
			break
		}
	}
	if !known {
		return nil, fmt.Errorf("%w: %d", ErrHallNotFound, hallNumber)
	}

	matched := []Reservation{}
	for _, r := range reservations {
		if r.HallNumber == hallNumber && sameDate(r.From, day) {
			matched = append(matched, r)
		}
	}

	slices.SortFunc(matched, func(a, b Reservation) int {
		return a.From.Compare(b.From)
	})

	return matched, nil
}

// HallsFreeHours reports, for every known hall, how many of the 10 working
// hours remain unbooked on the given day. The day must be strictly after
// today; today itself and past days yield ErrDayNotInFuture. The caller
// supplies today so the horizon check stays deterministic.
func HallsFreeHours(day, today time.Time, reservations []Reservation, halls []hall.Hall) ([]HallFreeHours, error) {
	ty, tm, td := today.Date()
	startOfTomorrow := time.Date(ty, tm, td+1, 0, 0, 0, 0, today.Location())
	if day.Before(startOfTomorrow) {
		return nil, fmt.Errorf("%w: %s", ErrDayNotInFuture, day.Format("2006-01-02"))
	}

	booked := make(map[int]int, len(halls))
	for _, r := range reservations {
		if sameDate(r.From, day) {
			booked[r.HallNumber] += r.To.Hour() - r.From.Hour()
		}
	}

	stats := make([]HallFreeHours, 0, len(halls))
	for _, h := range halls {
		free := workdayHours - booked[h.Number]
		// Clamp: a validated schedule never exceeds the window, but stored
		// data is not trusted to be validated.
		if free < 0 {
			free = 0
		}
		if free > workdayHours {
			free = workdayHours
		}
		stats = append(stats, HallFreeHours{HallNumber: h.Number, FreeHours: free})
	}

	return stats, nil
}
