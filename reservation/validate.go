package reservation

import (
	"errors"
	"time"

	"reservations-system/hall"
	"reservations-system/lecturer"
)

// Working hours are 8-18, so a fully free hall has 10 bookable hours.
const (
	workdayStartHour = 8
	workdayEndHour   = 18
	workdayHours     = workdayEndHour - workdayStartHour
	maxBookingHours  = 3
)

// ErrMissingReservation is returned when a nil proposal is handed to Validate.
var ErrMissingReservation = errors.New("new reservation is required")

func sameDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// Validate checks a proposal against every booking rule and accumulates the
// violated ones into a single result. All rules are evaluated; a proposal
// breaking several of them reports all of the corresponding flags at once.
// The snapshots are read-only and are never mutated.
//
// Comparisons run at hour-of-day granularity: a reservation from 09:00 to
// 11:00 occupies the hours 9 and 10, and a booking starting exactly when
// another ends does not conflict with it.
func Validate(proposed *NewReservation, reservations []Reservation, halls []hall.Hall, lecturers []lecturer.Lecturer) (ValidationResult, error) {
	if proposed == nil {
		return 0, ErrMissingReservation
	}

	var result ValidationResult

	if !sameDate(proposed.From, proposed.To) {
		result |= MoreThanOneDay
	}

	if proposed.From.Hour() >= proposed.To.Hour() {
		result |= ToBeforeFrom
	}

	if proposed.From.Hour() < workdayStartHour || proposed.To.Hour() > workdayEndHour {
		result |= OutsideWorkingHours
	}

	if int(proposed.To.Sub(proposed.From).Hours()) > maxBookingHours {
		result |= TooLong
	}

	if overlaps(proposed, reservations) {
		result |= Conflicting
	}

	lecturerKnown := false
	for _, l := range lecturers {
		if l.ID == proposed.LecturerID {
			lecturerKnown = true
			break
		}
	}
	if !lecturerKnown {
		result |= LecturerDoesNotExist
	}

	hallKnown := false
	for _, h := range halls {
		if h.Number == proposed.HallNumber {
			hallKnown = true
			break
		}
	}
	if !hallKnown {
		result |= HallDoesNotExist
	}

	if result == 0 {
		result = ValidationOK
	}

	return result, nil
}

// overlaps reports whether any same-day reservation on the proposal's hall
// collides with it. An existing reservation conflicts when it covers the
// proposal's start, covers the proposal's end, or lies fully inside the
// proposed interval.
func overlaps(proposed *NewReservation, reservations []Reservation) bool {
	for _, r := range reservations {
		if r.HallNumber != proposed.HallNumber || !sameDate(r.From, proposed.From) {
			continue
		}

		if r.To.Hour() > proposed.From.Hour() && r.From.Hour() <= proposed.From.Hour() {
			return true
		}
		if r.From.Hour() < proposed.To.Hour() && r.To.Hour() >= proposed.To.Hour() {
			return true
		}
		if r.From.Hour() >= proposed.From.Hour() && r.To.Hour() <= proposed.To.Hour() {
			return true
		}
	}
	return false
}
