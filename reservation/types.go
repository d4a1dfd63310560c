package reservation

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Reservation is a confirmed booking of one hall by one lecturer. From and To
// always fall on the same calendar day for persisted records.
type Reservation struct {
	ID         uuid.UUID `json:"id"`
	HallNumber int       `json:"hall_number"`
	LecturerID uuid.UUID `json:"lecturer_id"`
	From       time.Time `json:"from"`
	To         time.Time `json:"to"`
	CreatedAt  time.Time `json:"created_at"`
}

// NewReservation is an unvalidated, unpersisted booking proposal.
type NewReservation struct {
	HallNumber int       `json:"hall_number"`
	LecturerID uuid.UUID `json:"lecturer_id"`
	From       time.Time `json:"from"`
	To         time.Time `json:"to"`
}

func (n *NewReservation) Validate() error {
	if n.From.IsZero() {
		return errors.New("from is required")
	}
	if n.To.IsZero() {
		return errors.New("to is required")
	}
	return nil
}

// ValidationResult is a bit set accumulating every rule a proposal violates.
// ValidationOK is a distinct bit, set only when no rule was violated; the zero
// value means "not evaluated yet", never success.
type ValidationResult uint16

const (
	ValidationOK ValidationResult = 1 << iota
	MoreThanOneDay
	ToBeforeFrom
	OutsideWorkingHours
	TooLong
	Conflicting
	LecturerDoesNotExist
	HallDoesNotExist
)

var violationNames = map[ValidationResult]string{
	MoreThanOneDay:       "more_than_one_day",
	ToBeforeFrom:         "to_before_from",
	OutsideWorkingHours:  "outside_working_hours",
	TooLong:              "too_long",
	Conflicting:          "conflicting",
	LecturerDoesNotExist: "lecturer_does_not_exist",
	HallDoesNotExist:     "hall_does_not_exist",
}

func (r ValidationResult) Has(flag ValidationResult) bool {
	return r&flag == flag
}

// Admitted reports whether the proposal passed every rule. Only the exact
// all-clear result admits; the zero value does not.
func (r ValidationResult) Admitted() bool {
	return r == ValidationOK
}

// Violations lists the names of every violated rule, in flag order.
func (r ValidationResult) Violations() []string {
	flags := []ValidationResult{
		MoreThanOneDay,
		ToBeforeFrom,
		OutsideWorkingHours,
		TooLong,
		Conflicting,
		LecturerDoesNotExist,
		HallDoesNotExist,
	}

	var names []string
	for _, f := range flags {
		if r.Has(f) {
			names = append(names, violationNames[f])
		}
	}
	return names
}

// HallFreeHours reports how many working hours remain unbooked for one hall
// on one day. FreeHours is always within [0, 10].
type HallFreeHours struct {
	HallNumber int `json:"hall_number"`
	FreeHours  int `json:"free_hours"`
}
