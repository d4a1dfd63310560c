package reservation

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

func (a *Accessor) GetReservations(ctx context.Context) ([]Reservation, error) {
	var reservations []Reservation

	query := `SELECT id, hall_number, lecturer_id, "from", "to", created_at FROM reservations`
	rows, err := a.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var r Reservation
		if err := rows.Scan(&r.ID, &r.HallNumber, &r.LecturerID, &r.From, &r.To, &r.CreatedAt); err != nil {
			return nil, err
		}
		reservations = append(reservations, r)
	}

	return reservations, nil
}

// GetReservation returns nil without an error when the id is unknown.
func (a *Accessor) GetReservation(ctx context.Context, id uuid.UUID) (*Reservation, error) {
	var r Reservation

	query := `SELECT id, hall_number, lecturer_id, "from", "to", created_at FROM reservations WHERE id = $1`
	row := a.db.QueryRowContext(ctx, query, id)
	if err := row.Scan(&r.ID, &r.HallNumber, &r.LecturerID, &r.From, &r.To, &r.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan: %w", err)
	}

	return &r, nil
}

// ValidateReservation runs the rule engine against the current snapshots
// without touching storage.
func (a *Accessor) ValidateReservation(ctx context.Context, proposed *NewReservation) (ValidationResult, error) {
	if proposed == nil {
		return 0, ErrMissingReservation
	}

	reservations, err := a.GetReservations(ctx)
	if err != nil {
		return 0, fmt.Errorf("get reservations: %w", err)
	}
	halls, err := a.hallAccessor.GetHalls(ctx)
	if err != nil {
		return 0, fmt.Errorf("get halls: %w", err)
	}
	lecturers, err := a.lecturerAccessor.GetLecturers(ctx)
	if err != nil {
		return 0, fmt.Errorf("get lecturers: %w", err)
	}

	return Validate(proposed, reservations, halls, lecturers)
}

// CreateReservation validates the proposal and, when admitted, persists it.
// Rule violations are returned as data with a nil reservation and a nil
// error; only storage and argument failures surface as errors.
func (a *Accessor) CreateReservation(ctx context.Context, proposed *NewReservation, now time.Time) (*Reservation, ValidationResult, error) {
	result, err := a.ValidateReservation(ctx, proposed)
	if err != nil {
		return nil, 0, err
	}
	if !result.Admitted() {
		return nil, result, nil
	}

	id := uuid.New()

	query := `INSERT INTO reservations (id, hall_number, lecturer_id, "from", "to", created_at) VALUES ($1, $2, $3, $4, $5, $6)`
	if _, err := a.db.ExecContext(ctx, query, id, proposed.HallNumber, proposed.LecturerID, proposed.From, proposed.To, now); err != nil {
		return nil, 0, fmt.Errorf("exec context: %w", err)
	}

	return &Reservation{
		ID:         id,
		HallNumber: proposed.HallNumber,
		LecturerID: proposed.LecturerID,
		From:       proposed.From,
		To:         proposed.To,
		CreatedAt:  now,
	}, result, nil
}

// DeleteReservation is idempotent: deleting an unknown id is a no-op.
func (a *Accessor) DeleteReservation(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM reservations WHERE id = $1`
	if _, err := a.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("exec context: %w", err)
	}
	return nil
}

// ReservationsByDay lists the given hall's reservations on a day in
// chronological order.
func (a *Accessor) ReservationsByDay(ctx context.Context, day time.Time, hallNumber int) ([]Reservation, error) {
	reservations, err := a.GetReservations(ctx)
	if err != nil {
		return nil, fmt.Errorf("get reservations: %w", err)
	}
	halls, err := a.hallAccessor.GetHalls(ctx)
	if err != nil {
		return nil, fmt.Errorf("get halls: %w", err)
	}

	return ReservationsOnDay(day, hallNumber, reservations, halls)
}

// HallsFreeHoursByDay reports free working hours per hall for a future day.
func (a *Accessor) HallsFreeHoursByDay(ctx context.Context, day, now time.Time) ([]HallFreeHours, error) {
	reservations, err := a.GetReservations(ctx)
	if err != nil {
		return nil, fmt.Errorf("get reservations: %w", err)
	}
	halls, err := a.hallAccessor.GetHalls(ctx)
	if err != nil {
		return nil, fmt.Errorf("get halls: %w", err)
	}

	return HallsFreeHours(day, now, reservations, halls)
}
