package lecturer

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

func (a *Accessor) InsertLecturer(ctx context.Context, l Lecturer) (Lecturer, error) {
	if err := l.Validate(); err != nil {
		return Lecturer{}, err
	}

	id := uuid.New()

	query := `INSERT INTO lecturers (id, name, email) VALUES ($1, $2, $3)`
	if _, err := a.db.ExecContext(ctx, query, id, l.Name, l.Email); err != nil {
		return Lecturer{}, fmt.Errorf("exec context: %w", err)
	}

	return Lecturer{
		ID:    id,
		Name:  l.Name,
		Email: l.Email,
	}, nil
}

func (a *Accessor) GetLecturers(ctx context.Context) ([]Lecturer, error) {
	var lecturers []Lecturer

	query := `SELECT id, name, email FROM lecturers`
	rows, err := a.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var l Lecturer
		if err := rows.Scan(&l.ID, &l.Name, &l.Email); err != nil {
			return nil, err
		}
		lecturers = append(lecturers, l)
	}

	return lecturers, nil
}

// GetLecturer returns nil without an error when the id is unknown.
func (a *Accessor) GetLecturer(ctx context.Context, id uuid.UUID) (*Lecturer, error) {
	var l Lecturer

	query := `SELECT id, name, email FROM lecturers WHERE id = $1`
	row := a.db.QueryRowContext(ctx, query, id)
	if err := row.Scan(&l.ID, &l.Name, &l.Email); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan: %w", err)
	}

	return &l, nil
}
