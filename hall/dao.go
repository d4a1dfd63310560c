package hall

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

func (a *Accessor) InsertHall(ctx context.Context, h Hall) (Hall, error) {
	if err := h.Validate(); err != nil {
		return Hall{}, err
	}

	query := `INSERT INTO halls (number, name) VALUES ($1, $2)`
	if _, err := a.db.ExecContext(ctx, query, h.Number, h.Name); err != nil {
		return Hall{}, fmt.Errorf("exec context: %w", err)
	}

	return h, nil
}

func (a *Accessor) GetHalls(ctx context.Context) ([]Hall, error) {
	var halls []Hall

	query := `SELECT number, name FROM halls`
	rows, err := a.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var h Hall
		if err := rows.Scan(&h.Number, &h.Name); err != nil {
			return nil, err
		}
		halls = append(halls, h)
	}

	return halls, nil
}

// GetHall returns nil without an error when no hall has the given number.
func (a *Accessor) GetHall(ctx context.Context, number int) (*Hall, error) {
	var h Hall

	query := `SELECT number, name FROM halls WHERE number = $1`
	row := a.db.QueryRowContext(ctx, query, number)
	if err := row.Scan(&h.Number, &h.Name); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan: %w", err)
	}

	return &h, nil
}
