package reservation

import (
	"context"
	"database/sql"

	"reservations-system/hall"
	"reservations-system/lecturer"
)

type HallAccessor interface {
	GetHalls(ctx context.Context) ([]hall.Hall, error)
}

type LecturerAccessor interface {
	GetLecturers(ctx context.Context) ([]lecturer.Lecturer, error)
}

// Accessor is the DB layer entrypoint for reservation queries. Hall and
// lecturer registries are reached through their own accessors so the
// validation snapshots can be supplied independently under test.
type Accessor struct {
	db               *sql.DB
	hallAccessor     HallAccessor
	lecturerAccessor LecturerAccessor
}

func NewAccessor(db *sql.DB, hallAccessor HallAccessor, lecturerAccessor LecturerAccessor) *Accessor {
	return &Accessor{
		db:               db,
		hallAccessor:     hallAccessor,
		lecturerAccessor: lecturerAccessor,
	}
}
