package reservation_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reservations-system/hall"
	"reservations-system/lecturer"
	"reservations-system/reservation"
)

var (
	lecturerSmith = lecturer.Lecturer{ID: uuid.New(), Name: "John Smith", Email: "smith@example.edu"}
	lecturerDoe   = lecturer.Lecturer{ID: uuid.New(), Name: "Jane Doe", Email: "doe@example.edu"}

	knownHalls     = []hall.Hall{{Number: 201, Name: "Hall 201"}, {Number: 202, Name: "Hall 202"}}
	knownLecturers = []lecturer.Lecturer{lecturerSmith, lecturerDoe}
)

// at builds an instant on the given day at the given hour.
func at(year int, month time.Month, day, hour int) time.Time {
	return time.Date(year, month, day, hour, 0, 0, 0, time.UTC)
}

func TestValidate(t *testing.T) {
	t.Parallel()

	t.Run("nil proposal", func(t *testing.T) {
		t.Parallel()
		_, err := reservation.Validate(nil, nil, knownHalls, knownLecturers)
		require.ErrorIs(t, err, reservation.ErrMissingReservation)
	})

	t.Run("valid proposal is admitted", func(t *testing.T) {
		t.Parallel()
		proposed := &reservation.NewReservation{
			HallNumber: 202,
			LecturerID: lecturerSmith.ID,
			From:       at(2030, time.March, 14, 10),
			To:         at(2030, time.March, 14, 12),
		}

		result, err := reservation.Validate(proposed, nil, knownHalls, knownLecturers)
		require.NoError(t, err)
		assert.Equal(t, reservation.ValidationOK, result)
		assert.True(t, result.Admitted())
		assert.Empty(t, result.Violations())
	})

	t.Run("spanning two days", func(t *testing.T) {
		t.Parallel()
		proposed := &reservation.NewReservation{
			HallNumber: 202,
			LecturerID: lecturerSmith.ID,
			From:       at(2030, time.March, 14, 10),
			To:         at(2030, time.March, 15, 12),
		}

		result, err := reservation.Validate(proposed, nil, knownHalls, knownLecturers)
		require.NoError(t, err)
		assert.True(t, result.Has(reservation.MoreThanOneDay))
		assert.False(t, result.Admitted())
	})

	t.Run("end hour not after start hour", func(t *testing.T) {
		t.Parallel()
		proposed := &reservation.NewReservation{
			HallNumber: 202,
			LecturerID: lecturerSmith.ID,
			From:       at(2030, time.March, 14, 12),
			To:         at(2030, time.March, 14, 10),
		}

		result, err := reservation.Validate(proposed, nil, knownHalls, knownLecturers)
		require.NoError(t, err)
		assert.True(t, result.Has(reservation.ToBeforeFrom))

		// Equal hours count as not-after too.
		proposed.To = proposed.From.Add(30 * time.Minute)
		result, err = reservation.Validate(proposed, nil, knownHalls, knownLecturers)
		require.NoError(t, err)
		assert.True(t, result.Has(reservation.ToBeforeFrom))
	})

	t.Run("outside working hours", func(t *testing.T) {
		t.Parallel()
		early := &reservation.NewReservation{
			HallNumber: 202,
			LecturerID: lecturerSmith.ID,
			From:       at(2030, time.March, 14, 7),
			To:         at(2030, time.March, 14, 9),
		}
		result, err := reservation.Validate(early, nil, knownHalls, knownLecturers)
		require.NoError(t, err)
		assert.True(t, result.Has(reservation.OutsideWorkingHours))

		late := &reservation.NewReservation{
			HallNumber: 202,
			LecturerID: lecturerSmith.ID,
			From:       at(2030, time.March, 14, 17),
			To:         at(2030, time.March, 14, 19),
		}
		result, err = reservation.Validate(late, nil, knownHalls, knownLecturers)
		require.NoError(t, err)
		assert.True(t, result.Has(reservation.OutsideWorkingHours))

		// 08:00 start and 18:00 end are both inside the window.
		edge := &reservation.NewReservation{
			HallNumber: 202,
			LecturerID: lecturerSmith.ID,
			From:       at(2030, time.March, 14, 16),
			To:         at(2030, time.March, 14, 18),
		}
		result, err = reservation.Validate(edge, nil, knownHalls, knownLecturers)
		require.NoError(t, err)
		assert.False(t, result.Has(reservation.OutsideWorkingHours))
	})

	t.Run("longer than three hours", func(t *testing.T) {
		t.Parallel()
		proposed := &reservation.NewReservation{
			HallNumber: 202,
			LecturerID: lecturerSmith.ID,
			From:       at(2030, time.March, 14, 9),
			To:         at(2030, time.March, 14, 13),
		}

		result, err := reservation.Validate(proposed, nil, knownHalls, knownLecturers)
		require.NoError(t, err)
		assert.True(t, result.Has(reservation.TooLong))

		// Exactly three hours is allowed.
		proposed.To = at(2030, time.March, 14, 12)
		result, err = reservation.Validate(proposed, nil, knownHalls, knownLecturers)
		require.NoError(t, err)
		assert.True(t, result.Admitted())
	})

	t.Run("unknown hall and lecturer", func(t *testing.T) {
		t.Parallel()
		proposed := &reservation.NewReservation{
			HallNumber: 999,
			LecturerID: uuid.New(),
			From:       at(2030, time.March, 14, 10),
			To:         at(2030, time.March, 14, 12),
		}

		result, err := reservation.Validate(proposed, nil, knownHalls, knownLecturers)
		require.NoError(t, err)
		assert.True(t, result.Has(reservation.HallDoesNotExist))
		assert.True(t, result.Has(reservation.LecturerDoesNotExist))
		assert.False(t, result.Admitted())
	})

	t.Run("several violations accumulate", func(t *testing.T) {
		t.Parallel()
		proposed := &reservation.NewReservation{
			HallNumber: 999,
			LecturerID: uuid.New(),
			From:       at(2030, time.March, 14, 6),
			To:         at(2030, time.March, 15, 5),
		}

		result, err := reservation.Validate(proposed, nil, knownHalls, knownLecturers)
		require.NoError(t, err)
		assert.False(t, result.Admitted())
		assert.False(t, result.Has(reservation.ValidationOK))
		assert.True(t, result.Has(reservation.MoreThanOneDay))
		assert.True(t, result.Has(reservation.ToBeforeFrom))
		assert.True(t, result.Has(reservation.OutsideWorkingHours))
		assert.True(t, result.Has(reservation.TooLong))
		assert.True(t, result.Has(reservation.HallDoesNotExist))
		assert.True(t, result.Has(reservation.LecturerDoesNotExist))
		assert.Len(t, result.Violations(), 6)
	})
}

func TestValidateConflicts(t *testing.T) {
	t.Parallel()

	existing := []reservation.Reservation{
		{
			ID:         uuid.New(),
			HallNumber: 202,
			LecturerID: lecturerDoe.ID,
			From:       at(2030, time.March, 14, 9),
			To:         at(2030, time.March, 14, 12),
		},
	}

	propose := func(hallNumber, fromHour, toHour int) *reservation.NewReservation {
		return &reservation.NewReservation{
			HallNumber: hallNumber,
			LecturerID: lecturerSmith.ID,
			From:       at(2030, time.March, 14, fromHour),
			To:         at(2030, time.March, 14, toHour),
		}
	}

	t.Run("proposal inside an existing reservation", func(t *testing.T) {
		t.Parallel()
		result, err := reservation.Validate(propose(202, 10, 11), existing, knownHalls, knownLecturers)
		require.NoError(t, err)
		assert.True(t, result.Has(reservation.Conflicting))
		assert.False(t, result.Admitted())
	})

	t.Run("proposal covering an existing reservation", func(t *testing.T) {
		t.Parallel()
		inner := []reservation.Reservation{{
			ID:         uuid.New(),
			HallNumber: 202,
			LecturerID: lecturerDoe.ID,
			From:       at(2030, time.March, 14, 10),
			To:         at(2030, time.March, 14, 11),
		}}

		result, err := reservation.Validate(propose(202, 9, 12), inner, knownHalls, knownLecturers)
		require.NoError(t, err)
		assert.True(t, result.Has(reservation.Conflicting))
		// Covering a 1-hour booking with a 3-hour one breaks no other rule.
		assert.False(t, result.Has(reservation.TooLong))
	})

	t.Run("overlapping the end of an existing reservation", func(t *testing.T) {
		t.Parallel()
		result, err := reservation.Validate(propose(202, 11, 13), existing, knownHalls, knownLecturers)
		require.NoError(t, err)
		assert.True(t, result.Has(reservation.Conflicting))
	})

	t.Run("back to back bookings do not conflict", func(t *testing.T) {
		t.Parallel()
		result, err := reservation.Validate(propose(202, 12, 14), existing, knownHalls, knownLecturers)
		require.NoError(t, err)
		assert.False(t, result.Has(reservation.Conflicting))
		assert.True(t, result.Admitted())
	})

	t.Run("same hours on another hall", func(t *testing.T) {
		t.Parallel()
		result, err := reservation.Validate(propose(201, 10, 11), existing, knownHalls, knownLecturers)
		require.NoError(t, err)
		assert.False(t, result.Has(reservation.Conflicting))
		assert.True(t, result.Admitted())
	})

	t.Run("same hours on another day", func(t *testing.T) {
		t.Parallel()
		proposed := propose(202, 10, 11)
		proposed.From = proposed.From.AddDate(0, 0, 1)
		proposed.To = proposed.To.AddDate(0, 0, 1)

		result, err := reservation.Validate(proposed, existing, knownHalls, knownLecturers)
		require.NoError(t, err)
		assert.False(t, result.Has(reservation.Conflicting))
		assert.True(t, result.Admitted())
	})
}
