package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"reservations-system/hall"
	"reservations-system/lecturer"
	"reservations-system/reservation"
)

func (a *API) createHall(w http.ResponseWriter, r *http.Request) {
	var payload hall.Hall

	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		a.Response(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := payload.Validate(); err != nil {
		a.Response(w, http.StatusBadRequest, fmt.Sprintf("validate: %v", err))
		return
	}

	hallAccessor := hall.NewAccessor(a.db)

	created, err := hallAccessor.InsertHall(r.Context(), payload)
	if err != nil {
		a.Response(w, http.StatusInternalServerError, err.Error())
		return
	}
	a.Response(w, http.StatusCreated, created)
}

type getHallsResponse struct {
	Halls []hall.Hall `json:"halls"`
}

func (a *API) getHalls(w http.ResponseWriter, r *http.Request) {
	hallAccessor := hall.NewAccessor(a.db)
	halls, err := hallAccessor.GetHalls(r.Context())
	if err != nil {
		a.Response(w, http.StatusInternalServerError, err.Error())
		return
	}
	response := getHallsResponse{
		Halls: halls,
	}
	a.Response(w, http.StatusOK, response)
}

func (a *API) getHall(w http.ResponseWriter, r *http.Request) {
	number, err := strconv.Atoi(mux.Vars(r)["number"])
	if err != nil {
		a.Response(w, http.StatusBadRequest, "invalid hall number")
		return
	}

	hallAccessor := hall.NewAccessor(a.db)
	h, err := hallAccessor.GetHall(r.Context(), number)
	if err != nil {
		a.Response(w, http.StatusInternalServerError, err.Error())
		return
	}
	if h == nil {
		a.Response(w, http.StatusNotFound, "hall not found")
		return
	}

	a.Response(w, http.StatusOK, h)
}

// parseDay reads a YYYY-MM-DD day from the request's query string.
func parseDay(r *http.Request) (time.Time, error) {
	raw := r.URL.Query().Get("day")
	if raw == "" {
		return time.Time{}, errors.New("day query parameter is required")
	}
	day, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid day %q, expected YYYY-MM-DD", raw)
	}
	return day, nil
}

type hallReservationsResponse struct {
	Reservations []reservation.Reservation `json:"reservations"`
}

func (a *API) getHallReservationsByDay(w http.ResponseWriter, r *http.Request) {
	number, err := strconv.Atoi(mux.Vars(r)["number"])
	if err != nil {
		a.Response(w, http.StatusBadRequest, "invalid hall number")
		return
	}

	day, err := parseDay(r)
	if err != nil {
		a.Response(w, http.StatusBadRequest, err.Error())
		return
	}

	accessor := reservation.NewAccessor(a.db, hall.NewAccessor(a.db), lecturer.NewAccessor(a.db))
	reservations, err := accessor.ReservationsByDay(r.Context(), day, number)
	if err != nil {
		if errors.Is(err, reservation.ErrHallNotFound) {
			a.Response(w, http.StatusNotFound, err.Error())
			return
		}
		a.Response(w, http.StatusInternalServerError, err.Error())
		return
	}

	a.Response(w, http.StatusOK, hallReservationsResponse{Reservations: reservations})
}

type hallsFreeHoursResponse struct {
	FreeHours []reservation.HallFreeHours `json:"free_hours"`
}

func (a *API) getHallsFreeHours(w http.ResponseWriter, r *http.Request) {
	day, err := parseDay(r)
	if err != nil {
		a.Response(w, http.StatusBadRequest, err.Error())
		return
	}

	accessor := reservation.NewAccessor(a.db, hall.NewAccessor(a.db), lecturer.NewAccessor(a.db))
	stats, err := accessor.HallsFreeHoursByDay(r.Context(), day, a.now())
	if err != nil {
		if errors.Is(err, reservation.ErrDayNotInFuture) {
			a.Response(w, http.StatusBadRequest, err.Error())
			return
		}
		a.Response(w, http.StatusInternalServerError, err.Error())
		return
	}

	a.Response(w, http.StatusOK, hallsFreeHoursResponse{FreeHours: stats})
}
