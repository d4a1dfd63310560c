package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"reservations-system/hall"
	"reservations-system/lecturer"
	"reservations-system/reservation"
)

// newReservationRequest is the API DTO for a booking proposal. Times are
// RFC 3339 strings.
type newReservationRequest struct {
	HallNumber int    `json:"hall_number"`
	LecturerID string `json:"lecturer_id"`
	From       string `json:"from"`
	To         string `json:"to"`
}

func (a *API) decodeProposal(w http.ResponseWriter, r *http.Request) *reservation.NewReservation {
	var req newReservationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.Response(w, http.StatusBadRequest, "invalid request body")
		return nil
	}

	lecturerID, err := uuid.Parse(req.LecturerID)
	if err != nil {
		a.Response(w, http.StatusBadRequest, "invalid lecturer ID")
		return nil
	}

	from, err := time.Parse(time.RFC3339, req.From)
	if err != nil {
		a.Response(w, http.StatusBadRequest, "invalid from time, expected RFC 3339")
		return nil
	}
	to, err := time.Parse(time.RFC3339, req.To)
	if err != nil {
		a.Response(w, http.StatusBadRequest, "invalid to time, expected RFC 3339")
		return nil
	}

	proposed := &reservation.NewReservation{
		HallNumber: req.HallNumber,
		LecturerID: lecturerID,
		From:       from,
		To:         to,
	}

	if err := proposed.Validate(); err != nil {
		a.Response(w, http.StatusBadRequest, err.Error())
		return nil
	}

	return proposed
}

func (a *API) reservationAccessor() *reservation.Accessor {
	return reservation.NewAccessor(a.db, hall.NewAccessor(a.db), lecturer.NewAccessor(a.db))
}

type validationResponse struct {
	Admitted   bool     `json:"admitted"`
	Violations []string `json:"violations,omitempty"`
}

func (a *API) createReservation(w http.ResponseWriter, r *http.Request) {
	proposed := a.decodeProposal(w, r)
	if proposed == nil {
		return
	}

	created, result, err := a.reservationAccessor().CreateReservation(r.Context(), proposed, a.now())
	if err != nil {
		a.Response(w, http.StatusInternalServerError, err.Error())
		return
	}
	if !result.Admitted() {
		a.Response(w, http.StatusUnprocessableEntity, validationResponse{
			Admitted:   false,
			Violations: result.Violations(),
		})
		return
	}

	a.Response(w, http.StatusCreated, created)
}

func (a *API) validateReservation(w http.ResponseWriter, r *http.Request) {
	proposed := a.decodeProposal(w, r)
	if proposed == nil {
		return
	}

	result, err := a.reservationAccessor().ValidateReservation(r.Context(), proposed)
	if err != nil {
		a.Response(w, http.StatusInternalServerError, err.Error())
		return
	}

	a.Response(w, http.StatusOK, validationResponse{
		Admitted:   result.Admitted(),
		Violations: result.Violations(),
	})
}

type getReservationsResponse struct {
	Reservations []reservation.Reservation `json:"reservations"`
}

func (a *API) getReservations(w http.ResponseWriter, r *http.Request) {
	reservations, err := a.reservationAccessor().GetReservations(r.Context())
	if err != nil {
		a.Response(w, http.StatusInternalServerError, err.Error())
		return
	}
	a.Response(w, http.StatusOK, getReservationsResponse{Reservations: reservations})
}

func (a *API) getReservation(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if id == "" {
		a.Response(w, http.StatusBadRequest, "reservation ID is required")
		return
	}

	parsedID, err := uuid.Parse(id)
	if err != nil {
		a.Response(w, http.StatusBadRequest, "invalid reservation ID")
		return
	}

	res, err := a.reservationAccessor().GetReservation(r.Context(), parsedID)
	if err != nil {
		a.Response(w, http.StatusInternalServerError, err.Error())
		return
	}
	if res == nil {
		a.Response(w, http.StatusNotFound, "reservation not found")
		return
	}

	a.Response(w, http.StatusOK, res)
}

func (a *API) deleteReservation(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if id == "" {
		a.Response(w, http.StatusBadRequest, "reservation ID is required")
		return
	}

	parsedID, err := uuid.Parse(id)
	if err != nil {
		a.Response(w, http.StatusBadRequest, "invalid reservation ID")
		return
	}

	// Deleting an unknown reservation is a no-op, so no existence check here.
	if err := a.reservationAccessor().DeleteReservation(r.Context(), parsedID); err != nil {
		a.Response(w, http.StatusInternalServerError, err.Error())
		return
	}
	a.Response(w, http.StatusNoContent, nil)
}
