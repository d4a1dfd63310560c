package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"reservations-system/lecturer"
)

func (a *API) createLecturer(w http.ResponseWriter, r *http.Request) {
	var payload lecturer.Lecturer

	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		a.Response(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := payload.Validate(); err != nil {
		a.Response(w, http.StatusBadRequest, fmt.Sprintf("validate: %v", err))
		return
	}

	lecturerAccessor := lecturer.NewAccessor(a.db)

	created, err := lecturerAccessor.InsertLecturer(r.Context(), payload)
	if err != nil {
		a.Response(w, http.StatusInternalServerError, err.Error())
		return
	}
	a.Response(w, http.StatusCreated, created)
}

type getLecturersResponse struct {
	Lecturers []lecturer.Lecturer `json:"lecturers"`
}

func (a *API) getLecturers(w http.ResponseWriter, r *http.Request) {
	lecturerAccessor := lecturer.NewAccessor(a.db)
	lecturers, err := lecturerAccessor.GetLecturers(r.Context())
	if err != nil {
		a.Response(w, http.StatusInternalServerError, err.Error())
		return
	}
	response := getLecturersResponse{
		Lecturers: lecturers,
	}
	a.Response(w, http.StatusOK, response)
}

func (a *API) getLecturer(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if id == "" {
		a.Response(w, http.StatusBadRequest, "lecturer ID is required")
		return
	}

	parsedID, err := uuid.Parse(id)
	if err != nil {
		a.Response(w, http.StatusBadRequest, "invalid lecturer ID")
		return
	}

	lecturerAccessor := lecturer.NewAccessor(a.db)
	l, err := lecturerAccessor.GetLecturer(r.Context(), parsedID)
	if err != nil {
		a.Response(w, http.StatusInternalServerError, err.Error())
		return
	}
	if l == nil {
		a.Response(w, http.StatusNotFound, "lecturer not found")
		return
	}

	a.Response(w, http.StatusOK, l)
}
