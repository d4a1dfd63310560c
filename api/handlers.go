package api

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"os"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
)

type API struct {
	router *mux.Router
	db     *sql.DB
	now    func() time.Time
}

func NewAPI(db *sql.DB) *API {
	r := mux.NewRouter()
	r = r.PathPrefix("/api").Subrouter()
	return &API{
		router: r,
		db:     db,
		now:    time.Now,
	}
}

func (a *API) Router() *mux.Router {
	return a.router
}

func (a *API) Handler() http.Handler {
	// Use Gorilla's built-in logging handler
	return handlers.LoggingHandler(os.Stdout, a.router)
}

type Response struct {
	Status   int `json:"status"`
	Response any `json:"response"`
}

func (a *API) Response(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	err := json.NewEncoder(w).Encode(Response{
		Status:   status,
		Response: data,
	})
	if err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		return
	}
}

func (a *API) RegisterRoutes() {
	a.router.HandleFunc("/health", a.health).Methods(http.MethodGet)

	a.router.HandleFunc("/halls", a.createHall).Methods(http.MethodPost)
	a.router.HandleFunc("/halls", a.getHalls).Methods(http.MethodGet)
	a.router.HandleFunc("/halls/free-hours", a.getHallsFreeHours).Methods(http.MethodGet)
	a.router.HandleFunc("/halls/{number:[0-9]+}", a.getHall).Methods(http.MethodGet)
	a.router.HandleFunc("/halls/{number:[0-9]+}/reservations", a.getHallReservationsByDay).Methods(http.MethodGet)

	a.router.HandleFunc("/lecturers", a.createLecturer).Methods(http.MethodPost)
	a.router.HandleFunc("/lecturers", a.getLecturers).Methods(http.MethodGet)
	a.router.HandleFunc("/lecturers/{id}", a.getLecturer).Methods(http.MethodGet)

	a.router.HandleFunc("/reservations", a.createReservation).Methods(http.MethodPost)
	a.router.HandleFunc("/reservations/validate", a.validateReservation).Methods(http.MethodPost)
	a.router.HandleFunc("/reservations", a.getReservations).Methods(http.MethodGet)
	a.router.HandleFunc("/reservations/{id}", a.getReservation).Methods(http.MethodGet)
	a.router.HandleFunc("/reservations/{id}", a.deleteReservation).Methods(http.MethodDelete)
}
