package rest

import (
	"net/http"

	"github.com/dmitrijs2005/carekeeper/internal/models"
	"github.com/gorilla/mux"
)

type appointmentBody struct {
	Appointment models.Appointment `json:"appointment"`
}

type appointmentsBody struct {
	Appointments []models.Appointment `json:"appointments"`
}

func (s *HTTPServer) handleListAppointments(w http.ResponseWriter, r *http.Request) {
	appointments, err := s.data.ListAppointments(r.Context(), userIDFrom(r.Context()))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, appointmentsBody{Appointments: appointments})
}

func (s *HTTPServer) handleCreateAppointment(w http.ResponseWriter, r *http.Request) {
	var na models.NewAppointment
	if !decodeJSON(w, r, &na) {
		return
	}

	appointment, err := s.data.CreateAppointment(r.Context(), userIDFrom(r.Context()), na)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, appointmentBody{Appointment: *appointment})
}

func (s *HTTPServer) handleUpdateAppointment(w http.ResponseWriter, r *http.Request) {
	var patch models.AppointmentPatch
	if !decodeJSON(w, r, &patch) {
		return
	}

	appointment, err := s.data.UpdateAppointment(r.Context(), userIDFrom(r.Context()), mux.Vars(r)["id"], patch)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, appointmentBody{Appointment: *appointment})
}

func (s *HTTPServer) handleDeleteAppointment(w http.ResponseWriter, r *http.Request) {
	if err := s.data.DeleteAppointment(r.Context(), userIDFrom(r.Context()), mux.Vars(r)["id"]); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, messageBody{Message: "Appointment deleted successfully"})
}
