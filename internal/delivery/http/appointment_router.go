package http

import (
	"net/http"

	"github.com/AMIROUNI/SymptomCheck-sub001/internal/delivery/http/handler"
	"github.com/AMIROUNI/SymptomCheck-sub001/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type AppointmentRouter struct {
	router             *mux.Router
	appointmentHandler *handler.AppointmentHandler
	authMiddleware     *middleware.AuthMiddleware
	corsMiddleware     *middleware.CORSMiddleware
}

func NewAppointmentRouter(
	appointmentHandler *handler.AppointmentHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *AppointmentRouter {
	return &AppointmentRouter{
		router:             mux.NewRouter(),
		appointmentHandler: appointmentHandler,
		authMiddleware:     authMiddleware,
		corsMiddleware:     corsMiddleware,
	}
}

func (r *AppointmentRouter) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", healthCheck).Methods(http.MethodGet)

	// Service-to-service routes (public): the doctor service consumes the
	// taken-appointments listing when computing free slots. Registered
	// before the {userId} route so the literal segment wins.
	api.HandleFunc("/appointments/taken-appointments/{doctorId}", r.appointmentHandler.GetTakenAppointments).Methods(http.MethodGet)
	api.HandleFunc("/appointments/is-free/{doctorId}/{dateTime}", r.appointmentHandler.IsSlotFree).Methods(http.MethodGet)

	// Booking routes (protected)
	appointments := api.PathPrefix("/appointments").Subrouter()
	appointments.Use(r.authMiddleware.Authenticate)

	appointments.Handle("/create",
		middleware.RequirePatient(http.HandlerFunc(r.appointmentHandler.CreateAppointment))).Methods(http.MethodPost)
	appointments.Handle("/{id}/status/{statusNumber}",
		middleware.RequireDoctorOrAdmin(http.HandlerFunc(r.appointmentHandler.UpdateStatus))).Methods(http.MethodPut)
	appointments.HandleFunc("/doctor/{doctorId}", r.appointmentHandler.GetByDoctor).Methods(http.MethodGet)
	appointments.HandleFunc("/{userId}", r.appointmentHandler.GetByPatient).Methods(http.MethodGet)

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
