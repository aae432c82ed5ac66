package http

import (
	"net/http"

	"github.com/AMIROUNI/SymptomCheck-sub001/internal/delivery/http/handler"
	"github.com/AMIROUNI/SymptomCheck-sub001/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type DoctorRouter struct {
	router              *mux.Router
	availabilityHandler *handler.AvailabilityHandler
	authMiddleware      *middleware.AuthMiddleware
	corsMiddleware      *middleware.CORSMiddleware
}

func NewDoctorRouter(
	availabilityHandler *handler.AvailabilityHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *DoctorRouter {
	return &DoctorRouter{
		router:              mux.NewRouter(),
		availabilityHandler: availabilityHandler,
		authMiddleware:      authMiddleware,
		corsMiddleware:      corsMiddleware,
	}
}

func (r *DoctorRouter) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", healthCheck).Methods(http.MethodGet)

	// Availability query routes (public): the appointment service calls
	// isAvailable during booking, the frontend lists daily slots.
	availability := api.PathPrefix("/doctor/availability").Subrouter()
	availability.HandleFunc("/isAvailable/{doctorId}/{dateTime}", r.availabilityHandler.IsAvailable).Methods(http.MethodGet)
	availability.HandleFunc("/daily", r.availabilityHandler.GetDailySlots).Methods(http.MethodGet)
	availability.HandleFunc("/exists/{doctorId}", r.availabilityHandler.Exists).Methods(http.MethodGet)
	availability.HandleFunc("/{doctorId}", r.availabilityHandler.GetByDoctor).Methods(http.MethodGet)

	// Availability seeding (protected - doctors completing their profile)
	protected := api.PathPrefix("/doctor/availability").Subrouter()
	protected.Use(r.authMiddleware.Authenticate)
	protected.Handle("",
		middleware.RequireDoctor(http.HandlerFunc(r.availabilityHandler.CreateAvailability))).Methods(http.MethodPost)
	protected.Handle("/{doctorId}",
		middleware.RequireDoctor(http.HandlerFunc(r.availabilityHandler.DeleteByDoctor))).Methods(http.MethodDelete)

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}
