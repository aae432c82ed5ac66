package bootstrap

import (
	"fmt"
	"net/http"

	"github.com/AMIROUNI/SymptomCheck-sub001/config"
	deliveryHttp "github.com/AMIROUNI/SymptomCheck-sub001/internal/delivery/http"
	"github.com/AMIROUNI/SymptomCheck-sub001/internal/delivery/http/handler"
	"github.com/AMIROUNI/SymptomCheck-sub001/internal/delivery/http/middleware"
	"github.com/AMIROUNI/SymptomCheck-sub001/internal/infrastructure/cache"
	"github.com/AMIROUNI/SymptomCheck-sub001/internal/infrastructure/database"
	"github.com/AMIROUNI/SymptomCheck-sub001/internal/repository"
	"github.com/AMIROUNI/SymptomCheck-sub001/internal/service"
	"github.com/AMIROUNI/SymptomCheck-sub001/internal/usecase"
	"github.com/AMIROUNI/SymptomCheck-sub001/pkg/jwt"
	"github.com/AMIROUNI/SymptomCheck-sub001/pkg/validator"

	"github.com/sirupsen/logrus"
)

// NewDoctorApp wires the doctor service: the weekly availability store
// and the availability/slot queries. Taken slots are fetched from the
// appointment service over HTTP.
func NewDoctorApp() (*App, error) {
	app := &App{Name: "doctor-service"}

	setupLogger()

	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg
	logrus.Info("Configuration loaded successfully")

	db, err := database.NewPostgresConnection(cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = db

	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	app.RedisClient = redisClient

	log := logrus.StandardLogger()

	// Initialize JWT service and validator
	jwtService := jwt.NewJWTService(cfg.JWT)
	customValidator := validator.NewValidator()

	// Initialize repositories
	availabilityRepo := repository.NewDoctorAvailabilityRepository()
	auditLogRepo := repository.NewAuditLogRepository()

	// Initialize services
	auditService := service.NewAuditService(db, log, auditLogRepo)
	takenSlotsClient := service.NewTakenSlotsClient(
		cfg.Services.AppointmentServiceURL, cfg.Services.AvailabilityCheckTimeout, log)

	// Initialize usecases
	availabilityUsecase := usecase.NewDoctorAvailabilityUsecase(db, log, availabilityRepo, takenSlotsClient, auditService)

	// Initialize handlers
	availabilityHandler := handler.NewAvailabilityHandler(availabilityUsecase, customValidator, cfg.Booking.SlotGranularityMinutes)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtService, redisClient)
	corsMiddleware := middleware.NewCORSMiddleware()

	// Initialize router
	router := deliveryHttp.NewDoctorRouter(availabilityHandler, authMiddleware, corsMiddleware)

	app.Server = &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.App.Port),
		Handler: router.Setup(),
	}

	return app, nil
}
