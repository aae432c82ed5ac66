package config

import (
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig
	DB       DBConfig
	Redis    RedisConfig
	JWT      JWTConfig
	Services ServicesConfig
	Booking  BookingConfig
}

type AppConfig struct {
	Port string
	Env  string
}

type DBConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

type JWTConfig struct {
	Secret string
}

// ServicesConfig holds base URLs and timeouts for cross-service calls.
// The appointment service calls the doctor service for availability checks;
// the doctor service calls the appointment service for taken slots.
type ServicesConfig struct {
	DoctorServiceURL         string
	AppointmentServiceURL    string
	AvailabilityCheckTimeout time.Duration
}

type BookingConfig struct {
	SlotGranularityMinutes int
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	availabilityTimeout, err := time.ParseDuration(viper.GetString("AVAILABILITY_CHECK_TIMEOUT"))
	if err != nil {
		availabilityTimeout = 3 * time.Second
	}

	granularity := viper.GetInt("SLOT_GRANULARITY_MINUTES")
	if granularity <= 0 {
		granularity = 30
	}

	config := &Config{
		App: AppConfig{
			Port: viper.GetString("APP_PORT"),
			Env:  viper.GetString("APP_ENV"),
		},
		DB: DBConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASSWORD"),
			Name:     viper.GetString("DB_NAME"),
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetString("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		JWT: JWTConfig{
			Secret: viper.GetString("JWT_SECRET"),
		},
		Services: ServicesConfig{
			DoctorServiceURL:         viper.GetString("DOCTOR_SERVICE_URL"),
			AppointmentServiceURL:    viper.GetString("APPOINTMENT_SERVICE_URL"),
			AvailabilityCheckTimeout: availabilityTimeout,
		},
		Booking: BookingConfig{
			SlotGranularityMinutes: granularity,
		},
	}

	return config, nil
}
