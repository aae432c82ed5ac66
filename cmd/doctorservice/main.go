package main

import (
	"github.com/AMIROUNI/SymptomCheck-sub001/cmd/bootstrap"

	"github.com/sirupsen/logrus"
)

func main() {
	// Initialize application with all dependencies
	app, err := bootstrap.NewDoctorApp()
	if err != nil {
		logrus.Fatalf("Failed to initialize doctor service: %v", err)
	}

	// Run the application
	app.Run()
}
