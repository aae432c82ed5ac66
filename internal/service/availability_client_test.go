package service

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func TestIsDoctorAvailableTrue(t *testing.T) {
	doctorID := uuid.New()
	at := time.Date(2026, 8, 24, 10, 0, 0, 0, time.UTC)

	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		fmt.Fprint(w, "true")
	}))
	defer server.Close()

	client := NewAvailabilityClient(server.URL, 2*time.Second, testLogger())
	available, err := client.IsDoctorAvailable(context.Background(), doctorID, at)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !available {
		t.Error("expected available")
	}

	wantPath := fmt.Sprintf("/api/v1/doctor/availability/isAvailable/%s/2026-08-24T10:00:00", doctorID)
	if gotPath != wantPath {
		t.Errorf("request path = %q, want %q", gotPath, wantPath)
	}
}

func TestIsDoctorAvailableFalse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "false")
	}))
	defer server.Close()

	client := NewAvailabilityClient(server.URL, 2*time.Second, testLogger())
	available, err := client.IsDoctorAvailable(context.Background(), uuid.New(), time.Now())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if available {
		t.Error("expected unavailable")
	}
}

func TestIsDoctorAvailableNon2xxIsError(t *testing.T) {
	for _, status := range []int{http.StatusNotFound, http.StatusInternalServerError, http.StatusBadGateway} {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(status)
		}))

		client := NewAvailabilityClient(server.URL, 2*time.Second, testLogger())
		available, err := client.IsDoctorAvailable(context.Background(), uuid.New(), time.Now())
		server.Close()

		if err == nil {
			t.Errorf("status %d: expected error", status)
		}
		if available {
			t.Errorf("status %d: errored check must not report available", status)
		}
	}
}

func TestIsDoctorAvailableMalformedBodyIsError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"available":`)
	}))
	defer server.Close()

	client := NewAvailabilityClient(server.URL, 2*time.Second, testLogger())
	if _, err := client.IsDoctorAvailable(context.Background(), uuid.New(), time.Now()); err == nil {
		t.Fatal("expected error for an unreadable body")
	}
}

func TestIsDoctorAvailableTimeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		fmt.Fprint(w, "true")
	}))
	defer server.Close()

	client := NewAvailabilityClient(server.URL, 20*time.Millisecond, testLogger())
	available, err := client.IsDoctorAvailable(context.Background(), uuid.New(), time.Now())
	if err == nil {
		t.Fatal("expected timeout error")
	}
	if available {
		t.Error("timed-out check must not report available")
	}
}

func TestIsDoctorAvailableConnectionRefused(t *testing.T) {
	// Reserve a port, then close the listener so nothing is serving it.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	client := NewAvailabilityClient(url, time.Second, testLogger())
	if _, err := client.IsDoctorAvailable(context.Background(), uuid.New(), time.Now()); err == nil {
		t.Fatal("expected connection error")
	}
}
